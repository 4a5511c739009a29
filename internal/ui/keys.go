package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "termfolio/internal/ui/input/types"
)

// keyMap describes the bindings of each input mode for the help footer.
// Dispatch happens in the input package; these are display only.
type keyMap struct {
	mode    inputtypes.Mode
	compact bool

	Scroll   key.Binding
	Page     key.Binding
	Ends     key.Binding
	Sections key.Binding
	Projects key.Binding
	Contact  key.Binding
	Menu     key.Binding
	Resume   key.Binding
	Help     key.Binding
	Quit     key.Binding

	MenuMove   key.Binding
	MenuSelect key.Binding
	MenuClose  key.Binding

	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Leave     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Scroll:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Page:     key.NewBinding(key.WithKeys("pgup", "pgdown", "ctrl+u", "ctrl+d"), key.WithHelp("pgup/pgdn", "page")),
		Ends:     key.NewBinding(key.WithKeys("g", "G", "home", "end"), key.WithHelp("g/G", "top/bottom")),
		Sections: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "sections")),
		Projects: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
		Contact:  key.NewBinding(key.WithKeys("c", "tab"), key.WithHelp("c", "contact")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Resume:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "résumé")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		MenuMove:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		MenuSelect: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		MenuClose:  key.NewBinding(key.WithKeys("esc", "m"), key.WithHelp("esc", "close")),

		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	switch k.mode {
	case inputtypes.ModeMenu:
		return []key.Binding{k.MenuMove, k.MenuSelect, k.MenuClose}
	case inputtypes.ModeForm:
		return []key.Binding{k.NextField, k.Submit, k.Leave}
	}
	if k.compact {
		return []key.Binding{k.Scroll, k.Menu, k.Contact, k.Help, k.Quit}
	}
	return []key.Binding{k.Scroll, k.Sections, k.Contact, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	switch k.mode {
	case inputtypes.ModeMenu:
		return [][]key.Binding{{k.MenuMove, k.MenuSelect, k.MenuClose}}
	case inputtypes.ModeForm:
		return [][]key.Binding{{k.NextField, k.PrevField}, {k.Submit, k.Leave}}
	}
	nav := []key.Binding{k.Projects, k.Contact, k.Resume}
	if k.compact {
		nav = append(nav, k.Menu)
	} else {
		nav = append([]key.Binding{k.Sections}, nav...)
	}
	return [][]key.Binding{
		{k.Scroll, k.Page, k.Ends},
		nav,
		{k.Help, k.Quit},
	}
}
