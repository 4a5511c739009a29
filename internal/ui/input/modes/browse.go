package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/content"
	"termfolio/internal/ui/input/types"
)

// BrowseMode scrolls the page and jumps between sections
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{}}, true
	case tea.KeyUp:
		return scroll("up"), true
	case tea.KeyDown:
		return scroll("down"), true
	case tea.KeyPgUp:
		return scroll("pageup"), true
	case tea.KeyPgDown, tea.KeySpace:
		return scroll("pagedown"), true
	case tea.KeyCtrlU:
		return scroll("halfup"), true
	case tea.KeyCtrlD:
		return scroll("halfdown"), true
	case tea.KeyHome:
		return scroll("home"), true
	case tea.KeyEnd:
		return scroll("end"), true
	case tea.KeyTab:
		return focusForm(), true
	}

	switch key := msg.String(); key {
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "k":
		return scroll("up"), true
	case "j":
		return scroll("down"), true
	case "g":
		return scroll("home"), true
	case "G":
		return scroll("end"), true
	case "p":
		return []types.Action{types.JumpAction{SectionID: "projects"}}, true
	case "c":
		return focusForm(), true
	case "r":
		return []types.Action{types.OpenResumeAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "m":
		// The menu button only exists in the compact header
		if !ctx.Compact() {
			return nil, false
		}
		return []types.Action{
			types.ToggleMenuAction{},
			types.ResetMenuCursorAction{},
			types.ChangeModeAction{Mode: types.ModeMenu},
		}, true
	default:
		// Numbered shortcuts mirror the inline navigation bar, hidden when compact
		if ctx.Compact() {
			return nil, false
		}
		for _, item := range ctx.NavItems() {
			if item.Key == key && item.SectionID != "" {
				return []types.Action{types.JumpAction{SectionID: item.SectionID}}, true
			}
		}
	}
	return nil, false
}

func scroll(direction string) []types.Action {
	return []types.Action{types.ScrollAction{Direction: direction}}
}

func focusForm() []types.Action {
	return []types.Action{
		types.JumpAction{SectionID: content.ContactID},
		types.ChangeModeAction{Mode: types.ModeForm},
	}
}
