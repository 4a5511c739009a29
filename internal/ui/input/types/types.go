package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeBrowse Mode = iota
	ModeMenu
	ModeForm
)

func (m Mode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeMenu:
		return "menu"
	case ModeForm:
		return "form"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	// NavItems are the header entries in display order
	NavItems() []NavItem
	MenuCursor() int
	Compact() bool
	FocusedField() int
	FieldCount() int
	Submitting() bool
}

// NavItem is one entry of the header navigation
type NavItem struct {
	Label     string
	SectionID string // empty for the résumé entry
	Key       string // shortcut in browse mode
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
