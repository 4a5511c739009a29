package types

// Scrolling actions
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "halfup", "halfdown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

// JumpAction scrolls to a section anchor
type JumpAction struct {
	SectionID string
}

func (a JumpAction) Type() string { return "jump" }

// Menu actions
type ToggleMenuAction struct{}

func (a ToggleMenuAction) Type() string { return "toggle_menu" }

type MoveMenuCursorAction struct {
	Delta int
}

func (a MoveMenuCursorAction) Type() string { return "move_menu_cursor" }

type ResetMenuCursorAction struct{}

func (a ResetMenuCursorAction) Type() string { return "reset_menu_cursor" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Form actions
type FocusFieldAction struct {
	Index int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type BlurFormAction struct{}

func (a BlurFormAction) Type() string { return "blur_form" }

// EditFieldAction forwards the key to the focused input
type EditFieldAction struct{}

func (a EditFieldAction) Type() string { return "edit_field" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

// Other actions
type OpenResumeAction struct{}

func (a OpenResumeAction) Type() string { return "open_resume" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
