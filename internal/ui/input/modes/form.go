package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/ui/input/types"
)

// Focus stops inside the contact form
const (
	FocusName = iota
	FocusEmail
	FocusMessage
	FocusSubmit
)

// FormMode edits the contact form
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusFieldAction{Index: FocusName}}
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.BlurFormAction{}}
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	focused := ctx.FocusedField()

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	case "tab":
		return focus(focused+1, ctx), true
	case "shift+tab":
		return focus(focused-1, ctx), true
	case "ctrl+s":
		return submit(ctx), true
	case "enter":
		switch focused {
		case FocusSubmit:
			return submit(ctx), true
		case FocusMessage:
			return []types.Action{types.EditFieldAction{}}, true
		default:
			return focus(focused+1, ctx), true
		}
	}

	if focused == FocusSubmit {
		return nil, true
	}
	return []types.Action{types.EditFieldAction{}}, true
}

func focus(index int, ctx types.Context) []types.Action {
	n := ctx.FieldCount()
	index = ((index % n) + n) % n
	return []types.Action{types.FocusFieldAction{Index: index}}
}

func submit(ctx types.Context) []types.Action {
	// The button is disabled while a message is being sent
	if ctx.Submitting() {
		return nil
	}
	return []types.Action{types.SubmitFormAction{}}
}
