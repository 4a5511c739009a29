package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/ui/input/types"
)

// MenuMode drives the compact navigation panel
type MenuMode struct{}

func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

func (m *MenuMode) Name() string {
	return "menu"
}

func (m *MenuMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *MenuMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{}}, true
	case "up", "k", "shift+tab":
		return []types.Action{types.MoveMenuCursorAction{Delta: -1}}, true
	case "down", "j", "tab":
		return []types.Action{types.MoveMenuCursorAction{Delta: 1}}, true
	case "esc", "m", "q":
		return closeMenu(), true
	case "enter":
		items := ctx.NavItems()
		cursor := ctx.MenuCursor()
		if cursor < 0 || cursor >= len(items) {
			return nil, true
		}
		item := items[cursor]
		if item.SectionID == "" {
			return append(closeMenu(), types.OpenResumeAction{}), true
		}
		// Navigation closes the menu itself
		return []types.Action{
			types.JumpAction{SectionID: item.SectionID},
			types.ChangeModeAction{Mode: types.ModeBrowse},
		}, true
	}
	return nil, true
}

func closeMenu() []types.Action {
	return []types.Action{
		types.ToggleMenuAction{},
		types.ChangeModeAction{Mode: types.ModeBrowse},
	}
}
