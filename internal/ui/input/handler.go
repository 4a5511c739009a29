package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"termfolio/internal/ui/input/modes"
	"termfolio/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeBrowse,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeBrowse] = modes.NewBrowseMode()
	h.modes[types.ModeMenu] = modes.NewMenuMode()
	h.modes[types.ModeForm] = modes.NewFormMode()

	return h
}

// HandleKey routes a key to the current mode and applies mode changes.
// Enter/Exit actions of the modes involved are spliced in where the change happened.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil, false
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchTo(changeMode.Mode, ctx)...)
	}
	return allActions, true
}

// ChangeMode switches modes outside of key handling, e.g. after a resize
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchTo(mode, ctx)
}

func (h *Handler) switchTo(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}
