package ui

import (
	"termfolio/internal/eventbus"
)

// EventMsg wraps a domain event published off the UI goroutine
type EventMsg struct {
	Event eventbus.DomainEvent
}

// scrollFrameMsg advances the smooth scroll animation by one frame
type scrollFrameMsg struct{}

// submitDoneMsg carries the result of a contact form dispatch
type submitDoneMsg struct {
	err error
}

// resumePagerMsg contains the result of the résumé pager command
type resumePagerMsg struct {
	err error
}
