package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScrollChanged     EventType = "ScrollChanged"
	EventMenuToggled       EventType = "MenuToggled"
	EventSectionNavigated  EventType = "SectionNavigated"
	EventSubmissionChanged EventType = "SubmissionChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScrollChangedEvent is emitted whenever the page viewport offset changes
type ScrollChangedEvent struct {
	Offset int
}

func (e ScrollChangedEvent) Type() EventType { return EventScrollChanged }

// MenuToggledEvent is emitted when the compact navigation panel opens or closes
type MenuToggledEvent struct {
	Open bool
}

func (e MenuToggledEvent) Type() EventType { return EventMenuToggled }

// SectionNavigatedEvent is emitted after a successful in-page navigation
type SectionNavigatedEvent struct {
	SectionID string
	Line      int
}

func (e SectionNavigatedEvent) Type() EventType { return EventSectionNavigated }

// SubmissionChangedEvent is emitted on every contact form lifecycle transition
type SubmissionChangedEvent struct {
	Submission Submission
}

func (e SubmissionChangedEvent) Type() EventType { return EventSubmissionChanged }
