package domain

import "strings"

// ScrollState is the viewport position as last observed by the header
type ScrollState struct {
	VerticalOffset int
	IsElevated     bool
}

// NewScrollState derives the elevated flag from the offset
func NewScrollState(offset, threshold int) ScrollState {
	return ScrollState{
		VerticalOffset: offset,
		IsElevated:     offset > threshold,
	}
}

// Field names a contact form input
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in display order
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// ContactFormData holds what the visitor typed into the contact form
type ContactFormData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Complete reports whether every field has non-blank content
func (d ContactFormData) Complete() bool {
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(d.Email) != "" &&
		strings.TrimSpace(d.Message) != ""
}

// Get returns the value of a single field
func (d ContactFormData) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldMessage:
		return d.Message
	}
	panic("domain: unknown contact field " + string(f))
}

// SubmissionStatus is the mode of the contact form lifecycle
type SubmissionStatus int

const (
	StatusIdle SubmissionStatus = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s SubmissionStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Submission is the current lifecycle state. Reason is only set when Failed.
type Submission struct {
	Status SubmissionStatus
	Reason string
}

// Section is one block of portfolio content addressable by in-page navigation
type Section struct {
	ID    string
	Title string
	Body  string // markdown
}

// Contact lists the ways to reach the portfolio owner outside the form
type Contact struct {
	Email    string
	Phone    string
	GitHub   string
	LinkedIn string
}

// Profile is the portfolio content shown on the page
type Profile struct {
	Name     string
	Initials string
	Tagline  string
	Summary  string
	Resume   string
	Contact  Contact
	Sections []Section
}

// SectionIDs returns the ids in page order
func (p Profile) SectionIDs() []string {
	ids := make([]string, 0, len(p.Sections))
	for _, s := range p.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}
