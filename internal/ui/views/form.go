package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/domain"
)

// SuccessMessage is shown while a sent message's notice is up
const SuccessMessage = "Thank you for your message! I'll get back to you soon."

// FormField is one rendered input of the contact form
type FormField struct {
	Label string
	View  string
}

// FormState is everything the contact form needs to draw itself
type FormState struct {
	Width      int
	Fields     []FormField
	Focused    int // index into Fields, len(Fields) is the submit button, -1 when the form is not active
	Submission domain.Submission
	Spinner    string
	Hint       string // validation message shown under the button
}

// RenderForm draws the inputs, the submit button and the current notice
func RenderForm(s *Styles, f FormState) string {
	wrap := lipgloss.NewStyle().PaddingLeft(2)
	var b strings.Builder

	for i, field := range f.Fields {
		label := s.Label
		if i == f.Focused {
			label = s.LabelFocused
		}
		b.WriteString(wrap.Render(label.Render(field.Label)))
		b.WriteString("\n")
		b.WriteString(wrap.Render(field.View))
		b.WriteString("\n\n")
	}

	submitting := f.Submission.Status == domain.StatusSubmitting
	var button string
	switch {
	case submitting:
		button = s.ButtonDisabled.Render(f.Spinner + " Sending...")
	case f.Focused == len(f.Fields):
		button = s.ButtonFocused.Render("Send Message")
	default:
		button = s.Button.Render("Send Message")
	}
	b.WriteString(wrap.Render(button))
	b.WriteString("\n")
	if f.Hint != "" && !submitting {
		b.WriteString(wrap.Render(s.Dim.Render(f.Hint)))
		b.WriteString("\n")
	}

	noticeWidth := f.Width - 6
	if noticeWidth < 10 {
		noticeWidth = 10
	}
	switch f.Submission.Status {
	case domain.StatusSucceeded:
		b.WriteString("\n")
		b.WriteString(wrap.Render(s.NoticeSuccess.Width(noticeWidth).Render(SuccessMessage)))
		b.WriteString("\n")
	case domain.StatusFailed:
		b.WriteString("\n")
		b.WriteString(wrap.Render(s.NoticeError.Width(noticeWidth).Render(f.Submission.Reason)))
		b.WriteString("\n")
	}
	return b.String()
}
