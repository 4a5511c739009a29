package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"termfolio/internal/config"
	"termfolio/internal/contact"
	"termfolio/internal/content"
	"termfolio/internal/domain"
	"termfolio/internal/eventbus"
	"termfolio/internal/ui/input/modes"
	inputtypes "termfolio/internal/ui/input/types"
	"termfolio/internal/ui/views"
)

type stubDispatcher struct {
	mu  sync.Mutex
	got []domain.ContactFormData
	err error
}

func (d *stubDispatcher) Send(_ context.Context, data domain.ContactFormData) (contact.Acknowledgement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.got = append(d.got, data)
	if d.err != nil {
		return contact.Acknowledgement{}, d.err
	}
	return contact.Acknowledgement{Text: "OK"}, nil
}

func (d *stubDispatcher) calls() []domain.ContactFormData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.ContactFormData(nil), d.got...)
}

func newTestModel(t *testing.T, d contact.Dispatcher, width int, smooth bool) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.UISettings.SmoothScroll = smooth

	m := NewModel(eventbus.New(zap.NewNop()), cfg, content.Default(), d, WithRenderer(views.PlainRenderer))
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: width, Height: 20})
	t.Cleanup(m.Close)
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		switch k {
		case "enter":
			m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		case "tab":
			m.Update(tea.KeyMsg{Type: tea.KeyTab})
		case "shift+tab":
			m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		case "down":
			m.Update(tea.KeyMsg{Type: tea.KeyDown})
		case "esc":
			m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		default:
			m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		}
	}
}

func expectedOffset(t *testing.T, m *Model, sectionID string) int {
	t.Helper()
	line, ok := m.page.Anchor(sectionID)
	require.True(t, ok)
	return min(line, m.viewport.TotalLineCount()-m.viewport.Height)
}

func TestScrollingElevatesHeader(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, false)
	assert.False(t, m.nav.Elevated())

	press(m, "G")
	require.Greater(t, m.viewport.YOffset, 10)
	assert.True(t, m.nav.Elevated())
	assert.Equal(t, m.viewport.YOffset, m.nav.Scroll().VerticalOffset)

	press(m, "g")
	assert.False(t, m.nav.Elevated())
	assert.Equal(t, 0, m.nav.Scroll().VerticalOffset)
}

func TestScrollingStepByStepCrossesThreshold(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, false)

	for i := 0; i < 10; i++ {
		press(m, "j")
	}
	assert.Equal(t, 10, m.viewport.YOffset)
	assert.False(t, m.nav.Elevated(), "offset equal to the threshold is not elevated")

	press(m, "j")
	assert.True(t, m.nav.Elevated())
}

func TestNumberShortcutJumpsToSection(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, false)

	press(m, "3")

	assert.Equal(t, expectedOffset(t, m, "projects"), m.viewport.YOffset)
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())
}

func TestSmoothScrollSettlesOnAnchor(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	require.NotNil(t, cmd, "a frame is scheduled")
	assert.Equal(t, 0, m.viewport.YOffset, "the jump is animated, not immediate")

	for i := 0; i < 600 && m.scroller.Active(); i++ {
		m.Update(scrollFrameMsg{})
	}

	assert.False(t, m.scroller.Active())
	assert.Equal(t, expectedOffset(t, m, "projects"), m.viewport.YOffset)
}

func TestManualScrollCancelsAnimation(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, true)

	press(m, "3")
	require.True(t, m.scroller.Active())

	press(m, "j")
	assert.False(t, m.scroller.Active())
}

func TestCompactMenuOpensAndNavigationClosesIt(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 60, false)
	require.True(t, m.Compact())

	press(m, "m")
	assert.True(t, m.nav.MenuOpen())
	assert.Equal(t, inputtypes.ModeMenu, m.inputHandler.CurrentMode())
	assert.Contains(t, ansi.Strip(m.View()), "› About")

	press(m, "down", "enter")

	assert.False(t, m.nav.MenuOpen())
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())
	assert.Equal(t, expectedOffset(t, m, "skills"), m.viewport.YOffset)
	assert.NotContains(t, ansi.Strip(m.View()), "› About")
}

func TestMenuKeyIgnoredOnWideTerminal(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, false)

	press(m, "m")

	assert.False(t, m.nav.MenuOpen())
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())
}

func TestMenuClosesWhenTerminalWidens(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 60, false)
	press(m, "m")
	require.True(t, m.nav.MenuOpen())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})

	assert.False(t, m.nav.MenuOpen())
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())
}

func TestHeaderShowsInitialsWhenCompact(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 60, false)
	header := ansi.Strip(views.RenderHeader(m.styles, m.headerState()))
	assert.Contains(t, header, "JA")
	assert.NotContains(t, header, "Jordan Avery")

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	header = ansi.Strip(views.RenderHeader(m.styles, m.headerState()))
	assert.Contains(t, header, "Jordan Avery")
}

func fillForm(m *Model, name, email, message string) {
	press(m, "c", name, "tab", email, "tab", message, "tab")
}

func TestContactFormSubmitSucceeds(t *testing.T) {
	d := &stubDispatcher{}
	m := newTestModel(t, d, 100, false)

	fillForm(m, "Ada Lovelace", "ada@example.com", "Hello there")
	require.Equal(t, modes.FocusSubmit, m.focused)
	assert.Equal(t, domain.ContactFormData{Name: "Ada Lovelace", Email: "ada@example.com", Message: "Hello there"}, m.form.Data())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, m.Submitting())
	assert.Contains(t, ansi.Strip(m.renderForm()), "Sending...")

	m.Update(m.submitCmd()())

	require.Len(t, d.calls(), 1)
	assert.Equal(t, "Ada Lovelace", d.calls()[0].Name)
	assert.Equal(t, domain.StatusSucceeded, m.form.State().Status)
	assert.False(t, m.Submitting())
	assert.Empty(t, m.name.Value())
	assert.Empty(t, m.email.Value())
	assert.Empty(t, m.message.Value())
	assert.Contains(t, ansi.Strip(m.View()), "Thank you for your message!", "the notice is scrolled into view")
}

func TestContactFormSubmitFailureKeepsFields(t *testing.T) {
	d := &stubDispatcher{err: errors.New("upstream 500")}
	m := newTestModel(t, d, 100, false)

	fillForm(m, "Ada", "ada@example.com", "Hi")
	press(m, "enter")
	m.Update(m.submitCmd()())

	assert.Equal(t, domain.StatusFailed, m.form.State().Status)
	assert.Equal(t, "Ada", m.name.Value())
	out := ansi.Strip(m.View())
	assert.Contains(t, out, contact.FailureMessage, "the notice is scrolled into view")
	assert.NotContains(t, out, "upstream 500")
}

func TestContactFormRequiresEveryField(t *testing.T) {
	d := &stubDispatcher{}
	m := newTestModel(t, d, 100, false)

	press(m, "c", "Ada", "shift+tab")
	require.Equal(t, modes.FocusSubmit, m.focused)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = cmd

	assert.False(t, m.Submitting())
	assert.Equal(t, modes.FocusEmail, m.focused, "focus moves to the first empty field")
	assert.Contains(t, m.hint, "fill in every field")
	assert.Empty(t, d.calls())
}

func TestContactFormRejectsMalformedEmail(t *testing.T) {
	d := &stubDispatcher{}
	m := newTestModel(t, d, 100, false)

	fillForm(m, "Ada", "not-an-address", "Hi")
	press(m, "enter")

	assert.False(t, m.Submitting())
	assert.Equal(t, modes.FocusEmail, m.focused)
	assert.Contains(t, m.hint, "valid email")
}

func TestSubmissionEventRefreshesForm(t *testing.T) {
	d := &stubDispatcher{}
	m := newTestModel(t, d, 100, false)

	var events []eventbus.DomainEvent
	m.bus.Subscribe(eventbus.EventSubmissionChanged, func(e eventbus.DomainEvent) {
		events = append(events, e)
	})

	fillForm(m, "Ada", "ada@example.com", "Hi")
	press(m, "enter")
	m.submitCmd()()

	require.Len(t, events, 2)
	assert.Equal(t, domain.StatusSubmitting, events[0].(eventbus.SubmissionChangedEvent).Submission.Status)
	assert.Equal(t, domain.StatusSucceeded, events[1].(eventbus.SubmissionChangedEvent).Submission.Status)

	m.Update(EventMsg{Event: events[1]})
	assert.Empty(t, m.name.Value())
}

func TestLeavingFormReturnsToBrowse(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, false)

	press(m, "c")
	require.Equal(t, inputtypes.ModeForm, m.inputHandler.CurrentMode())
	press(m, "q")
	assert.Equal(t, "q", m.name.Value(), "q types inside the form")

	press(m, "esc")
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())
	assert.Equal(t, -1, m.focused)
}

func TestResumeWithoutProgramReportsStatus(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	assert.Nil(t, cmd)
	assert.Contains(t, ansi.Strip(m.View()), "Résumé pager unavailable")
}

func TestQuitUnmountsNavigation(t *testing.T) {
	m := newTestModel(t, &stubDispatcher{}, 100, false)
	require.True(t, m.nav.Mounted())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.nav.Mounted())
	assert.Equal(t, 0, m.bus.SubscriberCount(eventbus.EventScrollChanged))
}

func TestNoticeRevealedWhenSuccessEventArrivesFirst(t *testing.T) {
	d := &stubDispatcher{}
	m := newTestModel(t, d, 120, false)

	var events []eventbus.DomainEvent
	m.bus.Subscribe(eventbus.EventSubmissionChanged, func(e eventbus.DomainEvent) {
		events = append(events, e)
	})

	fillForm(m, "Ada", "ada@example.com", "Hi")
	press(m, "enter")
	done := m.submitCmd()()
	for _, e := range events {
		m.Update(EventMsg{Event: e})
	}
	m.Update(done)

	assert.Contains(t, ansi.Strip(m.View()), "Thank you for your message!")
}

func TestMenuStaysUsableWhenSectionHasNoAnchor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.SmoothScroll = false
	m := NewModel(eventbus.New(zap.NewNop()), cfg, content.Default(), &stubDispatcher{}, WithRenderer(views.PlainRenderer))
	m.Init()
	t.Cleanup(m.Close)

	// No layout yet: zero width is compact and no anchors exist
	press(m, "m")
	require.True(t, m.nav.MenuOpen())

	press(m, "enter")
	assert.True(t, m.nav.MenuOpen(), "a failed navigation leaves the menu alone")
	assert.Equal(t, inputtypes.ModeMenu, m.inputHandler.CurrentMode())

	press(m, "m")
	assert.False(t, m.nav.MenuOpen())
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())
}

func TestNavLabel(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{id: "about", want: "About"},
		{id: "open-source", want: "Open Source"},
		{id: "side_projects", want: "Side Projects"},
		{id: "école", want: "École"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := navLabel(tt.id)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
