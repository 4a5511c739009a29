package ui

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"termfolio/internal/config"
	"termfolio/internal/contact"
	"termfolio/internal/content"
	"termfolio/internal/domain"
	"termfolio/internal/eventbus"
	"termfolio/internal/navigation"
	"termfolio/internal/ui/input"
	"termfolio/internal/ui/input/modes"
	inputtypes "termfolio/internal/ui/input/types"
	"termfolio/internal/ui/views"
)

const messageHeight = 5

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	profile domain.Profile
	logger  *zap.Logger
	ctx     context.Context

	// Controllers
	nav  *navigation.Controller
	form *contact.Controller

	// Rendering
	page     *views.Page
	styles   *views.Styles
	navItems []inputtypes.NavItem

	// Handlers
	inputHandler *input.Handler
	scroller     *smoothScroller
	resume       *ResumeOps

	// Widgets
	viewport viewport.Model
	name     textinput.Model
	email    textinput.Model
	message  textarea.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	width      int
	height     int
	ready      bool
	lastOffset int
	menuCursor int
	focused    int  // form focus stop, -1 when the form is not active
	sending    bool // a dispatch command is in flight
	hint       string
	status     string
	closed     bool
}

type options struct {
	logger      *zap.Logger
	renderer    views.MarkdownRenderer
	ctx         context.Context
	contactOpts []contact.Option
}

// Option customises the model
type Option func(*options)

// WithLogger attaches a logger
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRenderer replaces the glamour markdown renderer
func WithRenderer(r views.MarkdownRenderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithContext sets the context dispatches run under
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithContactOptions passes options through to the contact form controller
func WithContactOptions(opts ...contact.Option) Option {
	return func(o *options) { o.contactOpts = append(o.contactOpts, opts...) }
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, profile domain.Profile, dispatcher contact.Dispatcher, opts ...Option) *Model {
	o := options{logger: zap.NewNop(), ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.renderer == nil {
		o.renderer = views.GlamourRenderer()
	}

	styles := views.NewStyles()
	m := &Model{
		bus:          bus,
		config:       cfg,
		profile:      profile,
		logger:       o.logger.Named("ui"),
		ctx:          o.ctx,
		styles:       styles,
		page:         views.NewPage(profile, styles, o.renderer),
		navItems:     buildNavItems(profile),
		inputHandler: input.New(),
		resume:       NewResumeOps(),
		viewport:     viewport.New(0, 0),
		help:         help.New(),
		keys:         newKeyMap(),
		focused:      -1,
	}
	m.scroller = newSmoothScroller(&m.viewport, cfg.UISettings.SmoothScroll)

	m.nav = navigation.NewController(bus, m.page, m.scroller,
		navigation.WithThreshold(cfg.UISettings.ElevationThreshold),
		navigation.WithLogger(o.logger))

	contactOpts := append([]contact.Option{
		contact.WithNoticeTimeout(cfg.UISettings.NoticeTimeout),
		contact.WithLogger(o.logger),
	}, o.contactOpts...)
	m.form = contact.NewController(dispatcher, contactOpts...)
	// State changes happen on dispatch and timer goroutines; the bus carries them to the program
	m.form.OnChange(func(s domain.Submission) {
		bus.Publish(eventbus.SubmissionChangedEvent{Submission: s})
	})

	m.name = textinput.New()
	m.name.Placeholder = "Your name"
	m.name.CharLimit = 100
	m.email = textinput.New()
	m.email.Placeholder = "you@example.com"
	m.email.CharLimit = 254
	m.message = textarea.New()
	m.message.Placeholder = "Your message"
	m.message.ShowLineNumbers = false
	m.message.SetHeight(messageHeight)
	m.message.Blur()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot

	return m
}

// buildNavItems lists the sections in page order followed by contact and the résumé
func buildNavItems(p domain.Profile) []inputtypes.NavItem {
	items := make([]inputtypes.NavItem, 0, len(p.Sections)+2)
	for _, s := range p.Sections {
		items = append(items, inputtypes.NavItem{Label: navLabel(s.ID), SectionID: s.ID})
	}
	items = append(items, inputtypes.NavItem{Label: "Contact", SectionID: content.ContactID})
	for i := range items {
		if i < 9 {
			items[i].Key = strconv.Itoa(i + 1)
		}
	}
	if p.Resume != "" {
		items = append(items, inputtypes.NavItem{Label: "Résumé", Key: "r"})
	}
	return items
}

func navLabel(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.resume.SetProgram(p)
}

// Navigation exposes the navigation controller
func (m *Model) Navigation() *navigation.Controller {
	return m.nav
}

// ContactForm exposes the contact form controller
func (m *Model) ContactForm() *contact.Controller {
	return m.form
}

// Close unmounts the scroll observer and cancels a pending notice timer.
// Safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.nav.Unmount()
	m.form.Close()
}

// Init mounts the navigation controller
func (m *Model) Init() tea.Cmd {
	m.nav.Mount()
	return nil
}

// input.Context implementation

func (m *Model) NavItems() []inputtypes.NavItem { return m.navItems }
func (m *Model) MenuCursor() int                { return m.menuCursor }
func (m *Model) FocusedField() int              { return m.focused }
func (m *Model) FieldCount() int                { return len(domain.Fields) + 1 }

// Compact reports whether the terminal is narrower than the configured breakpoint
func (m *Model) Compact() bool {
	return m.width < m.config.UISettings.CompactWidth
}

// Submitting reports whether the send button is disabled
func (m *Model) Submitting() bool {
	return m.sending || m.form.State().Status == domain.StatusSubmitting
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cmds := []tea.Cmd{m.layout()}
		// The panel only exists in the compact header
		if !m.Compact() && m.nav.MenuOpen() {
			m.nav.ToggleMenu()
			if m.inputHandler.CurrentMode() == inputtypes.ModeMenu {
				cmds = append(cmds, m.processActions(m.inputHandler.ChangeMode(inputtypes.ModeBrowse, m), tea.KeyMsg{}))
			}
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		m.status = ""
		actions, consumed := m.inputHandler.HandleKey(msg, m)
		if !consumed {
			return m, nil
		}
		cmd := m.processActions(actions, msg)
		m.reconcileMenuMode()
		return m, tea.Batch(cmd, m.scroller.Cmd())

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			m.scroller.Stop()
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncScroll()
		return m, cmd

	case scrollFrameMsg:
		m.scroller.Step()
		m.syncScroll()
		return m, m.scroller.Cmd()

	case spinner.TickMsg:
		if !m.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshContent()
		return m, cmd

	case submitDoneMsg:
		m.sending = false
		switch {
		case errors.Is(msg.err, contact.ErrSubmitInFlight):
			m.logger.Debug("submit ignored, dispatch in flight")
		case errors.Is(msg.err, contact.ErrIncomplete):
			m.hint = "Please fill in every field."
		}
		m.syncForm()
		m.refreshContent()
		m.revealNotice()
		return m, nil

	case EventMsg:
		if _, ok := msg.Event.(eventbus.SubmissionChangedEvent); ok {
			m.syncForm()
			m.refreshContent()
			m.revealNotice()
		}
		return m, nil

	case resumePagerMsg:
		if msg.err != nil {
			m.logger.Warn("résumé pager failed", zap.Error(msg.err))
			m.status = fmt.Sprintf("Could not open résumé: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) processActions(actions []inputtypes.Action, key tea.KeyMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action, key))
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action, key tea.KeyMsg) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ScrollAction:
		m.scroller.Stop()
		m.scrollBy(a.Direction)
		m.syncScroll()

	case inputtypes.JumpAction:
		m.nav.NavigateToSection(a.SectionID)
		m.syncScroll()

	case inputtypes.ToggleMenuAction:
		m.nav.ToggleMenu()

	case inputtypes.MoveMenuCursorAction:
		n := len(m.navItems)
		if n > 0 {
			m.menuCursor = ((m.menuCursor+a.Delta)%n + n) % n
		}

	case inputtypes.ResetMenuCursorAction:
		m.menuCursor = 0

	case inputtypes.FocusFieldAction:
		return m.focus(a.Index)

	case inputtypes.BlurFormAction:
		return m.focus(-1)

	case inputtypes.EditFieldAction:
		return m.editField(key)

	case inputtypes.SubmitFormAction:
		return m.submit()

	case inputtypes.OpenResumeAction:
		if m.profile.Resume == "" {
			m.status = "No résumé available"
			return nil
		}
		if m.resume.program == nil {
			m.status = "Résumé pager unavailable"
			return nil
		}
		return m.showResume()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
		return m.layout()

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

func (m *Model) scrollBy(direction string) {
	vp := &m.viewport
	switch direction {
	case "up":
		vp.SetYOffset(vp.YOffset - 1)
	case "down":
		vp.SetYOffset(vp.YOffset + 1)
	case "pageup":
		vp.SetYOffset(vp.YOffset - vp.Height)
	case "pagedown":
		vp.SetYOffset(vp.YOffset + vp.Height)
	case "halfup":
		vp.SetYOffset(vp.YOffset - vp.Height/2)
	case "halfdown":
		vp.SetYOffset(vp.YOffset + vp.Height/2)
	case "home":
		vp.GotoTop()
	case "end":
		vp.GotoBottom()
	}
}

// syncScroll publishes the viewport offset when it moved
func (m *Model) syncScroll() {
	if m.viewport.YOffset == m.lastOffset {
		return
	}
	m.lastOffset = m.viewport.YOffset
	m.bus.Publish(eventbus.ScrollChangedEvent{Offset: m.lastOffset})
}

// layout sizes the viewport between the header and the footer
func (m *Model) layout() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}
	m.keys.compact = m.Compact()
	m.keys.mode = m.inputHandler.CurrentMode()

	headerHeight := lipgloss.Height(views.RenderHeader(m.styles, m.headerState()))
	footerHeight := lipgloss.Height(m.footer())
	height := m.height - headerHeight - footerHeight
	if height < 1 {
		height = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = height

	fieldWidth := min(m.width-8, 60)
	m.name.Width = fieldWidth
	m.email.Width = fieldWidth
	m.message.SetWidth(max(min(m.width-6, 72), 10))

	m.ready = true
	m.refreshContent()
	m.syncScroll()
	return nil
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.page.Layout(m.width, m.renderForm()))
}

func (m *Model) focus(index int) tea.Cmd {
	m.focused = index
	m.name.Blur()
	m.email.Blur()
	m.message.Blur()

	var cmd tea.Cmd
	switch index {
	case modes.FocusName:
		cmd = m.name.Focus()
	case modes.FocusEmail:
		cmd = m.email.Focus()
	case modes.FocusMessage:
		cmd = m.message.Focus()
	}
	m.refreshContent()
	m.ensureFocusVisible()
	return cmd
}

// ensureFocusVisible keeps the focused form stop inside the viewport
func (m *Model) ensureFocusVisible() {
	if m.focused < 0 || !m.ready {
		return
	}
	// label + input + blank line per field, the message input is taller
	offsets := []int{0, 3, 6, 6 + messageHeight + 2}
	heights := []int{2, 2, messageHeight + 1, 1}
	if m.focused >= len(offsets) {
		return
	}
	top := m.page.Lines() + offsets[m.focused]
	bottom := top + heights[m.focused]
	switch {
	case top < m.viewport.YOffset:
		m.scroller.Stop()
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.scroller.Stop()
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
	m.syncScroll()
}

// revealNotice scrolls the success or failure notice under the button into view
// while the visitor is in the form
func (m *Model) revealNotice() {
	if !m.ready || m.inputHandler.CurrentMode() != inputtypes.ModeForm {
		return
	}
	switch m.submission().Status {
	case domain.StatusSucceeded, domain.StatusFailed:
	default:
		return
	}
	bottom := m.page.Lines() + lipgloss.Height(m.renderForm())
	if bottom > m.viewport.YOffset+m.viewport.Height {
		m.scroller.Stop()
		m.viewport.SetYOffset(bottom - m.viewport.Height)
		m.syncScroll()
	}
}

// reconcileMenuMode keeps the input mode in step with the menu panel, e.g. when
// a menu entry pointed at a section that has no anchor yet
func (m *Model) reconcileMenuMode() {
	mode := m.inputHandler.CurrentMode()
	switch {
	case m.nav.MenuOpen() && mode == inputtypes.ModeBrowse:
		m.inputHandler.ChangeMode(inputtypes.ModeMenu, m)
	case !m.nav.MenuOpen() && mode == inputtypes.ModeMenu:
		m.inputHandler.ChangeMode(inputtypes.ModeBrowse, m)
	}
}

func (m *Model) editField(key tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focused {
	case modes.FocusName:
		m.name, cmd = m.name.Update(key)
		m.form.UpdateField(domain.FieldName, m.name.Value())
	case modes.FocusEmail:
		m.email, cmd = m.email.Update(key)
		m.form.UpdateField(domain.FieldEmail, m.email.Value())
	case modes.FocusMessage:
		m.message, cmd = m.message.Update(key)
		m.form.UpdateField(domain.FieldMessage, m.message.Value())
	default:
		return nil
	}
	m.hint = ""
	m.refreshContent()
	return cmd
}

// submit validates the form and starts a dispatch off the update loop
func (m *Model) submit() tea.Cmd {
	data := m.form.Data()
	for i, f := range domain.Fields {
		if strings.TrimSpace(data.Get(f)) == "" {
			m.hint = "Please fill in every field."
			return m.focus(i)
		}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(data.Email)); err != nil {
		m.hint = "Please enter a valid email address."
		return m.focus(modes.FocusEmail)
	}

	m.hint = ""
	m.sending = true
	m.refreshContent()
	return tea.Batch(m.submitCmd(), m.spinner.Tick)
}

func (m *Model) submitCmd() tea.Cmd {
	form, ctx := m.form, m.ctx
	return func() tea.Msg {
		return submitDoneMsg{err: form.Submit(ctx)}
	}
}

// syncForm mirrors controller data into the widgets, e.g. after a successful send clears it
func (m *Model) syncForm() {
	data := m.form.Data()
	if m.name.Value() != data.Name {
		m.name.SetValue(data.Name)
	}
	if m.email.Value() != data.Email {
		m.email.SetValue(data.Email)
	}
	if m.message.Value() != data.Message {
		m.message.SetValue(data.Message)
	}
}

func (m *Model) submission() domain.Submission {
	if m.sending {
		return domain.Submission{Status: domain.StatusSubmitting}
	}
	return m.form.State()
}

func (m *Model) renderForm() string {
	return views.RenderForm(m.styles, views.FormState{
		Width: m.width,
		Fields: []views.FormField{
			{Label: "Name", View: m.name.View()},
			{Label: "Email", View: m.email.View()},
			{Label: "Message", View: m.message.View()},
		},
		Focused:    m.focused,
		Submission: m.submission(),
		Spinner:    m.spinner.View(),
		Hint:       m.hint,
	})
}

func (m *Model) headerState() views.HeaderState {
	entries := make([]views.NavEntry, len(m.navItems))
	for i, item := range m.navItems {
		entries[i] = views.NavEntry{Label: item.Label, Key: item.Key}
	}
	return views.HeaderState{
		Width:    m.width,
		Name:     m.profile.Name,
		Initials: m.profile.Initials,
		Compact:  m.Compact(),
		Elevated: m.nav.Elevated(),
		MenuOpen: m.nav.MenuOpen(),
		Items:    entries,
		Cursor:   m.menuCursor,
	}
}

func (m *Model) footer() string {
	if m.status != "" {
		return m.styles.Help.Render(m.status)
	}
	helpView := m.styles.Help.Render(m.help.View(m.keys))
	pct := m.styles.Scroll.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	gap := m.width - lipgloss.Width(helpView) - lipgloss.Width(pct)
	if gap < 1 {
		return helpView
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, helpView, strings.Repeat(" ", gap), pct)
}

// View renders the header, the page viewport and the help footer
func (m *Model) View() string {
	if !m.ready {
		return ""
	}
	m.keys.compact = m.Compact()
	m.keys.mode = m.inputHandler.CurrentMode()

	header := views.RenderHeader(m.styles, m.headerState())
	body := m.viewport.View()
	if m.Compact() && m.nav.MenuOpen() {
		body = overlay(views.RenderMenu(m.styles, m.headerState()), body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer())
}

// overlay draws top over the first lines of base, keeping base's height
func overlay(top, base string) string {
	topLines := strings.Split(top, "\n")
	baseLines := strings.Split(base, "\n")
	for i := 0; i < len(topLines) && i < len(baseLines); i++ {
		baseLines[i] = topLines[i]
	}
	return strings.Join(baseLines, "\n")
}
