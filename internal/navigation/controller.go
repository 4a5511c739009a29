// Package navigation owns the page header: scroll-derived elevation, the
// compact menu panel, and in-page jumps to section anchors.
package navigation

import (
	"go.uber.org/zap"

	"termfolio/internal/domain"
	"termfolio/internal/eventbus"
)

// DefaultElevationThreshold is the offset (in lines) past which the header is elevated
const DefaultElevationThreshold = 10

// AnchorLookup resolves a section id to the first line of that section
type AnchorLookup interface {
	Anchor(sectionID string) (line int, ok bool)
}

// Scroller performs the smooth scroll towards a line
type Scroller interface {
	ScrollTo(line int)
}

// Controller is the navigation state machine. It is driven from the UI
// goroutine and is not safe for concurrent use.
type Controller struct {
	bus       eventbus.EventBus
	anchors   AnchorLookup
	scroller  Scroller
	threshold int
	logger    *zap.Logger

	scroll      domain.ScrollState
	menuOpen    bool
	unsubscribe func()
}

// Option customises a Controller
type Option func(*Controller)

// WithThreshold overrides the elevation threshold
func WithThreshold(lines int) Option {
	return func(c *Controller) { c.threshold = lines }
}

// WithLogger attaches a logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller. The bus is the viewport scroll source.
func NewController(bus eventbus.EventBus, anchors AnchorLookup, scroller Scroller, opts ...Option) *Controller {
	c := &Controller{
		bus:       bus,
		anchors:   anchors,
		scroller:  scroller,
		threshold: DefaultElevationThreshold,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("navigation")
	return c
}

// Mount attaches the scroll observer. Mounting twice keeps a single listener.
func (c *Controller) Mount() {
	if c.unsubscribe != nil {
		return
	}
	c.unsubscribe = c.bus.Subscribe(eventbus.EventScrollChanged, c.onScroll)
	c.logger.Debug("mounted")
}

// Unmount detaches the scroll observer. No-op when not mounted.
func (c *Controller) Unmount() {
	if c.unsubscribe == nil {
		return
	}
	c.unsubscribe()
	c.unsubscribe = nil
	c.logger.Debug("unmounted")
}

// Mounted reports whether the scroll observer is attached
func (c *Controller) Mounted() bool {
	return c.unsubscribe != nil
}

func (c *Controller) onScroll(e eventbus.DomainEvent) {
	ev, ok := e.(eventbus.ScrollChangedEvent)
	if !ok {
		return
	}
	c.scroll = domain.NewScrollState(ev.Offset, c.threshold)
}

// Scroll returns the last observed scroll state
func (c *Controller) Scroll() domain.ScrollState {
	return c.scroll
}

// Elevated is the header projection of the scroll state
func (c *Controller) Elevated() bool {
	return c.scroll.IsElevated
}

// MenuOpen reports whether the compact navigation panel is shown
func (c *Controller) MenuOpen() bool {
	return c.menuOpen
}

// ToggleMenu flips the compact navigation panel
func (c *Controller) ToggleMenu() {
	c.setMenu(!c.menuOpen)
}

// NavigateToSection scrolls to the section and closes the menu if it is open.
// Unknown ids are ignored and leave every piece of state untouched.
func (c *Controller) NavigateToSection(sectionID string) bool {
	line, ok := c.anchors.Anchor(sectionID)
	if !ok {
		c.logger.Debug("no anchor for section", zap.String("section", sectionID))
		return false
	}

	c.scroller.ScrollTo(line)
	if c.menuOpen {
		c.setMenu(false)
	}
	c.bus.Publish(eventbus.SectionNavigatedEvent{SectionID: sectionID, Line: line})
	return true
}

func (c *Controller) setMenu(open bool) {
	c.menuOpen = open
	c.bus.Publish(eventbus.MenuToggledEvent{Open: open})
}
