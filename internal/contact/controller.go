// Package contact implements the contact form lifecycle: field editing, a single
// in-flight dispatch, and the success notice that clears itself after a delay.
package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"termfolio/internal/domain"
)

// DefaultNoticeTimeout is how long the success notice stays up
const DefaultNoticeTimeout = 5 * time.Second

// FailureMessage is the only failure text the visitor ever sees
const FailureMessage = "Something went wrong. Please try again later."

var (
	// ErrSubmitInFlight is returned when a dispatch is already running
	ErrSubmitInFlight = errors.New("contact: submission already in flight")
	// ErrIncomplete is returned when a field is blank
	ErrIncomplete = errors.New("contact: all fields are required")
)

// Acknowledgement is the provider's acceptance of a message. It does not mean delivery.
type Acknowledgement struct {
	Text string
}

// Dispatcher hands a composed message to the email provider
type Dispatcher interface {
	Send(ctx context.Context, data domain.ContactFormData) (Acknowledgement, error)
}

// Controller is the contact form state machine. It is safe for concurrent use;
// Submit blocks for the duration of the dispatch.
type Controller struct {
	dispatcher Dispatcher
	clock      Clock
	timeout    time.Duration
	logger     *zap.Logger

	mu         sync.Mutex
	data       domain.ContactFormData
	state      domain.Submission
	submission uuid.UUID
	revert     Timer
	observers  []func(domain.Submission)
}

// Option customises a Controller
type Option func(*Controller)

// WithNoticeTimeout overrides how long the success notice is shown
func WithNoticeTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithClock swaps the timer source
func WithClock(clk Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

// WithLogger attaches a logger. Dispatch failures are only ever reported here.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// NewController creates a controller in the Idle state with empty fields
func NewController(d Dispatcher, opts ...Option) *Controller {
	c := &Controller{
		dispatcher: d,
		clock:      realClock{},
		timeout:    DefaultNoticeTimeout,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("contact")
	return c
}

// OnChange registers an observer called after every state transition.
// Observers run without the controller lock held.
func (c *Controller) OnChange(fn func(domain.Submission)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// State returns the current submission state
func (c *Controller) State() domain.Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Data returns a copy of the form fields
func (c *Controller) Data() domain.ContactFormData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data
}

// UpdateField sets one form field. Unknown fields are a programming error.
func (c *Controller) UpdateField(f domain.Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch f {
	case domain.FieldName:
		c.data.Name = value
	case domain.FieldEmail:
		c.data.Email = value
	case domain.FieldMessage:
		c.data.Message = value
	default:
		panic(fmt.Sprintf("contact: unknown field %q", f))
	}
}

// Submit dispatches the current fields. A second call while one is in flight
// returns ErrSubmitInFlight without dispatching or changing state.
func (c *Controller) Submit(ctx context.Context) (err error) {
	c.mu.Lock()
	if c.state.Status == domain.StatusSubmitting {
		c.mu.Unlock()
		c.logger.Debug("duplicate submit ignored")
		return ErrSubmitInFlight
	}
	if !c.data.Complete() {
		c.mu.Unlock()
		return ErrIncomplete
	}
	id := uuid.New()
	c.submission = id
	c.stopRevertLocked()
	data := c.data
	c.state = domain.Submission{Status: domain.StatusSubmitting}
	notify := c.snapshotLocked()
	c.mu.Unlock()
	notify()

	c.logger.Info("dispatching contact message", zap.String("submission", id.String()))

	ok := false
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("contact: dispatcher panic: %v", r)
		}
		c.finish(id, ok, err)
	}()

	ack, err := c.dispatcher.Send(ctx, data)
	if err != nil {
		return fmt.Errorf("contact: dispatch: %w", err)
	}
	ok = true
	c.logger.Info("contact message accepted",
		zap.String("submission", id.String()),
		zap.String("ack", ack.Text))
	return nil
}

// finish leaves Submitting on every path out of Submit
func (c *Controller) finish(id uuid.UUID, ok bool, cause error) {
	c.mu.Lock()
	if ok {
		c.data = domain.ContactFormData{}
		c.state = domain.Submission{Status: domain.StatusSucceeded}
		c.revert = c.clock.AfterFunc(c.timeout, func() { c.expire(id) })
	} else {
		c.logger.Error("contact dispatch failed",
			zap.String("submission", id.String()),
			zap.Error(cause))
		c.state = domain.Submission{Status: domain.StatusFailed, Reason: FailureMessage}
	}
	notify := c.snapshotLocked()
	c.mu.Unlock()
	notify()
}

// expire returns a still-current success notice to Idle
func (c *Controller) expire(id uuid.UUID) {
	c.mu.Lock()
	if c.submission != id || c.state.Status != domain.StatusSucceeded {
		c.mu.Unlock()
		return
	}
	c.revert = nil
	c.state = domain.Submission{Status: domain.StatusIdle}
	notify := c.snapshotLocked()
	c.mu.Unlock()
	notify()
}

// Close stops a pending revert timer
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopRevertLocked()
}

func (c *Controller) stopRevertLocked() {
	if c.revert != nil {
		c.revert.Stop()
		c.revert = nil
	}
}

func (c *Controller) snapshotLocked() func() {
	state := c.state
	observers := make([]func(domain.Submission), len(c.observers))
	copy(observers, c.observers)
	return func() {
		for _, fn := range observers {
			fn(state)
		}
	}
}
