package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const scrollFPS = 60

// smoothScroller moves the viewport towards a target line on a critically
// damped spring. It implements navigation.Scroller.
type smoothScroller struct {
	vp      *viewport.Model
	enabled bool
	spring  harmonica.Spring

	pos, vel  float64
	target    int
	active    bool
	scheduled bool
}

func newSmoothScroller(vp *viewport.Model, enabled bool) *smoothScroller {
	return &smoothScroller{
		vp:      vp,
		enabled: enabled,
		spring:  harmonica.NewSpring(harmonica.FPS(scrollFPS), 8.0, 1.0),
	}
}

// ScrollTo starts an animation towards line, or jumps there when animation is off
func (s *smoothScroller) ScrollTo(line int) {
	if !s.enabled {
		s.active = false
		s.vp.SetYOffset(line)
		return
	}
	if !s.active {
		s.pos = float64(s.vp.YOffset)
		s.vel = 0
	}
	s.target = line
	s.active = true
}

// Stop abandons a running animation, e.g. when the user scrolls by hand
func (s *smoothScroller) Stop() {
	s.active = false
}

// Active reports whether an animation is running
func (s *smoothScroller) Active() bool {
	return s.active
}

// Cmd schedules the next frame. Only one frame is in flight at a time.
func (s *smoothScroller) Cmd() tea.Cmd {
	if !s.active || s.scheduled {
		return nil
	}
	s.scheduled = true
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

// Step advances the animation by one frame
func (s *smoothScroller) Step() {
	s.scheduled = false
	if !s.active {
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, float64(s.target))
	if math.Abs(s.pos-float64(s.target)) < 0.5 && math.Abs(s.vel) < 0.5 {
		s.vp.SetYOffset(s.target)
		s.active = false
		return
	}
	s.vp.SetYOffset(int(math.Round(s.pos)))
}
