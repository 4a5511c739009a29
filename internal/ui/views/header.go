package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NavEntry is one item of the header navigation
type NavEntry struct {
	Label string
	Key   string
}

// HeaderState is everything the header needs to draw itself
type HeaderState struct {
	Width    int
	Name     string
	Initials string
	Compact  bool
	Elevated bool
	MenuOpen bool
	Items    []NavEntry
	Cursor   int
}

// RenderHeader draws the brand and navigation bar. The elevated variant adds a
// background and a rule under the header once the page has scrolled.
func RenderHeader(s *Styles, h HeaderState) string {
	style := s.Header
	if h.Elevated {
		style = s.HeaderElevated
	}
	inner := h.Width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	brand := h.Name
	if h.Compact {
		brand = h.Initials
	}
	left := s.Brand.Render(brand)

	var right string
	if h.Compact {
		icon := "≡ menu"
		if h.MenuOpen {
			icon = "✕ close"
		}
		right = s.MenuButton.Render(icon) + s.Dim.Render(" (m)")
	} else {
		parts := make([]string, 0, len(h.Items))
		for _, item := range h.Items {
			parts = append(parts, s.NavKey.Render(item.Key)+" "+s.NavItem.Render(item.Label))
		}
		right = strings.Join(parts, "   ")
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return style.Width(h.Width).Render(bar)
}

// RenderMenu draws the compact navigation panel
func RenderMenu(s *Styles, h HeaderState) string {
	lines := make([]string, 0, len(h.Items))
	for i, item := range h.Items {
		if i == h.Cursor {
			lines = append(lines, s.MenuCursor.Render("› "+item.Label))
		} else {
			lines = append(lines, s.MenuItem.Render("  "+item.Label))
		}
	}
	width := h.Width - s.MenuPanel.GetHorizontalBorderSize()
	if width < 1 {
		width = 1
	}
	return s.MenuPanel.Width(width).Render(strings.Join(lines, "\n"))
}
