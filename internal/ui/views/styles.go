package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header         lipgloss.Style
	HeaderElevated lipgloss.Style
	Brand          lipgloss.Style
	NavItem        lipgloss.Style
	NavKey         lipgloss.Style
	MenuButton     lipgloss.Style
	MenuPanel      lipgloss.Style
	MenuItem       lipgloss.Style
	MenuCursor     lipgloss.Style
	HeroTitle      lipgloss.Style
	HeroAccent     lipgloss.Style
	SectionTitle   lipgloss.Style
	Dim            lipgloss.Style
	Label          lipgloss.Style
	LabelFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	NoticeSuccess  lipgloss.Style
	NoticeError    lipgloss.Style
	Help           lipgloss.Style
	Scroll         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.HiddenBorder(), false, false, true, false),
		HeaderElevated: lipgloss.NewStyle().
			Padding(0, 2).
			Background(lipgloss.Color("236")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("240")),
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		NavItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NavKey:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		MenuButton: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		MenuPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 2),
		MenuItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HeroTitle:    lipgloss.NewStyle().Bold(true),
		HeroAccent:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		Dim:          lipgloss.NewStyle().Faint(true),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Button: lipgloss.NewStyle().
			Padding(0, 3).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")),
		ButtonFocused: lipgloss.NewStyle().
			Padding(0, 3).
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")),
		ButtonDisabled: lipgloss.NewStyle().
			Padding(0, 3).
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("238")),
		NoticeSuccess: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("194")).
			Background(lipgloss.Color("22")),
		NoticeError: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("224")).
			Background(lipgloss.Color("88")),
		Help:   lipgloss.NewStyle().Faint(true).Padding(0, 2),
		Scroll: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
