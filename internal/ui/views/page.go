package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
	"termfolio/internal/domain"
)

// MarkdownRenderer turns a section body into terminal text wrapped at width
type MarkdownRenderer func(markdown string, width int) (string, error)

// GlamourRenderer renders markdown with glamour, one renderer per width
func GlamourRenderer() MarkdownRenderer {
	renderers := make(map[int]*glamour.TermRenderer)
	return func(markdown string, width int) (string, error) {
		r, ok := renderers[width]
		if !ok {
			var err error
			r, err = glamour.NewTermRenderer(
				glamour.WithStylePath("dark"),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return "", err
			}
			renderers[width] = r
		}
		return r.Render(markdown)
	}
}

// PlainRenderer wraps markdown source without styling
func PlainRenderer(markdown string, width int) (string, error) {
	return lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(markdown)), nil
}

// Page lays out the scrollable body and remembers the first line of every section
type Page struct {
	profile domain.Profile
	styles  *Styles
	render  MarkdownRenderer

	width   int
	static  []string
	anchors map[string]int
}

// NewPage creates a page for the profile
func NewPage(profile domain.Profile, styles *Styles, render MarkdownRenderer) *Page {
	if render == nil {
		render = PlainRenderer
	}
	return &Page{
		profile: profile,
		styles:  styles,
		render:  render,
		anchors: make(map[string]int),
	}
}

// Layout returns the full page for the given width with the contact form block
// appended. Static sections are only re-rendered when the width changes.
func (p *Page) Layout(width int, form string) string {
	if width < 20 {
		width = 20
	}
	if p.static == nil || width != p.width {
		p.build(width)
	}
	return strings.Join(p.static, "\n") + "\n" + form
}

// Anchor implements navigation.AnchorLookup
func (p *Page) Anchor(sectionID string) (int, bool) {
	line, ok := p.anchors[sectionID]
	return line, ok
}

// Lines is the number of static lines above the form
func (p *Page) Lines() int {
	return len(p.static)
}

func (p *Page) build(width int) {
	p.width = width
	p.static = p.static[:0]
	p.anchors = make(map[string]int)

	wrap := lipgloss.NewStyle().Width(width - 4).PaddingLeft(2)

	p.anchors[content.HomeID] = 0
	p.add("")
	p.add(wrap.Render(p.styles.HeroTitle.Render("Hi, I'm ") + p.styles.HeroAccent.Render(p.profile.Name)))
	if p.profile.Tagline != "" {
		p.add(wrap.Render(p.styles.HeroTitle.Render(p.profile.Tagline)))
	}
	if p.profile.Summary != "" {
		p.add("")
		p.add(wrap.Render(p.profile.Summary))
	}
	p.add("")
	p.add(wrap.Render(
		p.styles.NavKey.Render("p") + " View My Projects   " +
			p.styles.NavKey.Render("c") + " Contact Me"))

	for _, s := range p.profile.Sections {
		p.anchors[s.ID] = len(p.static)
		p.add(wrap.Render(p.styles.SectionTitle.Render(s.Title)))
		body, err := p.render(s.Body, width-4)
		if err != nil {
			body, _ = PlainRenderer(s.Body, width-4)
		}
		p.add(strings.TrimRight(body, "\n"))
	}

	p.anchors[content.ContactID] = len(p.static)
	p.add(wrap.Render(p.styles.SectionTitle.Render("Get In Touch")))
	p.add("")
	p.add(wrap.Render("Let's build something amazing together! Reach out directly or use the form below."))
	p.add("")
	c := p.profile.Contact
	for _, row := range [][2]string{
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"GitHub", c.GitHub},
		{"LinkedIn", c.LinkedIn},
	} {
		if row[1] == "" {
			continue
		}
		p.add(wrap.Render(fmt.Sprintf("%s %s", p.styles.Label.Render(fmt.Sprintf("%-9s", row[0])), row[1])))
	}
	p.add("")
}

// add appends a block, one entry per rendered line
func (p *Page) add(block string) {
	p.static = append(p.static, strings.Split(block, "\n")...)
}
