// Package content loads the portfolio text shown on the page.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"termfolio/internal/domain"
)

// Reserved section ids owned by the page itself
const (
	HomeID    = "home"
	ContactID = "contact"
)

//go:embed default.toml
var defaultContent []byte

type file struct {
	Name     string        `toml:"name"`
	Initials string        `toml:"initials"`
	Tagline  string        `toml:"tagline"`
	Summary  string        `toml:"summary"`
	Resume   string        `toml:"resume"`
	Contact  contactBlock  `toml:"contact"`
	Sections []sectionItem `toml:"sections"`
}

type contactBlock struct {
	Email    string `toml:"email"`
	Phone    string `toml:"phone"`
	GitHub   string `toml:"github"`
	LinkedIn string `toml:"linkedin"`
}

type sectionItem struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Load reads a content file. An empty path loads the built-in sample.
func Load(path string) (domain.Profile, error) {
	if path == "" {
		return Parse(defaultContent)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in sample profile
func Default() domain.Profile {
	p, err := Parse(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("content: built-in sample is invalid: %v", err))
	}
	return p
}

// Parse decodes and validates TOML content
func Parse(data []byte) (domain.Profile, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return domain.Profile{}, fmt.Errorf("parse content: %w", err)
	}

	if strings.TrimSpace(f.Name) == "" {
		return domain.Profile{}, fmt.Errorf("content: name is required")
	}

	p := domain.Profile{
		Name:     f.Name,
		Initials: f.Initials,
		Tagline:  f.Tagline,
		Summary:  f.Summary,
		Resume:   f.Resume,
		Contact: domain.Contact{
			Email:    f.Contact.Email,
			Phone:    f.Contact.Phone,
			GitHub:   f.Contact.GitHub,
			LinkedIn: f.Contact.LinkedIn,
		},
	}
	if p.Initials == "" {
		p.Initials = initials(p.Name)
	}

	seen := map[string]bool{HomeID: true, ContactID: true}
	for i, s := range f.Sections {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return domain.Profile{}, fmt.Errorf("content: section %d has no id", i+1)
		}
		if seen[id] {
			return domain.Profile{}, fmt.Errorf("content: section id %q is duplicated or reserved", id)
		}
		seen[id] = true
		p.Sections = append(p.Sections, domain.Section{ID: id, Title: s.Title, Body: s.Body})
	}
	return p, nil
}

func initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[:1])))
	}
	return b.String()
}
