package ui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// ResumeOps shows the résumé in the ov pager
type ResumeOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewResumeOps creates a new résumé pager
func NewResumeOps() *ResumeOps {
	return &ResumeOps{}
}

// SetProgram sets the program reference
func (r *ResumeOps) SetProgram(p *tea.Program) {
	r.program = p
}

// Show hands the terminal to ov until the pager exits
func (r *ResumeOps) Show(title, resume string) error {
	if r.program == nil {
		return errNoProgram
	}

	if err := r.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// Give ov a moment to leave the alternate screen before taking it back
		time.Sleep(100 * time.Millisecond)
		_ = r.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(title + "\n\n" + resume))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showResume runs the pager off the update loop
func (m *Model) showResume() tea.Cmd {
	title := m.profile.Name + " - Résumé"
	body := m.profile.Resume
	return func() tea.Msg {
		return resumePagerMsg{err: m.resume.Show(title, body)}
	}
}
