package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"decknav/internal/domain"
)

// outlinePagerMsg contains the result of an outline pager command
type outlinePagerMsg struct {
	err error
}

// OutlineContent renders the numbered slide list with the active slide
// marked. It is shared by the pager and the outline subcommand.
func OutlineContent(deck *domain.Deck, active int) string {
	if deck == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(deck.Title))
	b.WriteString("\n")
	if deck.Path != "" {
		b.WriteString(dimStyle.Render(deck.Path))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	width := len(fmt.Sprint(deck.Len()))
	for _, slide := range deck.Slides {
		marker := "  "
		style := lipgloss.NewStyle()
		if slide.Number == active {
			marker = "▶ "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%*d. %s", marker, width, slide.Number, slide.Title)
		if n := len(slide.Images); n > 0 {
			line += dimStyle.Render(fmt.Sprintf("  (%d image%s)", n, plural(n)))
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// PagerOps runs content in the ov pager while the program is suspended
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager shows content using ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the outline back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
