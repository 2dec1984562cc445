package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Counter        lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Help           lipgloss.Style
	HelpBox        lipgloss.Style
	Slide          lipgloss.Style
	Heading1       lipgloss.Style
	Heading2       lipgloss.Style
	Code           lipgloss.Style
	CodeSpan       lipgloss.Style
	Quote          lipgloss.Style
	Link           lipgloss.Style
	Image          lipgloss.Style
	ImageMissing   lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Dot            lipgloss.Style
	DotActive      lipgloss.Style
	Prompt         lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		Slide:    lipgloss.NewStyle().Padding(1, 4),
		Heading1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Underline(true),
		Heading2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Code: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		CodeSpan:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Quote:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Link:           lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		Image:          lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		ImageMissing:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
		Button:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		ButtonDisabled: lipgloss.NewStyle().Faint(true),
		Dot:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Prompt:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
