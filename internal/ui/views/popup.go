package views

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centered over a greyed-out copy of
// the main content
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if modalW > width || modalH > height {
		// no room to keep the background visible
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup)
	}
	x := (width - modalW) / 2
	y := (height - modalH) / 2

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	modal := strings.Split(styledPopup, "\n")
	for i, line := range modal {
		base[y+i] = spliceLine(base[y+i], line, x, modalW)
	}
	return strings.Join(base[:height], "\n")
}

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = grey.Render(line)
	}
	return strings.Join(lines, "\n")
}

// spliceLine replaces cells [x, x+w) of a background line with overlay.
// The background is re-rendered plain grey on both sides.
func spliceLine(background, overlay string, x, w int) string {
	plain := ansi.Strip(background)
	if pad := x + w - ansi.StringWidth(plain); pad > 0 {
		plain += strings.Repeat(" ", pad)
	}
	left, rest := cutCells(plain, x)
	_, right := cutCells(rest, w)

	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	left = grey.Render(left)
	right = strings.TrimRight(right, " ")
	if right != "" {
		right = grey.Render(right)
	}
	if pad := w - lipgloss.Width(overlay); pad > 0 {
		overlay += strings.Repeat(" ", pad)
	}
	return left + overlay + right
}

// cutCells splits plain text at terminal column col. A wide rune that
// straddles col is replaced by spaces on both sides.
func cutCells(s string, col int) (string, string) {
	width := 0
	for i, r := range s {
		if width >= col {
			return s[:i], s[i:]
		}
		rw := ansi.StringWidth(string(r))
		if width+rw > col {
			end := i + utf8.RuneLen(r)
			return s[:i] + strings.Repeat(" ", col-width), strings.Repeat(" ", width+rw-col) + s[end:]
		}
		width += rw
	}
	return s, ""
}
