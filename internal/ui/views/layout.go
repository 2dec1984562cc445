package views

import (
	"decknav/internal/ui/input/types"
)

// Button labels on the footer row
const (
	PrevLabel  = "‹ Prev"
	NextLabel  = "Next ›"
	labelWidth = 6
	dotStride  = 2 // dot glyph plus a space
)

// Region is a clickable span on one row, [X0, X1)
type Region struct {
	X0, X1, Y int
	Target    types.Target
}

// Layout records where the clickable elements of a frame are
type Layout struct {
	FooterY int
	DotsX   int // x of the first dot; -1 when dots are hidden
	NextX   int
	Regions []Region
}

// ComputeLayout places the footer controls for a frame of the given size.
// Dots are dropped when they do not fit between the buttons.
func ComputeLayout(width, height, total int, showDots bool) Layout {
	if width < 1 {
		width = 80
	}
	footerY := height - 2
	if footerY < 0 {
		footerY = 0
	}

	l := Layout{
		FooterY: footerY,
		DotsX:   -1,
		NextX:   width - labelWidth,
	}
	if l.NextX < labelWidth+1 {
		l.NextX = labelWidth + 1
	}

	l.Regions = append(l.Regions,
		Region{X0: 0, X1: labelWidth, Y: footerY, Target: types.Target{Kind: types.TargetPrevButton}},
		Region{X0: l.NextX, X1: l.NextX + labelWidth, Y: footerY, Target: types.Target{Kind: types.TargetNextButton}},
	)

	dotsWidth := total*dotStride - 1
	available := l.NextX - labelWidth - 2
	if showDots && total > 0 && dotsWidth <= available {
		l.DotsX = labelWidth + 1 + (available-dotsWidth)/2
		for i := 0; i < total; i++ {
			x := l.DotsX + i*dotStride
			l.Regions = append(l.Regions, Region{
				X0: x, X1: x + 1, Y: footerY,
				Target: types.Target{Kind: types.TargetDot, Dot: i},
			})
		}
	}

	return l
}

// HitTest implements types.HitTester
func (l Layout) HitTest(x, y int) types.Target {
	for _, r := range l.Regions {
		if y == r.Y && x >= r.X0 && x < r.X1 {
			return r.Target
		}
	}
	return types.Target{}
}
