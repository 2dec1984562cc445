//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyboardNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.startDeck("Opening", "Agenda", "Details", "Closing"), "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("1 / 4"), "Should show the first slide counter")

	tf.Next()
	require.True(t, tf.SeePlain("2 / 4"), "Right arrow should advance")
	require.True(t, tf.SeePlain("Agenda"), "Should show the second slide")

	tf.SendKeys(KeyEnd)
	require.True(t, tf.SeePlain("4 / 4"), "End should jump to the last slide")

	mark := tf.Mark()
	tf.SendKeys(KeyHome)
	require.True(t, tf.SeePlainSince(mark, "1 / 4"), "Home should jump to the first slide")

	mark = tf.Mark()
	tf.SendKeys(KeySpace)
	require.True(t, tf.SeePlainSince(mark, "2 / 4"), "Space should advance")
}

func TestGotoSlide(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.startDeck("One", "Two", "Three", "Four", "Five"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.SendKeys(KeyGoto)
	require.True(t, tf.SeePlain("go to slide:"), "Should show the goto prompt")

	tf.SendKeys("4")
	tf.Enter()
	require.True(t, tf.SeePlain("4 / 5"), "Should jump to slide 4")
}

func TestMouseNavigation(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.startDeck("One", "Two", "Three"), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("1 / 3"), "Should show the first slide counter")

	// footer sits on the second to last row, Next button on the right edge
	footer := termRows - 2
	tf.Click(termCols-3, footer)
	require.True(t, tf.SeePlain("2 / 3"), "Clicking Next should advance")

	// drag to the left is a swipe to the next slide
	tf.Drag(80, 10, 40, 11)
	require.True(t, tf.SeePlain("3 / 3"), "Swiping left should advance")

	mark := tf.Mark()
	tf.Click(2, footer)
	require.True(t, tf.SeePlainSince(mark, "2 / 3"), "Clicking Prev should go back")
}
