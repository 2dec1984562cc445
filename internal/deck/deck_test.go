package deck

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decknav/internal/domain"
)

const sampleDeck = `# Artificial Intelligence

An introduction.

---

## Concepts

Setext headings are not separators:

Machine Learning
----------------

![brain](images/brain.jpg)

---

` + "```" + `
---
inside a fence
` + "```" + `

***

Closing words without a heading.
`

func TestParseSplitsSlides(t *testing.T) {
	d, err := Parse([]byte(sampleDeck), "/talk")
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())

	assert.Equal(t, "Artificial Intelligence", d.Title)
	assert.Equal(t, "Artificial Intelligence", d.Slides[0].Title)
	assert.Equal(t, "Concepts", d.Slides[1].Title)
	assert.Equal(t, "Slide 3", d.Slides[2].Title)
	assert.Contains(t, d.Slides[2].Body, "inside a fence")
	assert.Equal(t, "Slide 4", d.Slides[3].Title)

	for i, s := range d.Slides {
		assert.Equal(t, i+1, s.Number)
	}
}

func TestParseCollectsImages(t *testing.T) {
	d, err := Parse([]byte(sampleDeck), "/talk")
	require.NoError(t, err)

	images := d.Slides[1].Images
	require.Len(t, images, 1)
	assert.Equal(t, "brain", images[0].Alt)
	assert.Equal(t, "images/brain.jpg", images[0].Source)
	assert.Equal(t, filepath.Join("/talk", "images", "brain.jpg"), images[0].Path)
	assert.Equal(t, domain.ImagePending, images[0].Status)
}

func TestParseSkipsBlankSlides(t *testing.T) {
	d, err := Parse([]byte("---\n\n# One\n\n---\n\n   \n\n---\n\n# Two\n"), "")
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "Two", d.Slide(2).Title)
}

func TestParseEmptyDeck(t *testing.T) {
	_, err := Parse([]byte("\n\n---\n\n"), "")
	require.ErrorIs(t, err, ErrEmptyDeck)
}

func TestIsSeparator(t *testing.T) {
	for _, line := range []string{"---", "***", "___", "- - -", "   -----", "---   "} {
		assert.True(t, isSeparator(line), line)
	}
	for _, line := range []string{"--", "-*-", "    ---", "text", "--- x"} {
		assert.False(t, isSeparator(line), line)
	}
}

func TestParseLongFenceHoldsShorterFence(t *testing.T) {
	src := "# A\n\n````md\n```\n\n---\n\n```\n````\n\n---\n\n# B\n"

	d, err := Parse([]byte(src), "")
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "A", d.Slides[0].Title)
	assert.Contains(t, d.Slides[0].Body, "\n---\n")
	assert.Equal(t, "B", d.Slides[1].Title)
}

func TestParseFenceClosesOnlyOnMatchingMarker(t *testing.T) {
	src := "# A\n\n~~~\n```\n\n---\n\n~~~ not a close\n\n---\n\n~~~~\n\n---\n\n# B\n"

	d, err := Parse([]byte(src), "")
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "A", d.Slides[0].Title)
	assert.Equal(t, "B", d.Slides[1].Title)
}

func TestFenceLines(t *testing.T) {
	f, ok := openingFence("````go")
	require.True(t, ok)
	assert.Equal(t, fence{marker: '`', length: 4}, f)

	_, ok = openingFence("``` a`b")
	assert.False(t, ok, "backtick info string may not hold backticks")
	_, ok = openingFence("    ```")
	assert.False(t, ok, "four spaces of indent is a code block, not a fence")
	_, ok = openingFence("``")
	assert.False(t, ok)

	assert.False(t, f.closedBy("```"))
	assert.False(t, f.closedBy("~~~~"))
	assert.False(t, f.closedBy("```` x"))
	assert.True(t, f.closedBy("````"))
	assert.True(t, f.closedBy("  `````  "))
}

func TestSlideOutOfRange(t *testing.T) {
	d, err := Parse([]byte("# Only\n"), "")
	require.NoError(t, err)
	assert.Nil(t, d.Slide(0))
	assert.Nil(t, d.Slide(2))
	assert.NotNil(t, d.Slide(1))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.md")
	require.NoError(t, os.WriteFile(path, []byte("# A\n\n---\n\n# B\n"), 0644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, path, d.Path)

	_, err = Load(filepath.Join(dir, "missing.md"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPreload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "ok.png"), []byte("png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "empty.png"), nil, 0644))

	src := "# One\n\n![ok](images/ok.png)\n\n---\n\n# Two\n\n![gone](images/gone.png)\n![empty](images/empty.png)\n![web](https://example.com/a.png)\n"
	d, err := Parse([]byte(src), dir)
	require.NoError(t, err)

	summary, err := Preload(context.Background(), d, 2)
	require.NoError(t, err)
	assert.Equal(t, PreloadSummary{Loaded: 1, Missing: 2, Remote: 1}, summary)

	assert.Equal(t, domain.ImageLoaded, d.Slides[0].Images[0].Status)
	assert.Equal(t, domain.ImageMissing, d.Slides[1].Images[0].Status)
	assert.Equal(t, domain.ImageMissing, d.Slides[1].Images[1].Status)
	assert.Equal(t, domain.ImageRemote, d.Slides[1].Images[2].Status)
}

func TestPreloadCancelled(t *testing.T) {
	d, err := Parse([]byte("# One\n\n![a](a.png)\n"), t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Preload(ctx, d, 1)
	require.ErrorIs(t, err, context.Canceled)
}
