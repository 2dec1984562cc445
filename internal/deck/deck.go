// Package deck loads slide decks from Markdown files.
//
// A deck is split into slides on thematic break lines ("---", "***" or
// "___") that follow a blank line and sit outside fenced code blocks.
// Each slide is then parsed with goldmark to find its title and images.
package deck

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"decknav/internal/domain"
)

// ErrEmptyDeck is returned when a deck contains no non-blank slides
var ErrEmptyDeck = errors.New("deck has no slides")

// markdown is shared by all parses; goldmark parsers are safe for reuse
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Load reads and parses the deck at path
func Load(path string) (*domain.Deck, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving deck path: %w", err)
	}

	src, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading deck: %w", err)
	}

	d, err := Parse(src, filepath.Dir(abs))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	d.Path = abs
	return d, nil
}

// Parse splits src into slides. Relative image paths are resolved against baseDir.
func Parse(src []byte, baseDir string) (*domain.Deck, error) {
	var slides []domain.Slide
	for _, body := range split(src) {
		if strings.TrimSpace(body) == "" {
			continue
		}
		slides = append(slides, parseSlide(len(slides)+1, body, baseDir))
	}
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	return &domain.Deck{
		Title:  slides[0].Title,
		Slides: slides,
	}, nil
}

// ParseBody returns the goldmark document for a slide body together with
// the source bytes its segments point into
func ParseBody(body string) (ast.Node, []byte) {
	src := []byte(body)
	return markdown.Parser().Parse(text.NewReader(src)), src
}

// split cuts the source on slide separators
func split(src []byte) []string {
	var (
		parts     []string
		current   strings.Builder
		open      fence
		prevBlank = true
	)

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if open.marker != 0 {
			if open.closedBy(line) {
				open = fence{}
			}
		} else if f, ok := openingFence(line); ok {
			open = f
		} else if prevBlank && isSeparator(line) {
			parts = append(parts, current.String())
			current.Reset()
			prevBlank = true
			continue
		}

		current.WriteString(line)
		current.WriteByte('\n')
		prevBlank = trimmed == ""
	}
	parts = append(parts, current.String())
	return parts
}

// fence is an open fenced code block: its marker character and run length
type fence struct {
	marker byte
	length int
}

// openingFence reports whether line opens a fenced code block. Backtick
// fences may not carry backticks in their info string.
func openingFence(line string) (fence, bool) {
	marker, length, rest, ok := fenceRun(line)
	if !ok {
		return fence{}, false
	}
	if marker == '`' && strings.ContainsRune(rest, '`') {
		return fence{}, false
	}
	return fence{marker: marker, length: length}, true
}

// closedBy reports whether line closes f: the same marker, at least as many
// of them, and nothing after but spaces
func (f fence) closedBy(line string) bool {
	marker, length, rest, ok := fenceRun(line)
	return ok && marker == f.marker && length >= f.length && strings.TrimSpace(rest) == ""
}

// fenceRun splits a line indented at most three spaces into a run of at
// least three backticks or tildes and the text after it
func fenceRun(line string) (marker byte, length int, rest string, ok bool) {
	body := strings.TrimLeft(line, " ")
	if len(line)-len(body) > 3 || body == "" {
		return 0, 0, "", false
	}
	marker = body[0]
	if marker != '`' && marker != '~' {
		return 0, 0, "", false
	}
	for length < len(body) && body[length] == marker {
		length++
	}
	if length < 3 {
		return 0, 0, "", false
	}
	return marker, length, body[length:], true
}

// isSeparator reports whether line is a thematic break made of one repeated
// marker character, indented at most three spaces
func isSeparator(line string) bool {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent > 3 {
		return false
	}
	s := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
	if len(s) < 3 {
		return false
	}
	marker := s[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	return strings.Count(s, string(marker)) == len(s)
}

func parseSlide(number int, body, baseDir string) domain.Slide {
	doc, src := ParseBody(body)

	slide := domain.Slide{
		Number: number,
		Body:   body,
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if slide.Title == "" {
				slide.Title = strings.TrimSpace(PlainText(node, src))
			}
		case *ast.Image:
			slide.Images = append(slide.Images, newImageRef(
				strings.TrimSpace(PlainText(node, src)),
				string(node.Destination),
				baseDir,
			))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if slide.Title == "" {
		slide.Title = fmt.Sprintf("Slide %d", number)
	}
	return slide
}

// PlainText concatenates the text content of n's inline descendants
func PlainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
