package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"decknav/internal/deck"
	"decknav/internal/domain"
)

// SlideRenderer turns a slide's markdown into styled terminal text
type SlideRenderer struct {
	styles *Styles
}

// NewSlideRenderer creates a slide renderer
func NewSlideRenderer(styles *Styles) *SlideRenderer {
	return &SlideRenderer{styles: styles}
}

// Render renders slide wrapped to width cells
func (r *SlideRenderer) Render(slide *domain.Slide, width int) string {
	if slide == nil {
		return ""
	}
	if width < 10 {
		width = 10
	}
	doc, src := deck.ParseBody(slide.Body)
	ctx := &renderContext{slide: slide, src: src}
	return strings.TrimRight(r.blocks(doc, ctx, width), "\n")
}

type renderContext struct {
	slide *domain.Slide
	src   []byte
}

// blocks renders the block children of n separated by blank lines
func (r *SlideRenderer) blocks(n ast.Node, ctx *renderContext, width int) string {
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := r.block(c, ctx, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (r *SlideRenderer) block(n ast.Node, ctx *renderContext, width int) string {
	switch node := n.(type) {
	case *ast.Heading:
		text := r.inline(node, ctx)
		if node.Level == 1 {
			return r.styles.Heading1.Render(text)
		}
		return r.styles.Heading2.Render(text)

	case *ast.Paragraph, *ast.TextBlock:
		return lipgloss.NewStyle().Width(width).Render(r.inline(node, ctx))

	case *ast.List:
		return r.list(node, ctx, width)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var b strings.Builder
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(ctx.src))
		}
		return r.styles.Code.Render(strings.TrimRight(b.String(), "\n"))

	case *ast.Blockquote:
		inner := r.blocks(node, ctx, width-2)
		lines := strings.Split(inner, "\n")
		for i, line := range lines {
			lines[i] = r.styles.Quote.Render("│ ") + line
		}
		return strings.Join(lines, "\n")

	case *ast.ThematicBreak:
		return r.styles.Dim.Render(strings.Repeat("─", width))

	case *ast.HTMLBlock:
		return ""

	case *east.Table:
		return r.table(node, ctx)
	}

	return lipgloss.NewStyle().Width(width).Render(deck.PlainText(n, ctx.src))
}

func (r *SlideRenderer) list(l *ast.List, ctx *renderContext, width int) string {
	var items []string
	number := l.Start
	for item := l.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if l.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		indent := strings.Repeat(" ", lipgloss.Width(marker))
		body := r.blocks(item, ctx, width-len(indent))
		if !l.IsTight {
			body = strings.TrimRight(body, "\n")
		}
		lines := strings.Split(body, "\n")
		for i := range lines {
			if i == 0 {
				lines[i] = marker + lines[i]
			} else if lines[i] != "" {
				lines[i] = indent + lines[i]
			}
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	sep := "\n"
	if !l.IsTight {
		sep = "\n\n"
	}
	return strings.Join(items, sep)
}

func (r *SlideRenderer) table(t *east.Table, ctx *renderContext) string {
	var rows []string
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, r.inline(cell, ctx))
		}
		line := strings.Join(cells, " │ ")
		if _, header := row.(*east.TableHeader); header {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

// inline renders the inline children of n
func (r *SlideRenderer) inline(n ast.Node, ctx *renderContext) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(ctx.src))
			switch {
			case node.HardLineBreak():
				b.WriteByte('\n')
			case node.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.CodeSpan:
			b.WriteString(r.styles.CodeSpan.Render(deck.PlainText(node, ctx.src)))
		case *ast.Emphasis:
			style := lipgloss.NewStyle().Italic(true)
			if node.Level >= 2 {
				style = lipgloss.NewStyle().Bold(true)
			}
			b.WriteString(style.Render(r.inline(node, ctx)))
		case *ast.Link:
			b.WriteString(r.styles.Link.Render(r.inline(node, ctx)))
		case *ast.AutoLink:
			b.WriteString(r.styles.Link.Render(string(node.URL(ctx.src))))
		case *ast.Image:
			b.WriteString(r.image(string(node.Destination), ctx))
		case *ast.RawHTML:
		default:
			b.WriteString(r.inline(node, ctx))
		}
	}
	return b.String()
}

// image renders the placeholder text for an image reference
func (r *SlideRenderer) image(source string, ctx *renderContext) string {
	ref := domain.ImageRef{Source: source, Status: domain.ImagePending}
	for _, img := range ctx.slide.Images {
		if img.Source == source {
			ref = img
			break
		}
	}
	return r.styles.imageLabel(ref, ctx.slide.Number)
}

// ImageLabel returns the text shown in place of an image
func ImageLabel(ref domain.ImageRef, slideNumber int) string {
	alt := ref.Alt
	if alt == "" {
		alt = ref.Source
	}
	switch ref.Status {
	case domain.ImageLoaded:
		return fmt.Sprintf("[image: %s]", alt)
	case domain.ImageRemote:
		return fmt.Sprintf("[image: %s ↗]", alt)
	case domain.ImageMissing:
		return "[Image not available]"
	default:
		return fmt.Sprintf("[Slide %d · Image Placeholder]", slideNumber)
	}
}

func (s *Styles) imageLabel(ref domain.ImageRef, slideNumber int) string {
	label := ImageLabel(ref, slideNumber)
	if ref.Status == domain.ImageLoaded || ref.Status == domain.ImageRemote {
		return s.Image.Render(label)
	}
	return s.ImageMissing.Render(label)
}
