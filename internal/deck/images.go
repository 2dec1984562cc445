package deck

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"decknav/internal/domain"
)

func newImageRef(alt, source, baseDir string) domain.ImageRef {
	ref := domain.ImageRef{
		Alt:    alt,
		Source: source,
		Status: domain.ImagePending,
	}
	if isRemote(source) {
		ref.Status = domain.ImageRemote
		return ref
	}
	p := filepath.FromSlash(source)
	if !filepath.IsAbs(p) && baseDir != "" {
		p = filepath.Join(baseDir, p)
	}
	ref.Path = p
	return ref
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	for _, prefix := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// PreloadSummary counts image outcomes after Preload
type PreloadSummary struct {
	Loaded  int
	Missing int
	Remote  int
}

// Preload checks every local image of the deck, at most workers at a time,
// and records whether it could be found. Remote images are never fetched.
// It returns early with ctx.Err() if the context is cancelled.
func Preload(ctx context.Context, d *domain.Deck, workers int) (PreloadSummary, error) {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range d.Slides {
		for j := range d.Slides[i].Images {
			img := &d.Slides[i].Images[j]
			if img.Status != domain.ImagePending {
				continue
			}
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				img.Status = check(img.Path)
				if img.Status == domain.ImageMissing {
					slog.Debug("deck: image not available", "source", img.Source, "path", img.Path)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return PreloadSummary{}, err
	}

	return Summarize(d), nil
}

// Summarize counts the image statuses of a deck
func Summarize(d *domain.Deck) PreloadSummary {
	var s PreloadSummary
	for _, slide := range d.Slides {
		for _, img := range slide.Images {
			switch img.Status {
			case domain.ImageLoaded:
				s.Loaded++
			case domain.ImageMissing:
				s.Missing++
			case domain.ImageRemote:
				s.Remote++
			}
		}
	}
	return s
}

func check(path string) domain.ImageStatus {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() == 0 {
		return domain.ImageMissing
	}
	return domain.ImageLoaded
}
