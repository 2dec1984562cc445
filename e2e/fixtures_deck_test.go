//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DeckOption is a function that configures deck creation
type DeckOption func(*deckOptions)

type deckOptions struct {
	images map[string][]byte // filename -> contents, written next to the deck
	config string            // .decknav.toml contents
}

// WithImage writes an image file next to the deck
func WithImage(name string, contents []byte) DeckOption {
	return func(opts *deckOptions) {
		if opts.images == nil {
			opts.images = make(map[string][]byte)
		}
		opts.images[name] = contents
	}
}

// WithConfig writes a config file next to the deck
func WithConfig(toml string) DeckOption {
	return func(opts *deckOptions) {
		opts.config = toml
	}
}

// CreateTestWorkspace creates a temporary directory for decks
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateTestDeck writes a deck with one slide per title and returns its path
func (tf *TUITestFramework) CreateTestDeck(name string, titles []string, options ...DeckOption) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateTestWorkspace(); err != nil {
			return "", err
		}
	}

	opts := &deckOptions{}
	for _, opt := range options {
		opt(opts)
	}

	slides := make([]string, len(titles))
	for i, title := range titles {
		slides[i] = fmt.Sprintf("## %s\n\nBody of slide %d.\n", title, i+1)
	}
	deckPath := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(deckPath, []byte(strings.Join(slides, "\n---\n\n")), 0644); err != nil {
		return "", fmt.Errorf("failed to write deck: %w", err)
	}

	for file, contents := range opts.images {
		if err := os.WriteFile(filepath.Join(tf.workspace, file), contents, 0644); err != nil {
			return "", fmt.Errorf("failed to write image %s: %w", file, err)
		}
	}

	if opts.config != "" {
		if err := os.WriteFile(filepath.Join(tf.workspace, ".decknav.toml"), []byte(opts.config), 0644); err != nil {
			return "", fmt.Errorf("failed to write config: %w", err)
		}
	}

	return deckPath, nil
}

// startDeck creates a deck of titles and launches the app on it
func (tf *TUITestFramework) startDeck(titles ...string) error {
	tf.t.Helper()
	deckPath, err := tf.CreateTestDeck("talk.md", titles)
	if err != nil {
		return err
	}
	return tf.StartApp(deckPath)
}
