package walker

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Mode selects how output reaches the destination.
type Mode string

const (
	// ModeStaged writes into a hidden sibling directory and renames it onto
	// the destination once the walk succeeds. Failed runs leave nothing behind.
	ModeStaged Mode = "staged"
	// ModeDirect writes straight into the destination. Failed runs leave
	// partial output.
	ModeDirect Mode = "direct"
)

// ParseMode resolves a mode name. An empty name selects ModeStaged.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case "", ModeStaged:
		return ModeStaged, nil
	case ModeDirect:
		return ModeDirect, nil
	default:
		return "", fmt.Errorf("walker: unknown write mode %q (want staged or direct)", name)
	}
}

// DefaultExcludedNames are skipped at any depth.
var DefaultExcludedNames = []string{"node_modules", "dist", ".git", "output-theme"}

// DefaultExcludedPaths are skipped when they match the slash-separated path
// relative to the source root.
var DefaultExcludedPaths = []string{"bin/generate-theme.js"}

// Option configures a Walker.
type Option func(*Walker)

// WithExcludedNames replaces the names skipped at any depth.
func WithExcludedNames(names ...string) Option {
	return func(w *Walker) {
		w.excludedNames = toSet(names)
	}
}

// WithExcludedPaths replaces the relative paths skipped from the source root.
func WithExcludedPaths(paths ...string) Option {
	return func(w *Walker) {
		w.excludedPaths = toSet(paths)
	}
}

// WithMode selects the write mode.
func WithMode(mode Mode) Option {
	return func(w *Walker) {
		if mode != "" {
			w.mode = mode
		}
	}
}

// WithLogger sets the logger used for per-entry tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
