// Package walker instantiates a template tree: every directory name, file name
// and text file body under the source root is copied to a fresh destination
// with placeholder tokens substituted.
package walker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/goliatone/go-themegen/pkg/placeholder"
)

var (
	// ErrDestinationExists is returned when the destination path is already
	// present. Nothing is written in that case.
	ErrDestinationExists = errors.New("walker: destination already exists")
	// ErrUnsafeName is returned when a substituted entry name would escape its
	// parent directory.
	ErrUnsafeName = errors.New("walker: unsafe entry name")
	// ErrSourceNotDir is returned when the source root is not a directory.
	ErrSourceNotDir = errors.New("walker: source is not a directory")
)

// Report summarises a completed walk.
type Report struct {
	Destination string   `json:"destination"`
	Directories int      `json:"directories"`
	Files       int      `json:"files"`
	Verbatim    int      `json:"verbatim"`
	Skipped     []string `json:"skipped,omitempty"`
	Unresolved  []string `json:"unresolved,omitempty"`
}

// Walker copies template trees through a placeholder map.
type Walker struct {
	fs            afero.Fs
	excludedNames map[string]struct{}
	excludedPaths map[string]struct{}
	mode          Mode
	logger        zerolog.Logger
}

// New returns a Walker over fsys (the OS filesystem when nil).
func New(fsys afero.Fs, options ...Option) *Walker {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	w := &Walker{
		fs:            fsys,
		excludedNames: toSet(DefaultExcludedNames),
		excludedPaths: toSet(DefaultExcludedPaths),
		mode:          ModeStaged,
		logger:        zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Mode reports the configured write mode.
func (w *Walker) Mode() Mode {
	return w.mode
}

// Instantiate copies src into dest, substituting tokens from m. dest must not
// exist.
func (w *Walker) Instantiate(ctx context.Context, src, dest string, m placeholder.Map) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("walker: context is required")
	}
	src, err := filepath.Abs(src)
	if err != nil {
		return Report{}, fmt.Errorf("walker: resolve source: %w", err)
	}
	dest, err = filepath.Abs(dest)
	if err != nil {
		return Report{}, fmt.Errorf("walker: resolve destination: %w", err)
	}

	info, err := w.fs.Stat(src)
	if err != nil {
		return Report{}, fmt.Errorf("walker: stat source %s: %w", src, err)
	}
	if !info.IsDir() {
		return Report{}, fmt.Errorf("%w: %s", ErrSourceNotDir, src)
	}
	if err := w.checkAbsent(dest); err != nil {
		return Report{}, err
	}

	run := &walk{
		src:      src,
		skipAbs:  map[string]struct{}{dest: {}},
		m:        m,
		report:   Report{Destination: dest},
		unknowns: map[string]struct{}{},
	}

	target := dest
	var created []string
	discard := func() {
		if w.mode != ModeStaged {
			return
		}
		if target != dest {
			if err := w.fs.RemoveAll(target); err != nil {
				w.logger.Warn().Err(err).Str("path", target).Msg("failed to remove staging directory")
			}
		}
		for _, dir := range created {
			if err := w.fs.Remove(dir); err != nil && !errors.Is(err, os.ErrNotExist) {
				w.logger.Warn().Err(err).Str("path", dir).Msg("failed to remove created parent directory")
			}
		}
	}

	if w.mode == ModeStaged {
		parent := filepath.Dir(dest)
		if created, err = w.missingDirs(parent); err != nil {
			return Report{}, err
		}
		if err := w.fs.MkdirAll(parent, 0o755); err != nil {
			discard()
			return Report{}, fmt.Errorf("walker: create parent %s: %w", parent, err)
		}
		staging, err := afero.TempDir(w.fs, parent, "."+filepath.Base(dest)+".staging-")
		if err != nil {
			discard()
			return Report{}, fmt.Errorf("walker: create staging directory: %w", err)
		}
		run.skipAbs[staging] = struct{}{}
		target = staging
		if err := w.fs.Chmod(staging, info.Mode().Perm()); err != nil {
			discard()
			return Report{}, fmt.Errorf("walker: chmod %s: %w", staging, err)
		}
	} else if err := w.fs.MkdirAll(dest, info.Mode().Perm()); err != nil {
		return Report{}, fmt.Errorf("walker: create destination %s: %w", dest, err)
	}

	w.logger.Debug().Str("source", src).Str("target", target).Str("mode", string(w.mode)).Msg("instantiating template")

	if err := w.walkDir(ctx, run, src, target, ""); err != nil {
		discard()
		return Report{}, err
	}

	if w.mode == ModeStaged {
		if err := w.checkAbsent(dest); err != nil {
			discard()
			return Report{}, err
		}
		if err := w.fs.Rename(target, dest); err != nil {
			discard()
			return Report{}, fmt.Errorf("walker: move staging onto %s: %w", dest, err)
		}
	}

	run.report.Unresolved = sortedKeys(run.unknowns)
	return run.report, nil
}

// missingDirs lists dir and those of its ancestors that do not exist yet,
// deepest first.
func (w *Walker) missingDirs(dir string) ([]string, error) {
	var missing []string
	for {
		_, err := w.fs.Stat(dir)
		if err == nil {
			return missing, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("walker: stat %s: %w", dir, err)
		}
		missing = append(missing, dir)
		next := filepath.Dir(dir)
		if next == dir {
			return missing, nil
		}
		dir = next
	}
}

func (w *Walker) checkAbsent(dest string) error {
	_, err := w.fs.Stat(dest)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("walker: stat destination %s: %w", dest, err)
	}
}

type walk struct {
	src      string
	skipAbs  map[string]struct{}
	m        placeholder.Map
	report   Report
	unknowns map[string]struct{}
}

func (w *Walker) walkDir(ctx context.Context, run *walk, srcDir, outDir, rel string) error {
	entries, err := afero.ReadDir(w.fs, srcDir)
	if err != nil {
		return fmt.Errorf("walker: read %s: %w", srcDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		entryRel := path.Join(rel, name)
		entrySrc := filepath.Join(srcDir, name)

		if w.excluded(run, name, entryRel, entrySrc) {
			w.logger.Trace().Str("path", entryRel).Msg("skipped")
			run.report.Skipped = append(run.report.Skipped, entryRel)
			continue
		}

		outName := run.m.Apply(name)
		if unsafeName(outName) {
			return fmt.Errorf("%w: %q becomes %q", ErrUnsafeName, entryRel, outName)
		}
		run.collect(outName)
		entryOut := filepath.Join(outDir, outName)

		switch {
		case entry.IsDir():
			if err := w.fs.Mkdir(entryOut, entry.Mode().Perm()); err != nil {
				return fmt.Errorf("walker: create directory %s: %w", entryOut, err)
			}
			if err := w.fs.Chmod(entryOut, entry.Mode().Perm()); err != nil {
				return fmt.Errorf("walker: chmod %s: %w", entryOut, err)
			}
			run.report.Directories++
			if err := w.walkDir(ctx, run, entrySrc, entryOut, entryRel); err != nil {
				return err
			}
		case entry.Mode().IsRegular():
			if err := w.copyFile(run, entrySrc, entryOut, entry.Mode().Perm()); err != nil {
				return err
			}
		default:
			w.logger.Debug().Str("path", entryRel).Str("mode", entry.Mode().String()).Msg("skipping non-regular entry")
			run.report.Skipped = append(run.report.Skipped, entryRel)
		}
	}
	return nil
}

func (w *Walker) copyFile(run *walk, src, dest string, perm os.FileMode) error {
	data, err := afero.ReadFile(w.fs, src)
	if err != nil {
		return fmt.Errorf("walker: read %s: %w", src, err)
	}

	out := data
	if isText(data) {
		substituted := run.m.Apply(string(data))
		run.collect(substituted)
		out = []byte(substituted)
	} else {
		run.report.Verbatim++
	}

	if err := afero.WriteFile(w.fs, dest, out, perm); err != nil {
		return fmt.Errorf("walker: write %s: %w", dest, err)
	}
	if err := w.fs.Chmod(dest, perm); err != nil {
		return fmt.Errorf("walker: chmod %s: %w", dest, err)
	}
	run.report.Files++
	return nil
}

func (w *Walker) excluded(run *walk, name, rel, abs string) bool {
	if _, ok := w.excludedNames[name]; ok {
		return true
	}
	if _, ok := w.excludedPaths[rel]; ok {
		return true
	}
	_, ok := run.skipAbs[abs]
	return ok
}

func (r *walk) collect(s string) {
	for _, token := range placeholder.Unresolved(s) {
		r.unknowns[token] = struct{}{}
	}
}

func isText(data []byte) bool {
	return utf8.Valid(data) && bytes.IndexByte(data, 0) < 0
}

func unsafeName(name string) bool {
	return name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
