// Package report renders the human-readable run summary through a pongo2
// template.
package report

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/walker"
)

//go:embed templates/*.tpl
var embedded embed.FS

// DefaultTemplate is the summary template shipped with the package.
const DefaultTemplate = "summary.tpl"

// Summary is the data a report is rendered from.
type Summary struct {
	Config   config.Config
	Warnings []string
	Command  string
	Walk     *walker.Report
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	templates fs.FS
	name      string
}

// WithTemplateFS loads templates from files instead of the embedded set.
func WithTemplateFS(files fs.FS) Option {
	return func(o *options) {
		if files != nil {
			o.templates = files
		}
	}
}

// WithTemplateName selects the template file rendered.
func WithTemplateName(name string) Option {
	return func(o *options) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			o.name = trimmed
		}
	}
}

// Renderer renders summaries.
type Renderer struct {
	tmpl *pongo2.Template
}

// New parses the summary template.
func New(opts ...Option) (*Renderer, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("report: open embedded templates: %w", err)
	}
	cfg := &options{templates: sub, name: DefaultTemplate}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	set := pongo2.NewSet("themegen", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(cfg.name)
	if err != nil {
		return nil, fmt.Errorf("report: load template %q: %w", cfg.name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type row struct {
	Label string
	Value string
}

// Render writes the summary to out.
func (r *Renderer) Render(s Summary, out io.Writer) error {
	if r == nil || r.tmpl == nil {
		return errors.New("report: renderer is nil")
	}

	ctx := pongo2.Context{
		"rows":     rows(s.Config),
		"warnings": s.Warnings,
		"command":  s.Command,
		"has_walk": s.Walk != nil,
	}
	if s.Walk != nil {
		ctx["walk"] = *s.Walk
		ctx["unresolved"] = strings.Join(s.Walk.Unresolved, ", ")
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return fmt.Errorf("report: execute template: %w", err)
	}
	_, err := out.Write(buf.Bytes())
	return err
}

// String renders the summary and returns it.
func (r *Renderer) String(s Summary) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(s, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rows(cfg config.Config) []row {
	width := 0
	for _, key := range cfg.Keys() {
		if n := utf8.RuneCountInString(key); n > width {
			width = n
		}
	}

	out := make([]row, 0, cfg.Len())
	for _, key := range cfg.Keys() {
		value := cfg.Value(key)
		if value == "" {
			value = "(empty)"
		}
		label := key + strings.Repeat(" ", width-utf8.RuneCountInString(key))
		out = append(out, row{Label: label, Value: value})
	}
	return out
}
