// Package themegen generates customised copies of a block theme scaffold.
// Configuration values are collected, sanitized, validated against a staged
// schema and substituted into every file and path of the template tree.
package themegen

import (
	"context"

	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/orchestrator"
	"github.com/goliatone/go-themegen/pkg/schema"
)

// Values is a raw, not yet validated configuration.
type Values = config.Values

// Request describes one generation run.
type Request = orchestrator.Request

// Outcome is what a successful run produced.
type Outcome = orchestrator.Outcome

// ValidationError lists every required-field violation.
type ValidationError = orchestrator.ValidationError

// DefaultRegistry returns a fresh copy of the built-in theme schema.
func DefaultRegistry() *schema.Registry {
	return schema.Default()
}

// New exposes the orchestrator constructor from the top-level module.
func New(options ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	return orchestrator.New(options...)
}

// Generate instantiates the template at src into dest using values. It is the
// simplest entry point for callers that already hold a raw configuration.
func Generate(ctx context.Context, values Values, src, dest string, options ...orchestrator.Option) (Outcome, error) {
	gen, err := orchestrator.New(options...)
	if err != nil {
		return Outcome{}, err
	}
	return gen.Generate(ctx, Request{
		Values:    values,
		SourceDir: src,
		OutputDir: dest,
	})
}
