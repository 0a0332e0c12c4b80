package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/goliatone/go-themegen/pkg/command"
	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/placeholder"
	"github.com/goliatone/go-themegen/pkg/sanitize"
	"github.com/goliatone/go-themegen/pkg/schema"
	"github.com/goliatone/go-themegen/pkg/validation"
	"github.com/goliatone/go-themegen/pkg/walker"
)

// DefaultOutputName is the destination directory used when a request names
// none, relative to the working directory.
const DefaultOutputName = "output-theme"

// ValidationError lists every required-field violation of a configuration.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return "orchestrator: invalid configuration: " + strings.Join(e.Errors, "; ")
}

// Option customises the orchestrator.
type Option func(*Orchestrator)

// WithRegistry replaces the built-in theme registry.
func WithRegistry(reg *schema.Registry) Option {
	return func(o *Orchestrator) {
		if reg != nil {
			o.reg = reg
		}
	}
}

// WithDerivations replaces the computed-default rules.
func WithDerivations(derivations ...config.Derivation) Option {
	return func(o *Orchestrator) {
		o.derivations = derivations
		o.customDerivations = true
	}
}

// WithFs sets the filesystem the walker reads and writes.
func WithFs(fsys afero.Fs) Option {
	return func(o *Orchestrator) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithWalkerOptions forwards options to every walker the orchestrator builds.
func WithWalkerOptions(opts ...walker.Option) Option {
	return func(o *Orchestrator) {
		o.walkerOpts = append(o.walkerOpts, opts...)
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithProgram sets the binary name used in generation commands.
func WithProgram(name string) Option {
	return func(o *Orchestrator) {
		o.program = name
	}
}

// Orchestrator coordinates the pipeline.
type Orchestrator struct {
	reg               *schema.Registry
	assembler         *config.Assembler
	derivations       []config.Derivation
	customDerivations bool
	fs                afero.Fs
	walkerOpts        []walker.Option
	logger            zerolog.Logger
	program           string
}

// New constructs an Orchestrator with the built-in registry, the OS
// filesystem and a silent logger unless overridden.
func New(options ...Option) (*Orchestrator, error) {
	o := &Orchestrator{
		fs:      afero.NewOsFs(),
		logger:  zerolog.Nop(),
		program: command.DefaultProgram,
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	if o.reg == nil {
		o.reg = schema.Default()
	}

	var asmOpts []config.Option
	if o.customDerivations {
		asmOpts = append(asmOpts, config.WithDerivations(o.derivations...))
	}
	asm, err := config.NewAssembler(o.reg, asmOpts...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	o.assembler = asm
	return o, nil
}

// Registry exposes the registry the orchestrator validates against.
func (o *Orchestrator) Registry() *schema.Registry {
	return o.reg
}

// Validate checks raw values as supplied, without sanitizing or applying
// defaults.
func (o *Orchestrator) Validate(raw config.Values) validation.Result {
	return validation.ValidateValues(o.reg, raw)
}

// Assemble sanitizes raw and finishes it into a configuration. Sanitizer
// rejections are returned as errors; validation failures are reported in the
// result.
func (o *Orchestrator) Assemble(raw config.Values) (config.Result, error) {
	clean, err := sanitize.Values(o.reg, raw)
	if err != nil {
		return config.Result{}, fmt.Errorf("orchestrator: sanitize: %w", err)
	}
	res := o.assembler.Assemble(clean)
	for _, warning := range res.Warnings {
		o.logger.Warn().Msg(warning)
	}
	return res, nil
}

// Command renders the generation command for cfg.
func (o *Orchestrator) Command(cfg config.Config) string {
	return command.Build(cfg, o.program)
}

// Request describes one generation run.
type Request struct {
	Values    config.Values
	SourceDir string
	OutputDir string
	Mode      walker.Mode
}

// Outcome is what a successful run produced.
type Outcome struct {
	Config   config.Config
	Warnings []string
	Command  string
	Report   walker.Report
}

// Generate runs the whole pipeline for req.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Outcome, error) {
	if ctx == nil {
		return Outcome{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	res, err := o.Assemble(req.Values)
	if err != nil {
		return Outcome{}, err
	}
	if !res.Valid {
		return Outcome{}, &ValidationError{Errors: res.Errors, Warnings: res.Warnings}
	}

	src, dest, err := resolveDirs(req.SourceDir, req.OutputDir)
	if err != nil {
		return Outcome{}, err
	}

	m := placeholder.Build(res.Config)
	opts := append([]walker.Option{walker.WithLogger(o.logger)}, o.walkerOpts...)
	if req.Mode != "" {
		opts = append(opts, walker.WithMode(req.Mode))
	}

	o.logger.Info().Str("source", src).Str("destination", dest).Str("slug", res.Config.Value("slug")).Msg("generating theme")
	report, err := walker.New(o.fs, opts...).Instantiate(ctx, src, dest, m)
	if err != nil {
		return Outcome{}, err
	}
	if len(report.Unresolved) > 0 {
		o.logger.Warn().Strs("tokens", report.Unresolved).Msg("unresolved placeholders left in output")
	}
	o.logger.Info().Int("files", report.Files).Int("directories", report.Directories).Msg("theme generated")

	return Outcome{
		Config:   res.Config,
		Warnings: res.Warnings,
		Command:  o.Command(res.Config),
		Report:   report,
	}, nil
}

func resolveDirs(src, dest string) (string, string, error) {
	if src == "" || dest == "" {
		wd, err := filepath.Abs(".")
		if err != nil {
			return "", "", fmt.Errorf("orchestrator: resolve working directory: %w", err)
		}
		if src == "" {
			src = wd
		}
		if dest == "" {
			dest = filepath.Join(wd, DefaultOutputName)
		}
	}
	return src, dest, nil
}
