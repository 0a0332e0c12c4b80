// Package wizard runs the staged interactive collection flow. Stages are
// walked as a chain of state functions driven by a prompt.Driver, so the same
// flow runs against a terminal or a scripted driver.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/prompt"
	"github.com/goliatone/go-themegen/pkg/schema"
	"github.com/rs/zerolog"
)

// StageError reports required fields of the identity stage that failed
// validation. Later stages are not entered once it is returned.
type StageError struct {
	Stage  int
	Title  string
	Errors []string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("wizard: stage %d (%s) failed validation: %s", e.Stage, e.Title, strings.Join(e.Errors, "; "))
}

// Theme captures optional message prefixes.
type Theme struct {
	PromptPrefix string
	StagePrefix  string
	ErrorPrefix  string
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver prompt.Driver) Option {
	return func(w *Wizard) {
		if driver != nil {
			w.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(w *Wizard) {
		w.theme = theme
	}
}

// WithLogger sets the logger used for stage transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *Wizard) {
		w.logger = logger
	}
}

// WithPrefill seeds values collected elsewhere. Prefilled keys become the
// prompt defaults.
func WithPrefill(values config.Values) Option {
	return func(w *Wizard) {
		w.prefill = values.Clone()
	}
}

// Wizard collects raw values stage by stage.
type Wizard struct {
	reg     *schema.Registry
	driver  prompt.Driver
	theme   Theme
	logger  zerolog.Logger
	prefill config.Values
}

// New constructs a Wizard over reg. Without WithPromptDriver it prompts on the
// process terminal.
func New(reg *schema.Registry, options ...Option) (*Wizard, error) {
	if reg == nil {
		return nil, errors.New("wizard: registry is required")
	}
	w := &Wizard{
		reg:    reg,
		driver: prompt.NewSurveyDriver(),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

// Run walks every stage and returns the raw values collected. Blank answers
// leave their key absent so the assembler can apply defaults.
func (w *Wizard) Run(ctx context.Context) (config.Values, error) {
	if ctx == nil {
		return nil, errors.New("wizard: context is required")
	}

	s := &session{
		stages: w.reg.Stages(),
		values: w.prefill.Clone(),
	}

	for state := w.enterStage; state != nil; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := state(ctx, s)
		if err != nil {
			return nil, err
		}
		state = next
	}
	return s.values, nil
}
