package wizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/prompt"
	"github.com/goliatone/go-themegen/pkg/schema"
	"github.com/goliatone/go-themegen/pkg/validation"
)

// stateFn is one step of the stage machine. A nil next state ends the run.
type stateFn func(ctx context.Context, s *session) (stateFn, error)

type session struct {
	stages []schema.Stage
	pos    int
	values config.Values
}

func (s *session) current() schema.Stage {
	return s.stages[s.pos]
}

// enterStage decides whether the current stage is prompted. The first stage is
// always entered; later ones need an explicit opt-in.
func (w *Wizard) enterStage(ctx context.Context, s *session) (stateFn, error) {
	if s.pos >= len(s.stages) {
		return nil, nil
	}
	stage := s.current()
	if s.pos == 0 {
		return w.promptStage, nil
	}

	ok, err := w.driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("%sConfigure %s?", w.theme.PromptPrefix, stage.Title),
		Default: false,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		w.logger.Debug().Int("stage", stage.Number).Msg("stage skipped")
		return w.nextStage, nil
	}
	return w.promptStage, nil
}

func (w *Wizard) promptStage(ctx context.Context, s *session) (stateFn, error) {
	stage := s.current()
	w.logger.Debug().Int("stage", stage.Number).Str("title", stage.Title).Msg("stage entered")

	header := fmt.Sprintf("%sStage %d: %s", w.theme.StagePrefix, stage.Number, stage.Title)
	if err := w.driver.Info(ctx, header); err != nil {
		return nil, err
	}

	for _, field := range w.reg.Stage(stage.Number) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		if len(field.Enum) > 0 {
			err = w.promptEnum(ctx, field, s.values)
		} else {
			err = w.promptInput(ctx, field, s.values)
		}
		if err != nil {
			return nil, err
		}
	}
	return w.checkStage, nil
}

// checkStage validates the identity stage before anything else is asked.
func (w *Wizard) checkStage(ctx context.Context, s *session) (stateFn, error) {
	if s.pos != 0 {
		return w.nextStage, nil
	}
	stage := s.current()
	errs := validation.ValidateStage(w.reg, stage.Number, s.values)
	if len(errs) == 0 {
		return w.nextStage, nil
	}
	for _, msg := range errs {
		_ = w.driver.Info(ctx, w.theme.ErrorPrefix+msg)
	}
	return nil, &StageError{Stage: stage.Number, Title: stage.Title, Errors: errs}
}

func (w *Wizard) nextStage(_ context.Context, s *session) (stateFn, error) {
	s.pos++
	return w.enterStage, nil
}

func (w *Wizard) promptInput(ctx context.Context, field schema.Field, values config.Values) error {
	answer, err := w.driver.Input(ctx, prompt.InputConfig{
		Message: w.label(field),
		Default: values[field.Key],
		Help:    help(field),
	})
	if err != nil {
		return err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		delete(values, field.Key)
		return nil
	}
	values[field.Key] = answer
	return nil
}

func (w *Wizard) promptEnum(ctx context.Context, field schema.Field, values config.Values) error {
	def := -1
	current, ok := values[field.Key]
	if !ok {
		current = field.DefaultValue()
	}
	for i, option := range field.Enum {
		if option == current {
			def = i
			break
		}
	}

	idx, err := w.driver.Select(ctx, prompt.SelectConfig{
		Message:      w.label(field),
		Options:      field.Enum,
		DefaultIndex: def,
		Help:         help(field),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Enum) {
		delete(values, field.Key)
		return nil
	}
	values[field.Key] = field.Enum[idx]
	return nil
}

func (w *Wizard) label(field schema.Field) string {
	text := field.Description
	if text == "" {
		text = field.Key
	}
	switch {
	case field.Required:
		text += " (required)"
	case field.HasDefault():
		text += fmt.Sprintf(" (default: %s)", field.DefaultValue())
	}
	return w.theme.PromptPrefix + text
}

func help(field schema.Field) string {
	if field.Example == "" {
		return ""
	}
	return "e.g. " + field.Example
}
