package testsupport

import (
	"context"
	"errors"

	"github.com/goliatone/go-themegen/pkg/prompt"
)

// ErrScriptExhausted is returned when a ScriptedDriver runs out of answers.
var ErrScriptExhausted = errors.New("testsupport: no scripted answer left")

// ScriptedDriver replays canned answers in order. Every prompt message is
// recorded in Asked, every Info message in Infos.
type ScriptedDriver struct {
	Inputs   []string
	Confirms []bool
	Selects  []int

	Asked []string
	Infos []string

	inputPos   int
	confirmPos int
	selectPos  int
}

var _ prompt.Driver = (*ScriptedDriver)(nil)

func (s *ScriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	s.Asked = append(s.Asked, cfg.Message)
	if s.inputPos >= len(s.Inputs) {
		return "", ErrScriptExhausted
	}
	val := s.Inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *ScriptedDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	s.Asked = append(s.Asked, cfg.Message)
	if s.confirmPos >= len(s.Confirms) {
		return false, ErrScriptExhausted
	}
	val := s.Confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *ScriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	s.Asked = append(s.Asked, cfg.Message)
	if s.selectPos >= len(s.Selects) {
		return -1, ErrScriptExhausted
	}
	val := s.Selects[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *ScriptedDriver) Info(_ context.Context, msg string) error {
	s.Infos = append(s.Infos, msg)
	return nil
}

// Consumed reports whether every scripted answer was used.
func (s *ScriptedDriver) Consumed() bool {
	return s.inputPos == len(s.Inputs) && s.confirmPos == len(s.Confirms) && s.selectPos == len(s.Selects)
}
