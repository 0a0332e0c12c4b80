package config

import (
	"errors"

	"github.com/goliatone/go-themegen/pkg/schema"
	"github.com/goliatone/go-themegen/pkg/validation"
)

// Result is the outcome of Assemble. Config is populated even when Valid is
// false so callers can report the best-effort state.
type Result struct {
	Config   Config   `json:"config"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Option customises an Assembler.
type Option func(*Assembler)

// WithDerivations replaces the built-in derivations.
func WithDerivations(derivations ...Derivation) Option {
	return func(a *Assembler) {
		a.derivations = append([]Derivation(nil), derivations...)
	}
}

// Assembler turns raw values into a finished configuration against a
// registry.
type Assembler struct {
	registry    *schema.Registry
	derivations []Derivation
}

// NewAssembler constructs an assembler bound to reg.
func NewAssembler(reg *schema.Registry, options ...Option) (*Assembler, error) {
	if reg == nil {
		return nil, errors.New("config: registry is required")
	}
	a := &Assembler{
		registry:    reg,
		derivations: DefaultDerivations(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a, nil
}

// Registry returns the registry the assembler validates against.
func (a *Assembler) Registry() *schema.Registry {
	return a.registry
}

// Assemble applies defaults, derives computed fields and validates the
// merged values. raw is never modified.
func (a *Assembler) Assemble(raw Values) Result {
	resolved := make(Values, len(raw))
	for key, value := range raw {
		if a.registry.Has(key) {
			resolved[key] = value
		}
	}

	for _, field := range a.registry.Fields() {
		if _, present := resolved[field.Key]; present || !field.HasDefault() {
			continue
		}
		resolved[field.Key] = field.DefaultValue()
	}

	for _, d := range a.derivations {
		if !a.registry.Has(d.Target) {
			continue
		}
		if _, present := resolved[d.Target]; present {
			continue
		}
		if !inputsResolved(resolved, d.Inputs) {
			continue
		}
		if value, ok := d.Derive(resolved.Clone()); ok {
			resolved[d.Target] = value
		}
	}

	keys := make([]string, 0, len(resolved))
	for _, key := range a.registry.Keys() {
		if _, ok := resolved[key]; ok {
			keys = append(keys, key)
		}
	}

	check := validation.ValidateValues(a.registry, resolved)
	check.Warnings = append(check.Warnings, validation.UnknownKeys(a.registry, raw)...)

	return Result{
		Config:   newConfig(keys, resolved),
		Valid:    check.Valid,
		Errors:   check.Errors,
		Warnings: check.Warnings,
	}
}

func inputsResolved(values Values, inputs []string) bool {
	for _, key := range inputs {
		if values[key] == "" {
			return false
		}
	}
	return true
}
