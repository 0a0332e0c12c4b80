// Package command renders the non-interactive invocation equivalent to a
// finished configuration, and the JSON envelopes agent modes print.
package command

import (
	"github.com/kballard/go-shellquote"

	"github.com/goliatone/go-themegen/pkg/config"
)

// DefaultProgram is the binary name used when Build receives none.
const DefaultProgram = "themegen"

// Args returns the generate argument vector for cfg in registry order.
// Empty values are kept so the command reproduces explicit choices.
func Args(cfg config.Config) []string {
	args := []string{"generate"}
	for _, key := range cfg.Keys() {
		args = append(args, "--"+key, cfg.Value(key))
	}
	return args
}

// Build renders the shell-quoted command line for cfg.
func Build(cfg config.Config, program string) string {
	if program == "" {
		program = DefaultProgram
	}
	return shellquote.Join(append([]string{program}, Args(cfg)...)...)
}
