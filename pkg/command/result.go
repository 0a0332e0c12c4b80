package command

import (
	"encoding/json"
	"io"

	"github.com/goliatone/go-themegen/pkg/config"
)

// Success is printed when a JSON configuration assembles cleanly.
type Success struct {
	Success  bool          `json:"success"`
	Config   config.Config `json:"config"`
	Command  string        `json:"command"`
	Warnings []string      `json:"warnings,omitempty"`
}

// Invalid is printed when validation fails.
type Invalid struct {
	Success  bool     `json:"success"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// Failure is printed for structural errors such as malformed input.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewSuccess builds the success envelope.
func NewSuccess(cfg config.Config, program string, warnings []string) Success {
	return Success{Success: true, Config: cfg, Command: Build(cfg, program), Warnings: warnings}
}

// NewInvalid builds the validation failure envelope.
func NewInvalid(errs, warnings []string) Invalid {
	if errs == nil {
		errs = []string{}
	}
	return Invalid{Errors: errs, Warnings: warnings}
}

// NewFailure builds the structural failure envelope.
func NewFailure(err error) Failure {
	return Failure{Error: err.Error()}
}

// Write encodes v as indented JSON followed by a newline.
func Write(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
