package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/goliatone/go-themegen/pkg/logging"
	"github.com/goliatone/go-themegen/pkg/orchestrator"
	"github.com/goliatone/go-themegen/pkg/prompt"
	"github.com/goliatone/go-themegen/pkg/schema"
)

const programName = "themegen"

// app carries the process streams and injectable dependencies shared by every
// command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	fs       afero.Fs
	driver   prompt.Driver
	terminal func(io.Reader) bool

	verbosity int
	logger    zerolog.Logger
	styles    styles
	errStyles styles
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:        in,
		out:       out,
		errOut:    errOut,
		fs:        afero.NewOsFs(),
		terminal:  func(r io.Reader) bool { return logging.IsTerminal(r) },
		logger:    zerolog.Nop(),
		styles:    newStyles(out),
		errStyles: newStyles(errOut),
	}
}

func (a *app) setupLogging() {
	a.logger = logging.New(a.verbosity, a.errOut)
}

func (a *app) orchestrator() (*orchestrator.Orchestrator, error) {
	return orchestrator.New(
		orchestrator.WithRegistry(schema.Default()),
		orchestrator.WithFs(a.fs),
		orchestrator.WithLogger(logging.Component(a.logger, "orchestrator")),
		orchestrator.WithProgram(programName),
	)
}

// exitError carries a process exit code. When reported is set the message was
// already printed.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func silentExit(code int) error {
	return &exitError{code: code, reported: true}
}

// run executes the command line and returns the process exit code.
func run(args []string, a *app) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if !exitErr.reported {
			a.printError(exitErr.err)
		}
		return exitErr.code
	}
	a.printError(err)
	return 1
}

func (a *app) printError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(a.errOut, a.errStyles.errorLine("Error: "+err.Error()))
}
