package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-themegen/pkg/collect"
	"github.com/goliatone/go-themegen/pkg/command"
	"github.com/goliatone/go-themegen/pkg/logging"
	"github.com/goliatone/go-themegen/pkg/orchestrator"
	"github.com/goliatone/go-themegen/pkg/report"
	"github.com/goliatone/go-themegen/pkg/schema"
	"github.com/goliatone/go-themegen/pkg/wizard"
)

type rootFlags struct {
	schema       bool
	schemaFormat string
	validate     string
	json         bool
}

func newRootCmd(a *app) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   programName,
		Short: "Generate a customised block theme from a template tree",
		Long: `themegen collects theme configuration, validates it against a staged
schema and writes a customised copy of the template tree.

Without flags it runs the interactive wizard. Agents can use --schema,
--validate and --json; the generate subcommand writes the theme.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogging()
			a.logger.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case flags.schema:
				return a.runSchema(flags.schemaFormat)
			case cmd.Flags().Changed("validate"):
				return a.runValidate(flags.validate)
			case flags.json:
				return a.runJSON()
			default:
				return a.runWizard(cmd.Context())
			}
		},
	}

	cmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.Flags().BoolVar(&flags.schema, "schema", false, "Print the configuration schema and exit")
	cmd.Flags().StringVar(&flags.schemaFormat, "schema-format", "json", "Schema format: json, yaml or openapi")
	cmd.Flags().StringVar(&flags.validate, "validate", "", "Validate a JSON configuration and print the result")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Read a JSON configuration from stdin and print the generation command")

	cmd.AddCommand(newGenerateCmd(a))
	return cmd
}

func (a *app) runSchema(format string) error {
	reg := schema.Default()

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		data, err = json.MarshalIndent(reg, "", "  ")
	case "yaml", "yml":
		var buf strings.Builder
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(reg); err == nil {
			err = enc.Close()
		}
		data = []byte(buf.String())
	case "openapi":
		data, err = json.MarshalIndent(reg.OpenAPISchema(), "", "  ")
	default:
		return &exitError{code: 1, err: fmt.Errorf("unknown schema format %q (want json, yaml or openapi)", format)}
	}
	if err != nil {
		return &exitError{code: 1, err: fmt.Errorf("encode schema: %w", err)}
	}

	if _, err := a.out.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(a.out, "\n")
	}
	return err
}

func (a *app) runValidate(raw string) error {
	values, err := collect.FromJSON(strings.NewReader(raw))
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	gen, err := a.orchestrator()
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	res := gen.Validate(values)
	if err := command.Write(a.out, res); err != nil {
		return err
	}
	if !res.Valid {
		return silentExit(1)
	}
	return nil
}

func (a *app) runJSON() error {
	// stderr carries the failure document; warnings are already part of it.
	if a.verbosity == 0 {
		a.logger = zerolog.Nop()
	}
	fail := func(err error) error {
		if werr := command.Write(a.errOut, command.NewFailure(err)); werr != nil {
			return werr
		}
		return silentExit(1)
	}

	values, err := collect.FromJSON(a.in)
	if err != nil {
		return fail(err)
	}
	gen, err := a.orchestrator()
	if err != nil {
		return fail(err)
	}
	res, err := gen.Assemble(values)
	if err != nil {
		return fail(err)
	}
	if !res.Valid {
		if err := command.Write(a.errOut, command.NewInvalid(res.Errors, res.Warnings)); err != nil {
			return err
		}
		return silentExit(1)
	}
	return command.Write(a.out, command.NewSuccess(res.Config, programName, res.Warnings))
}

func (a *app) runWizard(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.driver == nil && !a.terminal(a.in) {
		return &exitError{code: 1, err: errors.New("interactive mode needs a terminal on stdin; use --json, --validate or generate")}
	}

	opts := []wizard.Option{
		wizard.WithLogger(logging.Component(a.logger, "wizard")),
		wizard.WithTheme(wizard.Theme{ErrorPrefix: "✗ "}),
	}
	if a.driver != nil {
		opts = append(opts, wizard.WithPromptDriver(a.driver))
	}
	wiz, err := wizard.New(schema.Default(), opts...)
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	values, err := wiz.Run(ctx)
	if err != nil {
		var stageErr *wizard.StageError
		if errors.As(err, &stageErr) {
			return &exitError{code: 1, err: fmt.Errorf("%s is incomplete: %s", stageErr.Title, strings.Join(stageErr.Errors, "; "))}
		}
		return &exitError{code: 1, err: err}
	}

	gen, err := a.orchestrator()
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	res, err := gen.Assemble(values)
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	if !res.Valid {
		return &exitError{code: 1, err: &orchestrator.ValidationError{Errors: res.Errors, Warnings: res.Warnings}}
	}

	renderer, err := report.New()
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	fmt.Fprintln(a.out, a.styles.headerLine("Configuration complete"))
	return renderer.Render(report.Summary{
		Config:   res.Config,
		Warnings: res.Warnings,
		Command:  gen.Command(res.Config),
	}, a.out)
}
