package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-themegen/pkg/collect"
	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/orchestrator"
	"github.com/goliatone/go-themegen/pkg/report"
	"github.com/goliatone/go-themegen/pkg/schema"
	"github.com/goliatone/go-themegen/pkg/walker"
)

type generateFlags struct {
	sourceDir string
	outputDir string
	answers   string
	writeMode string
}

func newGenerateCmd(a *app) *cobra.Command {
	flags := &generateFlags{}
	reg := schema.Default()

	cmd := &cobra.Command{
		Use:   "generate [--field value ...]",
		Short: "Write a customised theme from the template tree",
		Long: `generate copies the template tree into a new directory, substituting
every {{placeholder}} in file names and contents with the configured values.
Values come from --<field> flags, optionally layered over an --answers file.
The output directory must not exist.`,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			values := config.Values{}
			if flags.answers != "" {
				loaded, err := collect.FromFile(a.fs, flags.answers)
				if err != nil {
					return &exitError{code: 1, err: err}
				}
				values = loaded
			}
			values = values.Merge(collect.FromFlags(cmd.Flags(), reg))

			mode, err := walker.ParseMode(flags.writeMode)
			if err != nil {
				return &exitError{code: 1, err: err}
			}
			return a.runGenerate(cmd, values, flags, mode)
		},
	}

	cmd.Flags().StringVar(&flags.sourceDir, "source-dir", "", "Template directory (default: current directory)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Destination directory (default: ./"+orchestrator.DefaultOutputName+")")
	cmd.Flags().StringVar(&flags.answers, "answers", "", "JSON or YAML file with field values; flags override it")
	cmd.Flags().StringVar(&flags.writeMode, "write-mode", string(walker.ModeStaged), "How output is written: staged or direct")
	collect.RegisterFlags(cmd.Flags(), reg)
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, values config.Values, flags *generateFlags, mode walker.Mode) error {
	gen, err := a.orchestrator()
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	outcome, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Values:    values,
		SourceDir: flags.sourceDir,
		OutputDir: flags.outputDir,
		Mode:      mode,
	})
	if err != nil {
		var verr *orchestrator.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Errors {
				fmt.Fprintln(a.errOut, a.errStyles.errorLine("✗ "+msg))
			}
			return silentExit(1)
		}
		return &exitError{code: 1, err: err}
	}

	for _, warning := range outcome.Warnings {
		fmt.Fprintln(a.out, a.styles.warningLine(warning))
	}

	renderer, err := report.New()
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	if err := renderer.Render(report.Summary{
		Config:  outcome.Config,
		Command: outcome.Command,
		Walk:    &outcome.Report,
	}, a.out); err != nil {
		return err
	}

	fmt.Fprintln(a.out, a.styles.successLine(fmt.Sprintf("Theme %q generated in %s", outcome.Config.Value("name"), outcome.Report.Destination)))
	return nil
}
