package main

import (
	"log/slog"

	"acp/config"
	logs "acp/internal/infra/log"
	"acp/internal/usecase"
	"acp/internal/usecase/impl"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Output formats.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type rootOptions struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "acpscore",
		Short: "Score product catalogs for agentic commerce feed compliance",
		Long: `acpscore rates how complete an exported product catalog is against the
agentic commerce product feed rules, and explains what to fix first.

Use it in CI with --min-score to fail a pipeline when a catalog regresses.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newReportCmd(opts))
	cmd.AddCommand(newRulesCmd(opts))

	return cmd
}

// newService builds the scoring use case without event or metrics sinks.
func newService(cmd *cobra.Command, opts *rootOptions, limits config.ComplianceConfig) (usecase.ComplianceUsecase, error) {
	level := "warn"
	if opts.verbose {
		level = "debug"
	}

	logger, err := logs.NewWithWriter(cmd.ErrOrStderr(), config.Log{Pretty: true, Level: level})
	if err != nil {
		return nil, err
	}

	cfg := &config.Config{Compliance: &limits}
	cfg.ApplyDefaults()

	return impl.NewComplianceService(cfg, logger.With(slog.String("command", cmd.Name())), nil, nil), nil
}
