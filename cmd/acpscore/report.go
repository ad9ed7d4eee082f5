package main

import (
	"fmt"
	"time"

	"acp/config"
	"acp/internal/domain/compliance"
	"acp/internal/domain/constants"
	"acp/internal/errors"
	"acp/internal/usecase"
	"acp/internal/util"

	"github.com/spf13/cobra"
)

type reportOptions struct {
	file     string
	shop     string
	output   string
	minScore int
	top      int
}

func newReportCmd(root *rootOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a compliance report for a catalog file",
		Example: `  acpscore report --file catalog.json
  acpscore report --file products.json --shop shop.json --output yaml
  acpscore report --file catalog.json --min-score 80`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Catalog JSON: a product array or {products, shop}")
	cmd.Flags().StringVar(&opts.shop, "shop", "", "Shop JSON, overrides the shop embedded in the catalog")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.Flags().IntVar(&opts.minScore, "min-score", 0, "Fail when the overall score is below this value")
	cmd.Flags().IntVar(&opts.top, "top", compliance.DefaultMaxRecommendations, "Number of recommendations to keep")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runReport(cmd *cobra.Command, root *rootOptions, opts *reportOptions) error {
	if err := checkOutput(opts.output); err != nil {
		return err
	}
	if opts.minScore < 0 || opts.minScore > 100 {
		return errors.Errorf("--min-score must be within 0..100, got %d", opts.minScore)
	}

	catalog, err := loadCatalog(opts.file)
	if err != nil {
		return err
	}
	if opts.shop != "" {
		if catalog.Shop, err = loadShop(opts.shop); err != nil {
			return err
		}
	}

	svc, err := newService(cmd, root, config.ComplianceConfig{
		MaxProducts:        max(len(catalog.Products), 1),
		MaxRecommendations: opts.top,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := svc.GenerateReport(cmd.Context(), &usecase.CatalogInput{
		Products: catalog.Products,
		Shop:     catalog.Shop,
		Source:   constants.SourceCLI,
		Checksum: catalog.Checksum,
	})
	if err != nil {
		return err
	}

	if root.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Scored %d products from %s (%s) in %s\n",
			len(catalog.Products), opts.file, util.FormatBytes(catalog.Size), util.FormatDuration(time.Since(start)))
	}

	if err := writeReport(cmd.OutOrStdout(), opts.output, report); err != nil {
		return err
	}

	if report.OverallScore < opts.minScore {
		return errors.Errorf("overall score %d is below the required %d", report.OverallScore, opts.minScore)
	}

	return nil
}
