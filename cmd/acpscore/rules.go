package main

import (
	"acp/config"

	"github.com/spf13/cobra"
)

func newRulesCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the compliance rules and their weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkOutput(output); err != nil {
				return err
			}

			svc, err := newService(cmd, root, config.ComplianceConfig{})
			if err != nil {
				return err
			}

			return writeRules(cmd.OutOrStdout(), output, svc.ListRules(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")

	return cmd
}
