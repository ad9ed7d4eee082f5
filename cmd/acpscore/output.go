package main

import (
	"fmt"
	"io"
	"strconv"

	"acp/internal/domain/compliance"
	"acp/internal/domain/entity"
	"acp/internal/errors"
	"acp/internal/infra/json"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

func checkOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return errors.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func writeReport(w io.Writer, format string, report *entity.ComplianceReport) error {
	switch format {
	case outputJSON:
		return writeJSON(w, report)
	case outputYAML:
		return writeYAML(w, report)
	default:
		return writeReportTable(w, report)
	}
}

func writeRules(w io.Writer, format string, rules []compliance.RuleDescriptor) error {
	switch format {
	case outputJSON:
		return writeJSON(w, rules)
	case outputYAML:
		return writeYAML(w, rules)
	default:
		return writeRulesTable(w, rules)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

// writeYAML emits v with its JSON field names. The JSON document is decoded
// into a yaml.Node so key order survives.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.WithStack(err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.WithStack(err)
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(enc.Close())
}

// blockStyle drops the flow and quoting styles inherited from JSON. The
// encoder still quotes strings that would otherwise change type.
func blockStyle(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		n.Style = 0
	case yaml.ScalarNode:
		n.Style &^= yaml.DoubleQuotedStyle
	}

	for _, child := range n.Content {
		blockStyle(child)
	}
}

func statusColor(status entity.ComplianceStatus) *color.Color {
	switch status {
	case entity.StatusCompliant:
		return color.New(color.FgHiGreen, color.Bold)
	case entity.StatusNeedsImprovement:
		return color.New(color.FgHiYellow, color.Bold)
	default:
		return color.New(color.FgHiRed, color.Bold)
	}
}

func writeReportTable(w io.Writer, report *entity.ComplianceReport) error {
	overall := entity.StatusForScore(report.OverallScore)
	heading := color.New(color.FgHiMagenta, color.Bold, color.Underline)

	heading.Fprintln(w, "Compliance report")
	fmt.Fprintf(w, "Overall score: %s\n", statusColor(overall).Sprintf("%d/100 (%s)", report.OverallScore, overall))
	fmt.Fprintf(w, "Products: %d total, %d compliant, %d need improvement, %d non-compliant\n",
		report.TotalProducts, report.CompliantProducts, report.NeedsImprovementProducts, report.NonCompliantProducts)
	fmt.Fprintf(w, "Critical gaps: %d\n", report.CriticalGaps())
	if report.ReportID != "" {
		fmt.Fprintf(w, "Report ID: %s\n", report.ReportID)
	}

	if len(report.Products) > 0 {
		fmt.Fprintln(w)
		heading.Fprintln(w, "Products")

		table := tablewriter.NewWriter(w)
		if err := table.Append([]string{"Product", "Title", "Score", "Status", "Missing", "Warnings"}); err != nil {
			return errors.Wrap(err, "append header row")
		}
		for _, p := range report.Products {
			row := []string{
				p.ProductID,
				p.Title,
				strconv.Itoa(p.ComplianceScore),
				statusColor(p.Status).Sprint(string(p.Status)),
				strconv.Itoa(len(p.MissingFields)),
				strconv.Itoa(len(p.Warnings)),
			}
			if err := table.Append(row); err != nil {
				return errors.Wrap(err, "append product row")
			}
		}
		if err := table.Render(); err != nil {
			return errors.Wrap(err, "render products table")
		}
	}

	if len(report.Recommendations) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	heading.Fprintln(w, "Recommendations")

	table := tablewriter.NewWriter(w)
	if err := table.Append([]string{"#", "Field", "Category", "Critical", "Weight", "Message"}); err != nil {
		return errors.Wrap(err, "append header row")
	}
	for i, rec := range report.Recommendations {
		critical := ""
		if rec.Critical {
			critical = color.New(color.FgHiRed, color.Bold).Sprint("yes")
		}
		row := []string{
			strconv.Itoa(i + 1),
			rec.DisplayName,
			rec.Category,
			critical,
			strconv.Itoa(rec.Weight),
			rec.Message,
		}
		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "append recommendation row")
		}
	}

	return errors.Wrap(table.Render(), "render recommendations table")
}

func writeRulesTable(w io.Writer, rules []compliance.RuleDescriptor) error {
	table := tablewriter.NewWriter(w)
	if err := table.Append([]string{"Field", "Name", "Category", "Scope", "Weight", "Critical"}); err != nil {
		return errors.Wrap(err, "append header row")
	}

	scoredWeight := 0
	for _, r := range rules {
		if r.Scope != compliance.ScopeShop {
			scoredWeight += r.Weight
		}

		critical := ""
		if r.Critical {
			critical = "yes"
		}
		row := []string{r.Field, r.DisplayName, string(r.Category), string(r.Scope), strconv.Itoa(r.Weight), critical}
		if err := table.Append(row); err != nil {
			return errors.Wrap(err, "append rule row")
		}
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "render rules table")
	}

	_, err := fmt.Fprintf(w, "%d rules, scored weight %d\n", len(rules), scoredWeight)

	return errors.WithStack(err)
}
