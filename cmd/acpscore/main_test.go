package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"acp/internal/domain/compliance"
	"acp/internal/domain/entity"
	"acp/internal/infra/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := loadCatalog(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)
	require.Len(t, catalog.Products, 2)
	require.NotNil(t, catalog.Shop)
	assert.Equal(t, "Acme Outdoor", catalog.Shop.Name)
	assert.Len(t, catalog.Checksum, 64)
	assert.Equal(t, "https://cdn.example.com/jacket-back.jpg", catalog.Products[0].Images[1].URL)

	catalog, err = loadCatalog(filepath.Join("testdata", "products.json"))
	require.NoError(t, err)
	require.Len(t, catalog.Products, 1)
	assert.Nil(t, catalog.Shop)
}

func TestLoadCatalog_Errors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{name: "missing file", path: filepath.Join(dir, "absent.json"), message: "read catalog"},
		{name: "empty file", path: write("empty.json", "  \n"), message: "is empty"},
		{name: "malformed", path: write("bad.json", `{"products": [`), message: "parse catalog"},
		{name: "null product", path: write("null.json", `[{"id":"p1"}, null]`), message: "products[1] is null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCatalog(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules", "--output", "json")
	require.NoError(t, err)

	var rules []compliance.RuleDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &rules))
	assert.Len(t, rules, 45)

	out, err = execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "45 rules, scored weight 157")
	assert.Contains(t, out, "return_policy")
}

func TestReportCommand_JSON(t *testing.T) {
	out, err := execute(t, "report", "--file", filepath.Join("testdata", "catalog.json"), "-o", "json", "--top", "3")
	require.NoError(t, err)

	var report entity.ComplianceReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.TotalProducts)
	assert.NotEmpty(t, report.ReportID)
	assert.LessOrEqual(t, len(report.Recommendations), 3)
	require.Len(t, report.Products, 2)
	assert.Equal(t, "gid://shopify/Product/1", report.Products[0].ProductID)
	assert.Equal(t, "gid://shopify/Product/2", report.Products[1].ProductID)
}

func TestReportCommand_YAML(t *testing.T) {
	out, err := execute(t, "report", "--file", filepath.Join("testdata", "products.json"),
		"--shop", filepath.Join("testdata", "shop.json"), "-o", "yaml")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 1, doc["total_products"])
	assert.Contains(t, doc, "overall_score")
	assert.Contains(t, doc, "field_coverage")

	coverage, ok := doc["field_coverage"].(map[string]any)
	require.True(t, ok)
	sellerName, ok := coverage["seller_name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bottle Co", sellerName["example_value"])
}

func TestReportCommand_Table(t *testing.T) {
	out, err := execute(t, "report", "--file", filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	assert.Contains(t, out, "Compliance report")
	assert.Contains(t, out, "Products: 2 total")
	assert.Contains(t, out, "Trail Running Jacket")
	assert.Contains(t, out, "Recommendations")
}

func TestReportCommand_VerboseSummary(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--no-color", "-v", "report", "--file", filepath.Join("testdata", "catalog.json"), "-o", "json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "Scored 2 products from "+filepath.Join("testdata", "catalog.json"))
	assert.Contains(t, errOut.String(), "KB) in ")
	assert.NotContains(t, out.String(), "Scored 2 products")
}

func TestReportCommand_MinScore(t *testing.T) {
	_, err := execute(t, "report", "--file", filepath.Join("testdata", "catalog.json"), "-o", "json", "--min-score", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is below the required 100")

	_, err = execute(t, "report", "--file", filepath.Join("testdata", "catalog.json"), "--min-score", "101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--min-score must be within 0..100")
}

func TestReportCommand_FlagErrors(t *testing.T) {
	_, err := execute(t, "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "file" not set`)

	_, err = execute(t, "report", "--file", filepath.Join("testdata", "catalog.json"), "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestWriteYAML_PreservesStringTypes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, map[string]any{"price": "129.00", "empty": "", "count": 3}))

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, "129.00", back["price"])
	assert.Equal(t, "", back["empty"])
	assert.Equal(t, 3, back["count"])
}
