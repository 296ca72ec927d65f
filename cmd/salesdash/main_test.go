package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func writeCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sales.csv")
	content := "Date,Product,Category,Sales Amount,Customer,Region\n" +
		"2024-01-15,Laptop,Electronics,999,Alice,North\n" +
		"2024-01-16,Mouse,Electronics,abc,Bob,North\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir)
	metricsPath := filepath.Join(dir, "metrics.prom")

	out, err := execute(t, "analyze", input, "--metrics-file", metricsPath)
	require.NoError(t, err)

	var bundle map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &bundle))
	kpi := bundle["kpi"].([]interface{})
	require.Len(t, kpi, 4)
	assert.Equal(t, "$999.00", kpi[0].(map[string]interface{})["value"])

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `salesdash_uploads_total{outcome="success"} 1`)
}

func TestAnalyzeCommandExport(t *testing.T) {
	dir := t.TempDir()
	input := writeCSV(t, dir)
	jsonPath := filepath.Join(dir, "out.json")
	xlsxPath := filepath.Join(dir, "out.xlsx")

	_, err := execute(t, "analyze", input, "-o", jsonPath, "--pretty", "--export", xlsxPath, "--charts")
	require.NoError(t, err)

	assert.FileExists(t, jsonPath)
	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Top Products")
}

func TestAnalyzeCommandFailures(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))

	_, err := execute(t, "analyze", filepath.Join(dir, "missing.csv"))
	assert.ErrorContains(t, err, "read failure")

	_, err = execute(t, "analyze", empty)
	assert.ErrorContains(t, err, "parse failure")

	_, err = execute(t, "analyze", empty, "--monthly", "weekly")
	assert.ErrorContains(t, err, "invalid monthly mode")
}

func TestExportSampleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")

	out, err := execute(t, "export", "--sample", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 7)
}

func TestExportCommandRequiresInput(t *testing.T) {
	_, err := execute(t, "export", "-o", filepath.Join(t.TempDir(), "x.xlsx"))
	assert.Error(t, err)
}

func TestSampleCommand(t *testing.T) {
	out, err := execute(t, "sample")
	require.NoError(t, err)
	assert.Contains(t, out, `"Premium Wireless Headphones"`)
}

func TestAnalyzeCommandSnapshot(t *testing.T) {
	input := writeCSV(t, t.TempDir())

	out, err := execute(t, "analyze", input, "--snapshot")
	require.NoError(t, err)

	var snap map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &snap))
	assert.Equal(t, "sales.csv", snap["source"])
	assert.Equal(t, true, snap["uploaded"])
	assert.NotEmpty(t, snap["id"])
	assert.Contains(t, snap, "bundle")
}

func TestAnalyzeHelpListsColumns(t *testing.T) {
	out, err := execute(t, "analyze", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "salesAmount")
	assert.Contains(t, out, "sales amount, amount, revenue, sales")
	assert.Contains(t, out, "region, country, state")
}
