package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sells-group/roster-cli/internal/config"
)

// setupCmdTest points the global config at a temp roster and returns the
// temp dir. Command tests share package globals, so they do not run in
// parallel.
func setupCmdTest(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg = &config.Config{
		Store:  config.StoreConfig{Path: filepath.Join(dir, "drivers.json")},
		Import: config.ImportConfig{File: "Drivers.xls"},
		Log:    config.LogConfig{Level: "info", Format: "console"},
	}
	return dir
}

func writeFixtureWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck
	for i, row := range rows {
		require.NoError(t, setRow(f, "Sheet1", i+1, row))
	}
	require.NoError(t, f.SaveAs(path))
}
