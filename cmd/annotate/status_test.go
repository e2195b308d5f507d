package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imgannotate/pkg/config"
	"imgannotate/pkg/imageset"
	"imgannotate/pkg/ledger"
	"imgannotate/pkg/models"
)

func writeDataset(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0644))
	}
	return dir
}

func TestStatusRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotations.csv")
	lg := ledger.New(path)
	require.NoError(t, lg.Create("K"))

	happy, err := models.NewRatedRow(0, models.StateHappy, 4, 5)
	require.NoError(t, err)
	require.NoError(t, lg.Append(happy))
	require.NoError(t, lg.Append(models.NewBadRow(1)))

	summary, err := lg.Summarize()
	require.NoError(t, err)

	images, err := imageset.Load(writeDataset(t, "0.jpg", "1.jpg", "2.jpg", "3.jpg"))
	require.NoError(t, err)

	rows := statusRows(path, summary, images)
	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r[0]] = r[1]
	}

	assert.Equal(t, "K", values["Annotator"])
	assert.Equal(t, "2", values["Rows"])
	assert.Equal(t, "1", values["Happy"])
	assert.Equal(t, "0", values["Embarrassed"])
	assert.Equal(t, "1", values["Bad"])
	assert.Equal(t, "1", values["Last image id"])
	assert.Equal(t, "2", values["Remaining"])
	assert.Equal(t, "2.jpg", values["Next image"])
}

func TestStatusRowsLedgerPastDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotations.csv")
	lg := ledger.New(path)
	require.NoError(t, lg.Create("K"))
	require.NoError(t, lg.Append(models.NewBadRow(5)))

	summary, err := lg.Summarize()
	require.NoError(t, err)

	images, err := imageset.Load(writeDataset(t, "0.jpg", "1.jpg"))
	require.NoError(t, err)

	rows := statusRows(path, summary, images)
	assert.Equal(t, []string{"Remaining", "0"}, rows[len(rows)-2])
	assert.Equal(t, []string{"Next image", "none"}, rows[len(rows)-1])
}

func TestStatusRowsWithoutDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotations.csv")
	lg := ledger.New(path)
	require.NoError(t, lg.Create("Q"))

	summary, err := lg.Summarize()
	require.NoError(t, err)

	rows := statusRows(path, summary, nil)
	last := rows[len(rows)-1]
	assert.Equal(t, []string{"Dataset", "unavailable"}, last)

	for _, r := range rows {
		if r[0] == "Last image id" {
			assert.Equal(t, "none", r[1])
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Field", "Value"}, [][]string{{"Rows", "12"}, {"Bad"}}, []columnAlignment{alignLeft, alignRight})

	assert.Contains(t, out, "Field")
	assert.Contains(t, out, "Rows")
	assert.Contains(t, out, "12")
	assert.True(t, strings.HasPrefix(out, "╭"))
	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestCheckPaths(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dataset.Directory = writeDataset(t, "1.jpg", "2.png")
	cfg.Ledger.Path = filepath.Join(t.TempDir(), "annotations.csv")

	problems, warnings := checkPaths(cfg)
	assert.Empty(t, problems)
	assert.Empty(t, warnings)

	cfg.Dataset.Directory = writeDataset(t, "cover.jpeg")
	cfg.Ledger.Path = filepath.Join(t.TempDir(), "missing", "annotations.csv")
	problems, _ = checkPaths(cfg)
	assert.Len(t, problems, 2)

	cfg.Dataset.Directory = writeDataset(t)
	cfg.Ledger.Path = filepath.Join(t.TempDir(), "annotations.csv")
	_, warnings = checkPaths(cfg)
	assert.Len(t, warnings, 1)
}
