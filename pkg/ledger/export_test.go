package ledger

import (
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imgannotate/pkg/models"
)

func TestExportParquet(t *testing.T) {
	lg, tl := newTestLedger(t)
	require.NoError(t, lg.Create("R"))

	rated, err := models.NewRatedRow(0, models.StateEmbarrassed, 2, 7)
	require.NoError(t, err)
	require.NoError(t, lg.Append(rated))
	require.NoError(t, lg.Append(models.NewBadRow(1)))

	out := filepath.Join(t.TempDir(), "annotations.parquet")
	n, err := lg.ExportParquet(out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.True(t, tl.HasMessage("Ledger exported"))

	records, err := parquet.ReadFile[ExportRecord](out)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(0), records[0].ImageIndex)
	assert.Equal(t, "R", records[0].Annotator)
	assert.Equal(t, "embarrassed", records[0].State)
	require.NotNil(t, records[0].Intensity)
	require.NotNil(t, records[0].Confidence)
	assert.Equal(t, int32(2), *records[0].Intensity)
	assert.Equal(t, int32(7), *records[0].Confidence)

	assert.Equal(t, "bad", records[1].State)
	assert.Nil(t, records[1].Intensity)
	assert.Nil(t, records[1].Confidence)
}

func TestExportParquetWithoutLedger(t *testing.T) {
	lg, _ := newTestLedger(t)
	_, err := lg.ExportParquet(filepath.Join(t.TempDir(), "out.parquet"))
	assert.Error(t, err)
}
