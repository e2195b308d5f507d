package ledger

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
	"imgannotate/pkg/models"
)

// ExportRecord is the columnar form of a ledger row. Intensity and
// confidence are null for bad images.
type ExportRecord struct {
	ImageIndex int64  `parquet:"image_index"`
	Annotator  string `parquet:"annotator"`
	State      string `parquet:"state"`
	Intensity  *int32 `parquet:"intensity,optional"`
	Confidence *int32 `parquet:"confidence,optional"`
}

// ExportParquet writes every ledger row to a Parquet file at path and
// returns the number of rows written. The ledger itself is not modified.
func (lg *Ledger) ExportParquet(path string) (int, error) {
	header, rows, err := lg.Read()
	if err != nil {
		return 0, err
	}
	annotator := strings.TrimPrefix(header[1], "state")

	records := make([]ExportRecord, 0, len(rows))
	for _, row := range rows {
		rec := ExportRecord{
			ImageIndex: int64(row.ImageIndex),
			Annotator:  annotator,
			State:      string(row.State),
		}
		if row.State != models.StateBad {
			intensity, confidence := int32(row.Intensity), int32(row.Confidence)
			rec.Intensity = &intensity
			rec.Confidence = &confidence
		}
		records = append(records, rec)
	}

	if err := parquet.WriteFile(path, records); err != nil {
		return 0, fmt.Errorf("failed to write parquet export: %w", err)
	}

	lg.logger.InfoWithFields("Ledger exported", map[string]interface{}{
		"ledger": lg.path,
		"output": path,
		"rows":   len(records),
	})
	return len(records), nil
}
