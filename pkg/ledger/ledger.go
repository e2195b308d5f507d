package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"imgannotate/pkg/logger"
	"imgannotate/pkg/models"
)

// DefaultPath is where the ledger lives when nothing else is configured
const DefaultPath = "annotations.csv"

// Ledger is a handle on the CSV file. It holds no open file between calls.
type Ledger struct {
	path   string
	logger logger.Logger
}

// Summary describes the rows already in a ledger
type Summary struct {
	Header    []string
	Initial   string
	Rows      int
	LastIndex int
	ByState   map[models.State]int
}

func New(path string) *Ledger {
	if path == "" {
		path = DefaultPath
	}
	return &Ledger{
		path:   path,
		logger: logger.GetLogger(),
	}
}

// WithLogger returns a copy of the ledger using l
func (lg *Ledger) WithLogger(l logger.Logger) *Ledger {
	return &Ledger{path: lg.path, logger: l}
}

func (lg *Ledger) Path() string {
	return lg.path
}

// Exists reports whether the ledger file is present
func (lg *Ledger) Exists() (bool, error) {
	_, err := os.Stat(lg.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat ledger: %w", err)
}

// Header builds the header row for an annotator initial
func Header(initial string) []string {
	return []string{
		"image_index",
		"state" + initial,
		"intensity" + initial,
		"confidence" + initial,
	}
}

// Create writes a new ledger containing only the header. It fails if the
// file already exists.
func (lg *Ledger) Create(initial string) error {
	file, err := os.OpenFile(lg.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create ledger: %w", err)
	}

	if err := writeRecord(file, Header(initial)); err != nil {
		file.Close()
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close ledger: %w", err)
	}

	lg.logger.InfoWithFields("Ledger created", map[string]interface{}{
		"path":    lg.path,
		"initial": initial,
	})
	return nil
}

// Append writes one row and closes the file before returning
func (lg *Ledger) Append(row models.Row) error {
	file, err := os.OpenFile(lg.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}

	rec := row.Record()
	if err := writeRecord(file, rec); err != nil {
		file.Close()
		return fmt.Errorf("failed to append row %d: %w", row.ImageIndex, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close ledger: %w", err)
	}

	logger.LogAnnotation(lg.logger, row.ImageIndex, rec[1], rec[2], rec[3])
	return nil
}

func writeRecord(file *os.File, rec []string) error {
	w := csv.NewWriter(file)
	if err := w.Write(rec); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Sync()
}

// Read returns the header and every row in file order
func (lg *Ledger) Read() ([]string, []models.Row, error) {
	file, err := os.Open(lg.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 4

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("ledger %s is empty", lg.path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read ledger header: %w", err)
	}

	var rows []models.Row
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read ledger: %w", err)
		}
		row, err := models.ParseRecord(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// Summarize scans the ledger. LastIndex is the image_index of the final
// row, or -1 when only the header is present.
func (lg *Ledger) Summarize() (*Summary, error) {
	header, rows, err := lg.Read()
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Header:    header,
		Initial:   strings.TrimPrefix(header[1], "state"),
		Rows:      len(rows),
		LastIndex: -1,
		ByState:   make(map[models.State]int),
	}
	for _, row := range rows {
		s.ByState[row.State]++
	}
	if len(rows) > 0 {
		s.LastIndex = rows[len(rows)-1].ImageIndex
	}

	return s, nil
}
