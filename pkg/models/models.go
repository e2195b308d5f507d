package models

import (
	"fmt"
	"strconv"
)

type State string

const (
	StateHappy       State = "happy"
	StateEmbarrassed State = "embarrassed"
	StateBad         State = "bad"
)

const (
	MinScore = 1
	MaxScore = 7

	// NotApplicable fills intensity and confidence on bad images.
	NotApplicable = "NA"
)

// Row is one ledger entry. Build rows with NewBadRow or NewRatedRow so the
// intensity/confidence invariant always holds.
type Row struct {
	ImageIndex int
	State      State
	Intensity  int
	Confidence int
}

func NewBadRow(index int) Row {
	return Row{ImageIndex: index, State: StateBad}
}

func NewRatedRow(index int, state State, intensity, confidence int) (Row, error) {
	if state != StateHappy && state != StateEmbarrassed {
		return Row{}, fmt.Errorf("state %q cannot carry scores", state)
	}
	if !ValidScore(intensity) {
		return Row{}, fmt.Errorf("intensity %d outside [%d,%d]", intensity, MinScore, MaxScore)
	}
	if !ValidScore(confidence) {
		return Row{}, fmt.Errorf("confidence %d outside [%d,%d]", confidence, MinScore, MaxScore)
	}
	return Row{ImageIndex: index, State: state, Intensity: intensity, Confidence: confidence}, nil
}

func ValidScore(v int) bool {
	return v >= MinScore && v <= MaxScore
}

// Record renders the row as CSV fields.
func (r Row) Record() []string {
	if r.State == StateBad {
		return []string{strconv.Itoa(r.ImageIndex), string(r.State), NotApplicable, NotApplicable}
	}
	return []string{
		strconv.Itoa(r.ImageIndex),
		string(r.State),
		strconv.Itoa(r.Intensity),
		strconv.Itoa(r.Confidence),
	}
}

// ParseRecord is the inverse of Record. It rejects records that break the
// row invariant.
func ParseRecord(rec []string) (Row, error) {
	if len(rec) != 4 {
		return Row{}, fmt.Errorf("expected 4 fields, got %d", len(rec))
	}
	index, err := strconv.Atoi(rec[0])
	if err != nil {
		return Row{}, fmt.Errorf("invalid image index %q: %w", rec[0], err)
	}

	state := State(rec[1])
	if state == StateBad {
		if rec[2] != NotApplicable || rec[3] != NotApplicable {
			return Row{}, fmt.Errorf("bad image %d has scores %q/%q", index, rec[2], rec[3])
		}
		return NewBadRow(index), nil
	}

	intensity, err := strconv.Atoi(rec[2])
	if err != nil {
		return Row{}, fmt.Errorf("invalid intensity %q: %w", rec[2], err)
	}
	confidence, err := strconv.Atoi(rec[3])
	if err != nil {
		return Row{}, fmt.Errorf("invalid confidence %q: %w", rec[3], err)
	}
	return NewRatedRow(index, state, intensity, confidence)
}
