package annotator

import (
	"strconv"
	"strings"

	errs "imgannotate/pkg/errors"
	"imgannotate/pkg/models"
)

// Choice is the outcome of the state keystroke
type Choice struct {
	State models.State
	Quit  bool
}

const (
	keyHappy       = 'a'
	keyEmbarrassed = 'l'
	keyBad         = 'g'
	keyQuit        = 'y'
)

// ParseStateKey maps a keystroke to a state or to quit
func ParseStateKey(k byte) (Choice, error) {
	switch k {
	case keyHappy:
		return Choice{State: models.StateHappy}, nil
	case keyEmbarrassed:
		return Choice{State: models.StateEmbarrassed}, nil
	case keyBad:
		return Choice{State: models.StateBad}, nil
	case keyQuit:
		return Choice{Quit: true}, nil
	default:
		return Choice{}, errs.NewInputError(errs.ErrorTypeInvalidKey, keyName(k))
	}
}

// ParseScoreKey converts a digit keystroke to a score in [1,7]
func ParseScoreKey(k byte) (int, error) {
	if k < '0' || k > '9' {
		return 0, errs.NewInputError(errs.ErrorTypeInvalidKey, keyName(k))
	}
	v := int(k - '0')
	if !models.ValidScore(v) {
		return 0, errs.NewInputError(errs.ErrorTypeOutOfRange, strconv.Itoa(v))
	}
	return v, nil
}

// ParseCursor parses the resume index typed by the annotator
func ParseCursor(line string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &errs.InputError{
			Type:    errs.ErrorTypeNotANumber,
			Input:   line,
			Message: "not a number, try again",
		}
	}
	return v, nil
}

func keyName(k byte) string {
	if k < 0x20 || k == 0x7f {
		return strconv.QuoteRune(rune(k))
	}
	return string(rune(k))
}
