package annotator

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"imgannotate/pkg/ledger"
	"imgannotate/pkg/logger"
	"imgannotate/pkg/retry"
)

const initialPrompt = "Enter first letter of last name "

// Session is where an annotation run starts
type Session struct {
	// Cursor is the image_index of the last annotated image; -1 when fresh
	Cursor  int
	Fresh   bool
	Initial string
}

// StartSession creates the ledger for a new annotator or asks which image
// was annotated last when the ledger already exists.
func StartSession(ctx context.Context, lg *ledger.Ledger, console Console, log logger.Logger) (*Session, error) {
	exists, err := lg.Exists()
	if err != nil {
		return nil, err
	}

	if !exists {
		line, err := console.Prompt(initialPrompt)
		if err != nil {
			return nil, fmt.Errorf("failed to read annotator initial: %w", err)
		}
		initial := strings.TrimSpace(line)
		if err := lg.Create(initial); err != nil {
			return nil, err
		}
		return &Session{Cursor: -1, Fresh: true, Initial: initial}, nil
	}

	session := &Session{}
	summary, err := lg.Summarize()
	if err != nil {
		log.WithError(err).Warn("Could not scan existing ledger")
	} else {
		session.Initial = summary.Initial
		if summary.LastIndex >= 0 {
			console.Printf("Last image id recorded in %s: %d\n", lg.Path(), summary.LastIndex)
		}
	}

	prompt := fmt.Sprintf("Enter the image id of the last image in the %s file -> ", filepath.Base(lg.Path()))
	cursor, err := retry.DoWithResult(func() (int, error) {
		line, err := console.Prompt(prompt)
		if err != nil {
			return 0, fmt.Errorf("failed to read resume index: %w", err)
		}
		return ParseCursor(line)
	}, &retry.Config{
		Context: ctx,
		OnRetry: func(attempt int, err error) { console.Println(err) },
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	session.Cursor = cursor
	return session, nil
}
