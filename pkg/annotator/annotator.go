package annotator

import (
	"context"
	"errors"
	"fmt"

	"imgannotate/pkg/display"
	errs "imgannotate/pkg/errors"
	"imgannotate/pkg/imageset"
	"imgannotate/pkg/ledger"
	"imgannotate/pkg/logger"
	"imgannotate/pkg/models"
	"imgannotate/pkg/retry"
	"imgannotate/pkg/ui"
)

const (
	stateGuidance      = "Annotate: a = Happy, l = Embarrassed, g = bad image, y = Quit"
	intensityGuidance  = "Choose emotion intensity between 1:7"
	confidenceGuidance = "Choose your annotation confidence between 1:7"
)

// Console is the interactive side of a session
type Console interface {
	Prompt(msg string) (string, error)
	ReadKey() (byte, error)
	Println(a ...interface{})
	Printf(format string, a ...interface{})
}

// Outcome summarizes a Run
type Outcome struct {
	Annotated int
	Quit      bool
	// LastIndex is the last image_index written, or the starting cursor
	// when nothing was written.
	LastIndex int
	Total     int
}

// Annotator owns one pass over the image set
type Annotator struct {
	images  *imageset.Set
	ledger  *ledger.Ledger
	console Console
	viewer  display.Viewer
	logger  logger.Logger
}

func New(images *imageset.Set, lg *ledger.Ledger, console Console, viewer display.Viewer) *Annotator {
	return &Annotator{
		images:  images,
		ledger:  lg,
		console: console,
		viewer:  viewer,
		logger:  logger.GetLogger(),
	}
}

// WithLogger replaces the logger
func (a *Annotator) WithLogger(l logger.Logger) *Annotator {
	a.logger = l
	return a
}

// Run annotates every image whose index is greater than cursor, in order.
// It stops early, without error, when the annotator quits.
func (a *Annotator) Run(ctx context.Context, cursor int) (*Outcome, error) {
	out := &Outcome{LastIndex: cursor, Total: a.images.Len()}
	if cursor >= a.images.Len()-1 {
		return out, nil
	}

	start := cursor + 1
	if start < 0 {
		start = 0
	}

	for i := start; i < a.images.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		row, err := a.annotate(ctx, i)
		if errors.Is(err, errs.ErrQuit) {
			_ = a.viewer.Close()
			out.Quit = true
			a.logger.InfoWithFields("Annotator quit", map[string]interface{}{
				"image_index": i,
			})
			return out, nil
		}
		if err != nil {
			_ = a.viewer.Close()
			return out, err
		}

		if err := a.ledger.Append(row); err != nil {
			return out, err
		}
		out.Annotated++
		out.LastIndex = i
	}

	return out, nil
}

type stage int

const (
	stageDisplay stage = iota
	stageAwaitState
	stageAwaitIntensity
	stageAwaitConfidence
	stageEmit
)

// annotate walks one image through the state machine and returns the row
// to persist, or errs.ErrQuit.
func (a *Annotator) annotate(ctx context.Context, i int) (models.Row, error) {
	path := a.images.Path(i)
	log := a.logger.WithFields(map[string]interface{}{
		"image_index": i,
		"image":       a.images.Name(i),
	})

	var (
		state      models.State
		intensity  int
		confidence int
	)

	st := stageDisplay
	for {
		switch st {
		case stageDisplay:
			if err := a.viewer.Show(path); err != nil {
				return models.Row{}, err
			}
			log.Debug("Awaiting annotation")
			st = stageAwaitState

		case stageAwaitState:
			choice, err := a.readState(ctx, log)
			if err != nil {
				return models.Row{}, err
			}
			if choice.Quit {
				return models.Row{}, errs.ErrQuit
			}
			state = choice.State
			if state == models.StateBad {
				a.console.Println("bad image")
				st = stageEmit
			} else {
				st = stageAwaitIntensity
			}

		case stageAwaitIntensity:
			v, err := a.readScore(ctx, log, intensityGuidance)
			if err != nil {
				return models.Row{}, err
			}
			intensity = v
			st = stageAwaitConfidence

		case stageAwaitConfidence:
			v, err := a.readScore(ctx, log, confidenceGuidance)
			if err != nil {
				return models.Row{}, err
			}
			confidence = v
			st = stageEmit

		case stageEmit:
			if err := a.viewer.Close(); err != nil {
				return models.Row{}, err
			}
			if state == models.StateBad {
				return models.NewBadRow(i), nil
			}
			return models.NewRatedRow(i, state, intensity, confidence)

		default:
			return models.Row{}, fmt.Errorf("unknown annotation stage %d", st)
		}
	}
}

func (a *Annotator) readState(ctx context.Context, log logger.Logger) (Choice, error) {
	a.console.Println(stateGuidance)
	return retry.DoWithResult(func() (Choice, error) {
		k, err := a.readKey()
		if err != nil {
			return Choice{}, err
		}
		return ParseStateKey(k)
	}, &retry.Config{
		Context: ctx,
		Logger:  log,
		OnRetry: func(attempt int, err error) {
			a.console.Println(err)
			a.console.Println(stateGuidance)
		},
	})
}

func (a *Annotator) readScore(ctx context.Context, log logger.Logger, guidance string) (int, error) {
	a.console.Println(guidance)
	return retry.DoWithResult(func() (int, error) {
		k, err := a.readKey()
		if err != nil {
			return 0, err
		}
		return ParseScoreKey(k)
	}, &retry.Config{
		Context: ctx,
		Logger:  log,
		OnRetry: func(attempt int, err error) {
			a.console.Println(err)
			a.console.Println(guidance)
		},
	})
}

// readKey turns a raw-mode Ctrl-C into a quit request at any stage
func (a *Annotator) readKey() (byte, error) {
	k, err := a.console.ReadKey()
	if errors.Is(err, ui.ErrInterrupted) {
		return 0, errs.ErrQuit
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read keystroke: %w", err)
	}
	return k, nil
}
