package logger

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSessionStart logs the resume point of an annotation session
func LogSessionStart(ledgerPath string, cursor int, fresh bool) {
	GetLogger().WithFields(map[string]interface{}{
		"ledger": ledgerPath,
		"cursor": cursor,
		"fresh":  fresh,
	}).Info("Annotation session started")
}

// LogAnnotation logs a ledger row that was just persisted
func LogAnnotation(l Logger, index int, state string, intensity, confidence string) {
	l.WithFields(map[string]interface{}{
		"image_index": index,
		"state":       state,
		"intensity":   intensity,
		"confidence":  confidence,
	}).Debug("Annotation recorded")
}

// LogSessionEnd logs how a session finished
func LogSessionEnd(annotated int, quit bool, reason string) {
	GetLogger().WithFields(map[string]interface{}{
		"annotated": annotated,
		"quit":      quit,
		"reason":    reason,
	}).Info("Annotation session ended")
}

// NewNopLogger creates a no-operation logger
func NewNopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) WithContext(ctx context.Context) Logger                    { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}

func (n *nopLogger) GetZerolog() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}
