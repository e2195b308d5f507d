package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"imgannotate/pkg/annotator"
	"imgannotate/pkg/ui"
)

type recordingSender struct {
	titles []string
}

func (r *recordingSender) Send(title, message string) error {
	r.titles = append(r.titles, title)
	return nil
}

func TestReportOutcomeQuitDoesNotNotify(t *testing.T) {
	var out bytes.Buffer
	sender := &recordingSender{}

	reportOutcome(&out, ui.NewNotifierWithSender(&out, sender), &annotator.Outcome{Annotated: 2, Quit: true, LastIndex: 4}, true)

	assert.Empty(t, sender.titles)
	assert.Contains(t, out.String(), "Session saved: 2 annotated this session, last image id 4")
}

func TestReportOutcomeExhaustedNotifies(t *testing.T) {
	var out bytes.Buffer
	sender := &recordingSender{}

	reportOutcome(&out, ui.NewNotifierWithSender(&out, sender), &annotator.Outcome{Annotated: 3, Total: 3}, true)

	assert.Equal(t, []string{"Annotation complete"}, sender.titles)
	assert.Contains(t, out.String(), "Annotation complete")
}

func TestReportOutcomeExhaustedWithoutOnComplete(t *testing.T) {
	var out bytes.Buffer
	sender := &recordingSender{}

	reportOutcome(&out, ui.NewNotifierWithSender(&out, sender), &annotator.Outcome{Annotated: 1, Total: 5}, false)

	assert.Empty(t, sender.titles)
	assert.Contains(t, out.String(), "Annotation complete: 1 annotated this session")
}
