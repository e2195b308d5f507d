package annotator

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imgannotate/pkg/ledger"
	"imgannotate/pkg/logger"
	"imgannotate/pkg/ui"
)

func TestStartSessionFresh(t *testing.T) {
	lg := ledger.New(filepath.Join(t.TempDir(), "annotations.csv")).WithLogger(logger.NewNopLogger())
	var out bytes.Buffer

	session, err := StartSession(context.Background(), lg, ui.NewStreamConsole(strings.NewReader(" M \n"), &out), logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, &Session{Cursor: -1, Fresh: true, Initial: "M"}, session)
	data, err := os.ReadFile(lg.Path())
	require.NoError(t, err)
	assert.Equal(t, "image_index,stateM,intensityM,confidenceM\n", string(data))
}

func TestStartSessionFreshEOF(t *testing.T) {
	lg := ledger.New(filepath.Join(t.TempDir(), "annotations.csv")).WithLogger(logger.NewNopLogger())

	_, err := StartSession(context.Background(), lg, ui.NewStreamConsole(strings.NewReader(""), io.Discard), logger.NewNopLogger())
	assert.ErrorIs(t, err, io.EOF)

	exists, err := lg.Exists()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStartSessionUnreadableLedgerStillPrompts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotations.csv")
	require.NoError(t, os.WriteFile(path, []byte("img_num,stateT,intensityT,confidenceT\n0,sad,NA,NA\n"), 0644))
	lg := ledger.New(path).WithLogger(logger.NewNopLogger())
	tl := logger.NewTestLogger()

	session, err := StartSession(context.Background(), lg, ui.NewStreamConsole(strings.NewReader("0\n"), io.Discard), tl)
	require.NoError(t, err)

	assert.Equal(t, 0, session.Cursor)
	assert.False(t, session.Fresh)
	assert.True(t, tl.HasMessage("Could not scan existing ledger"))
}

func TestStartSessionResumeEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotations.csv")
	require.NoError(t, os.WriteFile(path, []byte("image_index,stateT,intensityT,confidenceT\n"), 0644))
	lg := ledger.New(path).WithLogger(logger.NewNopLogger())

	_, err := StartSession(context.Background(), lg, ui.NewStreamConsole(strings.NewReader("x\n"), io.Discard), logger.NewNopLogger())
	assert.ErrorIs(t, err, io.EOF)
}
