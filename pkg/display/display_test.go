package display

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"imgannotate/pkg/config"
)

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestDecode(t *testing.T) {
	path := writePNG(t, t.TempDir(), "0.png")

	info, err := Decode(path)
	require.NoError(t, err)
	assert.Equal(t, "png", info.Format)
	assert.Equal(t, 4, info.Width)
	assert.Equal(t, 3, info.Height)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := Decode(path)
	assert.Error(t, err)

	_, err = Decode(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}

func TestNewSelectsViewer(t *testing.T) {
	v, err := New(config.DisplayConfig{Viewer: "none"})
	require.NoError(t, err)
	assert.IsType(t, &DecodeOnlyViewer{}, v)

	v, err = New(config.DisplayConfig{Viewer: "command", Command: []string{"feh"}})
	require.NoError(t, err)
	assert.IsType(t, &CommandViewer{}, v)

	_, err = New(config.DisplayConfig{Viewer: "command"})
	assert.Error(t, err)

	_, err = New(config.DisplayConfig{Viewer: "hologram"})
	assert.Error(t, err)
}

func TestDecodeOnlyViewer(t *testing.T) {
	v, err := New(config.DisplayConfig{Viewer: "none"})
	require.NoError(t, err)

	require.NoError(t, v.Show(writePNG(t, t.TempDir(), "1.png")))
	assert.NoError(t, v.Close())
}

func TestCommandViewerLifecycle(t *testing.T) {
	bin, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true(1) not available")
	}

	v := NewCommandViewer([]string{bin})
	dir := t.TempDir()

	require.NoError(t, v.Show(writePNG(t, dir, "0.png")))
	assert.NotNil(t, v.cmd)

	// Showing the next image replaces the previous viewer
	require.NoError(t, v.Show(writePNG(t, dir, "1.png")))
	require.NoError(t, v.Close())
	assert.Nil(t, v.cmd)

	// Closing twice is harmless
	assert.NoError(t, v.Close())
}

func TestCommandViewerDecodeFailureStartsNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "0.jpg")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0644))

	v := NewCommandViewer([]string{"does-not-matter"})
	assert.Error(t, v.Show(path))
	assert.Nil(t, v.cmd)
}
