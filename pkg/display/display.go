// Package display decodes images and shows them to the annotator.
//
// The actual window belongs to an external program; this package only
// checks that the file decodes, launches the viewer and tears it down when
// the annotation for that image is finished.
package display

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
	"runtime"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"imgannotate/pkg/config"
	"imgannotate/pkg/logger"
)

// Viewer shows one image at a time. Close releases whatever Show opened and
// is safe to call when nothing is shown.
//
// The "auto" viewer runs xdg-open, open or rundll32. Those hand the file to
// the desktop's default application and exit at once, so Close cannot take
// the window down and windows pile up. Use viewer "command" with a program
// that stays in the foreground (feh, eog, imv) to get one window per image.
type Viewer interface {
	Show(path string) error
	Close() error
}

// Info describes a decoded image
type Info struct {
	Format string
	Width  int
	Height int
}

// Decode reads and fully decodes the image at path
func Decode(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	return &Info{Format: format, Width: b.Dx(), Height: b.Dy()}, nil
}

// New builds the viewer selected by the display configuration
func New(cfg config.DisplayConfig) (Viewer, error) {
	switch strings.ToLower(cfg.Viewer) {
	case "none":
		return &DecodeOnlyViewer{logger: logger.GetLogger()}, nil
	case "command":
		if len(cfg.Command) == 0 {
			return nil, fmt.Errorf("display command is empty")
		}
		return NewCommandViewer(cfg.Command), nil
	case "", "auto":
		argv, err := platformOpener()
		if err != nil {
			return nil, err
		}
		return NewCommandViewer(argv), nil
	default:
		return nil, fmt.Errorf("unknown viewer %q", cfg.Viewer)
	}
}

func platformOpener() ([]string, error) {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open"}, nil
	case "darwin":
		return []string{"open"}, nil
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}, nil
	default:
		return nil, fmt.Errorf("no default image viewer for %s; set display.viewer", runtime.GOOS)
	}
}

// CommandViewer runs argv followed by the image path for each image
type CommandViewer struct {
	argv   []string
	cmd    *exec.Cmd
	logger logger.Logger
}

func NewCommandViewer(argv []string) *CommandViewer {
	return &CommandViewer{
		argv:   append([]string(nil), argv...),
		logger: logger.GetLogger(),
	}
}

// Show decodes the image then starts the viewer without waiting for it
func (v *CommandViewer) Show(path string) error {
	info, err := Decode(path)
	if err != nil {
		return err
	}

	if err := v.Close(); err != nil {
		return err
	}

	args := append(append([]string(nil), v.argv[1:]...), path)
	cmd := exec.Command(v.argv[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start viewer %s: %w", v.argv[0], err)
	}
	v.cmd = cmd

	v.logger.DebugWithFields("Image shown", map[string]interface{}{
		"path":   path,
		"format": info.Format,
		"width":  info.Width,
		"height": info.Height,
		"pid":    cmd.Process.Pid,
	})
	return nil
}

// Close stops the viewer started by the last Show
func (v *CommandViewer) Close() error {
	if v.cmd == nil {
		return nil
	}
	cmd := v.cmd
	v.cmd = nil

	// The viewer may already have exited; both errors are expected then
	_ = cmd.Process.Kill()
	_ = cmd.Wait()
	return nil
}

// DecodeOnlyViewer validates images without opening a window
type DecodeOnlyViewer struct {
	logger logger.Logger
}

func (v *DecodeOnlyViewer) Show(path string) error {
	info, err := Decode(path)
	if err != nil {
		return err
	}
	v.logger.DebugWithFields("Image decoded", map[string]interface{}{
		"path":   path,
		"format": info.Format,
	})
	return nil
}

func (v *DecodeOnlyViewer) Close() error {
	return nil
}
