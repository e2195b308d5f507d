package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned by ReadKey when Ctrl-C arrives in raw mode,
// where the terminal no longer turns it into SIGINT.
var ErrInterrupted = errors.New("interrupted")

const ctrlC = 0x03

// Console reads prompts and single keystrokes and writes guidance text.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	raw bool
}

// NewConsole wraps stdin/stdout. Keystrokes are read in raw mode when stdin
// is a terminal.
func NewConsole(in *os.File, out io.Writer) *Console {
	fd := int(in.Fd())
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
		raw: term.IsTerminal(fd),
	}
}

// NewStreamConsole reads from a plain stream. Newlines between keystrokes
// are ignored, so "a\n5\n6\n" and "a56" are the same input.
func NewStreamConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
}

// Prompt prints msg and returns the next input line without its newline.
// A final line without a newline is returned as-is; io.EOF only comes back
// when nothing was read.
func (c *Console) Prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey blocks until one keystroke is available.
func (c *Console) ReadKey() (byte, error) {
	if c.raw {
		return c.readRawKey()
	}
	for {
		b, err := c.in.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == '\n' || b == '\r' {
			continue
		}
		return b, nil
	}
}

func (c *Console) readRawKey() (byte, error) {
	state, err := term.MakeRaw(c.fd)
	if err != nil {
		return 0, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(c.fd, state)

	b, err := c.in.ReadByte()
	if err != nil {
		return 0, err
	}
	if b == ctrlC {
		return 0, ErrInterrupted
	}
	return b, nil
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}
