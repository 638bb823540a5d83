// Package output handles CLI output formatting for tsxrename.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ANSI sequences used for labels when writing to a terminal.
const (
	colorGreen = "\033[1;92m"
	colorRed   = "\033[1;91m"
	colorReset = "\033[0m"
)

// Config holds output configuration.
type Config struct {
	Writer    io.Writer // Per-file report destination (default: os.Stdout)
	ErrWriter io.Writer // Fatal error destination (default: os.Stderr)
	IsTTY     bool      // Whether Writer is a terminal; enables colored labels
}

// Output writes the human-readable run report.
type Output struct {
	config Config
	mu     sync.Mutex
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{
		config: config,
	}
}

// DefaultConfig returns a Config writing to stdout and stderr, with TTY detection.
func DefaultConfig() Config {
	return Config{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Info prints an informational line to Writer.
func (o *Output) Info(format string, args ...interface{}) {
	o.writeLine(o.config.Writer, fmt.Sprintf(format, args...))
}

// Error prints an error line to ErrWriter.
func (o *Output) Error(format string, args ...interface{}) {
	o.writeLine(o.config.ErrWriter, fmt.Sprintf(format, args...))
}

// Renamed reports a successful rename on Writer.
func (o *Output) Renamed(oldName, newName string) {
	o.writeLine(o.config.Writer, fmt.Sprintf("%s %s -> %s", o.label("Renamed:", colorGreen), oldName, newName))
}

// RenameFailed reports a failed rename on Writer. Failures are part of the
// run report, not fatal errors, so they share the success stream.
func (o *Output) RenameFailed(oldName string, err error) {
	o.writeLine(o.config.Writer, fmt.Sprintf("%s %s: %v", o.label("Error renaming", colorRed), oldName, err))
}

// IsTTY returns whether the output is a terminal.
func (o *Output) IsTTY() bool {
	return o.config.IsTTY
}

func (o *Output) label(text, color string) string {
	if !o.config.IsTTY {
		return text
	}
	return color + text + colorReset
}

func (o *Output) writeLine(w io.Writer, msg string) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprint(w, msg)
}
