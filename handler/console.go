package handler

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
)

// ColorMode controls whether escape sequences are written.
type ColorMode uint8

const (
	// ColorAlways writes escape sequences unconditionally (default)
	ColorAlways ColorMode = iota
	// ColorNever writes plain text
	ColorNever
	// ColorAuto writes escape sequences only to terminals
	ColorAuto
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	case ColorAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "always", "never" or "auto" to a ColorMode.
// Anything else yields ColorAlways and false.
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "always", "":
		return ColorAlways, true
	case "never":
		return ColorNever, true
	case "auto":
		return ColorAuto, true
	default:
		return ColorAlways, false
	}
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Out receives every stream except Stderr (default: stdout)
	Out io.Writer
	// Err receives the Stderr stream (default: stderr)
	Err io.Writer
	// ColorMode selects escape sequence output (default: ColorAlways)
	ColorMode ColorMode
}

// ConsoleHandler writes entries to stdout/stderr
type ConsoleHandler struct {
	mu     sync.Mutex
	out    io.Writer
	err    io.Writer
	outFmt formatter.BufferFormatter
	errFmt formatter.BufferFormatter
	buf    bytes.Buffer
	stats  *Stats
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	outColor := useColor(cfg.ColorMode, cfg.Out, os.Stdout)
	errColor := useColor(cfg.ColorMode, cfg.Err, os.Stderr)

	if cfg.Out == nil {
		cfg.Out = colorable.NewColorableStdout()
	}
	if cfg.Err == nil {
		cfg.Err = colorable.NewColorableStderr()
	}

	h := &ConsoleHandler{
		out:    cfg.Out,
		err:    cfg.Err,
		outFmt: formatter.NewTextFormatter(formatter.Config{Colors: outColor}),
		errFmt: formatter.NewTextFormatter(formatter.Config{Colors: errColor}),
		stats:  NewStats(),
	}
	h.buf.Grow(256)
	return h
}

// Handle formats an entry and writes it to the entry's stream
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	w, f := h.out, h.outFmt
	if entry.Stream == core.Stderr {
		w, f = h.err, h.errFmt
	}

	h.mu.Lock()
	h.buf.Reset()
	f.FormatEntry(entry, &h.buf)
	_, err := w.Write(h.buf.Bytes())
	if h.buf.Cap() > 64*1024 { // Don't keep a buffer inflated by one large dump
		h.buf = bytes.Buffer{}
	}
	h.mu.Unlock()

	if err != nil {
		h.stats.IncrementFailed(entry.Tag)
		return err
	}
	h.stats.IncrementWritten(entry.Tag)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the handler does not own its writers.
func (h *ConsoleHandler) Close() error {
	return nil
}

// useColor resolves mode for w; fallback is inspected when w is nil.
func useColor(mode ColorMode, w io.Writer, fallback *os.File) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAuto:
		if w == nil {
			return IsTerminal(fallback)
		}
		return IsTerminal(w)
	default:
		return true
	}
}

// IsTerminal reports whether w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
