package formatter

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/palette"
)

var (
	timestampColor = palette.MustLookup("cyan")
	dumpColor      = palette.MustLookup("white")
)

// TraceFooter closes every trace block.
const TraceFooter = "end trace"

// TextFormatter formats entries as colored terminal text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry into buf (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Kind == core.TraceKind {
		f.formatTrace(entry, buf)
		return
	}
	f.writeHeader(entry, buf)
	buf.WriteString(entry.Message)
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
	buf.WriteByte('\n')
}

// seq returns the escape sequence for c, or "" when colors are off.
func (f *TextFormatter) seq(c palette.Color) string {
	if !f.Colors {
		return ""
	}
	return c.Sequence()
}

func (f *TextFormatter) reset() string {
	if !f.Colors {
		return ""
	}
	return palette.Reset
}

// writeHeader writes everything up to and including ": <reset>".
func (f *TextFormatter) writeHeader(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(f.seq(entry.Color))
	buf.WriteString(entry.Tag.Title())
	buf.WriteString(f.reset())
	buf.WriteString(f.seq(timestampColor))
	buf.WriteString("\t(")
	buf.WriteString(entry.Timestamp)
	buf.WriteByte(')')
	if entry.Caller != nil {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.Name())
		buf.WriteByte(']')
	}
	buf.WriteString(": ")
	buf.WriteString(f.reset())
}

func (f *TextFormatter) formatTrace(entry *core.Entry, buf *bytes.Buffer) {
	f.writeHeader(entry, buf)
	buf.WriteString(argumentCount(len(entry.Values)))
	buf.WriteByte('\n')

	in := Inspector{MaxDepth: entry.MaxDepth}
	for i, v := range entry.Values {
		for j, line := range in.Lines(v) {
			buf.WriteString(f.seq(entry.Color))
			if j == 0 {
				buf.WriteByte('[')
				buf.WriteString(strconv.Itoa(i))
				buf.WriteByte(']')
			} else {
				buf.WriteByte('*')
			}
			buf.WriteByte('\t')
			buf.WriteString(f.reset())
			buf.WriteString(f.seq(dumpColor))
			buf.WriteString(strings.TrimRight(line, "\r"))
			buf.WriteString(f.reset())
			buf.WriteByte('\n')
		}
	}

	buf.WriteString(f.seq(entry.Color))
	buf.WriteString(TraceFooter)
	buf.WriteString(f.reset())
	buf.WriteByte('\n')
}

func argumentCount(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return strconv.Itoa(n) + " arguments"
}
