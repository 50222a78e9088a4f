package logger

import (
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/formatter"
	"github.com/philipp01105/taglog/handler"
	"github.com/philipp01105/taglog/palette"
)

// DateFunc renders the timestamp shown in each line.
type DateFunc func(t time.Time) string

// DefaultDateFunc renders a locale-style wall clock time, e.g. "3:04:05 PM".
func DefaultDateFunc(t time.Time) string {
	return t.Format("3:04:05 PM")
}

type tagState struct {
	color  palette.Color
	active bool
}

// Logger writes tagged, colored lines. The tag set is fixed; colors,
// active flags and settings may change at any time and are safe for
// concurrent use.
type Logger struct {
	handler handler.Handler

	mu               sync.RWMutex
	tags             map[Tag]*tagState
	maxDepth         int
	showFunctionName bool
	dateFunc         DateFunc
	now              func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler          handler.Handler
	out              io.Writer
	err              io.Writer
	colorMode        handler.ColorMode
	maxDepth         int
	showFunctionName bool
	dateFunc         DateFunc
	now              func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		maxDepth: formatter.DefaultMaxDepth,
		dateFunc: DefaultDateFunc,
		now:      time.Now,
	}
}

// WithHandler sets the handler. It takes precedence over WithOutput,
// WithErrorOutput and WithColorMode.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithOutput sets the writer for every tag except error
func (b *Builder) WithOutput(w io.Writer) *Builder {
	b.out = w
	return b
}

// WithErrorOutput sets the writer for the error tag and diagnostics
func (b *Builder) WithErrorOutput(w io.Writer) *Builder {
	b.err = w
	return b
}

// WithColorMode sets whether escape sequences are written
func (b *Builder) WithColorMode(m handler.ColorMode) *Builder {
	b.colorMode = m
	return b
}

// WithObjectMaxDepth sets the inspection depth used by Trace
func (b *Builder) WithObjectMaxDepth(n int) *Builder {
	b.maxDepth = n
	return b
}

// WithShowFunctionName enables the [pkg.Func] caller suffix
func (b *Builder) WithShowFunctionName(enabled bool) *Builder {
	b.showFunctionName = enabled
	return b
}

// WithDateFunc sets the timestamp renderer
func (b *Builder) WithDateFunc(fn DateFunc) *Builder {
	if fn != nil {
		b.dateFunc = fn
	}
	return b
}

// WithClock sets the time source
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		h = handler.NewConsoleHandler(handler.ConsoleConfig{
			Out:       b.out,
			Err:       b.err,
			ColorMode: b.colorMode,
		})
	}

	tags := make(map[Tag]*tagState, len(core.Tags))
	for _, t := range core.Tags {
		tags[t] = &tagState{color: palette.MustLookup(defaultColors[t]), active: true}
	}

	return &Logger{
		handler:          h,
		tags:             tags,
		maxDepth:         b.maxDepth,
		showFunctionName: b.showFunctionName,
		dateFunc:         b.dateFunc,
		now:              b.now,
	}
}

// New returns a Logger writing to stdout and stderr with default
// colors, every tag active, depth 3 and caller names hidden.
func New() *Logger {
	return NewBuilder().Build()
}

// SetColor recolors tag. Tag and color are validated independently and
// each failure is reported as an error diagnostic; on any failure the
// tag keeps its color.
func (l *Logger) SetColor(tag, color string) error {
	return l.setColor(1, tag, color)
}

func (l *Logger) setColor(skip int, tag, color string) error {
	c, colorOK := palette.Lookup(color)
	t, tagOK := core.ParseTag(tag)

	var err error
	if !colorOK {
		l.diagnose(skip+1, "Failed to set color of tag with name %s. The color (%s) is not a valid color.",
			string(t), strings.ToLower(color))
		err = multierr.Append(err, unknownColor(color))
	}
	if !tagOK {
		l.diagnose(skip+1, "Failed to set color of tag with name %s. The tag does not exist.", string(t))
		err = multierr.Append(err, unknownTag(tag))
	}
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.tags[t].color = c
	l.mu.Unlock()
	return nil
}

// SetActive sets the active flag of each named tag. Unknown names are
// reported and skipped; the remaining names are still applied.
func (l *Logger) SetActive(active bool, tags ...string) error {
	return l.setActive(1, active, tags)
}

func (l *Logger) setActive(skip int, active bool, tags []string) error {
	state := "Inactive"
	if active {
		state = "Active"
	}

	var err error
	for _, name := range tags {
		t, ok := core.ParseTag(name)
		if !ok {
			l.diagnose(skip+1, "Failed to set tag %s to %s, tag does not exist.", string(t), state)
			err = multierr.Append(err, unknownTag(name))
			continue
		}
		l.mu.Lock()
		l.tags[t].active = active
		l.mu.Unlock()
	}
	return err
}

// Tags returns a copy of the tag name to active flag mapping.
func (l *Logger) Tags() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	m := make(map[string]bool, len(l.tags))
	for t, st := range l.tags {
		m[string(t)] = st.active
	}
	return m
}

// Active reports whether tag is active. ok is false, and a diagnostic
// is written, when the tag does not exist.
func (l *Logger) Active(tag string) (active, ok bool) {
	t, known := core.ParseTag(tag)
	if !known {
		l.diagnose(1, "Failed to get tag %s, tag does not exist.", string(t))
		return false, false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tags[t].active, true
}

// Color returns the current color of tag.
func (l *Logger) Color(tag string) (palette.Color, bool) {
	t, ok := core.ParseTag(tag)
	if !ok {
		return palette.Color{}, false
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tags[t].color, true
}

// SetObjectMaxDepth sets how deep Trace follows nested values; values
// below 1 mean unlimited.
func (l *Logger) SetObjectMaxDepth(n int) {
	l.mu.Lock()
	l.maxDepth = n
	l.mu.Unlock()
}

// ObjectMaxDepth returns the current inspection depth
func (l *Logger) ObjectMaxDepth() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.maxDepth
}

// SetDateFunc sets the timestamp renderer; nil restores DefaultDateFunc.
func (l *Logger) SetDateFunc(fn DateFunc) {
	if fn == nil {
		fn = DefaultDateFunc
	}
	l.mu.Lock()
	l.dateFunc = fn
	l.mu.Unlock()
}

// SetShowFunctionName toggles the [pkg.Func] caller suffix
func (l *Logger) SetShowFunctionName(enabled bool) {
	l.mu.Lock()
	l.showFunctionName = enabled
	l.mu.Unlock()
}

// ShowFunctionName reports whether the caller suffix is enabled
func (l *Logger) ShowFunctionName() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.showFunctionName
}

// Log writes template, interpolated with args, under tag. Inactive
// tags produce no output; unknown tags produce a diagnostic.
func (l *Logger) Log(tag, template string, args ...any) {
	t, ok := parseTagOrDiagnose(l, tag)
	if !ok {
		return
	}
	l.output(1, t, false, template, args)
}

// parseTagOrDiagnose is called directly from a user-facing function.
func parseTagOrDiagnose(l *Logger, tag string) (Tag, bool) {
	t, ok := core.ParseTag(tag)
	if !ok {
		l.diagnose(2, "Failed to log with tag %s, tag does not exist.", string(t))
	}
	return t, ok
}

// Debug logs under the debug tag
func (l *Logger) Debug(template string, args ...any) {
	l.output(1, TagDebug, false, template, args)
}

// Info logs under the info tag
func (l *Logger) Info(template string, args ...any) {
	l.output(1, TagInfo, false, template, args)
}

// Warning logs under the warning tag
func (l *Logger) Warning(template string, args ...any) {
	l.output(1, TagWarning, false, template, args)
}

// Error logs under the error tag to the error stream
func (l *Logger) Error(template string, args ...any) {
	l.output(1, TagError, false, template, args)
}

// Todo logs under the todo tag
func (l *Logger) Todo(template string, args ...any) {
	l.output(1, TagTodo, false, template, args)
}

// Trace dumps each value under a header naming the argument count and
// an "end trace" footer.
func (l *Logger) Trace(values ...any) {
	l.trace(1, values)
}

// Emit writes e.Message verbatim under e.Tag, without interpolation.
// e.Time defaults to the logger clock. e.Caller is used for the caller
// suffix when it is enabled. Adapters use Emit to forward records from
// other logging libraries.
func (l *Logger) Emit(e core.Entry) {
	t, ok := core.ParseTag(string(e.Tag))
	if !ok {
		l.diagnose(1, "Failed to log with tag %s, tag does not exist.", string(t))
		return
	}

	s := l.snapshot(t)
	if !s.active {
		return
	}

	entry := core.GetEntry()
	entry.Time = e.Time
	if entry.Time.IsZero() {
		entry.Time = s.now()
	}
	s.fill(entry, t)
	entry.Message = e.Message
	entry.Fields = append(entry.Fields, e.Fields...)
	if s.showCaller {
		caller := core.CallerInfo{}
		if e.Caller != nil {
			caller = *e.Caller
		}
		entry.Caller = &caller
	}

	_ = l.handler.Handle(entry)
	core.PutEntry(entry)
}

// Enabled reports whether tag would produce output, without a
// diagnostic for unknown tags.
func (l *Logger) Enabled(tag Tag) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st, ok := l.tags[tag]
	return ok && st.active
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

// settings is a consistent copy of everything one call needs, taken so
// that the handler runs without holding the settings lock.
type settings struct {
	color      palette.Color
	active     bool
	maxDepth   int
	showCaller bool
	dateFunc   DateFunc
	now        func() time.Time
}

func (l *Logger) snapshot(t Tag) settings {
	l.mu.RLock()
	defer l.mu.RUnlock()

	st := l.tags[t]
	return settings{
		color:      st.color,
		active:     st.active,
		maxDepth:   l.maxDepth,
		showCaller: l.showFunctionName,
		dateFunc:   l.dateFunc,
		now:        l.now,
	}
}

func (s settings) fill(e *core.Entry, t Tag) {
	e.Tag = t
	e.Color = s.color
	e.Stream = core.StreamFor(t)
	e.Timestamp = s.dateFunc(e.Time)
	e.MaxDepth = s.maxDepth
}

// output builds and writes one line. skip is the number of frames
// between output's caller and user code plus one; force bypasses the
// active flag for diagnostics.
func (l *Logger) output(skip int, t Tag, force bool, template string, args []any) {
	s := l.snapshot(t)
	if !s.active && !force {
		return
	}

	e := core.GetEntry()
	if s.showCaller {
		caller := core.GetCaller(skip + 2)
		e.Caller = &caller
	}
	e.Time = s.now()
	s.fill(e, t)
	e.Message = formatter.Inspector{MaxDepth: s.maxDepth}.Interpolate(template, args...)

	_ = l.handler.Handle(e)
	core.PutEntry(e)
}

func (l *Logger) trace(skip int, values []any) {
	s := l.snapshot(TagTrace)
	if !s.active {
		return
	}

	e := core.GetEntry()
	if s.showCaller {
		caller := core.GetCaller(skip + 2)
		e.Caller = &caller
	}
	e.Kind = core.TraceKind
	e.Time = s.now()
	s.fill(e, TagTrace)
	e.Values = values

	_ = l.handler.Handle(e)
	core.PutEntry(e)
}

// diagnose reports invalid input through the error tag. It ignores the
// error tag's active flag and never validates its own arguments.
func (l *Logger) diagnose(skip int, template string, args ...any) {
	l.output(skip+1, TagError, true, template, args)
}
