package adapter

import (
	"context"
	"log/slog"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/logger"
)

// SlogHandler implements slog.Handler on top of a Logger.
type SlogHandler struct {
	logger *logger.Logger
	attrs  []core.Field
	group  string
}

// NewSlogHandler creates a slog.Handler writing through l.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled follows the active flag of the tag level maps to.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogTag(level))
}

// Handle converts record into an entry and emits it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	e := core.Entry{
		Tag:     slogTag(record.Level),
		Time:    record.Time,
		Message: record.Message,
	}
	if record.PC != 0 {
		caller := core.CallerFromPC(record.PC)
		e.Caller = &caller
	}

	e.Fields = make([]core.Field, 0, len(s.attrs)+record.NumAttrs())
	e.Fields = append(e.Fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		e.Fields = appendAttr(e.Fields, s.group, a)
		return true
	})

	s.logger.Emit(e)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler that prefixes later keys with name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs[:len(s.attrs):len(s.attrs)],
		group:  joinKey(s.group, name),
	}
}

func slogTag(level slog.Level) core.Tag {
	switch {
	case level >= slog.LevelError:
		return core.TagError
	case level >= slog.LevelWarn:
		return core.TagWarning
	case level >= slog.LevelInfo:
		return core.TagInfo
	default:
		return core.TagDebug
	}
}

// appendAttr flattens a into fields. Groups contribute a dotted prefix;
// a group with an empty key is inlined and empty attrs are dropped.
func appendAttr(fields []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			fields = appendAttr(fields, prefix, ga)
		}
		return fields
	}

	return append(fields, core.F(joinKey(group, a.Key), a.Value.Any()))
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
