package adapter

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/logger"
)

// ZapCore is a zapcore.Core that writes through a Logger.
type ZapCore struct {
	logger *logger.Logger
	fields []zapcore.Field
}

// NewZapCore returns a zapcore.Core for use with zap.New.
func NewZapCore(l *logger.Logger) zapcore.Core {
	return &ZapCore{logger: l}
}

// Enabled follows the active flag of the tag lvl maps to.
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return c.logger.Enabled(zapTag(lvl))
}

// With returns a core that adds fields to every entry.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ZapCore{
		logger: c.logger,
		fields: make([]zapcore.Field, 0, len(c.fields)+len(fields)),
	}
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return clone
}

// Check adds c to ce when the entry's tag is active.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write emits ent with its fields sorted by key.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	e := core.Entry{
		Tag:     zapTag(ent.Level),
		Time:    ent.Time,
		Message: ent.Message,
		Fields:  sortedFields(enc.Fields),
	}
	if ent.Caller.Defined {
		e.Caller = callerInfo(ent.Caller.File, ent.Caller.Line, ent.Caller.Function)
	}
	c.logger.Emit(e)
	return nil
}

// Sync is a no-op; every entry is written synchronously.
func (c *ZapCore) Sync() error {
	return nil
}

func zapTag(lvl zapcore.Level) core.Tag {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.TagError
	case lvl >= zapcore.WarnLevel:
		return core.TagWarning
	case lvl >= zapcore.InfoLevel:
		return core.TagInfo
	default:
		return core.TagDebug
	}
}
