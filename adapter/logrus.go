package adapter

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/logger"
)

// LogrusHook is a logrus.Hook that mirrors every entry through a Logger.
type LogrusHook struct {
	logger *logger.Logger
}

// NewLogrusHook creates a hook for logrus.AddHook.
func NewLogrusHook(l *logger.Logger) *LogrusHook {
	return &LogrusHook{logger: l}
}

// Levels returns every logrus level; inactive tags are filtered in Fire.
func (h *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire emits entry under the tag its level maps to.
func (h *LogrusHook) Fire(entry *logrus.Entry) error {
	tag := logrusTag(entry.Level)
	if !h.logger.Enabled(tag) {
		return nil
	}

	e := core.Entry{
		Tag:     tag,
		Time:    entry.Time,
		Message: entry.Message,
		Fields:  sortedFields(entry.Data),
	}
	if entry.Caller != nil {
		e.Caller = callerInfo(entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}
	h.logger.Emit(e)
	return nil
}

func logrusTag(level logrus.Level) core.Tag {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return core.TagError
	case logrus.WarnLevel:
		return core.TagWarning
	case logrus.InfoLevel:
		return core.TagInfo
	default:
		return core.TagDebug
	}
}
