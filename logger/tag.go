package logger

import (
	"github.com/philipp01105/taglog/core"
)

// Tag re-exports core.Tag for convenience
type Tag = core.Tag

const (
	TagTrace   = core.TagTrace
	TagDebug   = core.TagDebug
	TagError   = core.TagError
	TagWarning = core.TagWarning
	TagInfo    = core.TagInfo
	TagTodo    = core.TagTodo
)

// defaultColors are the colors a new Logger assigns to each tag.
var defaultColors = map[Tag]string{
	TagTrace:   "cyan",
	TagDebug:   "blue",
	TagError:   "red",
	TagWarning: "yellow",
	TagInfo:    "white",
	TagTodo:    "green",
}
