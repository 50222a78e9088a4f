package logger

import (
	"sync"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = New()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger.
// Each calls into the logger directly so caller lookup sees the
// same number of frames as the methods.

// Log logs under tag using the default logger
func Log(tag, template string, args ...any) {
	l := Default()
	t, ok := parseTagOrDiagnose(l, tag)
	if !ok {
		return
	}
	l.output(1, t, false, template, args)
}

// Debug logs under the debug tag using the default logger
func Debug(template string, args ...any) {
	Default().output(1, TagDebug, false, template, args)
}

// Info logs under the info tag using the default logger
func Info(template string, args ...any) {
	Default().output(1, TagInfo, false, template, args)
}

// Warning logs under the warning tag using the default logger
func Warning(template string, args ...any) {
	Default().output(1, TagWarning, false, template, args)
}

// Error logs under the error tag using the default logger
func Error(template string, args ...any) {
	Default().output(1, TagError, false, template, args)
}

// Todo logs under the todo tag using the default logger
func Todo(template string, args ...any) {
	Default().output(1, TagTodo, false, template, args)
}

// Trace dumps values using the default logger
func Trace(values ...any) {
	Default().trace(1, values)
}

// SetColor recolors a tag of the default logger
func SetColor(tag, color string) error {
	return Default().setColor(1, tag, color)
}

// SetActive sets tag active flags of the default logger
func SetActive(active bool, tags ...string) error {
	return Default().setActive(1, active, tags)
}
