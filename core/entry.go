package core

import (
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/taglog/palette"
)

// UnknownCaller is rendered when caller lookup fails.
const UnknownCaller = "unknown"

// Kind distinguishes a single line from a trace block.
type Kind uint8

const (
	// LineKind is a single formatted message.
	LineKind Kind = iota
	// TraceKind is a framed multi-line dump of Values.
	TraceKind
)

// Entry represents one log event after the Logger has resolved its
// settings. Handlers never consult the Logger.
type Entry struct {
	Kind      Kind
	Time      time.Time
	Timestamp string
	Tag       Tag
	Color     palette.Color
	Stream    Stream
	Message   string
	Fields    []Field
	Caller    *CallerInfo
	Values    []any
	MaxDepth  int
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// Name returns the function name without its import path, e.g.
// "server.(*Conn).Serve", or UnknownCaller.
func (c *CallerInfo) Name() string {
	if c == nil || !c.Defined || c.Function == "" {
		return UnknownCaller
	}
	name := c.Function
	if i := strings.LastIndex(name, "/"); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	return name
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a zeroed Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	*e = Entry{Fields: e.Fields[:0]}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Fields is pool-owned; Values belongs to the caller and is only dropped
	clear(e.Fields)
	e.Fields = e.Fields[:0]
	e.Values = nil
	e.Caller = nil
	e.Message = ""
	entryPool.Put(e)
}

// GetCaller retrieves caller information. skip follows runtime.Caller:
// 0 is GetCaller itself.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return CallerInfo{File: file, Line: line}
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: fn.Name(),
		Defined:  true,
	}
}

// CallerFromPC resolves a program counter, as recorded by log/slog.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.Function == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:     f.File,
		Line:     f.Line,
		Function: f.Function,
		Defined:  true,
	}
}
