package handler

import (
	"io"
	"testing"
	"time"

	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/palette"
)

func benchEntry() *core.Entry {
	return &core.Entry{
		Time:      time.Now(),
		Timestamp: "3:04:05 PM",
		Tag:       core.TagInfo,
		Color:     palette.MustLookup("white"),
		Message:   "concurrent log",
	}
}

// BenchmarkConsoleHandler_Line measures formatting and writing one line
func BenchmarkConsoleHandler_Line(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Out: io.Discard, Err: io.Discard})
	entry := benchEntry()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(entry)
	}
}

// BenchmarkConsoleHandler_Contention measures the handler under concurrent load
func BenchmarkConsoleHandler_Contention(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Out: io.Discard, Err: io.Discard})
	entry := benchEntry()

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = h.Handle(entry)
		}
	})
}

// BenchmarkConsoleHandler_Trace measures a trace block with nested values
func BenchmarkConsoleHandler_Trace(b *testing.B) {
	h := NewConsoleHandler(ConsoleConfig{Out: io.Discard, Err: io.Discard})
	entry := benchEntry()
	entry.Kind = core.TraceKind
	entry.Tag = core.TagTrace
	entry.MaxDepth = 3
	entry.Values = []any{map[string]any{"id": 7, "roles": []string{"a", "b"}}, "x"}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(entry)
	}
}
