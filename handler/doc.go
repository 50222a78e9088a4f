// Package handler provides the Handler interface and its built-in
// implementations for writing entries to a terminal.
//
// Handlers are synchronous: Handle formats the entry and writes it
// before returning, and every entry is written with a single Write call
// under the handler's mutex, so a multi-line trace block is never
// interleaved with output from another goroutine.
//
// Built-in handlers:
//
//   - ConsoleHandler routes entries to an Out writer (default: stdout)
//     or an Err writer (default: stderr) by their Stream, with colors
//     always on, off, or enabled only when the stream is a terminal.
//   - MultiHandler fans out a single entry to multiple child handlers.
//
// Handlers count written and failed entries per tag via the Stats
// type, which can be queried at runtime.
package handler
