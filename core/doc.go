// Package core defines the shared types used across taglog.
//
// It provides the Tag type naming the built-in log categories, the
// Entry type that carries a single log event from the Logger to a
// Handler, the Field type used by the adapters to attach key-value
// pairs, and best-effort caller lookup.
//
// Entry objects are pooled via sync.Pool. The Logger gets an Entry with
// GetEntry and returns it with PutEntry once the (synchronous) handler
// has written it.
package core
