package handler

import (
	"github.com/philipp01105/taglog/core"
)

// Handler defines the interface for entry handlers. Handle must have
// finished with the entry when it returns; the logger recycles it.
type Handler interface {
	// Handle formats and writes an entry
	Handle(entry *core.Entry) error

	// Close releases resources held by the handler
	Close() error
}
