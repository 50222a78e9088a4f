package benchmark

import (
	"github.com/philipp01105/taglog/core"
	"github.com/philipp01105/taglog/handler"
)

// noopHandler drops entries after touching the message, isolating the
// cost of the logger from formatting and writing.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
