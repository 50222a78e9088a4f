package formatter

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DefaultMaxDepth is the nesting depth used when none is configured.
const DefaultMaxDepth = 3

// Inspector renders values structurally. MaxDepth bounds how far
// nested maps, slices, structs and pointers are followed; values below
// 1 mean unlimited.
type Inspector struct {
	MaxDepth int
}

func (in Inspector) config() *spew.ConfigState {
	depth := in.MaxDepth
	if depth < 1 {
		depth = 0
	}
	return &spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                depth,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
}

// Dump returns a multi-line typed rendering of v without a trailing
// newline. Line endings are always "\n".
func (in Inspector) Dump(v any) string {
	s := in.config().Sdump(v)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// Inline returns a compact single-line rendering of v.
func (in Inspector) Inline(v any) string {
	return in.config().Sprint(v)
}

// Lines returns Dump(v) split into lines.
func (in Inspector) Lines(v any) []string {
	return strings.Split(in.Dump(v), "\n")
}
