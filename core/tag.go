package core

import "strings"

// Tag names a log category.
type Tag string

const (
	TagTrace   Tag = "trace"
	TagDebug   Tag = "debug"
	TagError   Tag = "error"
	TagWarning Tag = "warning"
	TagInfo    Tag = "info"
	TagTodo    Tag = "todo"
)

// Tags lists the built-in tags in display order.
var Tags = [...]Tag{TagTrace, TagDebug, TagError, TagWarning, TagInfo, TagTodo}

// ParseTag normalizes name and reports whether it is a built-in tag.
func ParseTag(name string) (Tag, bool) {
	t := Tag(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Tags {
		if t == known {
			return t, true
		}
	}
	return t, false
}

// Title returns the tag with its first letter upper-cased and the rest
// lower-cased, e.g. "Warning".
func (t Tag) Title() string {
	s := strings.ToLower(string(t))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Stream selects the output stream an entry is written to.
type Stream uint8

const (
	// Stdout is used for every tag except error.
	Stdout Stream = iota
	// Stderr is used for the error tag and for diagnostics.
	Stderr
)

// StreamFor returns the stream a tag writes to.
func StreamFor(t Tag) Stream {
	if t == TagError {
		return Stderr
	}
	return Stdout
}
