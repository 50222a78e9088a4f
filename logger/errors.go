package logger

import "github.com/pkg/errors"

var (
	// ErrUnknownTag is returned for a tag name outside the built-in set.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrUnknownColor is returned for a color name outside the palette.
	ErrUnknownColor = errors.New("unknown color")
)

func unknownTag(name string) error {
	return errors.Wrapf(ErrUnknownTag, "tag %q", name)
}

func unknownColor(name string) error {
	return errors.Wrapf(ErrUnknownColor, "color %q", name)
}
