// Package palette maps color names to terminal escape sequences.
//
// The set of names is closed: black, red, green, yellow, blue, purple,
// cyan and white. A name may be prefixed with a style word ("bold red",
// "underline cyan", "background blue"). Lookups are case-insensitive.
package palette

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Reset is the escape sequence that clears all attributes.
var Reset = sequence(color.Reset)

// Style is the rendering variant of a color.
type Style uint8

const (
	Normal Style = iota
	Bold
	Underline
	Background
)

var styleNames = map[string]Style{
	"normal":     Normal,
	"bold":       Bold,
	"underline":  Underline,
	"background": Background,
}

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Underline:
		return "underline"
	case Background:
		return "background"
	default:
		return "normal"
	}
}

// base foreground attributes; background is derived via the Bg offset
var names = map[string]color.Attribute{
	"black":  color.FgBlack,
	"red":    color.FgRed,
	"green":  color.FgGreen,
	"yellow": color.FgYellow,
	"blue":   color.FgBlue,
	"purple": color.FgMagenta,
	"cyan":   color.FgCyan,
	"white":  color.FgWhite,
}

// Names lists the valid base color names in palette order.
var Names = [...]string{"black", "red", "green", "yellow", "blue", "purple", "cyan", "white"}

// Color is a resolved palette entry. The zero value renders nothing.
type Color struct {
	Name  string
	Style Style
	seq   string
}

// Sequence returns the escape sequence that switches the terminal to c.
func (c Color) Sequence() string {
	return c.seq
}

// String returns the canonical name, e.g. "red" or "bold red".
func (c Color) String() string {
	if c.Style == Normal {
		return c.Name
	}
	return c.Style.String() + " " + c.Name
}

// IsZero reports whether c is the zero Color.
func (c Color) IsZero() bool {
	return c.seq == ""
}

// Lookup resolves a color name such as "Red" or "bold red".
func Lookup(name string) (Color, bool) {
	parts := strings.Fields(strings.ToLower(name))
	style := Normal
	switch len(parts) {
	case 1:
	case 2:
		s, ok := styleNames[parts[0]]
		if !ok {
			return Color{}, false
		}
		style = s
		parts = parts[1:]
	default:
		return Color{}, false
	}

	attr, ok := names[parts[0]]
	if !ok {
		return Color{}, false
	}
	return newColor(parts[0], style, attr), true
}

// MustLookup is Lookup for names known to be valid. It panics otherwise.
func MustLookup(name string) Color {
	c, ok := Lookup(name)
	if !ok {
		panic("palette: unknown color " + strconv.Quote(name))
	}
	return c
}

func newColor(name string, style Style, attr color.Attribute) Color {
	var seq string
	switch style {
	case Bold:
		seq = sequence(color.Bold, attr)
	case Underline:
		seq = sequence(color.Underline, attr)
	case Background:
		seq = sequence(attr + (color.BgBlack - color.FgBlack))
	default:
		seq = sequence(color.Reset, attr)
	}
	return Color{Name: name, Style: style, seq: seq}
}

func sequence(attrs ...color.Attribute) string {
	var b strings.Builder
	b.WriteString("\x1b[")
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(int(a)))
	}
	b.WriteByte('m')
	return b.String()
}
