// Package formatter turns entries into the bytes written to a terminal.
//
// It has three parts. Interpolate substitutes positional arguments into
// a message template using printf-style placeholders (%s, %d, %i, %f, %j,
// %o, %O and the %% escape). Inspector renders arbitrary values as a
// depth-bounded structural dump, backed by go-spew. TextFormatter lays
// out a single line as
//
//	<tagColor>Tag<reset><cyan>\t(<timestamp>)[caller]: <reset>message
//
// and a trace entry as a header line, one "[i]" block per value with
// "*" continuation lines, and an "end trace" footer.
//
// Every line ends in "\n" regardless of platform. Formatting happens in
// a pooled bytes.Buffer so that a handler can emit a whole trace block
// with one Write call.
package formatter
