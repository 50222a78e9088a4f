// Package logger is the public API of taglog. Most users only need to
// import this package.
//
// A Logger owns a fixed set of tags (trace, debug, error, warning,
// info, todo), each with a color and an active flag:
//
//	log := logger.New()
//	log.Info("listening on %s:%d", host, port)
//	log.Error("request failed: %s", err)
//	log.Trace(req, resp)
//
// Messages use printf-style placeholders (%s, %d, %i, %f, %j, %o, %O).
// The error tag writes to stderr, every other tag to stdout.
//
// Tags are switched and recolored at runtime. Invalid names never
// panic: they are reported on the error stream and returned as an
// error wrapping ErrUnknownTag or ErrUnknownColor:
//
//	_ = log.SetActive(false, "debug", "trace")
//	_ = log.SetColor("todo", "bold purple")
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithOutput(&buf).
//	    WithColorMode(handler.ColorNever).
//	    WithShowFunctionName(true).
//	    WithDateFunc(func(t time.Time) string { return t.Format(time.RFC3339) }).
//	    Build()
//
// The package also keeps a default Logger used by the package-level
// functions Info, Error, Trace and so on. Programs that prefer explicit
// wiring can ignore it and pass *Logger values around instead.
package logger
