// Package adapter routes records from other logging libraries through a
// taglog Logger, so their output shares its tags, colors and active flags.
//
// Levels map onto tags: debug and below become debug, info becomes info,
// warn becomes warning, and error and anything more severe become error.
// Structured fields are appended to the message as " key=value".
//
// Example with zap:
//
//	l := logger.New()
//	zl := zap.New(adapter.NewZapCore(l), zap.AddCaller())
//	zl.Info("listening", zap.Int("port", 8080))
//
// Example with log/slog:
//
//	slog.SetDefault(slog.New(adapter.NewSlogHandler(logger.New())))
//
// Example with logrus:
//
//	logrus.AddHook(adapter.NewLogrusHook(logger.New()))
package adapter
