package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/taglog/adapter"
	"github.com/philipp01105/taglog/handler"
	"github.com/philipp01105/taglog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – every framework writes colored console text to io.Discard
// ---------------------------------------------------------------------------

func newTaglogLogger() *logger.Logger {
	return logger.NewBuilder().
		WithOutput(io.Discard).
		WithErrorOutput(io.Discard).
		WithColorMode(handler.ColorAlways).
		Build()
}

func newZapLogger() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	c := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(c)
}

func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger() zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: io.Discard}
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message, no arguments
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoNoArgs(b *testing.B) {
	b.Run("taglog", func(b *testing.B) {
		l := newTaglogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Info message with two interpolated values
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoFormatted(b *testing.B) {
	b.Run("taglog", func(b *testing.B) {
		l := newTaglogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("user %s logged in after %d attempts", "ann", 3)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger().Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s logged in after %d attempts", "ann", 3)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("user %s logged in after %d attempts", "ann", 3)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("user %s logged in after %d attempts", "ann", 3)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Disabled output (inactive tag / level below threshold)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Disabled(b *testing.B) {
	b.Run("taglog", func(b *testing.B) {
		l := newTaglogLogger()
		_ = l.SetActive(false, "debug")
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug %s", "value")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger().WithOptions(zap.IncreaseLevel(zap.InfoLevel))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("debug value")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		l.SetLevel(logrus.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("debug %s", "value")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger().Level(zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msgf("debug %s", "value")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Bridged records: other front ends writing through taglog
// ---------------------------------------------------------------------------

func BenchmarkAdapter_Fields(b *testing.B) {
	b.Run("zap", func(b *testing.B) {
		l := zap.New(adapter.NewZapCore(newTaglogLogger()))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request", zap.String("path", "/api"), zap.Int("status", 200))
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := slog.New(adapter.NewSlogHandler(newTaglogLogger()))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request", "path", "/api", "status", 200)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := logrus.New()
		l.SetOutput(io.Discard)
		l.AddHook(adapter.NewLogrusHook(newTaglogLogger()))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithFields(logrus.Fields{"path": "/api", "status": 200}).Info("request")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – Logger overhead without formatting
// ---------------------------------------------------------------------------

func BenchmarkTaglog_NoopHandler(b *testing.B) {
	l := logger.NewBuilder().WithHandler(newNoopHandler()).Build()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("user %s id %d", "ann", 42)
	}
}

func BenchmarkTaglog_Trace(b *testing.B) {
	l := newTaglogLogger()
	v := map[string]any{"id": 1, "roles": []string{"admin", "dev"}}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Trace(v)
	}
}

func BenchmarkTaglog_Parallel(b *testing.B) {
	l := newTaglogLogger()
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Warning("parallel %d", 1)
		}
	})
}
