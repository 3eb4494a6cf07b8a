package debugkit

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.llib.dev/frameless/pkg/logging"
)

// Sink is the destination of the formatted debug text.
// Emit is called exactly once for every element that passes through an adapter.
type Sink interface {
	Emit(ctx context.Context, text string)
}

// SinkFunc is a function that can be used as a Sink.
type SinkFunc func(ctx context.Context, text string)

func (fn SinkFunc) Emit(ctx context.Context, text string) { fn(ctx, text) }

// WriterSink writes every emission as a separate line into Out.
// Pretty representations are written as a single multi-line block.
type WriterSink struct {
	// Out is where the lines are written.
	//
	// Default: os.Stderr
	Out io.Writer
}

func (s WriterSink) Emit(_ context.Context, text string) {
	_, _ = s.out().Write([]byte(text + "\n"))
}

func (s WriterSink) out() io.Writer {
	if s.Out != nil {
		return s.Out
	}
	return os.Stderr
}

// DefaultLogger is the process-wide logger that LoggerSink uses when it has no Logger of its own.
var DefaultLogger = &logging.Logger{
	Out:   os.Stderr,
	Level: logging.LevelDebug,
}

// LoggerSink logs every emission at debug level, with the formatted text as the log message.
type LoggerSink struct {
	// Logger is the logging facade.
	//
	// Default: DefaultLogger
	Logger *logging.Logger
}

func (s LoggerSink) Emit(ctx context.Context, text string) {
	s.logger().Debug(ctx, text)
}

func (s LoggerSink) logger() *logging.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return DefaultLogger
}

// SlogSink logs every emission with log/slog at slog.LevelDebug.
type SlogSink struct {
	// Logger is the slog logger.
	//
	// Default: slog.Default()
	Logger *slog.Logger
}

func (s SlogSink) Emit(ctx context.Context, text string) {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.DebugContext(ctx, text)
}
