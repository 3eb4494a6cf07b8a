package debugkit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/debugiter/pkg/debugkit"
	"go.llib.dev/debugiter/pkg/debugkit/debugkitcontract"
)

// jsonMessages decodes JSON log lines and joins the values of the message key with new lines.
func jsonMessages(tb testing.TB, out []byte, key string) string {
	tb.Helper()
	var msgs []string
	dec := json.NewDecoder(bytes.NewReader(out))
	for dec.More() {
		var entry map[string]any
		assert.NoError(tb, dec.Decode(&entry))
		msg, _ := entry[key].(string)
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "\n")
}

func TestWriterSink(t *testing.T) {
	debugkitcontract.Sink(func(tb testing.TB) debugkitcontract.SinkSubject {
		buf := &bytes.Buffer{}
		return debugkitcontract.SinkSubject{
			Sink:   debugkit.WriterSink{Out: buf},
			Output: buf.String,
		}
	}).Test(t)

	t.Run("every emission ends with a line break", func(t *testing.T) {
		var buf bytes.Buffer
		sink := debugkit.WriterSink{Out: &buf}
		sink.Emit(context.Background(), "foo")
		sink.Emit(context.Background(), "bar\nbaz")
		assert.Equal(t, "foo\nbar\nbaz\n", buf.String())
	})

	t.Run("each emission is a single write", func(t *testing.T) {
		var writes []string
		sink := debugkit.WriterSink{Out: writerFunc(func(p []byte) (int, error) {
			writes = append(writes, string(p))
			return len(p), nil
		})}
		_ = iterkit.Collect(debugkit.DebugPretty(slices.Values([]Person{{Name: "Bob", Age: 4}}), debugkit.WithSink(sink)))
		assert.Equal(t, []string{"Person {\n    name: \"Bob\",\n    age: 4,\n}\n"}, writes)
	})
}

type writerFunc func(p []byte) (int, error)

func (fn writerFunc) Write(p []byte) (int, error) { return fn(p) }

func TestLoggerSink(t *testing.T) {
	debugkitcontract.Sink(func(tb testing.TB) debugkitcontract.SinkSubject {
		l, out := logging.Stub(tb)
		return debugkitcontract.SinkSubject{
			Sink: debugkit.LoggerSink{Logger: l},
			Output: func() string {
				return jsonMessages(tb, out.Bytes(), "message")
			},
		}
	}).Test(t)

	t.Run("logs at debug level", func(t *testing.T) {
		l, out := logging.Stub(t)
		debugkit.LoggerSink{Logger: l}.Emit(context.Background(), "foo")
		assert.Contains(t, out.String(), `"level":"debug"`)
	})

	t.Run("nothing is logged when the logger is above debug level", func(t *testing.T) {
		l, out := logging.Stub(t)
		l.Level = logging.LevelInfo
		debugkit.LoggerSink{Logger: l}.Emit(context.Background(), "foo")
		assert.Empty(t, out.String())
	})

	t.Run("details from the context are part of the log entry", func(t *testing.T) {
		l, out := logging.Stub(t)
		ctx := logging.ContextWith(context.Background(), logging.Field("pipeline", "import"))
		_ = iterkit.Collect(debugkit.Debug(slices.Values([]int{42}),
			debugkit.WithSink(debugkit.LoggerSink{Logger: l}),
			debugkit.WithContext(ctx)))
		assert.Contains(t, out.String(), `"pipeline":"import"`)
		assert.Contains(t, out.String(), `"message":"42"`)
	})

	t.Run("without a logger, DefaultLogger is used", func(t *testing.T) {
		l, out := logging.Stub(t)
		og := debugkit.DefaultLogger
		t.Cleanup(func() { debugkit.DefaultLogger = og })
		debugkit.DefaultLogger = l

		debugkit.LoggerSink{}.Emit(context.Background(), "foo")
		assert.Equal(t, "foo", jsonMessages(t, out.Bytes(), "message"))
	})
}

func TestSlogSink(t *testing.T) {
	debugkitcontract.Sink(func(tb testing.TB) debugkitcontract.SinkSubject {
		buf := &bytes.Buffer{}
		l := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		return debugkitcontract.SinkSubject{
			Sink: debugkit.SlogSink{Logger: l},
			Output: func() string {
				return jsonMessages(tb, buf.Bytes(), slog.MessageKey)
			},
		}
	}).Test(t)

	t.Run("logs at debug level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		debugkit.SlogSink{Logger: l}.Emit(context.Background(), "foo")
		assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	})

	t.Run("nothing is logged when the handler is above debug level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
		debugkit.SlogSink{Logger: l}.Emit(context.Background(), "foo")
		assert.Empty(t, buf.String())
	})
}

func TestSinkFunc(t *testing.T) {
	debugkitcontract.Sink(func(tb testing.TB) debugkitcontract.SinkSubject {
		var lines []string
		return debugkitcontract.SinkSubject{
			Sink: debugkit.SinkFunc(func(ctx context.Context, text string) {
				lines = append(lines, text)
			}),
			Output: func() string { return strings.Join(lines, "\n") },
		}
	}).Test(t)
}
