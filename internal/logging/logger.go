package logging

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup initializes the global slog logger with JSON output to stdout.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// AttachDBSink replaces the default logger with one that still writes
// JSON to stdout but additionally batches ERROR+ records to Postgres.
// The returned handler must be stopped on shutdown to flush the
// buffer.
func AttachDBSink(db *gorm.DB) *DBHandler {
	sink := NewDBHandler(db)
	out := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(&teeHandler{out: out, sink: sink}))
	return sink
}

// teeHandler forwards every record to stdout and error records to the
// database sink.
type teeHandler struct {
	out  slog.Handler
	sink *DBHandler
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.out.Enabled(ctx, level) || t.sink.Enabled(ctx, level)
}

func (t *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	if t.out.Enabled(ctx, record.Level) {
		if err := t.out.Handle(ctx, record); err != nil {
			return err
		}
	}
	if t.sink.Enabled(ctx, record.Level) {
		return t.sink.Handle(ctx, record.Clone())
	}
	return nil
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{out: t.out.WithAttrs(attrs), sink: t.sink}
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{out: t.out.WithGroup(name), sink: t.sink}
}
