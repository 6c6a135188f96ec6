package logging

import (
	"context"
	"log/slog"
)

// fanout forwards each record to every target that accepts its level.
// Targets keep their own level gates, so the stdout handler can log at
// INFO while the database sink only sees ERROR and above.
type fanout struct {
	targets []slog.Handler
}

// Fanout combines targets into a single slog.Handler.
func Fanout(targets ...slog.Handler) slog.Handler {
	return &fanout{targets: targets}
}

func (f *fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range f.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, t := range f.targets {
		if !t.Enabled(ctx, r.Level) {
			continue
		}
		if err := t.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	targets := make([]slog.Handler, len(f.targets))
	for i, t := range f.targets {
		targets[i] = t.WithAttrs(attrs)
	}
	return &fanout{targets: targets}
}

func (f *fanout) WithGroup(name string) slog.Handler {
	targets := make([]slog.Handler, len(f.targets))
	for i, t := range f.targets {
		targets[i] = t.WithGroup(name)
	}
	return &fanout{targets: targets}
}
