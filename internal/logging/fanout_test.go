package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every record it accepts, gated by its own level.
type recorder struct {
	level   slog.Level
	records []slog.Record
}

func (r *recorder) Enabled(_ context.Context, l slog.Level) bool { return l >= r.level }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recorder) WithGroup(string) slog.Handler      { return r }

func TestFanoutRespectsTargetLevels(t *testing.T) {
	stdout := &recorder{level: slog.LevelInfo}
	sink := &recorder{level: slog.LevelError}
	log := slog.New(Fanout(stdout, sink))

	log.Info("listing documents", "platform", "Atlas")
	log.Error("upload failed", "error", "disk full")

	require.Len(t, stdout.records, 2)
	require.Len(t, sink.records, 1)
	assert.Equal(t, "upload failed", sink.records[0].Message)
}

func TestFanoutEnabled(t *testing.T) {
	sink := &recorder{level: slog.LevelError}
	h := Fanout(sink)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestFanoutWithAttrsKeepsTargets(t *testing.T) {
	stdout := &recorder{level: slog.LevelInfo}
	sink := &recorder{level: slog.LevelError}
	log := slog.New(Fanout(stdout, sink).WithAttrs([]slog.Attr{slog.String("trace_id", "abc")}))

	log.Error("migration failed")

	require.Len(t, stdout.records, 1)
	require.Len(t, sink.records, 1)
}

func TestSetupReturnsInfoHandler(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	h := Setup()
	require.NotNil(t, h)
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
