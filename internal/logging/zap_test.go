package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObserved(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	entries := logs.All()
	require.Len(t, entries, 4)

	tests := []struct {
		level zapcore.Level
		msg   string
		key   string
		val   int64
	}{
		{zapcore.DebugLevel, "dbg", "a", 1},
		{zapcore.InfoLevel, "inf", "b", 2},
		{zapcore.WarnLevel, "wrn", "c", 3},
		{zapcore.ErrorLevel, "err", "d", 4},
	}
	for i, tc := range tests {
		assert.Equal(t, tc.level, entries[i].Level)
		assert.Equal(t, tc.msg, entries[i].Message)
		assert.Equal(t, tc.val, entries[i].ContextMap()[tc.key])
	}
}

func TestZapLogger_With_AddsFields(t *testing.T) {
	log, logs := newObserved(t)

	child := log.With("component", "api")
	child.Info(context.Background(), "hello", "k", "v")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "api", fields["component"])
	assert.Equal(t, "v", fields["k"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

func TestNewZapLogger_Builds(t *testing.T) {
	l, err := NewZapLogger("debug", "json")
	require.NoError(t, err)
	l.Info(context.Background(), "ok")

	l, err = NewZapLogger("info", "console")
	require.NoError(t, err)
	l.Debug(context.Background(), "filtered")
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	ctx := context.TODO()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
	l.With("a", 1).Info(ctx, "y")
}
