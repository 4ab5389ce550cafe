package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPairs(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, []any{"error", "boom"}, pairs([]any{err}))
	assert.Equal(t, []any{"user_id", 7}, pairs([]any{"user_id", 7}))
	assert.Equal(t, []any{"limit", 10, "error", "boom"}, pairs([]any{"limit", 10, err}))
	assert.Equal(t, []any{"arg", 42}, pairs([]any{42}))
	assert.Empty(t, pairs(nil))
}

func TestErrorWithBareError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(zap.NewNop()) })

	Error("failed to load catalog", errors.New("connection refused"))
	Info("served", "count", 3)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "failed to load catalog", entries[0].Message)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
	assert.Equal(t, int64(3), entries[1].ContextMap()["count"])
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", TraceIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}
