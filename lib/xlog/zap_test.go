package xlog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xtree/lib/infra"
)

func newTestLogger(opts ...XLoggerOption) XLogger {
	testMemSyncer.Reset()
	defaults := []XLoggerOption{
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(testMemAsOut),
		WithXLoggerTimeEncoder(zapcore.ISO8601TimeEncoder),
		WithXLoggerLevelEncoder(zapcore.CapitalLevelEncoder),
	}
	return NewXLogger(append(defaults, opts...)...)
}

func TestXLogger_LevelsAndFields(t *testing.T) {
	logger := newTestLogger()
	logger.Debug("debug msg", zap.Int("n", 1))
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error(infra.NewErrorStack("boom"), "error msg")
	require.NoError(t, logger.Sync())

	out := testMemSyncer.String()
	require.Contains(t, out, `"msg":"debug msg"`)
	require.Contains(t, out, `"n":1`)
	require.Contains(t, out, `"msg":"info msg"`)
	require.Contains(t, out, `"msg":"warn msg"`)
	require.Contains(t, out, `"error":"boom"`)
	require.Equal(t, 4, strings.Count(out, "\n"))
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	logger := newTestLogger()
	require.Equal(t, "debug", logger.Level())

	logger.IncreaseLogLevel(zapcore.WarnLevel)
	require.Equal(t, "warn", logger.Level())
	logger.Debug("muted debug")
	logger.Info("muted info")
	logger.Warn("loud warn")
	require.NoError(t, logger.Sync())

	out := testMemSyncer.String()
	require.NotContains(t, out, "muted debug")
	require.NotContains(t, out, "muted info")
	require.Contains(t, out, "loud warn")
}

func TestXLogger_ErrorStackFrames(t *testing.T) {
	logger := newTestLogger()
	err := infra.WrapErrorStackWithMessage(infra.NewErrorStack("root cause"), "outer")
	logger.ErrorStack(err, "stacked failure")
	logger.ErrorStackf(err, "stacked %s", "format")
	require.NoError(t, logger.Sync())

	out := testMemSyncer.String()
	require.Contains(t, out, `"msg":"stacked failure"`)
	require.Contains(t, out, `"error":"outer: root cause"`)
	require.Contains(t, out, `"frames":[`)
	require.Contains(t, out, `"msg":"stacked format"`)
}

func TestXLogger_ContextFieldExtract(t *testing.T) {
	logger := newTestLogger(
		WithXLoggerContextFieldExtract("traceId"),
		WithXLoggerContextFieldExtract("sessionId", "session"),
	)

	//nolint:staticcheck
	ctx := context.WithValue(context.Background(), "traceId", "abc-123")
	logger.InfoContext(ctx, "traced op")
	logger.ErrorContext(ctx, infra.NewErrorStack("ctx boom"), "traced failure")
	require.NoError(t, logger.Sync())

	out := testMemSyncer.String()
	require.Contains(t, out, `"traceId":"abc-123"`)
	require.Contains(t, out, `"session":"nil"`)
	require.Contains(t, out, `"error":"ctx boom"`)
}

func TestGetLogLevelOrDefault(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault(""))
	require.Equal(t, zapcore.InfoLevel, getLogLevelOrDefault("info"))
	require.Equal(t, zapcore.WarnLevel, getLogLevelOrDefault("WARN"))
	require.Equal(t, zapcore.ErrorLevel, getLogLevelOrDefault("Error"))
	require.Equal(t, zapcore.DebugLevel, getLogLevelOrDefault("bogus"))
}
