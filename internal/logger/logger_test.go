package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok, "empty context should not carry a request ID")

	id := GenerateRequestID()
	require.NotEmpty(t, id)

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGenerateRequestID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateRequestID()
		assert.False(t, seen[id], "request IDs must not repeat")
		seen[id] = true
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := Config{Level: LogLevelInfo, Format: LogFormatJSON, ServiceName: "test-svc", Version: "test", Environment: EnvironmentTest}

	log := Init(cfg, &buf)
	log.Info("hello")

	out := buf.String()
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "JSON format should emit JSON lines: %s", out)
	assert.Contains(t, out, `"service":"test-svc"`)
}

func TestFromContext_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: LogLevelDebug, Format: LogFormatText, ServiceName: "test-svc"}, &buf)

	ctx := WithRequestID(context.Background(), "req-42")
	FromContext(ctx).Info("traced")

	assert.Contains(t, buf.String(), "req-42")
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelWarning, "WARN"},
		{LogLevelError, "ERROR"},
		{"bogus", "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.want, cfg.LogLevel().String())
		})
	}
}
