//go:build !integration

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "trace", expected: zerolog.TraceLevel},
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "info", expected: zerolog.InfoLevel},
		{level: "WARN", expected: zerolog.WarnLevel},
		{level: "warning", expected: zerolog.WarnLevel},
		{level: " error ", expected: zerolog.ErrorLevel},
		{level: "invalid", expected: zerolog.InfoLevel},
		{level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level))
		})
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", false)
	t.Cleanup(func() { Init("info", false) })

	log := Component("cart_service")
	log.Debug().Str("session_id", "s1").Msg("Cart updated")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, ServiceName, line["service"])
	assert.Equal(t, "cart_service", line["component"])
	assert.Equal(t, "s1", line["session_id"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "Cart updated", line["message"])
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestInitWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "warn", false)
	t.Cleanup(func() { Init("info", false) })

	log := Logger()
	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", true)
	t.Cleanup(func() { Init("info", false) })

	log := Logger()
	log.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", false)
	t.Cleanup(func() { Init("info", false) })

	t.Run("carried fields", func(t *testing.T) {
		buf.Reset()
		ctx := Into(context.Background(), map[string]string{"request_id": "r-1", "session_id": "s-1"})
		FromContext(ctx).Info().Msg("ctx")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "r-1", line["request_id"])
		assert.Equal(t, "s-1", line["session_id"])
		assert.Equal(t, ServiceName, line["service"])
	})

	t.Run("falls back to the global logger", func(t *testing.T) {
		buf.Reset()
		FromContext(context.Background()).Info().Msg("plain")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "plain", line["message"])
		assert.NotContains(t, line, "request_id")
	})
}
