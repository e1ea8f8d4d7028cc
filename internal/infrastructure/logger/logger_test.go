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

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewWithOutput_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "booking-test"}, &buf)

	log.Info().Msg("ticket booked")

	result := decodeLine(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "ticket booked", result["message"])
	assert.Equal(t, "booking-test", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewWithOutput_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "booking-test"}, &buf)

	log.Info().Msg("ticket booked")

	assert.Contains(t, buf.String(), "ticket booked")
	assert.Contains(t, buf.String(), "INF")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    zerolog.Level
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", zerolog.DebugLevel, true},
		{"debug dropped at info level", "info", zerolog.DebugLevel, false},
		{"warn logged at info level", "info", zerolog.WarnLevel, true},
		{"info dropped at warn level", "warn", zerolog.InfoLevel, false},
		{"error logged at error level", "error", zerolog.ErrorLevel, true},
		{"unknown level falls back to info", "verbose", zerolog.InfoLevel, true},
		{"empty level falls back to info", "", zerolog.DebugLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			log.WithLevel(tt.logLevel).Msg("level check")

			if tt.shouldLog {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewWithOutput_Caller(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	log.Info().Msg("with caller")

	assert.Contains(t, decodeLine(t, &buf), "caller")
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithOutput(DefaultConfig(), &buf)

	l := WithUsername(WithRequestID(Component(base, "postgres"), "req-1"), "admin")
	l.Info().Msg("child")

	result := decodeLine(t, &buf)
	assert.Equal(t, "postgres", result["component"])
	assert.Equal(t, "req-1", result["request_id"])
	assert.Equal(t, "admin", result["username"])
	assert.Equal(t, "airline-booking", result["service"])
}

func TestInto(t *testing.T) {
	var buf bytes.Buffer
	ctx := Into(context.Background(), NewWithOutput(DefaultConfig(), &buf))

	zerolog.Ctx(ctx).Info().Msg("from context")

	assert.Equal(t, "from context", decodeLine(t, &buf)["message"])
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
