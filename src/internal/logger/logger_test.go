package logger

import (
	"errors"
	"testing"

	"github.com/api-sage/magic-card/src/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	undo := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(undo)
	return logs
}

func TestInfoMasksSensitiveFields(t *testing.T) {
	logs := observe(t)

	Info("card service withdraw request", Fields{
		"accountNumber": "34567890",
		"Pin":           "1234",
		"payload": SanitizePayload(map[string]any{
			"accountNumber": "34567890",
			"pin":           "1234",
			"nested":        []any{map[string]any{"card-pin": "9999"}},
		}),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "card service withdraw request", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "34567890", ctx["accountNumber"])
	assert.Equal(t, "******", ctx["Pin"])

	payload, ok := ctx["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "******", payload["pin"])
	assert.Equal(t, "34567890", payload["accountNumber"])
	nested := payload["nested"].([]any)[0].(map[string]any)
	assert.Equal(t, "******", nested["card-pin"])
}

func TestInfoMasksStructsAndNestedFields(t *testing.T) {
	logs := observe(t)

	Info("card service withdraw request", Fields{
		"req": models.WithdrawRequest{
			AccountNumber: "34567890",
			Pin:           "1234",
			Amount:        decimal.NewFromInt(10),
		},
		"nested": Fields{"pin": "5678", "accountNumber": "34567890"},
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()

	req, ok := ctx["req"].(map[string]any)
	require.True(t, ok, "struct payloads are logged as sanitized maps, got %T", ctx["req"])
	assert.Equal(t, "******", req["pin"])
	assert.Equal(t, "34567890", req["accountNumber"])
	assert.Equal(t, "10", req["amount"])

	nested, ok := ctx["nested"].(map[string]any)
	require.True(t, ok, "nested fields are logged as sanitized maps, got %T", ctx["nested"])
	assert.Equal(t, "******", nested["pin"])
	assert.Equal(t, "34567890", nested["accountNumber"])
}

func TestErrorAttachesError(t *testing.T) {
	logs := observe(t)

	Error("card service deposit failed", errors.New("boom"), Fields{"accountNumber": "34567890"})
	Error("card service deposit failed", nil, nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	assert.NotContains(t, entries[1].ContextMap(), "error")
}

func TestSanitizePayloadUnavailable(t *testing.T) {
	assert.Equal(t, "<unavailable>", SanitizePayload(make(chan int)))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}
