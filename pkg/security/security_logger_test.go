package security

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "a***@example.com", MaskEmail("ana@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("a@example.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, HashValue("not-an-email"), MaskEmail("not-an-email"))
}

func TestMaskEmail_MultiByteFirstCharacter(t *testing.T) {
	masked := MaskEmail("çanda@example.com")
	assert.Equal(t, "ç***@example.com", masked)
	assert.True(t, utf8.ValidString(masked))

	assert.Equal(t, "***@example.com", MaskEmail("ç@example.com"))
}

func TestLogContact_MasksEmail(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "cavaltron-backend", "test")

	sl.LogContact(context.Background(), EventContactFailed, "ana@example.com", RequestMeta{
		IP:        "203.0.113.7",
		RequestID: "req-1",
	}, map[string]interface{}{"reason": "provider_error"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, string(EventContactFailed), entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "a***@example.com", fields["subject_value"])
	assert.Equal(t, "203.0.113.7", fields["ip"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, true, fields["alert"])
	assert.Equal(t, map[string]interface{}{"reason": "provider_error"}, fields["details"])
}

func TestLogRateLimitTriggered(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "svc", "test")

	sl.LogRateLimitTriggered(context.Background(), RequestMeta{IP: "198.51.100.1", Endpoint: "/v1/contact"})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, "198.51.100.1", logs.All()[0].ContextMap()["subject_value"])
	assert.Equal(t, "/v1/contact", logs.All()[0].ContextMap()["endpoint"])
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityINFO, GetSeverity(EventContactAccepted))
	assert.Equal(t, SeverityHIGH, GetSeverity(EventContactFailed))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unmapped")))
	assert.True(t, IsHighOrAbove(EventServerError))
	assert.False(t, IsHighOrAbove(EventRateLimitTriggered))
}

func TestLog_SeverityField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "svc", "test")

	sl.Log(context.Background(), SecurityEvent{Event: EventContactAccepted})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
	assert.Equal(t, "INFO", logs.All()[0].ContextMap()["severity"])
	assert.Equal(t, "svc", logs.All()[0].ContextMap()["service"])
	assert.NotContains(t, logs.All()[0].ContextMap(), "alert")
}
