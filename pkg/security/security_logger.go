package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of abuse/audit event
type EventType string

const (
	EventContactAccepted    EventType = "contact_accepted"
	EventContactRejected    EventType = "contact_rejected"
	EventContactFailed      EventType = "contact_delivery_failed"
	EventMalformedRequest   EventType = "malformed_request"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
)

// RequestMeta is what the HTTP layer knows about the caller
type RequestMeta struct {
	IP        string
	UserAgent string
	RequestID string
	Endpoint  string
}

// SecurityEvent is one audit record. SubjectValue must already be masked
// or hashed when it identifies a person.
type SecurityEvent struct {
	Event        EventType
	SubjectType  string // "email", "ip", "system"
	SubjectValue string
	Meta         RequestMeta
	Details      map[string]interface{}
}

// SecurityLogger writes audit events as structured zap entries. Severity,
// and from it the log level, is derived from the event type.
type SecurityLogger struct {
	zapLogger *zap.Logger
}

var (
	defaultLogger *SecurityLogger
	defaultMu     sync.Mutex
)

// InitSecurityLogger builds the production zap logger and installs it as
// the default
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)

	defaultMu.Lock()
	defaultLogger = sl
	defaultMu.Unlock()
	return sl
}

// NewSecurityLogger wraps an existing zap logger
func NewSecurityLogger(z *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger: z.Named("security").With(
			zap.String("service", serviceName),
			zap.String("env", environment),
		),
	}
}

// DefaultLogger returns the installed logger, building one on first use
func DefaultLogger() *SecurityLogger {
	defaultMu.Lock()
	sl := defaultLogger
	defaultMu.Unlock()
	if sl == nil {
		return InitSecurityLogger("cavaltron-backend", getEnvironment())
	}
	return sl
}

// Log writes one event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	severity := GetSeverity(event.Event)

	fields := make([]zap.Field, 0, 8)
	fields = append(fields, zap.String("severity", string(severity)))
	if IsHighOrAbove(event.Event) {
		fields = append(fields, zap.Bool("alert", true))
	}
	fields = appendNonEmpty(fields,
		"subject_type", event.SubjectType,
		"subject_value", event.SubjectValue,
		"ip", event.Meta.IP,
		"user_agent", event.Meta.UserAgent,
		"request_id", event.Meta.RequestID,
		"endpoint", event.Meta.Endpoint,
	)
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	if ce := sl.zapLogger.Check(severity.level(), string(event.Event)); ce != nil {
		ce.Write(fields...)
	}
}

// LogContact logs the outcome of a contact form submission. The submitter
// email is masked before it reaches the log.
func (sl *SecurityLogger) LogContact(ctx context.Context, event EventType, email string, meta RequestMeta, details map[string]interface{}) {
	sl.Log(ctx, SecurityEvent{
		Event:        event,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		Meta:         meta,
		Details:      details,
	})
}

// LogRateLimitTriggered logs a client that went over its limit
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, meta RequestMeta) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: meta.IP,
		Meta:         meta,
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// appendNonEmpty adds string fields from key/value pairs, skipping blanks
func appendNonEmpty(fields []zap.Field, kv ...string) []zap.Field {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			fields = append(fields, zap.String(kv[i], kv[i+1]))
		}
	}
	return fields
}

// MaskEmail keeps the first character and the domain ("a***@example.com").
// Input without an @ is hashed.
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return HashValue(email)
	}
	first, size := utf8.DecodeRuneInString(email)
	if at <= size {
		return "***" + email[at:]
	}
	return string(first) + "***" + email[at:]
}

// HashValue is a short SHA-256 fingerprint for correlating values without
// logging them
func HashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:8])
}

func getEnvironment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
