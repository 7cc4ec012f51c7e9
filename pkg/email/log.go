package email

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender logs emails instead of sending them.
// Useful for development and testing.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a new log-based email sender. A nil logger uses slog.Default.
func NewLogSender(l *slog.Logger) *LogSender {
	if l == nil {
		l = slog.Default()
	}
	return &LogSender{log: l}
}

func (s *LogSender) IsConfigured() bool { return true }

// Send logs the email details.
func (s *LogSender) Send(ctx context.Context, msg Message) (*Receipt, error) {
	id := "log-" + uuid.NewString()
	s.log.InfoContext(ctx, "EMAIL (dev mode - not actually sent)",
		"id", id,
		"from", msg.From,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return &Receipt{ID: id, Provider: "log"}, nil
}
