package email

import (
	"fmt"
	"log/slog"
	"net/http"
)

// ProviderConfig selects and configures a Sender
type ProviderConfig struct {
	Provider     string // "resend", "smtp" or "log"
	ResendAPIKey string
	SMTP         SMTPConfig
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

// NewSender returns the sender named by cfg.Provider
func NewSender(cfg ProviderConfig) (Sender, error) {
	switch cfg.Provider {
	case "", "resend":
		return NewResendSender(cfg.ResendAPIKey, cfg.HTTPClient), nil
	case "smtp":
		return NewSMTPSender(cfg.SMTP), nil
	case "log":
		return NewLogSender(cfg.Logger), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
