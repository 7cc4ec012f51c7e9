package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	client *resend.Client
	apiKey string
}

// NewResendSender creates a new Resend email sender. A nil httpClient gets
// a client with a 15 second timeout.
func NewResendSender(apiKey string, httpClient *http.Client) *ResendSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &ResendSender{
		client: resend.NewCustomClient(httpClient, apiKey),
		apiKey: apiKey,
	}
}

// IsConfigured reports whether an API key is set
func (s *ResendSender) IsConfigured() bool {
	return s.apiKey != ""
}

// Send sends an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", err)
	}

	return &Receipt{ID: sent.Id, Provider: "resend"}, nil
}
