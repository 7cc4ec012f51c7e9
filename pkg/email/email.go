// Package email provides email sending functionality with pluggable providers.
package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by a sender that lacks credentials
var ErrNotConfigured = errors.New("email service is not configured")

// Message represents an email message to be sent.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string // Plain text fallback
}

// Receipt is the provider's acknowledgement of an accepted message
type Receipt struct {
	ID       string `json:"id"`
	Provider string `json:"-"`
}

// Sender is the interface for email providers. Send makes exactly one
// delivery attempt and never retries.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Receipt, error)
	IsConfigured() bool
}
