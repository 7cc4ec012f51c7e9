package email

import (
	"context"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
)

// SMTPConfig holds SMTP relay credentials (Brevo by default)
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender handles sending emails via SMTP
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

// NewSMTPSender creates a sender for the given relay
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

// IsConfigured checks if the sender has valid SMTP configuration
func (s *SMTPSender) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.Username != "" && s.cfg.Password != ""
}

// Send delivers msg through the relay. net/smtp has no context support, so
// the call runs in its own goroutine and ctx only bounds how long we wait.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (*Receipt, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}

	envelopeFrom := s.cfg.Username
	if addr, err := mail.ParseAddress(msg.From); err == nil {
		envelopeFrom = addr.Address
	}

	id := uuid.NewString()
	raw := buildMIME(msg, id, hostOf(envelopeFrom))

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)

	done := make(chan error, 1)
	go func() {
		done <- s.sendMail(addr, auth, envelopeFrom, []string{msg.To}, raw)
	}()

	select {
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("smtp: failed to send email: %w", err)
		}
		return &Receipt{ID: id, Provider: "smtp"}, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("smtp: failed to send email: %w", ctx.Err())
	}
}

// buildMIME constructs a multipart/alternative message with text and HTML parts
func buildMIME(msg Message, id, host string) []byte {
	boundary := "cavaltron-" + id
	headers := []string{
		"From: " + msg.From,
		"To: " + msg.To,
	}
	if msg.ReplyTo != "" {
		headers = append(headers, "Reply-To: "+msg.ReplyTo)
	}
	headers = append(headers,
		"Subject: "+mime.QEncoding.Encode("utf-8", msg.Subject),
		"Message-ID: <"+id+"@"+host+">",
		"MIME-Version: 1.0",
		"Content-Type: multipart/alternative; boundary="+boundary,
	)

	parts := []string{
		strings.Join(headers, "\r\n"),
		"",
		"--" + boundary,
		"Content-Type: text/plain; charset=UTF-8",
		"",
		msg.Text,
		"--" + boundary,
		"Content-Type: text/html; charset=UTF-8",
		"",
		msg.HTML,
		"--" + boundary + "--",
		"",
	}
	return []byte(strings.Join(parts, "\r\n"))
}

func hostOf(address string) string {
	if i := strings.LastIndex(address, "@"); i >= 0 && i < len(address)-1 {
		return address[i+1:]
	}
	return "localhost"
}
