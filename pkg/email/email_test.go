package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = ContactIdentity{
	From:    "CAVALTRON Site <onboarding@resend.dev>",
	To:      "contato@cavaltron.com.br",
	Subject: "Solicitações de Contato via Site",
}

func TestBuildContactMessage(t *testing.T) {
	msg, err := BuildContactMessage(testIdentity, ContactEmailData{
		Name:    "Ana Silva",
		Email:   "ana@example.com",
		Phone:   "11999999999",
		Message: "Gostaria de um orçamento.",
	})
	require.NoError(t, err)

	assert.Equal(t, testIdentity.From, msg.From)
	assert.Equal(t, testIdentity.To, msg.To)
	assert.Equal(t, testIdentity.Subject, msg.Subject)
	assert.Equal(t, "ana@example.com", msg.ReplyTo)
	assert.Contains(t, msg.HTML, "<strong>Nome:</strong> Ana Silva")
	assert.Contains(t, msg.HTML, "<strong>Celular:</strong> 11999999999")
	assert.Contains(t, msg.HTML, "Gostaria de um orçamento.")
	assert.Contains(t, msg.HTML, contactFooter)
	assert.Contains(t, msg.Text, "Mensagem:\nGostaria de um orçamento.")
}

func TestBuildContactMessage_EscapesMarkup(t *testing.T) {
	msg, err := BuildContactMessage(testIdentity, ContactEmailData{
		Name:    `<b>Ana</b>`,
		Email:   "ana@example.com",
		Phone:   "1",
		Message: `<script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "&lt;b&gt;Ana&lt;/b&gt;")
}

func TestLogSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewLogSender(slog.New(slog.NewTextHandler(&buf, nil)))

	receipt, err := sender.Send(context.Background(), Message{
		To:      "test@example.com",
		Subject: "Test Subject",
		Text:    "Hello",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt.ID, "log-"))
	assert.Equal(t, "log", receipt.Provider)

	output := buf.String()
	assert.Contains(t, output, "test@example.com")
	assert.Contains(t, output, "Test Subject")
	assert.Contains(t, output, "EMAIL (dev mode")
}

func newTestResendSender(t *testing.T, handler http.HandlerFunc) *ResendSender {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sender := NewResendSender("re_test", srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	sender.client.BaseURL = base
	return sender
}

func TestResendSender_Send(t *testing.T) {
	calls := 0
	sender := newTestResendSender(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, testIdentity.From, payload["from"])
		assert.Equal(t, []interface{}{testIdentity.To}, payload["to"])
		assert.Equal(t, "ana@example.com", payload["reply_to"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	})

	receipt, err := sender.Send(context.Background(), Message{
		From:    testIdentity.From,
		To:      testIdentity.To,
		ReplyTo: "ana@example.com",
		Subject: testIdentity.Subject,
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", receipt.ID)
	assert.Equal(t, 1, calls)
}

func TestResendSender_ProviderError(t *testing.T) {
	calls := 0
	sender := newTestResendSender(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	})

	_, err := sender.Send(context.Background(), Message{From: "x", To: "y", Subject: "s"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resend")
	assert.Equal(t, 1, calls)
}

func TestResendSender_NotConfigured(t *testing.T) {
	_, err := NewResendSender("", nil).Send(context.Background(), Message{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPSender_Send(t *testing.T) {
	var gotFrom string
	var gotTo []string
	var gotMsg []byte
	sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "user", Password: "pass"})
	sender.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		assert.Equal(t, "smtp.example.com:587", addr)
		gotFrom, gotTo, gotMsg = from, to, msg
		return nil
	}

	msg, err := BuildContactMessage(testIdentity, ContactEmailData{Name: "Ana", Email: "ana@example.com", Phone: "1", Message: "Oi"})
	require.NoError(t, err)

	receipt, err := sender.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, "onboarding@resend.dev", gotFrom)
	assert.Equal(t, []string{"contato@cavaltron.com.br"}, gotTo)

	raw := string(gotMsg)
	assert.Contains(t, raw, "Reply-To: ana@example.com\r\n")
	assert.Contains(t, raw, "Subject: =?utf-8?q?")
	assert.Contains(t, raw, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, raw, "Message-ID: <"+receipt.ID+"@resend.dev>")
}

func TestSMTPSender_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		_, err := NewSMTPSender(SMTPConfig{Host: "h"}).Send(context.Background(), Message{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("relay failure", func(t *testing.T) {
		sender := NewSMTPSender(SMTPConfig{Host: "h", Port: "25", Username: "u", Password: "p"})
		sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("535 authentication failed")
		}
		_, err := sender.Send(context.Background(), Message{From: "a@b.c", To: "d@e.f"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "535")
	})

	t.Run("context deadline", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		sender := NewSMTPSender(SMTPConfig{Host: "h", Port: "25", Username: "u", Password: "p"})
		sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			<-release
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := sender.Send(ctx, Message{From: "a@b.c", To: "d@e.f"})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNewSender(t *testing.T) {
	s, err := NewSender(ProviderConfig{Provider: "log"})
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	s, err = NewSender(ProviderConfig{Provider: "smtp"})
	require.NoError(t, err)
	assert.False(t, s.IsConfigured())

	s, err = NewSender(ProviderConfig{ResendAPIKey: "re_x"})
	require.NoError(t, err)
	assert.True(t, s.IsConfigured())

	_, err = NewSender(ProviderConfig{Provider: "pigeon"})
	assert.Error(t, err)
}
