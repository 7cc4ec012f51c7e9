package usecase

import (
	"context"
	"fmt"
	"time"

	"cavaltron-backend/internal/domain"
	"cavaltron-backend/pkg/contact"
	"cavaltron-backend/pkg/email"
	"cavaltron-backend/pkg/logger"
	"cavaltron-backend/pkg/security"
)

type contactUsecase struct {
	sender   email.Sender
	identity email.ContactIdentity
	timeout  time.Duration
}

// NewContactUsecase creates a new contact usecase. timeout bounds the wait
// on the email provider; zero leaves it to the caller's context.
func NewContactUsecase(sender email.Sender, identity email.ContactIdentity, timeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		identity: identity,
		timeout:  timeout,
	}
}

// SendContactMessage validates the contact request and sends the email.
// Validation failures come back as validation.FieldErrors and never reach
// the provider. The provider is called at most once.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub contact.Submission) (*domain.ContactReceipt, error) {
	normalized, fieldErrs := contact.Validate(sub)
	if fieldErrs != nil {
		return nil, fieldErrs
	}

	if !uc.sender.IsConfigured() {
		return nil, email.ErrNotConfigured
	}

	msg, err := email.BuildContactMessage(uc.identity, email.ContactEmailData{
		Name:    normalized.Name,
		Email:   normalized.Email,
		Phone:   normalized.Phone,
		Message: normalized.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build contact email: %w", err)
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	logger.Log.InfoContext(ctx, "Sending contact form email", "name", normalized.Name, "email", security.MaskEmail(normalized.Email))

	receipt, err := uc.sender.Send(ctx, msg)
	if err != nil {
		return nil, fmt.Errorf("failed to send contact email: %w", err)
	}

	logger.Log.InfoContext(ctx, "Contact email sent", "id", receipt.ID, "provider", receipt.Provider)
	return &domain.ContactReceipt{ID: receipt.ID}, nil
}
