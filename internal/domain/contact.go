package domain

import (
	"context"

	"cavaltron-backend/pkg/contact"
)

// ContactReceipt is the email provider's acknowledgement, returned to the
// caller as-is on success
type ContactReceipt struct {
	ID string `json:"id" example:"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and makes one delivery attempt
	SendContactMessage(ctx context.Context, sub contact.Submission) (*ContactReceipt, error)
}
