// Package contact holds the contact form submission and its validation rules.
// Both the HTTP handler and the Go client validate with the same function.
package contact

import (
	"strings"

	"cavaltron-backend/pkg/validation"
)

// Field limits, in characters. Keep in sync with the validate tags below.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 255
	MaxPhoneLength   = 20
	MaxMessageLength = 1000
)

// Submission is a contact form payload. Lengths count characters, not bytes.
type Submission struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,max=255,email"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Message string `json:"message" validate:"required,max=1000"`
}

// Messages is the error text shown for each field, whatever rule failed
var Messages = map[string]string{
	"name":    "Name is required",
	"email":   "Invalid email",
	"phone":   "Phone is required",
	"message": "Message is required",
}

// Normalize returns a copy with surrounding whitespace removed from every field
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Phone:   strings.TrimSpace(s.Phone),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate normalizes the candidate and checks every field independently.
// On success the normalized submission is returned with nil errors; otherwise
// the errors hold one message per failing field.
func Validate(candidate Submission) (Submission, validation.FieldErrors) {
	sub := candidate.Normalize()
	if errs := validation.Struct(sub, Messages); errs != nil {
		return Submission{}, errs
	}
	return sub, nil
}
