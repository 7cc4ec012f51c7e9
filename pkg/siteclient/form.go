package siteclient

import (
	"context"
	"errors"
	"sync"

	"cavaltron-backend/pkg/contact"
	"cavaltron-backend/pkg/validation"
)

// Status is where a ContactForm is in its submit cycle
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSent
	StatusFailed
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSent:
		return "sent"
	case StatusFailed:
		return "failed"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ContactForm is one instance of the contact form. It allows a single
// submission in flight at a time; a failed submission is never resent and
// the caller must Submit again.
type ContactForm struct {
	client *Client

	// OnStatusChange, when set, is called after every transition. It runs
	// outside the form's lock and may call Status.
	OnStatusChange func(Status)

	mu      sync.Mutex
	status  Status
	receipt *ContactReceipt
	err     error
}

func NewContactForm(client *Client) *ContactForm {
	return &ContactForm{client: client}
}

// Submit validates sub and sends it once. Field errors come back as
// validation.FieldErrors with StatusInvalid and nothing is sent.
func (f *ContactForm) Submit(ctx context.Context, sub contact.Submission) (Status, error) {
	f.mu.Lock()
	if f.status == StatusPending {
		f.mu.Unlock()
		return StatusPending, ErrSubmissionInFlight
	}

	normalized, fieldErrs := contact.Validate(sub)
	if fieldErrs != nil {
		f.set(StatusInvalid, nil, fieldErrs)
		f.mu.Unlock()
		f.notify(StatusInvalid)
		return StatusInvalid, fieldErrs
	}

	f.set(StatusPending, nil, nil)
	f.mu.Unlock()
	f.notify(StatusPending)

	receipt, err := f.client.SendContact(ctx, normalized)

	status := StatusSent
	if err != nil {
		status = StatusFailed
		var fe validation.FieldErrors
		if errors.As(err, &fe) {
			status = StatusInvalid
		}
	}

	f.mu.Lock()
	f.set(status, receipt, err)
	f.mu.Unlock()
	f.notify(status)

	return status, err
}

// Status reports the current state
func (f *ContactForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Receipt is the provider receipt of the last sent submission, nil otherwise
func (f *ContactForm) Receipt() *ContactReceipt {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.receipt
}

// Err is the error of the last failed or invalid submission
func (f *ContactForm) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Reset returns the form to idle. It is a no-op while a submission is pending.
func (f *ContactForm) Reset() {
	f.mu.Lock()
	if f.status == StatusPending {
		f.mu.Unlock()
		return
	}
	f.set(StatusIdle, nil, nil)
	f.mu.Unlock()
	f.notify(StatusIdle)
}

// set must be called with mu held
func (f *ContactForm) set(s Status, receipt *ContactReceipt, err error) {
	f.status = s
	f.receipt = receipt
	f.err = err
}

func (f *ContactForm) notify(s Status) {
	if f.OnStatusChange != nil {
		f.OnStatusChange(s)
	}
}
