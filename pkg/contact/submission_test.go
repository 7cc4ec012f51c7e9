package contact_test

import (
	"strings"
	"testing"

	"cavaltron-backend/pkg/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:    "Ana Silva",
		Email:   "ana@example.com",
		Phone:   "11999999999",
		Message: "Gostaria de um orçamento.",
	}
}

func TestValidate_AcceptsValidSubmission(t *testing.T) {
	sub, errs := contact.Validate(validSubmission())
	require.Nil(t, errs)
	assert.Equal(t, validSubmission(), sub)
}

func TestValidate_TrimsFields(t *testing.T) {
	sub, errs := contact.Validate(contact.Submission{
		Name:    "  Ana Silva ",
		Email:   "\tana@example.com\n",
		Phone:   " 11999999999 ",
		Message: "  Olá  ",
	})
	require.Nil(t, errs)
	assert.Equal(t, "Ana Silva", sub.Name)
	assert.Equal(t, "ana@example.com", sub.Email)
	assert.Equal(t, "11999999999", sub.Phone)
	assert.Equal(t, "Olá", sub.Message)
}

func TestValidate_BlankFields(t *testing.T) {
	cases := map[string]func(*contact.Submission){
		"name":    func(s *contact.Submission) { s.Name = "   " },
		"email":   func(s *contact.Submission) { s.Email = "" },
		"phone":   func(s *contact.Submission) { s.Phone = "\t" },
		"message": func(s *contact.Submission) { s.Message = " \n " },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			candidate := validSubmission()
			mutate(&candidate)

			_, errs := contact.Validate(candidate)
			require.NotNil(t, errs)
			assert.Len(t, errs, 1)
			assert.Equal(t, contact.Messages[field], errs[field])
		})
	}
}

func TestValidate_ReportsAllFieldsAtOnce(t *testing.T) {
	_, errs := contact.Validate(contact.Submission{})
	require.NotNil(t, errs)
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Invalid email", errs["email"])
	assert.Equal(t, "Phone is required", errs["phone"])
	assert.Equal(t, "Message is required", errs["message"])
}

func TestValidate_MessageLength(t *testing.T) {
	t.Run("exactly 1000 characters is accepted", func(t *testing.T) {
		candidate := validSubmission()
		candidate.Message = strings.Repeat("a", contact.MaxMessageLength)
		_, errs := contact.Validate(candidate)
		assert.Nil(t, errs)
	})

	t.Run("1001 characters is rejected", func(t *testing.T) {
		candidate := validSubmission()
		candidate.Message = strings.Repeat("a", contact.MaxMessageLength+1)
		_, errs := contact.Validate(candidate)
		require.NotNil(t, errs)
		assert.Equal(t, "Message is required", errs["message"])
	})

	t.Run("multi-byte characters count once", func(t *testing.T) {
		candidate := validSubmission()
		candidate.Message = strings.Repeat("ç", contact.MaxMessageLength)
		_, errs := contact.Validate(candidate)
		assert.Nil(t, errs)
	})
}

func TestValidate_FieldLengthLimits(t *testing.T) {
	t.Run("name over 100", func(t *testing.T) {
		candidate := validSubmission()
		candidate.Name = strings.Repeat("n", contact.MaxNameLength+1)
		_, errs := contact.Validate(candidate)
		assert.True(t, errs.Has("name"))
	})

	t.Run("phone over 20", func(t *testing.T) {
		candidate := validSubmission()
		candidate.Phone = strings.Repeat("9", contact.MaxPhoneLength+1)
		_, errs := contact.Validate(candidate)
		assert.True(t, errs.Has("phone"))
	})

	t.Run("email over 255", func(t *testing.T) {
		candidate := validSubmission()
		candidate.Email = strings.Repeat("a", contact.MaxEmailLength-len("@example.com")+1) + "@example.com"
		_, errs := contact.Validate(candidate)
		assert.Equal(t, "Invalid email", errs["email"])
	})
}

func TestValidate_EmailSyntax(t *testing.T) {
	candidate := validSubmission()
	candidate.Email = "user@example.com"
	_, errs := contact.Validate(candidate)
	assert.Nil(t, errs)

	candidate.Email = "not-an-email"
	_, errs = contact.Validate(candidate)
	require.NotNil(t, errs)
	assert.Equal(t, "Invalid email", errs["email"])
}
