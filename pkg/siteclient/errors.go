package siteclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSubmissionInFlight is returned when Submit is called on a form whose
// previous submission has not finished.
var ErrSubmissionInFlight = errors.New("siteclient: submission already in flight")

// APIError is a non-2xx answer, or a 2xx answer carrying an error field.
type APIError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("siteclient: API error %d: %s", e.StatusCode, e.Message)
}

func parseAPIError(statusCode int, body []byte) *APIError {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.StatusCode = statusCode
		return &apiErr
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = "empty response"
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
