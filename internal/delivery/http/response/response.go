package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Error is always a plain
// string so clients can show it without inspecting the shape.
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      interface{}       `json:"data,omitempty"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString("RequestID"),
	})
}

// Error sends an error response. fields carries per-field validation
// messages and may be nil.
func Error(c *gin.Context, code int, message string, fields map[string]string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     message,
		Fields:    fields,
		RequestID: c.GetString("RequestID"),
	})
}
