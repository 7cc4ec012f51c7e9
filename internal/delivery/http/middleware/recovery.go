package middleware

import (
	"fmt"
	"net/http"

	"cavaltron-backend/internal/delivery/http/response"
	"cavaltron-backend/pkg/logger"
	"cavaltron-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the standard 500 error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.ErrorContext(c.Request.Context(), "Panic recovered", "panic", recovered, "path", c.Request.URL.Path)

		security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
			Event:       security.EventServerError,
			SubjectType: "system",
			Meta:        requestMeta(c),
			Details:     map[string]interface{}{"panic": fmt.Sprint(recovered)},
		})

		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		c.Abort()
	})
}
