package middleware

import (
	"errors"
	"net/http"

	"cavaltron-backend/internal/delivery/http/response"
	"cavaltron-backend/pkg/apperror"
	"cavaltron-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.WarnContext(c.Request.Context(), "Request failed", "status", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
			return
		}

		logger.Log.ErrorContext(c.Request.Context(), "Internal Server Error", "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
