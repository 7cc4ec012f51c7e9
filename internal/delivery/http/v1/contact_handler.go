package v1

import (
	"errors"
	"net/http"

	"cavaltron-backend/internal/domain"
	"cavaltron-backend/pkg/apperror"
	"cavaltron-backend/pkg/contact"
	"cavaltron-backend/pkg/email"
	"cavaltron-backend/pkg/security"
	"cavaltron-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// Preflight is answered by the CORS middleware before routing.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the submission and emails it to the site owner. One delivery attempt per request.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      contact.Submission  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactReceipt
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	meta := security.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString("RequestID"),
		Endpoint:  c.FullPath(),
	}
	audit := security.DefaultLogger()

	var req contact.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		audit.Log(c.Request.Context(), security.SecurityEvent{
			Event:   security.EventMalformedRequest,
			Meta:    meta,
			Details: map[string]interface{}{"error": err.Error()},
		})
		c.Error(apperror.New(http.StatusInternalServerError, err.Error(), err))
		return
	}

	receipt, err := h.contactUC.SendContactMessage(c.Request.Context(), req)
	if err != nil {
		var fieldErrs validation.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			audit.LogContact(c.Request.Context(), security.EventContactRejected, req.Email, meta, map[string]interface{}{"fields": len(fieldErrs)})
			c.Error(apperror.Invalid("Invalid contact submission", fieldErrs))
		case errors.Is(err, email.ErrNotConfigured):
			c.Error(apperror.Unavailable("Contact service temporarily unavailable", err))
		default:
			audit.LogContact(c.Request.Context(), security.EventContactFailed, req.Email, meta, map[string]interface{}{"error": err.Error()})
			c.Error(apperror.New(http.StatusInternalServerError, err.Error(), err))
		}
		return
	}

	audit.LogContact(c.Request.Context(), security.EventContactAccepted, req.Email, meta, map[string]interface{}{"id": receipt.ID})
	c.JSON(http.StatusOK, receipt)
}
