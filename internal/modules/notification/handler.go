package notification

import (
	"errors"
	"net/http"

	"storefront-checkout/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/agent_to_customer", h.SendOrderConfirmation)
}

// SendOrderConfirmation godoc
// @Summary      Send order confirmation email
// @Description  Renders the order confirmation template and emails it to the customer with a copy to the store mailbox
// @Tags         Notifications
// @Accept       json
// @Produce      json
// @Param        body body OrderConfirmationRequest true "Order confirmation payload"
// @Success      200 {object} SendResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /agent_to_customer [post]
func (h *Handler) SendOrderConfirmation(c *gin.Context) {
	var req OrderConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loggerf("level=error msg=invalid order confirmation payload err=%v", err)
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	messageID, err := h.service.SendOrderConfirmation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCustomerEmail):
			response.Error(c, http.StatusBadRequest, "Customer email is required")
		case errors.Is(err, ErrInvalidCustomerEmail):
			response.Error(c, http.StatusBadRequest, "Customer email is invalid")
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			h.loggerf("level=error msg=order confirmation failed err=%v", err)
			response.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Email sent successfully",
		"messageId": messageID,
	})
}
