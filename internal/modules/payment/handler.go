package payment

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
	rg.POST("/create-order", h.CreateOrder)
	rg.POST("/verify-payment", h.VerifyPayment)
}

// CreateOrder godoc
// @Summary      Create Razorpay order
// @Description  Converts the amount to minor units and creates a gateway order for the checkout widget
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body CreateOrderRequest true "Order payload"
// @Success      200 {object} CreateOrderResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /create-order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loggerf("level=error msg=invalid create order payload err=%v", err)
		response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.loggerf("level=error msg=create order failed err=%v", err)
		switch {
		case errors.Is(err, ErrGatewayNotConfigured):
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Payment gateway is not configured", err)
		case errors.Is(err, ErrInvalidAmount):
			response.ErrorWithDetails(c, http.StatusBadRequest, "Invalid amount", err)
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to create order", err)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"order": result.Order,
		"key":   result.Key,
	})
}

// VerifyPayment godoc
// @Summary      Verify Razorpay payment signature
// @Description  Checks HMAC-SHA256(secret, order_id|payment_id) against the supplied signature
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        body body VerifyPaymentRequest true "Checkout callback values"
// @Success      200 {object} VerifyPaymentResponse
// @Failure      400 {object} VerifyPaymentResponse
// @Failure      500 {object} VerifyPaymentResponse
// @Router       /verify-payment [post]
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.loggerf("level=error msg=invalid verify payment payload err=%v", err)
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.VerifyPayment(c.Request.Context(), req); err != nil {
		if errors.Is(err, ErrSignatureMismatch) {
			response.Error(c, http.StatusBadRequest, "Payment verification failed")
			return
		}
		h.loggerf("level=error msg=verify payment failed order_id=%s err=%v", req.OrderID, err)
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Payment verified successfully",
		"orderId":   req.OrderID,
		"paymentId": req.PaymentID,
	})
}
