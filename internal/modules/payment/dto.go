package payment

import "github.com/shopspring/decimal"

// CreateOrderRequest accepts amount as a JSON number or numeric string, in major units.
type CreateOrderRequest struct {
	Amount   decimal.NullDecimal    `json:"amount" swaggertype:"number" example:"499.99"`
	Currency string                 `json:"currency" example:"INR"`
	Receipt  string                 `json:"receipt" example:"receipt_1700000000000"`
	Notes    map[string]interface{} `json:"notes"`
}

// GatewayOrder is the order object returned by the gateway, passed through untouched.
type GatewayOrder map[string]interface{}

// OrderParams is what the gateway receives; Amount is in minor units.
type OrderParams struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]interface{}
}

type CreateOrderResult struct {
	Order GatewayOrder `json:"order"`
	Key   string       `json:"key"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" example:"order_1"`
	PaymentID string `json:"razorpay_payment_id" example:"pay_1"`
	Signature string `json:"razorpay_signature" example:"c4ba7785e595b717abd8b4847eaf30e97f23acbdbe1b8f5cbbf17d28d63b068f"`
}

type CreateOrderResponse struct {
	Success bool         `json:"success" example:"true"`
	Order   GatewayOrder `json:"order"`
	Key     string       `json:"key" example:"rzp_test_xxx"`
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Payment verified successfully"`
	OrderID   string `json:"orderId,omitempty" example:"order_1"`
	PaymentID string `json:"paymentId,omitempty" example:"pay_1"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Invalid amount"`
	Error   string `json:"error,omitempty" example:"amount must be a positive number"`
}
