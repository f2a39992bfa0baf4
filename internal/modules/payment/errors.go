package payment

import "errors"

var (
	ErrGatewayNotConfigured = errors.New("razorpay credentials are not configured")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrGatewayFailure       = errors.New("payment gateway request failed")
	ErrSignatureMismatch    = errors.New("payment signature mismatch")
)
