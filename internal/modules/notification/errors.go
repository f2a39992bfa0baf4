package notification

import "errors"

var (
	ErrMissingCustomerEmail = errors.New("customer email is required")
	ErrInvalidCustomerEmail = errors.New("customer email is not a valid address")
	ErrInvalidRequest       = errors.New("invalid order confirmation request")
	ErrMailerNotConfigured  = errors.New("email credentials are not configured")
	ErrSendFailed           = errors.New("email delivery failed")
)
