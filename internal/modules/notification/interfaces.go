package notification

import "context"

// Mailer delivers a rendered email and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, email Email) (string, error)
}
