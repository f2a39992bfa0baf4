package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-checkout/internal/pkg/validator"
)

const customerEmailField = "OrderConfirmationRequest.CustomerEmail"

var headerSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

type Config struct {
	// Mailbox is the sender and the copy recipient of every confirmation.
	Mailbox  string
	FromName string
}

type Service struct {
	mailer  Mailer
	cfg     Config
	now     func() time.Time
	loggerf func(format string, args ...interface{})
}

func NewService(mailer Mailer, cfg Config, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		mailer:  mailer,
		cfg:     cfg,
		now:     time.Now,
		loggerf: loggerf,
	}
}

// SendOrderConfirmation renders the confirmation email and sends it once; the
// returned string is the provider's message id.
func (s *Service) SendOrderConfirmation(ctx context.Context, req OrderConfirmationRequest) (string, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	if errs := validator.Validate(req); errs != nil {
		switch errs[customerEmailField] {
		case "required":
			return "", ErrMissingCustomerEmail
		case "email":
			return "", ErrInvalidCustomerEmail
		}
		return "", fmt.Errorf("%w: %s", ErrInvalidRequest, validator.Describe(errs))
	}
	if s.mailer == nil || s.cfg.Mailbox == "" {
		return "", ErrMailerNotConfigured
	}

	view := newConfirmationView(req, s.now())
	html, err := renderConfirmation(view)
	if err != nil {
		return "", fmt.Errorf("render confirmation email: %w", err)
	}

	email := Email{
		FromName: s.cfg.FromName,
		From:     s.cfg.Mailbox,
		To:       req.CustomerEmail,
		Cc:       []string{s.cfg.Mailbox},
		Subject:  subjectFor(view.OrderNumber),
		HTML:     html,
	}

	s.loggerf("level=info msg=sending order confirmation to=%s order_number=%s agent=%s", email.To, view.OrderNumber, view.AgentName)
	messageID, err := s.mailer.Send(ctx, email)
	if err != nil {
		s.loggerf("level=error msg=order confirmation send failed to=%s order_number=%s err=%v", email.To, view.OrderNumber, err)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	s.loggerf("level=info msg=order confirmation sent to=%s message_id=%s", email.To, messageID)
	return messageID, nil
}

func subjectFor(orderNumber string) string {
	if orderNumber == "" {
		return "Order Confirmation"
	}
	return "Order Confirmation - #" + headerSanitizer.Replace(orderNumber)
}
