package payment

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"storefront-checkout/internal/pkg/money"

	"github.com/shopspring/decimal"
)

const defaultCurrency = "INR"

var (
	minorUnitsPerMajor = decimal.NewFromInt(100)
	maxMinorUnits      = decimal.NewFromInt(math.MaxInt64)
)

type Config struct {
	KeyID     string
	KeySecret string
}

type Service struct {
	gateway orderGateway
	cfg     Config
	now     func() time.Time
	loggerf func(format string, args ...interface{})
}

// NewService accepts a nil gateway when credentials are absent; calls then fail with ErrGatewayNotConfigured.
func NewService(gateway orderGateway, cfg Config, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		gateway: gateway,
		cfg:     cfg,
		now:     time.Now,
		loggerf: loggerf,
	}
}

func (s *Service) configured() bool {
	return s.cfg.KeyID != "" && s.cfg.KeySecret != "" && s.gateway != nil
}

func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	if !s.configured() {
		return nil, ErrGatewayNotConfigured
	}

	amount, err := ToMinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}

	params := OrderParams{
		Amount:   amount,
		Currency: strings.TrimSpace(req.Currency),
		Receipt:  strings.TrimSpace(req.Receipt),
		Notes:    req.Notes,
	}
	if params.Currency == "" {
		params.Currency = defaultCurrency
	}
	if params.Receipt == "" {
		params.Receipt = fmt.Sprintf("receipt_%d", s.now().UnixMilli())
	}
	if params.Notes == nil {
		params.Notes = map[string]interface{}{}
	}

	s.loggerf("level=info msg=creating gateway order amount=%d currency=%s receipt=%s", params.Amount, params.Currency, params.Receipt)

	order, err := s.gateway.CreateOrder(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: empty order in gateway response", ErrGatewayFailure)
	}

	s.loggerf("level=info msg=gateway order created order_id=%v receipt=%s", order["id"], params.Receipt)
	return &CreateOrderResult{Order: order, Key: s.cfg.KeyID}, nil
}

// VerifyPayment returns nil when the signature matches, ErrSignatureMismatch otherwise.
func (s *Service) VerifyPayment(_ context.Context, req VerifyPaymentRequest) error {
	if s.cfg.KeySecret == "" {
		return ErrGatewayNotConfigured
	}

	expected := ComputeSignature(s.cfg.KeySecret, req.OrderID, req.PaymentID)
	valid := signatureMatches(expected, req.Signature)
	s.loggerf("level=info msg=payment signature validation order_id=%s payment_id=%s signature_valid=%t", req.OrderID, req.PaymentID, valid)
	if !valid {
		return ErrSignatureMismatch
	}
	return nil
}

// ToMinorUnits converts a major-unit amount to round(amount * 100).
// Amounts that round to zero paise are rejected along with non-positive ones.
// The exponent is bounded before any arithmetic, since rescaling is unbounded work.
func ToMinorUnits(amount decimal.NullDecimal) (int64, error) {
	if !amount.Valid || !money.Bounded(amount.Decimal) || !amount.Decimal.IsPositive() {
		return 0, ErrInvalidAmount
	}
	minor := amount.Decimal.Mul(minorUnitsPerMajor).Round(0)
	if !minor.IsPositive() || minor.GreaterThan(maxMinorUnits) {
		return 0, ErrInvalidAmount
	}
	return minor.IntPart(), nil
}
