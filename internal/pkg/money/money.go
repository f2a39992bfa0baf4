package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxExponent bounds the decimal exponent accepted from clients. Rescaling
	// cost grows with 10^|exponent|, so it is checked before any arithmetic.
	MaxExponent        = 20
	maxCoefficientBits = 128
	maxInputLength     = 64
)

// Bounded reports whether d is small enough for arithmetic. It does not rescale d.
func Bounded(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxExponent || exp > MaxExponent {
		return false
	}
	return d.Coefficient().BitLen() <= maxCoefficientBits
}

// Parse accepts a numeric string only when it passes Bounded.
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxInputLength {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !Bounded(d) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Display renders numeric amounts with two decimals and leaves other text as is.
func Display(s string) string {
	if d, ok := Parse(s); ok {
		return d.StringFixed(2)
	}
	return strings.TrimSpace(s)
}
