package notification

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"storefront-checkout/internal/pkg/money"
)

const (
	defaultAgentName      = "Sales Team"
	defaultCurrencySymbol = "₹"
	defaultFirstName      = "Customer"
)

//go:embed templates/order_confirmation.html
var templateFS embed.FS

var confirmationTemplate = template.Must(template.ParseFS(templateFS, "templates/order_confirmation.html"))

type confirmationView struct {
	FirstName      string
	OrderNumber    string
	ProductName    string
	TotalAmount    string
	AdvancePaid    string
	Balance        string
	CurrencySymbol string
	PaymentMethod  string
	AgentName      string
	Shipping       []string
	Year           int
}

// ResolveAgentName prefers orderDetails.agentName, then the top-level agentName,
// then a fixed label. Blank values count as absent.
func ResolveAgentName(req OrderConfirmationRequest) string {
	if v := strings.TrimSpace(req.OrderDetails.AgentName.String()); v != "" {
		return v
	}
	if v := strings.TrimSpace(req.AgentName.String()); v != "" {
		return v
	}
	return defaultAgentName
}

func newConfirmationView(req OrderConfirmationRequest, now time.Time) confirmationView {
	od := req.OrderDetails
	v := confirmationView{
		FirstName:      firstNonEmpty(req.CustomerDetails.FirstName.String(), defaultFirstName),
		OrderNumber:    strings.TrimSpace(od.OrderNumber.String()),
		ProductName:    strings.TrimSpace(req.ProductName.String()),
		TotalAmount:    money.Display(od.TotalAmount.String()),
		AdvancePaid:    money.Display(od.AdvancePaid.String()),
		CurrencySymbol: firstNonEmpty(od.CurrencySymbol.String(), defaultCurrencySymbol),
		PaymentMethod:  strings.TrimSpace(od.PaymentMethod.String()),
		AgentName:      ResolveAgentName(req),
		Shipping:       shippingLines(req.CustomerDetails),
		Year:           now.Year(),
	}
	v.Balance = balanceDue(od.TotalAmount.String(), od.AdvancePaid.String())
	return v
}

func renderConfirmation(v confirmationView) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// balanceDue is empty unless both amounts are bounded decimals and something is still owed.
func balanceDue(total, advance string) string {
	t, ok := money.Parse(total)
	if !ok {
		return ""
	}
	a, ok := money.Parse(advance)
	if !ok {
		return ""
	}
	b := t.Sub(a)
	if !b.IsPositive() {
		return ""
	}
	return b.StringFixed(2)
}

func shippingLines(c CustomerDetails) []string {
	var lines []string
	name := joinNonEmpty(" ", c.FirstName.String(), c.LastName.String())
	street := joinNonEmpty(", ", c.Address.String(), c.Apartment.String())
	region := joinNonEmpty(", ", c.City.String(), c.State.String(), c.Pincode.String())
	country := strings.TrimSpace(c.Country.String())
	phone := strings.TrimSpace(c.Phone.String())

	if street == "" && region == "" && country == "" {
		return nil
	}
	for _, l := range []string{name, street, region, country} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if phone != "" {
		lines = append(lines, "Phone: "+phone)
	}
	return lines
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func firstNonEmpty(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
