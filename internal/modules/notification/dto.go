package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Text accepts a JSON string, number or boolean and keeps its textual form.
// Storefront clients send amounts and order numbers either way.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(x)
	case json.Number:
		*t = Text(x.String())
	case bool:
		*t = Text(strconv.FormatBool(x))
	default:
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	return nil
}

func (t Text) String() string { return string(t) }

type OrderConfirmationRequest struct {
	CustomerEmail   string          `json:"customerEmail" validate:"required,email"`
	OrderDetails    OrderDetails    `json:"orderDetails"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	ProductName     Text            `json:"productName"`
	AgentName       Text            `json:"agentName"`
}

type OrderDetails struct {
	OrderNumber    Text `json:"orderNumber" example:"1042"`
	TotalAmount    Text `json:"totalAmount" example:"4999"`
	AdvancePaid    Text `json:"advancePaid" example:"1000"`
	CurrencySymbol Text `json:"currencySymbol" example:"₹"`
	PaymentMethod  Text `json:"paymentMethod" example:"UPI"`
	AgentName      Text `json:"agentName" example:"Priya"`
}

type CustomerDetails struct {
	FirstName Text `json:"firstName" example:"Asha"`
	LastName  Text `json:"lastName"`
	Phone     Text `json:"phone"`
	Address   Text `json:"address"`
	Apartment Text `json:"apartment"`
	City      Text `json:"city"`
	State     Text `json:"state"`
	Pincode   Text `json:"pincode"`
	Country   Text `json:"country"`
}

// Email is a rendered message ready for a Mailer.
type Email struct {
	FromName string
	From     string
	To       string
	Cc       []string
	Subject  string
	HTML     string
}

type SendResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Email sent successfully"`
	MessageID string `json:"messageId,omitempty" example:"<1700000000.abc@example.com>"`
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Customer email is required"`
}
