package clients

import (
	"context"

	"storefront-checkout/internal/modules/payment"

	razorpay "github.com/razorpay/razorpay-go"
)

type razorpayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayClient creates orders through the official Razorpay SDK.
type RazorpayClient struct {
	orders  razorpayOrders
	loggerf func(format string, args ...interface{})
}

func NewRazorpayClient(keyID, keySecret string, loggerf func(format string, args ...interface{})) *RazorpayClient {
	return newRazorpayClient(razorpay.NewClient(keyID, keySecret).Order, loggerf)
}

func newRazorpayClient(orders razorpayOrders, loggerf func(format string, args ...interface{})) *RazorpayClient {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &RazorpayClient{orders: orders, loggerf: loggerf}
}

// CreateOrder is not cancellable once the SDK call starts; ctx is only checked up front.
func (c *RazorpayClient) CreateOrder(ctx context.Context, params payment.OrderParams) (payment.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := map[string]interface{}{
		"amount":   params.Amount,
		"currency": params.Currency,
		"receipt":  params.Receipt,
		"notes":    params.Notes,
	}

	body, err := c.orders.Create(data, nil)
	if err != nil {
		c.loggerf("level=error msg=razorpay order create failed receipt=%s err=%v", params.Receipt, err)
		return nil, err
	}
	c.loggerf("level=info msg=razorpay order created receipt=%s order_id=%v status=%v", params.Receipt, body["id"], body["status"])
	return payment.GatewayOrder(body), nil
}
