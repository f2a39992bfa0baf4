package payment

import "context"

type orderGateway interface {
	CreateOrder(ctx context.Context, params OrderParams) (GatewayOrder, error)
}
