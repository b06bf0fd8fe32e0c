package exchange

import "github.com/standx/go-standx/types"

// CreateOrderOption is a functional option for order placement
type CreateOrderOption func(*createOrderConfig)

type createOrderConfig struct {
	price      string
	reduceOnly bool
	clOrdId    string
	marginMode types.MarginMode
	leverage   int
}

// WithOrderPrice sets the limit price
func WithOrderPrice(price string) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.price = price
	}
}

// WithOrderReduceOnly restricts the order to reducing an open position
func WithOrderReduceOnly(reduceOnly bool) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.reduceOnly = reduceOnly
	}
}

// WithOrderClOrdId sets the client order id. The server assigns one
// when none is provided.
func WithOrderClOrdId(clOrdId string) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.clOrdId = clOrdId
	}
}

// WithOrderMarginMode sets the margin mode, which must match the
// position's configuration
func WithOrderMarginMode(mode types.MarginMode) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.marginMode = mode
	}
}

// WithOrderLeverage sets the leverage, which must match the position's
// configuration
func WithOrderLeverage(leverage int) CreateOrderOption {
	return func(cfg *createOrderConfig) {
		cfg.leverage = leverage
	}
}
