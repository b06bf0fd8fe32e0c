// Package exchange provides access to StandX trading operations via
// the signed REST API.
package exchange

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/standx/go-standx/auth"
	"github.com/standx/go-standx/info"
	"github.com/standx/go-standx/internal/utils"
	"github.com/standx/go-standx/rest"
	"github.com/standx/go-standx/types"
)

// Config for initializing the Exchange client
type Config struct {
	// BaseUrl is the base URL for the StandX API
	// If none is provided, the mainnet url will be used
	BaseUrl string
	// Token is the bearer session credential issued by the login
	// handshake.
	Token string
	// Signer holds the session keypair whose public key the token was
	// issued against. Every trading request is signed with it.
	Signer *auth.Signer
	// SessionId is forwarded on signed requests so order events on the
	// websocket API can be correlated with their HTTP submissions.
	SessionId string
	// Timeout is the timeout for network requests
	Timeout time.Duration
}

// Exchange provides access to trading operations via REST API
type Exchange struct {
	rest rest.ClientInterface
	info *info.Info
}

// New creates a new Exchange client
func New(c Config) (*Exchange, error) {
	if c.Signer == nil {
		return nil, fmt.Errorf("signer is required")
	}

	restClient := rest.New(rest.Config{
		BaseUrl:   c.BaseUrl,
		Token:     c.Token,
		Signer:    c.Signer,
		SessionId: c.SessionId,
		Timeout:   c.Timeout,
	})

	return &Exchange{
		rest: restClient,
		info: info.NewWithClient(restClient),
	}, nil
}

// NewWithClient creates an Exchange on an existing transport. The
// transport must hold a signer for trading requests to succeed.
func NewWithClient(client rest.ClientInterface) *Exchange {
	return &Exchange{
		rest: client,
		info: info.NewWithClient(client),
	}
}

// Info exposes the query side sharing this client's transport.
func (e *Exchange) Info() *info.Info {
	return e.info
}

// CreateOrder places an order. Price, client order id, margin mode and
// leverage ride along as options; limit orders need WithOrderPrice.
func (e *Exchange) CreateOrder(
	ctx context.Context,
	symbol string,
	side types.OrderSide,
	orderType types.OrderType,
	qty string,
	tif types.TimeInForce,
	opts ...CreateOrderOption,
) (*OrderResponse, error) {
	var cfg createOrderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	req := newOrderRequest{
		Symbol:      symbol,
		Side:        side,
		OrderType:   orderType,
		Qty:         qty,
		TimeInForce: tif,
		ReduceOnly:  cfg.reduceOnly,
		Price:       cfg.price,
		ClOrdId:     cfg.clOrdId,
		MarginMode:  cfg.marginMode,
		Leverage:    cfg.leverage,
	}

	var result OrderResponse
	err := e.rest.Post(ctx, "/api/new_order", req, &result)

	return &result, err
}

// LimitOrder places a resting order at the given price.
func (e *Exchange) LimitOrder(
	ctx context.Context,
	symbol string,
	side types.OrderSide,
	qty string,
	price string,
	opts ...CreateOrderOption,
) (*OrderResponse, error) {
	opts = append(opts, WithOrderPrice(price))

	return e.CreateOrder(
		ctx,
		symbol,
		side,
		types.OrderTypeLimit,
		qty,
		types.TimeInForceGTC,
		opts...,
	)
}

// MarketOrder places an immediate-or-cancel order at the prevailing
// market price.
func (e *Exchange) MarketOrder(
	ctx context.Context,
	symbol string,
	side types.OrderSide,
	qty string,
	opts ...CreateOrderOption,
) (*OrderResponse, error) {
	return e.CreateOrder(
		ctx,
		symbol,
		side,
		types.OrderTypeMarket,
		qty,
		types.TimeInForceIOC,
		opts...,
	)
}

// CancelOrder cancels a single order by exchange id or client id. The
// selector you are not using stays at its zero value.
func (e *Exchange) CancelOrder(
	ctx context.Context,
	orderId int64,
	clOrdId string,
) (*OrderResponse, error) {
	if orderId == 0 && clOrdId == "" {
		return nil, fmt.Errorf("either an order id or a client order id is required")
	}

	req := cancelOrderRequest{
		OrderId: orderId,
		ClOrdId: clOrdId,
	}

	var result OrderResponse
	err := e.rest.Post(ctx, "/api/cancel_order", req, &result)

	return &result, err
}

// CancelOrders cancels multiple orders in a single request and returns
// one result per order.
func (e *Exchange) CancelOrders(
	ctx context.Context,
	orderIds []int64,
	clOrdIds []string,
) ([]OrderResponse, error) {
	if len(orderIds) == 0 && len(clOrdIds) == 0 {
		return nil, fmt.Errorf("at least one order id or client order id is required")
	}

	req := cancelOrdersRequest{
		OrderIdList: orderIds,
		ClOrdIdList: clOrdIds,
	}

	var result []OrderResponse
	err := e.rest.Post(ctx, "/api/cancel_orders", req, &result)

	return result, err
}

// ClosePosition flattens the position on a symbol with a reduce-only
// market order.
func (e *Exchange) ClosePosition(
	ctx context.Context,
	symbol string,
	opts ...CreateOrderOption,
) (*OrderResponse, error) {
	positions, err := e.info.Positions(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to query position: %w", err)
	}

	var qty string
	for _, position := range positions {
		if position.Symbol != symbol {
			continue
		}
		sz, err := utils.StringToFloat(position.Qty)
		if err != nil {
			return nil, fmt.Errorf("invalid position size: %w", err)
		}
		if sz == 0 {
			continue
		}
		qty = position.Qty
		break
	}

	if qty == "" {
		return nil, fmt.Errorf("no open position for symbol: %s", symbol)
	}

	// A long closes with a sell, a short with a buy. The signed size is
	// kept as the exchange reported it so no precision is lost.
	side := types.OrderSideSell
	if strings.HasPrefix(qty, "-") {
		side = types.OrderSideBuy
		qty = strings.TrimPrefix(qty, "-")
	}

	opts = append(opts, WithOrderReduceOnly(true))

	return e.MarketOrder(ctx, symbol, side, qty, opts...)
}

// ChangeLeverage updates the leverage configured for a symbol.
func (e *Exchange) ChangeLeverage(
	ctx context.Context,
	symbol string,
	leverage int,
) (*StandardResponse, error) {
	req := changeLeverageRequest{
		Symbol:   symbol,
		Leverage: leverage,
	}

	var result StandardResponse
	err := e.rest.Post(ctx, "/api/change_leverage", req, &result)

	return &result, err
}

// ChangeMarginMode switches a symbol between cross and isolated
// margining.
func (e *Exchange) ChangeMarginMode(
	ctx context.Context,
	symbol string,
	mode types.MarginMode,
) (*StandardResponse, error) {
	req := changeMarginModeRequest{
		Symbol:     symbol,
		MarginMode: mode,
	}

	var result StandardResponse
	err := e.rest.Post(ctx, "/api/change_margin_mode", req, &result)

	return &result, err
}

// TransferMargin moves margin into or out of an isolated position. An
// empty direction defaults to adding margin.
func (e *Exchange) TransferMargin(
	ctx context.Context,
	symbol string,
	amountIn string,
	direction TransferDirection,
) (*StandardResponse, error) {
	if direction == "" {
		direction = TransferAdd
	}

	req := transferMarginRequest{
		Symbol:    symbol,
		AmountIn:  amountIn,
		Direction: direction,
	}

	var result StandardResponse
	err := e.rest.Post(ctx, "/api/transfer_margin", req, &result)

	return &result, err
}
