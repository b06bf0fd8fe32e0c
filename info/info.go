// Package info provides read access to StandX market data and user
// account state over the REST API.
package info

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/standx/go-standx/rest"
	"github.com/standx/go-standx/types"
)

// Info provides market data and user account queries
type Info struct {
	rest rest.ClientInterface
}

// Config for initializing the Info client
type Config struct {
	// BaseUrl is the base URL for the StandX API
	// If none is provided, the mainnet url will be used
	BaseUrl string
	// Token is the session credential for account queries.
	// Market data queries work without it.
	Token string
	// Timeout is the timeout for network requests
	Timeout time.Duration
}

// New creates a new Info client with the provided configuration.
func New(c Config) *Info {
	return &Info{
		rest: rest.New(rest.Config{
			BaseUrl: c.BaseUrl,
			Token:   c.Token,
			Timeout: c.Timeout,
		}),
	}
}

// NewWithClient creates an Info client on an existing transport, so a
// trading client and its info side share one configuration.
func NewWithClient(client rest.ClientInterface) *Info {
	return &Info{rest: client}
}

// ===== User Account Queries =====

// Order retrieves one order by exchange id or client id. Selectors you
// are not using stay at their zero value.
func (i *Info) Order(
	ctx context.Context,
	symbol string,
	orderId int64,
	clOrdId string,
) (*types.Order, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if orderId != 0 {
		query.Set("order_id", strconv.FormatInt(orderId, 10))
	}
	if clOrdId != "" {
		query.Set("cl_ord_id", clOrdId)
	}

	var result types.Order
	err := i.rest.Get(ctx, "/api/query_order", query, &result)

	return &result, err
}

// OrdersRequest narrows an order history query. Zero-value fields are
// omitted from the request.
type OrdersRequest struct {
	Symbol string
	Status types.OrderStatus
	Limit  int
	Offset int
}

// Orders retrieves the user's order history.
func (i *Info) Orders(ctx context.Context, req OrdersRequest) ([]types.Order, error) {
	query := url.Values{}
	if req.Symbol != "" {
		query.Set("symbol", req.Symbol)
	}
	if req.Status != "" {
		query.Set("status", string(req.Status))
	}
	if req.Limit != 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Offset != 0 {
		query.Set("offset", strconv.Itoa(req.Offset))
	}

	var result []types.Order
	err := i.rest.Get(ctx, "/api/query_orders", query, &result)

	return result, err
}

// OpenOrders retrieves the user's resting orders. An empty symbol
// returns open orders across all symbols.
func (i *Info) OpenOrders(ctx context.Context, symbol string) ([]types.Order, error) {
	query := url.Values{}
	if symbol != "" {
		query.Set("symbol", symbol)
	}

	var result []types.Order
	err := i.rest.Get(ctx, "/api/query_open_orders", query, &result)

	return result, err
}

// TradesRequest narrows a trade history query. Zero-value fields are
// omitted from the request.
type TradesRequest struct {
	Symbol string
	Limit  int
	Offset int
}

// Trades retrieves the user's executed trades.
func (i *Info) Trades(ctx context.Context, req TradesRequest) ([]types.Trade, error) {
	query := url.Values{}
	if req.Symbol != "" {
		query.Set("symbol", req.Symbol)
	}
	if req.Limit != 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Offset != 0 {
		query.Set("offset", strconv.Itoa(req.Offset))
	}

	var result []types.Trade
	err := i.rest.Get(ctx, "/api/query_trades", query, &result)

	return result, err
}

// PositionConfig retrieves the leverage and margin mode configured for
// a symbol.
func (i *Info) PositionConfig(ctx context.Context, symbol string) (*types.PositionConfig, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var result types.PositionConfig
	err := i.rest.Get(ctx, "/api/query_position_config", query, &result)

	return &result, err
}

// Positions retrieves the user's positions. An empty symbol returns
// positions across all symbols.
func (i *Info) Positions(ctx context.Context, symbol string) ([]types.Position, error) {
	query := url.Values{}
	if symbol != "" {
		query.Set("symbol", symbol)
	}

	var result []types.Position
	err := i.rest.Get(ctx, "/api/query_positions", query, &result)

	return result, err
}

// Balances retrieves the user's token balances.
func (i *Info) Balances(ctx context.Context) ([]types.Balance, error) {
	var result []types.Balance
	err := i.rest.Get(ctx, "/api/query_user_balances", nil, &result)

	return result, err
}

// ===== Market Data Queries =====

// SymbolInfo retrieves contract specifications for one symbol.
func (i *Info) SymbolInfo(ctx context.Context, symbol string) (*types.SymbolInfo, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var result types.SymbolInfo
	err := i.rest.GetPublic(ctx, "/api/query_symbol_info", query, &result)

	return &result, err
}

// SymbolInfos retrieves contract specifications for every listed
// symbol.
func (i *Info) SymbolInfos(ctx context.Context) ([]types.SymbolInfo, error) {
	var result []types.SymbolInfo
	err := i.rest.GetPublic(ctx, "/api/query_symbol_info", nil, &result)

	return result, err
}

// SymbolMarket retrieves 24h market statistics for a symbol.
func (i *Info) SymbolMarket(ctx context.Context, symbol string) (*types.SymbolMarket, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var result types.SymbolMarket
	err := i.rest.GetPublic(ctx, "/api/query_symbol_market", query, &result)

	return &result, err
}

// SymbolPrice retrieves the current price set for a symbol.
func (i *Info) SymbolPrice(ctx context.Context, symbol string) (*types.SymbolPrice, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var result types.SymbolPrice
	err := i.rest.GetPublic(ctx, "/api/query_symbol_price", query, &result)

	return &result, err
}

// DepthBook retrieves order book levels for a symbol. A zero limit
// uses the server default depth.
func (i *Info) DepthBook(ctx context.Context, symbol string, limit int) (*types.DepthBook, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if limit != 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result types.DepthBook
	err := i.rest.GetPublic(ctx, "/api/query_depth_book", query, &result)

	return &result, err
}

// RecentTrades retrieves the latest public trades for a symbol. A zero
// limit uses the server default.
func (i *Info) RecentTrades(ctx context.Context, symbol string, limit int) ([]types.RecentTrade, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if limit != 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var result []types.RecentTrade
	err := i.rest.GetPublic(ctx, "/api/query_recent_trades", query, &result)

	return result, err
}

// FundingRates retrieves current and predicted funding for one symbol.
func (i *Info) FundingRates(ctx context.Context, symbol string) (*types.FundingRates, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var result types.FundingRates
	err := i.rest.GetPublic(ctx, "/api/query_funding_rates", query, &result)

	return &result, err
}

// AllFundingRates retrieves funding data across all symbols.
func (i *Info) AllFundingRates(ctx context.Context) ([]types.FundingRates, error) {
	var result []types.FundingRates
	err := i.rest.GetPublic(ctx, "/api/query_funding_rates", nil, &result)

	return result, err
}

// ===== Kline Queries =====

// ServerTime retrieves the exchange clock from the kline service.
func (i *Info) ServerTime(ctx context.Context) (*types.ServerTime, error) {
	var result types.ServerTime
	err := i.rest.GetPublic(ctx, "/api/kline/time", nil, &result)

	return &result, err
}

// KlineRequest selects a candle history window. From, To and Limit are
// omitted from the request when zero.
type KlineRequest struct {
	Symbol     string
	Resolution types.Resolution
	From       int64
	To         int64
	Limit      int
}

// KlineHistory retrieves OHLCV candles for a symbol and resolution.
func (i *Info) KlineHistory(ctx context.Context, req KlineRequest) ([]types.Kline, error) {
	query := url.Values{}
	query.Set("symbol", req.Symbol)
	query.Set("resolution", string(req.Resolution))
	if req.From != 0 {
		query.Set("from", strconv.FormatInt(req.From, 10))
	}
	if req.To != 0 {
		query.Set("to", strconv.FormatInt(req.To, 10))
	}
	if req.Limit != 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	var result []types.Kline
	err := i.rest.GetPublic(ctx, "/api/kline/history", query, &result)

	return result, err
}

// ===== Service Queries =====

// Health probes the service health endpoint.
func (i *Info) Health(ctx context.Context) (*types.Health, error) {
	var result types.Health
	err := i.rest.GetPublic(ctx, "/api/health", nil, &result)

	return &result, err
}

// RegionAndServerTime retrieves the serving region and its clock.
func (i *Info) RegionAndServerTime(ctx context.Context) (map[string]any, error) {
	var result map[string]any
	err := i.rest.GetPublic(ctx, "/api/region_and_server_time", nil, &result)

	return result, err
}
