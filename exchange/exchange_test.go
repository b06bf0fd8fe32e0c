package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/maxatome/go-testdeep/helpers/tdsuite"
	"github.com/maxatome/go-testdeep/td"
	"github.com/standx/go-standx/rest"
	"github.com/standx/go-standx/types"
	"github.com/standx/go-standx/wallet"
)

// Mock REST client for testing
type mockRestClient struct {
	getFunc       func(ctx context.Context, path string, query url.Values, result any) error
	getPublicFunc func(ctx context.Context, path string, query url.Values, result any) error
	postFunc      func(ctx context.Context, path string, body any, result any) error
}

var _ rest.ClientInterface = (*mockRestClient)(nil)

func (m *mockRestClient) Get(ctx context.Context, path string, query url.Values, result any) error {
	if m.getFunc != nil {
		return m.getFunc(ctx, path, query, result)
	}
	return nil
}

func (m *mockRestClient) GetPublic(ctx context.Context, path string, query url.Values, result any) error {
	if m.getPublicFunc != nil {
		return m.getPublicFunc(ctx, path, query, result)
	}
	return nil
}

func (m *mockRestClient) Post(ctx context.Context, path string, body any, result any) error {
	if m.postFunc != nil {
		return m.postFunc(ctx, path, body, result)
	}
	return nil
}

// wireShape marshals a request body the way the transport would and
// returns the resulting JSON object for field-level assertions.
func wireShape(t *testing.T, body any) map[string]any {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("failed to decode request body: %v", err)
	}

	return wire
}

func TestNewRequiresSigner(t *testing.T) {
	_, err := New(Config{Token: "tok"})
	if err == nil {
		t.Fatal("expected error when signer is missing")
	}
}

func TestCreateOrderWire(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			if path != "/api/new_order" {
				t.Errorf("expected path /api/new_order, got %s", path)
			}

			wire := wireShape(t, body)
			if wire["symbol"] != "BTC-USD" {
				t.Errorf("expected symbol BTC-USD, got %v", wire["symbol"])
			}
			if wire["side"] != "buy" {
				t.Errorf("expected side buy, got %v", wire["side"])
			}
			if wire["order_type"] != "limit" {
				t.Errorf("expected order_type limit, got %v", wire["order_type"])
			}
			if wire["qty"] != "0.5" {
				t.Errorf("expected qty 0.5, got %v", wire["qty"])
			}
			if wire["time_in_force"] != "gtc" {
				t.Errorf("expected time_in_force gtc, got %v", wire["time_in_force"])
			}
			if wire["reduce_only"] != false {
				t.Errorf("expected reduce_only false, got %v", wire["reduce_only"])
			}
			for _, key := range []string{"price", "cl_ord_id", "margin_mode", "leverage"} {
				if _, ok := wire[key]; ok {
					t.Errorf("expected no %s, got %v", key, wire[key])
				}
			}

			*result.(*OrderResponse) = OrderResponse{Code: 0, Message: "success", OrderId: 7}
			return nil
		},
	})

	resp, err := exchange.CreateOrder(
		context.Background(),
		"BTC-USD",
		types.OrderSideBuy,
		types.OrderTypeLimit,
		"0.5",
		types.TimeInForceGTC,
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.OrderId != 7 {
		t.Errorf("expected order id 7, got %d", resp.OrderId)
	}
}

func TestCreateOrderOptions(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			wire := wireShape(t, body)
			if wire["price"] != "45000.1" {
				t.Errorf("expected price 45000.1, got %v", wire["price"])
			}
			if wire["reduce_only"] != true {
				t.Errorf("expected reduce_only true, got %v", wire["reduce_only"])
			}
			if wire["cl_ord_id"] != "my-order-1" {
				t.Errorf("expected cl_ord_id my-order-1, got %v", wire["cl_ord_id"])
			}
			if wire["margin_mode"] != "isolated" {
				t.Errorf("expected margin_mode isolated, got %v", wire["margin_mode"])
			}
			if wire["leverage"] != float64(20) {
				t.Errorf("expected leverage 20, got %v", wire["leverage"])
			}
			return nil
		},
	})

	_, err := exchange.CreateOrder(
		context.Background(),
		"BTC-USD",
		types.OrderSideSell,
		types.OrderTypeLimit,
		"0.5",
		types.TimeInForceGTC,
		WithOrderPrice("45000.1"),
		WithOrderReduceOnly(true),
		WithOrderClOrdId("my-order-1"),
		WithOrderMarginMode(types.MarginModeIsolated),
		WithOrderLeverage(20),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestLimitOrder(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			wire := wireShape(t, body)
			if wire["order_type"] != "limit" {
				t.Errorf("expected order_type limit, got %v", wire["order_type"])
			}
			if wire["time_in_force"] != "gtc" {
				t.Errorf("expected time_in_force gtc, got %v", wire["time_in_force"])
			}
			if wire["price"] != "3000.5" {
				t.Errorf("expected price 3000.5, got %v", wire["price"])
			}
			return nil
		},
	})

	_, err := exchange.LimitOrder(
		context.Background(),
		"ETH-USD",
		types.OrderSideBuy,
		"1.5",
		"3000.5",
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestMarketOrder(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			wire := wireShape(t, body)
			if wire["order_type"] != "market" {
				t.Errorf("expected order_type market, got %v", wire["order_type"])
			}
			if wire["time_in_force"] != "ioc" {
				t.Errorf("expected time_in_force ioc, got %v", wire["time_in_force"])
			}
			if _, ok := wire["price"]; ok {
				t.Errorf("expected no price, got %v", wire["price"])
			}
			return nil
		},
	})

	_, err := exchange.MarketOrder(
		context.Background(),
		"ETH-USD",
		types.OrderSideSell,
		"1.5",
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCancelOrderById(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			if path != "/api/cancel_order" {
				t.Errorf("expected path /api/cancel_order, got %s", path)
			}

			wire := wireShape(t, body)
			if wire["order_id"] != float64(42) {
				t.Errorf("expected order_id 42, got %v", wire["order_id"])
			}
			if _, ok := wire["cl_ord_id"]; ok {
				t.Errorf("expected no cl_ord_id, got %v", wire["cl_ord_id"])
			}

			*result.(*OrderResponse) = OrderResponse{Code: 0, Message: "success"}
			return nil
		},
	})

	resp, err := exchange.CancelOrder(context.Background(), 42, "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestCancelOrderByClOrdId(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			wire := wireShape(t, body)
			if wire["cl_ord_id"] != "my-order-1" {
				t.Errorf("expected cl_ord_id my-order-1, got %v", wire["cl_ord_id"])
			}
			if _, ok := wire["order_id"]; ok {
				t.Errorf("expected no order_id, got %v", wire["order_id"])
			}
			return nil
		},
	})

	_, err := exchange.CancelOrder(context.Background(), 0, "my-order-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestCancelOrderNoSelector(t *testing.T) {
	called := false
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			called = true
			return nil
		},
	})

	_, err := exchange.CancelOrder(context.Background(), 0, "")
	if err == nil {
		t.Fatal("expected error when both selectors are empty")
	}
	if called {
		t.Error("expected no request to be sent")
	}
}

func TestCancelOrdersWire(t *testing.T) {
	expected := []OrderResponse{
		{Code: 0, Message: "success"},
		{Code: 1001, Message: "order not found"},
	}

	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			if path != "/api/cancel_orders" {
				t.Errorf("expected path /api/cancel_orders, got %s", path)
			}

			wire := wireShape(t, body)
			ids, ok := wire["order_id_list"].([]any)
			if !ok || len(ids) != 2 {
				t.Fatalf("expected 2 order ids, got %v", wire["order_id_list"])
			}
			if ids[0] != float64(1) || ids[1] != float64(2) {
				t.Errorf("expected order ids [1 2], got %v", ids)
			}
			if _, ok := wire["cl_ord_id_list"]; ok {
				t.Errorf("expected no cl_ord_id_list, got %v", wire["cl_ord_id_list"])
			}

			*result.(*[]OrderResponse) = expected
			return nil
		},
	})

	results, err := exchange.CancelOrders(context.Background(), []int64{1, 2}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Code != 1001 {
		t.Errorf("expected second result code 1001, got %d", results[1].Code)
	}
}

func TestCancelOrdersNoSelectors(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{})

	_, err := exchange.CancelOrders(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected error when both lists are empty")
	}
}

func TestClosePositionLong(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		getFunc: func(ctx context.Context, path string, query url.Values, result any) error {
			if path != "/api/query_positions" {
				t.Errorf("expected path /api/query_positions, got %s", path)
			}
			*result.(*[]types.Position) = []types.Position{
				{Symbol: "BTC-USD", Qty: "0.25"},
			}
			return nil
		},
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			wire := wireShape(t, body)
			if wire["side"] != "sell" {
				t.Errorf("expected side sell, got %v", wire["side"])
			}
			if wire["qty"] != "0.25" {
				t.Errorf("expected qty 0.25, got %v", wire["qty"])
			}
			if wire["reduce_only"] != true {
				t.Errorf("expected reduce_only true, got %v", wire["reduce_only"])
			}
			if wire["order_type"] != "market" {
				t.Errorf("expected order_type market, got %v", wire["order_type"])
			}
			return nil
		},
	})

	_, err := exchange.ClosePosition(context.Background(), "BTC-USD")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestClosePositionShort(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		getFunc: func(ctx context.Context, path string, query url.Values, result any) error {
			*result.(*[]types.Position) = []types.Position{
				{Symbol: "BTC-USD", Qty: "-0.5"},
			}
			return nil
		},
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			wire := wireShape(t, body)
			if wire["side"] != "buy" {
				t.Errorf("expected side buy, got %v", wire["side"])
			}
			if wire["qty"] != "0.5" {
				t.Errorf("expected qty 0.5, got %v", wire["qty"])
			}
			return nil
		},
	})

	_, err := exchange.ClosePosition(context.Background(), "BTC-USD")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestClosePositionFlat(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		getFunc: func(ctx context.Context, path string, query url.Values, result any) error {
			*result.(*[]types.Position) = []types.Position{
				{Symbol: "BTC-USD", Qty: "0"},
			}
			return nil
		},
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			t.Error("expected no order to be placed")
			return nil
		},
	})

	_, err := exchange.ClosePosition(context.Background(), "BTC-USD")
	if err == nil {
		t.Fatal("expected error when position is flat")
	}
}

func TestChangeLeverageWire(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			if path != "/api/change_leverage" {
				t.Errorf("expected path /api/change_leverage, got %s", path)
			}

			wire := wireShape(t, body)
			if wire["symbol"] != "BTC-USD" {
				t.Errorf("expected symbol BTC-USD, got %v", wire["symbol"])
			}
			if wire["leverage"] != float64(25) {
				t.Errorf("expected leverage 25, got %v", wire["leverage"])
			}

			*result.(*StandardResponse) = StandardResponse{Code: 0, Message: "success"}
			return nil
		},
	})

	resp, err := exchange.ChangeLeverage(context.Background(), "BTC-USD", 25)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if resp.Message != "success" {
		t.Errorf("expected message success, got %s", resp.Message)
	}
}

func TestChangeMarginModeWire(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			if path != "/api/change_margin_mode" {
				t.Errorf("expected path /api/change_margin_mode, got %s", path)
			}

			wire := wireShape(t, body)
			if wire["margin_mode"] != "isolated" {
				t.Errorf("expected margin_mode isolated, got %v", wire["margin_mode"])
			}
			return nil
		},
	})

	_, err := exchange.ChangeMarginMode(context.Background(), "BTC-USD", types.MarginModeIsolated)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestTransferMarginDefaultDirection(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			if path != "/api/transfer_margin" {
				t.Errorf("expected path /api/transfer_margin, got %s", path)
			}

			wire := wireShape(t, body)
			if wire["amount_in"] != "100.5" {
				t.Errorf("expected amount_in 100.5, got %v", wire["amount_in"])
			}
			if wire["direction"] != "add" {
				t.Errorf("expected direction add, got %v", wire["direction"])
			}
			return nil
		},
	})

	_, err := exchange.TransferMargin(context.Background(), "BTC-USD", "100.5", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestTransferMarginRemove(t *testing.T) {
	exchange := NewWithClient(&mockRestClient{
		postFunc: func(ctx context.Context, path string, body any, result any) error {
			wire := wireShape(t, body)
			if wire["direction"] != "remove" {
				t.Errorf("expected direction remove, got %v", wire["direction"])
			}
			return nil
		},
	})

	_, err := exchange.TransferMargin(context.Background(), "BTC-USD", "50", TransferRemove)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// ===== Integration Suite =====

// ExchangeIntegrationSuite exercises the trading API against a real
// account. It runs only when wallet credentials are present in the
// environment.
type ExchangeIntegrationSuite struct {
	exchange *Exchange
}

func TestExchangeIntegrationSuite(t *testing.T) {
	_ = godotenv.Load("../.env")

	if os.Getenv("STANDX_PRIVATE_KEY") == "" {
		t.Skip("skipping ExchangeIntegrationSuite; set STANDX_PRIVATE_KEY to run")
	}

	tdsuite.Run(t, &ExchangeIntegrationSuite{})
}

// Setup is called once before any test runs.
func (s *ExchangeIntegrationSuite) Setup(t *td.T) error {
	chain := os.Getenv("STANDX_CHAIN")
	if chain == "" {
		chain = "ethereum"
	}

	authenticator, err := wallet.New(wallet.Config{
		Chain:      chain,
		PrivateKey: os.Getenv("STANDX_PRIVATE_KEY"),
		Address:    os.Getenv("STANDX_WALLET_ADDRESS"),
	})
	if err != nil {
		return fmt.Errorf("failed to create authenticator: %w", err)
	}

	creds, err := authenticator.Login(context.Background())
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	exchange, err := New(Config{
		Token:  creds.Token,
		Signer: creds.Signer,
	})
	if err != nil {
		return fmt.Errorf("failed to create exchange client: %w", err)
	}

	s.exchange = exchange

	return nil
}

func (s *ExchangeIntegrationSuite) TestOrderLifecycle(assert, require *td.T) {
	ctx := context.Background()

	// Place an order that should rest by setting the price very low
	clOrdId := uuid.NewString()
	placed, err := s.exchange.LimitOrder(
		ctx,
		"ETH-USD",
		types.OrderSideBuy,
		"0.01",
		"100",
		WithOrderClOrdId(clOrdId),
	)
	require.CmpNoError(err)
	assert.Cmp(placed.Code, int64(0))

	open, err := s.exchange.Info().OpenOrders(ctx, "ETH-USD")
	require.CmpNoError(err)
	fmt.Println("open orders:", len(open))

	canceled, err := s.exchange.CancelOrder(ctx, placed.OrderId, clOrdId)
	require.CmpNoError(err)

	fmt.Println(canceled)
}
