package types

// ===== Account Types =====

// Order represents the full lifecycle state of an order
type Order struct {
	Id           int64          `json:"id"`
	ClOrdId      string         `json:"cl_ord_id"`
	Symbol       string         `json:"symbol"`
	Side         OrderSide      `json:"side"`
	OrderType    OrderType      `json:"order_type"`
	Qty          string         `json:"qty"`
	Price        string         `json:"price"`
	TimeInForce  TimeInForce    `json:"time_in_force"`
	ReduceOnly   bool           `json:"reduce_only"`
	Status       OrderStatus    `json:"status"`
	FillQty      string         `json:"fill_qty"`
	FillAvgPrice string         `json:"fill_avg_price"`
	AvailLocked  string         `json:"avail_locked"`
	ClosedBlock  int64          `json:"closed_block"`
	CreatedAt    string         `json:"created_at"`
	CreatedBlock int64          `json:"created_block"`
	UpdatedAt    string         `json:"updated_at"`
	Leverage     string         `json:"leverage"`
	LiqId        int64          `json:"liq_id"`
	Margin       string         `json:"margin"`
	Payload      map[string]any `json:"payload"`
	PositionId   int64          `json:"position_id"`
	Remark       string         `json:"remark"`
	Source       string         `json:"source"`
	User         string         `json:"user"`
}

// Trade represents an executed trade
type Trade struct {
	Id        int64     `json:"id"`
	Symbol    string    `json:"symbol"`
	Side      OrderSide `json:"side"`
	Qty       string    `json:"qty"`
	Price     string    `json:"price"`
	Timestamp int64     `json:"timestamp"`
	CreatedAt string    `json:"created_at"`
	OrderId   int64     `json:"order_id"`
	User      string    `json:"user"`
}

// Position represents a user's position in a symbol
type Position struct {
	Id            int64      `json:"id"`
	Symbol        string     `json:"symbol"`
	Qty           string     `json:"qty"`
	EntryPrice    string     `json:"entry_price"`
	EntryValue    string     `json:"entry_value"`
	Leverage      int        `json:"leverage"`
	MarginMode    MarginMode `json:"margin_mode"`
	InitialMargin string     `json:"initial_margin"`
	RealizedPnl   string     `json:"realized_pnl"`
	Status        string     `json:"status"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
	MarginAsset   string     `json:"margin_asset"`
	User          string     `json:"user"`
}

// PositionConfig represents leverage and margin configuration for a symbol
type PositionConfig struct {
	Symbol      string     `json:"symbol"`
	Leverage    int        `json:"leverage"`
	MarginMode  MarginMode `json:"margin_mode"`
	MaxLeverage int        `json:"max_leverage"`
	MinLeverage int        `json:"min_leverage"`
}

// Balance represents a token balance in the user's account
type Balance struct {
	Id              string `json:"id"`
	Token           string `json:"token"`
	Free            string `json:"free"`
	Locked          string `json:"locked"`
	Total           string `json:"total"`
	AccountType     string `json:"account_type"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	Inbound         string `json:"inbound"`
	IsEnabled       bool   `json:"is_enabled"`
	Kind            string `json:"kind"`
	LastTx          string `json:"last_tx"`
	LastTxUpdatedAt int64  `json:"last_tx_updated_at"`
	Occupied        string `json:"occupied"`
	Outbound        string `json:"outbound"`
	RefId           int64  `json:"ref_id"`
	Version         int64  `json:"version"`
	WalletId        string `json:"wallet_id"`
}

// ===== Market Data Types =====

// SymbolInfo contains contract specifications for a trading pair
type SymbolInfo struct {
	Symbol   string `json:"symbol"`
	Base     string `json:"base"`
	Quote    string `json:"quote"`
	Status   string `json:"status"`
	MinQty   string `json:"min_qty"`
	MaxQty   string `json:"max_qty"`
	TickSize string `json:"tick_size"`
	StepSize string `json:"step_size"`
}

// SymbolMarket contains 24h market statistics for a trading pair
type SymbolMarket struct {
	Symbol           string `json:"symbol"`
	LastPrice        string `json:"last_price"`
	MarkPrice        string `json:"mark_price"`
	IndexPrice       string `json:"index_price"`
	Volume24h        string `json:"volume_24h"`
	Turnover24h      string `json:"turnover_24h"`
	High24h          string `json:"high_24h"`
	Low24h           string `json:"low_24h"`
	Change24h        string `json:"change_24h"`
	ChangePercent24h string `json:"change_percent_24h"`
}

// SymbolPrice contains the current price set for a trading pair
type SymbolPrice struct {
	Symbol     string   `json:"symbol"`
	Base       string   `json:"base"`
	Quote      string   `json:"quote"`
	LastPrice  string   `json:"last_price"`
	MarkPrice  string   `json:"mark_price"`
	IndexPrice string   `json:"index_price"`
	MidPrice   string   `json:"mid_price"`
	Spread     []string `json:"spread"`
	Time       string   `json:"time"`
}

// DepthBook contains order book levels for a trading pair
type DepthBook struct {
	Symbol    string       `json:"symbol"`
	Asks      []PriceLevel `json:"asks"`
	Bids      []PriceLevel `json:"bids"`
	Timestamp int64        `json:"timestamp"`
}

// RecentTrade represents a public trade
type RecentTrade struct {
	Id        int64     `json:"id"`
	Symbol    string    `json:"symbol"`
	Side      OrderSide `json:"side"`
	Qty       string    `json:"qty"`
	Price     string    `json:"price"`
	Timestamp int64     `json:"timestamp"`
	CreatedAt string    `json:"created_at"`
}

// FundingRates contains current and predicted funding for a symbol
type FundingRates struct {
	Symbol               string `json:"symbol"`
	FundingRate          string `json:"funding_rate"`
	NextFundingTime      int64  `json:"next_funding_time"`
	PredictedFundingRate string `json:"predicted_funding_rate"`
}

// ServerTime contains the exchange clock reading
type ServerTime struct {
	ServerTime int64 `json:"server_time"`
	Timestamp  int64 `json:"timestamp"`
}

// Kline represents a single OHLCV candle
type Kline struct {
	Time   int64       `json:"time"`
	Open   FloatString `json:"open"`
	High   FloatString `json:"high"`
	Low    FloatString `json:"low"`
	Close  FloatString `json:"close"`
	Volume FloatString `json:"volume"`
	Symbol string      `json:"symbol"`
}

// Health contains the service health probe result
type Health struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}
