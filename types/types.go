package types

// OrderSide is the side of an order or trade.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "buy"
	OrderSideSell OrderSide = "sell"
)

// OrderType selects between resting and immediate execution.
type OrderType string

const (
	OrderTypeLimit  OrderType = "limit"
	OrderTypeMarket OrderType = "market"
)

// OrderStatus is the lifecycle state reported for an order.
type OrderStatus string

const (
	OrderStatusOpen        OrderStatus = "open"
	OrderStatusCanceled    OrderStatus = "canceled"
	OrderStatusFilled      OrderStatus = "filled"
	OrderStatusRejected    OrderStatus = "rejected"
	OrderStatusUntriggered OrderStatus = "untriggered"
)

// TimeInForce controls how long an order stays executable.
type TimeInForce string

const (
	TimeInForceGTC TimeInForce = "gtc" // Good Til Canceled
	TimeInForceIOC TimeInForce = "ioc" // Immediate Or Cancel
	TimeInForceALO TimeInForce = "alo" // Add Liquidity Only
)

// MarginMode is the margining scheme of a position.
type MarginMode string

const (
	MarginModeCross    MarginMode = "cross"
	MarginModeIsolated MarginMode = "isolated"
)

// Resolution is a kline interval identifier.
type Resolution string

const (
	ResolutionTick   Resolution = "1T"
	Resolution3Sec   Resolution = "3S"
	Resolution1Min   Resolution = "1"
	Resolution5Min   Resolution = "5"
	Resolution15Min  Resolution = "15"
	Resolution1Hour  Resolution = "60"
	Resolution1Day   Resolution = "1D"
	Resolution1Week  Resolution = "1W"
	Resolution1Month Resolution = "1M"
)
