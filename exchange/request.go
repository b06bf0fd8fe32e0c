package exchange

import "github.com/standx/go-standx/types"

// newOrderRequest is the wire form of an order submission. ReduceOnly
// is always sent; the optional fields are dropped when unset.
type newOrderRequest struct {
	Symbol      string            `json:"symbol"`
	Side        types.OrderSide   `json:"side"`
	OrderType   types.OrderType   `json:"order_type"`
	Qty         string            `json:"qty"`
	TimeInForce types.TimeInForce `json:"time_in_force"`
	ReduceOnly  bool              `json:"reduce_only"`
	Price       string            `json:"price,omitempty"`
	ClOrdId     string            `json:"cl_ord_id,omitempty"`
	MarginMode  types.MarginMode  `json:"margin_mode,omitempty"`
	Leverage    int               `json:"leverage,omitempty"`
}

type cancelOrderRequest struct {
	OrderId int64  `json:"order_id,omitempty"`
	ClOrdId string `json:"cl_ord_id,omitempty"`
}

type cancelOrdersRequest struct {
	OrderIdList []int64  `json:"order_id_list,omitempty"`
	ClOrdIdList []string `json:"cl_ord_id_list,omitempty"`
}

type changeLeverageRequest struct {
	Symbol   string `json:"symbol"`
	Leverage int    `json:"leverage"`
}

type changeMarginModeRequest struct {
	Symbol     string           `json:"symbol"`
	MarginMode types.MarginMode `json:"margin_mode"`
}

// TransferDirection selects whether margin moves into or out of a
// position.
type TransferDirection string

const (
	TransferAdd    TransferDirection = "add"
	TransferRemove TransferDirection = "remove"
)

type transferMarginRequest struct {
	Symbol    string            `json:"symbol"`
	AmountIn  string            `json:"amount_in"`
	Direction TransferDirection `json:"direction"`
}
