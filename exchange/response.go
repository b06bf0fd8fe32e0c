package exchange

// OrderResponse is the acknowledgement returned for order placement
// and cancellation.
type OrderResponse struct {
	Code      int64  `json:"code"`
	Message   string `json:"message"`
	RequestId string `json:"request_id"`
	OrderId   int64  `json:"order_id"`
	ClOrdId   string `json:"cl_ord_id"`
}

// StandardResponse is the plain acknowledgement returned for account
// configuration operations.
type StandardResponse struct {
	Code      int64  `json:"code"`
	Message   string `json:"message"`
	RequestId string `json:"request_id"`
}
