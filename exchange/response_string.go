package exchange

import "fmt"

// String implements fmt.Stringer for OrderResponse
func (r OrderResponse) String() string {
	return fmt.Sprintf(
		"OrderResponse{\n"+
			"  Code:      %d\n"+
			"  Message:   %s\n"+
			"  RequestId: %s\n"+
			"  OrderId:   %d\n"+
			"  ClOrdId:   %s\n"+
			"}",
		r.Code, r.Message, r.RequestId, r.OrderId, r.ClOrdId,
	)
}

// String implements fmt.Stringer for StandardResponse
func (r StandardResponse) String() string {
	return fmt.Sprintf(
		"StandardResponse{\n"+
			"  Code:      %d\n"+
			"  Message:   %s\n"+
			"  RequestId: %s\n"+
			"}",
		r.Code, r.Message, r.RequestId,
	)
}
