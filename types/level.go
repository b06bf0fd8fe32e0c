package types

import (
	"encoding/json"
	"fmt"
)

// PriceLevel is one entry of a depth book side, sent on the wire as a
// [price, qty] pair.
type PriceLevel struct {
	Price FloatString
	Qty   FloatString
}

// UnmarshalJSON implements json.Unmarshaler for PriceLevel
func (l *PriceLevel) UnmarshalJSON(b []byte) error {
	var entry []FloatString
	if err := json.Unmarshal(b, &entry); err != nil {
		return err
	}
	if len(entry) < 2 {
		return fmt.Errorf("depth level has %d fields, want price and qty", len(entry))
	}
	l.Price = entry[0]
	l.Qty = entry[1]
	return nil
}

func (l PriceLevel) String() string {
	return fmt.Sprintf("[%s, %s]", l.Price, l.Qty)
}
