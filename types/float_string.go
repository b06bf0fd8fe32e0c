package types

import (
	"bytes"
	"encoding/json"

	"github.com/standx/go-standx/internal/utils"
)

// FloatString is a float64 whose wire form may be a JSON number or a
// decimal string: the kline service emits numbers, the depth book emits
// quoted strings. Null and the empty string decode to zero.
type FloatString float64

// UnmarshalJSON implements json.Unmarshaler for FloatString
func (f *FloatString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := utils.StringToFloat(s)
		if err != nil {
			return err
		}
		*f = FloatString(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FloatString(v)
	return nil
}

func (f FloatString) String() string {
	return utils.FormatDecimal(f.Raw())
}

func (f FloatString) Raw() float64 {
	return float64(f)
}
