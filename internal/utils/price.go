package utils

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNotANumber is returned by ParsePrice when the value cannot be read
// as a number.
var ErrNotANumber = errors.New("not a valid number")

// ParsePrice reads a price out of a decoded JSON payload.  Clients send
// prices as JSON numbers or as numeric strings ("5.5"), and values read
// back from the store arrive as json.Number; all three forms are
// accepted.  Decimal arithmetic avoids drift when summing order totals.
func ParsePrice(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Zero, ErrNotANumber
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case string:
		d, err := decimal.NewFromString(t)
		if err != nil {
			return decimal.Zero, ErrNotANumber
		}
		return d, nil
	default:
		return decimal.Zero, ErrNotANumber
	}
}
