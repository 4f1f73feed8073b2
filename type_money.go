package cashcook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a transaction amount as entered by the user.
//
// It is kept as text so that persistence round-trips exactly, and parsed as a
// decimal wherever it is aggregated or sorted.
type Amount string

// Decimal parses the amount.
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(string(a)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", string(a), err)
	}
	return d, nil
}

// UnmarshalJSON accepts the amount as a JSON string or a JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("amount must be a string or a number: %w", err)
		}
		*a = Amount(n.String())
		return nil
	}
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a value and a currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

var (
	minUnits = decimal.NewFromInt(math.MinInt64)
	maxUnits = decimal.NewFromInt(math.MaxInt64)
)

// String returns the amount with its currency symbol, e.g. "₹1,250.00".
// Values too large to count in minor units are written with the currency
// code instead, e.g. "INR 99999999999999999999.00".
func (m Money) String() string {
	cur := m.currency()
	fraction := int32(cur.Fraction)
	units := m.value.Round(fraction).Shift(fraction)
	if units.LessThan(minUnits) || units.GreaterThan(maxUnits) {
		return strings.TrimSpace(m.cur + " " + m.value.StringFixed(fraction))
	}
	return cur.Formatter().Format(units.IntPart())
}

// FormatAmount formats an amount with the currency symbol. Amounts that do not
// parse are shown as entered, prefixed with the currency code.
func FormatAmount(a Amount, currency string) string {
	d, err := a.Decimal()
	if err != nil {
		return strings.TrimSpace(currency + " " + string(a))
	}
	return M(d, currency).String()
}
