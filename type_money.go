package fireplan

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency. It is only used for
// display labels: the projection engine itself works on currency-agnostic
// scalars.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported decimal source")
	}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// symbol returns the display symbol for the currency, falling back to the
// currency code followed by a space when no grapheme is known. An empty
// currency yields a bare number.
func (m Money) symbol() string {
	if m.cur == "" {
		return ""
	}
	cur := m.currency()
	if cur.Grapheme == "" || cur.Grapheme == cur.Code {
		return m.cur + " "
	}
	return cur.Grapheme
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) AsFloat() float64   { return m.value.InexactFloat64() }

// String returns the full string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Compact returns a short label with a K/M/B suffix, e.g. "£1.2M" or "CHF 25K".
// Chart bars have little horizontal room, so one decimal place at most, and a
// trailing ".0" is dropped.
func (m Money) Compact() string {
	abs := m.value.Abs()
	sign := ""
	if m.value.IsNegative() {
		sign = "-"
	}
	var suffix string
	scaled := abs
	switch {
	case abs.GreaterThanOrEqual(decimal.New(1, 9)):
		scaled, suffix = abs.Shift(-9), "B"
	case abs.GreaterThanOrEqual(decimal.New(1, 6)):
		scaled, suffix = abs.Shift(-6), "M"
	case abs.GreaterThanOrEqual(decimal.New(1, 3)):
		scaled, suffix = abs.Shift(-3), "K"
	}
	s := scaled.Round(1).String()
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		s = s[:len(s)-2]
	}
	return sign + m.symbol() + s + suffix
}

// CompactLabel formats a raw amount as a compact currency label.
func CompactLabel(value float64, currency string) string {
	return M(value, currency).Compact()
}
