package taxhelper

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs a decimal value with a currency for display purposes only.
// All arithmetic stays on bare decimals; Money exists so terminal reports
// format USD and JPY values with the right symbol and fraction digits.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps a decimal value with its currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns a never-nil currency through the money constructor.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the locale-formatted representation, e.g. "¥154,000" or
// "$1,000.00". The value is rounded to the currency's fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
