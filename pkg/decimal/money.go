package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Money represents a dollar amount for display
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain two-decimal representation (1234.50)
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in US currency style with cents: $1,234,567.89, -$42.10
func (m Money) Format() string {
	rounded := m.Decimal.Round(2)
	s := printer.Sprintf("$%.2f", rounded.Abs().InexactFloat64())
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatWhole renders the amount rounded to whole dollars: $1,234,568
func (m Money) FormatWhole() string {
	rounded := m.Decimal.Round(0)
	s := printer.Sprintf("$%d", rounded.Abs().IntPart())
	if rounded.IsNegative() {
		return "-" + s
	}
	return s
}

// Compact renders large amounts with a magnitude suffix for chart axes: $1.5M, $750K, $900
func (m Money) Compact() string {
	abs := m.Decimal.Abs()
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}

	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1000000)):
		return sign + "$" + abs.Div(decimal.NewFromInt(1000000)).Round(1).String() + "M"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1000)):
		return sign + "$" + abs.Div(decimal.NewFromInt(1000)).Round(0).String() + "K"
	default:
		return sign + "$" + abs.Round(0).String()
	}
}
