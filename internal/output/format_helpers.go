package output

import (
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	money "github.com/rpgo/rent-vs-buy/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as USD currency with grouping and 2 decimals ($1,234,567.89).
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatWholeCurrency formats a decimal as USD rounded to whole dollars ($1,234,568).
func FormatWholeCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatPercentage formats a percent-unit decimal with 2 decimals (6.5 -> 6.50%).
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate as a percentage (0.065 -> 6.50%).
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// FormatYear formats a fractional year with 2 decimals (3.5586 -> 3.56).
func FormatYear(year decimal.Decimal) string { return year.StringFixed(2) }

// FormatCrossover describes when buying overtakes renting.
func FormatCrossover(result *domain.ScenarioResult) string {
	switch {
	case result.Crossover != nil:
		c := result.Crossover
		return fmt.Sprintf("Buying overtakes renting at year %s (month %d of year %d), net worth %s",
			FormatYear(c.Year), c.Month, c.NextYear, FormatCurrency(c.NetWorth))
	case result.BuyLeadsFromStart:
		return "Buying is ahead from the day of purchase"
	default:
		return fmt.Sprintf("Buying never overtakes renting within %d years", result.Years)
	}
}

func intToString(i int) string { return fmt.Sprintf("%d", i) }
