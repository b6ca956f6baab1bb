package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	money "github.com/rpgo/rent-vs-buy/pkg/decimal"
)

// ConsoleFormatter renders the detailed console report: assumptions, purchase, yearly table and outcome.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary
	in := result.Inputs

	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintf(&buf, "RENT VS BUY ANALYSIS: %s\n", result.Name)
	fmt.Fprintln(&buf, strings.Repeat("=", 96))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(in) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PURCHASE")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Purchase Price:        %s\n", FormatCurrency(in.PurchasePrice))
	fmt.Fprintf(&buf, "  Down Payment (%s): %s\n", FormatPercentage(in.DownPaymentPercent), FormatCurrency(s.DownPayment))
	fmt.Fprintf(&buf, "  Loan Amount:           %s\n", FormatCurrency(s.LoanAmount))
	fmt.Fprintf(&buf, "  Closing Costs:         %s\n", FormatCurrency(s.ClosingCosts))
	fmt.Fprintf(&buf, "  Monthly P&I:           %s\n", FormatCurrency(s.MonthlyPayment))
	fmt.Fprintf(&buf, "  Starting Rent:         %s/month\n", FormatCurrency(in.MonthlyRent))
	if len(result.Records) > 1 {
		firstYear := money.NewMoneyFromDecimal(result.Records[1].AnnualOwnershipCost).Monthly()
		fmt.Fprintf(&buf, "  Year 1 Cost of Owning: %s/month\n", firstYear.Format())
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "YEAR-BY-YEAR NET WORTH")
	fmt.Fprintln(&buf, strings.Repeat("-", 96))
	fmt.Fprintf(&buf, "%4s  %16s  %16s  %16s  %16s  %16s\n", "Year", "Buy", "Rent", "Buy - Rent", "Home Value", "Mortgage")
	for _, yr := range result.Records {
		fmt.Fprintf(&buf, "%4d  %16s  %16s  %16s  %16s  %16s\n",
			yr.Year,
			FormatWholeCurrency(yr.BuyNetWorth),
			FormatWholeCurrency(yr.RentNetWorth),
			FormatWholeCurrency(yr.BuyNetWorth.Sub(yr.RentNetWorth)),
			FormatWholeCurrency(yr.HomeValue),
			FormatWholeCurrency(yr.MortgageBalance),
		)
	}
	fmt.Fprintln(&buf)

	outcome := AnalyzeResult(result)
	fmt.Fprintln(&buf, "OUTCOME")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Total Rent Paid:          %s\n", FormatCurrency(s.TotalRentPaid))
	fmt.Fprintf(&buf, "  Total Cost of Owning:     %s\n", FormatCurrency(s.TotalOwnershipCost))
	fmt.Fprintf(&buf, "  Final Buy Net Worth:      %s\n", FormatCurrency(s.FinalBuyNetWorth))
	fmt.Fprintf(&buf, "  Final Rent Net Worth:     %s\n", FormatCurrency(s.FinalRentNetWorth))
	fmt.Fprintf(&buf, "  %s\n", outcome.Crossover)
	fmt.Fprintf(&buf, "  %s\n", outcome.Headline)

	return buf.Bytes(), nil
}
