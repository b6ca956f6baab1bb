package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/domain"
)

// SummaryFormatter provides a concise text summary via the formatter interface.
type SummaryFormatter struct{}

func (c SummaryFormatter) Name() string { return "summary" }

func (c SummaryFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary
	outcome := AnalyzeResult(result)

	fmt.Fprintln(&buf, "RENT VS BUY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "%s: Price=%s Rent=%s/mo Years=%d\n",
		result.Name, FormatCurrency(result.Inputs.PurchasePrice), FormatCurrency(result.Inputs.MonthlyRent), result.Years)
	fmt.Fprintf(&buf, "  FinalBuy=%s FinalRent=%s\n", FormatCurrency(s.FinalBuyNetWorth), FormatCurrency(s.FinalRentNetWorth))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%s\n", outcome.Crossover)
	fmt.Fprintf(&buf, "Verdict: %s\n", outcome.Headline)
	return buf.Bytes(), nil
}
