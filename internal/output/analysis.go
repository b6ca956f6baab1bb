package output

import (
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/shopspring/decimal"
)

// Outcome is the headline interpretation of a scenario result.
type Outcome struct {
	Verdict   string
	Headline  string
	Advantage decimal.Decimal // absolute difference between final net worths
	Crossover string
}

// AnalyzeResult turns the scenario summary into reader-facing statements.
// Extracted from the formatters for testability.
func AnalyzeResult(result *domain.ScenarioResult) Outcome {
	s := result.Summary
	out := Outcome{
		Verdict:   s.Verdict,
		Advantage: s.Advantage.Abs(),
		Crossover: FormatCrossover(result),
	}

	switch s.Verdict {
	case domain.VerdictBuy:
		out.Headline = fmt.Sprintf("Buying comes out ahead by %s after %d years", FormatCurrency(out.Advantage), result.Years)
	case domain.VerdictRent:
		out.Headline = fmt.Sprintf("Renting comes out ahead by %s after %d years", FormatCurrency(out.Advantage), result.Years)
	default:
		out.Headline = fmt.Sprintf("Buying and renting end even after %d years", result.Years)
	}

	return out
}
