package calculation

import (
	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/shopspring/decimal"
)

// FindCrossover finds the first year in which buy-side net worth overtakes rent-side net worth
// and interpolates the fractional year of the crossing.
//
// Only a transition is reported: if buying is already ahead at year 0 and never falls behind,
// there is no crossover and nil is returned. Use BuyLeadsFromStart to detect that case.
// When the trajectories cross several times only the first buy-overtakes-rent crossing counts.
func FindCrossover(records []domain.YearlyRecord) *domain.CrossoverResult {
	for i := 1; i < len(records); i++ {
		prev := records[i-1]
		curr := records[i]

		if prev.BuyNetWorth.GreaterThan(prev.RentNetWorth) || !curr.BuyNetWorth.GreaterThan(curr.RentNetWorth) {
			continue
		}

		// The gap closes linearly between the two years:
		// gap(t) = prevGap - t*closing, solve gap(t) = 0.
		prevGap := prev.RentNetWorth.Sub(prev.BuyNetWorth)
		closing := curr.BuyNetWorth.Sub(prev.BuyNetWorth).Sub(curr.RentNetWorth.Sub(prev.RentNetWorth))
		// prevGap >= 0 > currGap, so closing is positive for any transition that reaches here.
		if !closing.IsPositive() {
			continue
		}

		span := decimal.NewFromInt(int64(curr.Year - prev.Year))
		t := prevGap.Div(closing)
		if t.GreaterThan(one) {
			t = one
		}
		year := decimal.NewFromInt(int64(prev.Year)).Add(t.Mul(span))

		// Month is 1-based: the first twelfth of the year is month 1.
		month := int(t.InexactFloat64()*12) + 1
		if month < 1 {
			month = 1
		}
		if month > 12 {
			month = 12
		}

		return &domain.CrossoverResult{
			Year:     year,
			PrevYear: prev.Year,
			NextYear: curr.Year,
			Fraction: t,
			Month:    month,
			NetWorth: prev.BuyNetWorth.Add(curr.BuyNetWorth.Sub(prev.BuyNetWorth).Mul(t)).Round(2),
		}
	}

	return nil
}

// BuyLeadsFromStart reports whether buying is ahead already at year 0, a case FindCrossover
// deliberately does not report.
func BuyLeadsFromStart(records []domain.YearlyRecord) bool {
	if len(records) == 0 {
		return false
	}
	return records[0].BuyAhead()
}
