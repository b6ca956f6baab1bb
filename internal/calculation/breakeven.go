package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrZeroHorizon is returned when a break-even is requested for a horizon with no simulated years
	ErrZeroHorizon = errors.New("break-even requires at least one projection year")
	// ErrNoBreakEven is returned when no rent in the search range makes both households even
	ErrNoBreakEven = errors.New("no break-even rent within search range")
)

// CalculateBreakEvenRent finds the starting monthly rent at which renting and buying end the
// horizon with equal net worth. Only the renter depends on rent, and a higher rent always leaves
// the renter with less, so a bisection over rent converges on the single root.
func (ce *CalculationEngine) CalculateBreakEvenRent(ctx context.Context, inputs domain.ScenarioInputs, years int) (*domain.BreakEvenRentResult, error) {
	if years < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeYears, years)
	}
	if years == 0 {
		return nil, ErrZeroHorizon
	}

	gapAt := func(rent decimal.Decimal) (decimal.Decimal, domain.YearlyRecord, error) {
		trial := inputs
		trial.MonthlyRent = rent
		records, err := Simulate(trial, years)
		if err != nil {
			return decimal.Zero, domain.YearlyRecord{}, err
		}
		final := records[len(records)-1]
		return final.Gap(), final, nil
	}

	// Search between free housing and three times the first year's monthly cost of owning
	records, err := Simulate(inputs, 1)
	if err != nil {
		return nil, err
	}
	minRent := decimal.Zero
	maxRent := records[1].AnnualOwnershipCost.Div(twelve).Mul(decimal.NewFromInt(3))

	tolerance := decimal.NewFromInt(1) // Within $1 of net worth
	maxIterations := 60

	lowGap, _, err := gapAt(minRent)
	if err != nil {
		return nil, err
	}
	highGap, _, err := gapAt(maxRent)
	if err != nil {
		return nil, err
	}
	if !lowGap.IsPositive() || highGap.IsPositive() {
		return nil, fmt.Errorf("%w: rent $0 gap %s, rent $%s gap %s",
			ErrNoBreakEven, lowGap.StringFixed(2), maxRent.StringFixed(2), highGap.StringFixed(2))
	}

	result := &domain.BreakEvenRentResult{
		Years:       years,
		CurrentRent: inputs.MonthlyRent,
	}

	var final domain.YearlyRecord
	for i := 0; i < maxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Iterations = i + 1

		testRent := minRent.Add(maxRent).Div(decimal.NewFromInt(2))
		gap, yr, err := gapAt(testRent)
		if err != nil {
			return nil, err
		}
		final = yr
		result.MonthlyRent = testRent

		if gap.Abs().LessThan(tolerance) {
			result.Converged = true
			break
		}

		if gap.IsPositive() {
			// Renter still ahead, rent must rise
			minRent = testRent
		} else {
			maxRent = testRent
		}

		if maxRent.Sub(minRent).LessThan(decimal.NewFromFloat(0.0001)) {
			break
		}
	}

	result.MonthlyRent = result.MonthlyRent.Round(2)
	result.FinalBuyNetWorth = final.BuyNetWorth
	result.FinalRentNetWorth = final.RentNetWorth

	ce.Logger.Debugf("break-even rent over %d years: $%s after %d iterations (converged=%t)",
		years, result.MonthlyRent.StringFixed(2), result.Iterations, result.Converged)

	return result, nil
}
