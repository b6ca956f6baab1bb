package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	money "github.com/rpgo/rent-vs-buy/pkg/decimal"
)

// CalculationEngine orchestrates a rent-vs-buy run: simulation, crossover and summary
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenario simulates a scenario over the given horizon and assembles the full result
func (ce *CalculationEngine) RunScenario(ctx context.Context, name string, inputs domain.ScenarioInputs, years int) (*domain.ScenarioResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := Simulate(inputs, years)
	if err != nil {
		return nil, fmt.Errorf("simulate scenario %q: %w", name, err)
	}

	result := &domain.ScenarioResult{
		Name:              name,
		Years:             years,
		Inputs:            inputs,
		Summary:           Summarize(inputs, records),
		Records:           records,
		Crossover:         FindCrossover(records),
		BuyLeadsFromStart: BuyLeadsFromStart(records),
	}

	if result.Crossover != nil {
		ce.Logger.Infof("scenario %q: buying overtakes renting in year %s", name, result.Crossover.Year.StringFixed(2))
	} else if result.BuyLeadsFromStart {
		ce.Logger.Infof("scenario %q: buying leads from year 0", name)
	} else {
		ce.Logger.Infof("scenario %q: no crossover within %d years", name, years)
	}

	if ce.Debug {
		ce.logBreakdown(result)
	}

	return result, nil
}

// Summarize derives the headline figures of a projection
func Summarize(inputs domain.ScenarioInputs, records []domain.YearlyRecord) domain.ScenarioSummary {
	loanAmount := inputs.LoanAmount()
	summary := domain.ScenarioSummary{
		DownPayment:    inputs.DownPayment(),
		LoanAmount:     loanAmount,
		ClosingCosts:   inputs.ClosingCosts(),
		MonthlyPayment: MonthlyPayment(loanAmount, inputs.MortgageRate, MortgageTermYears).Round(2),
	}

	rentPaid, ownershipCost := money.Zero(), money.Zero()
	for _, yr := range records {
		if yr.Year == 0 {
			continue
		}
		rentPaid = rentPaid.Add(money.NewMoneyFromDecimal(yr.AnnualRent))
		ownershipCost = ownershipCost.Add(money.NewMoneyFromDecimal(yr.AnnualOwnershipCost))
	}
	summary.TotalRentPaid = rentPaid.Decimal
	summary.TotalOwnershipCost = ownershipCost.Decimal

	advantage := money.Zero()
	if len(records) > 0 {
		final := records[len(records)-1]
		summary.FinalBuyNetWorth = final.BuyNetWorth
		summary.FinalRentNetWorth = final.RentNetWorth
		advantage = money.NewMoneyFromDecimal(final.BuyNetWorth).Sub(money.NewMoneyFromDecimal(final.RentNetWorth))
	}
	summary.Advantage = advantage.Decimal

	switch rounded := advantage.Round(); {
	case rounded.IsPositive():
		summary.Verdict = domain.VerdictBuy
	case rounded.IsNegative():
		summary.Verdict = domain.VerdictRent
	default:
		summary.Verdict = domain.VerdictEven
	}

	return summary
}

func (ce *CalculationEngine) logBreakdown(result *domain.ScenarioResult) {
	s := result.Summary
	ce.Logger.Debugf("RENT VS BUY BREAKDOWN: %s", result.Name)
	ce.Logger.Debugf("=========================================")
	ce.Logger.Debugf("Down Payment:           $%s", s.DownPayment.StringFixed(2))
	ce.Logger.Debugf("Loan Amount:            $%s", s.LoanAmount.StringFixed(2))
	ce.Logger.Debugf("Closing Costs:          $%s", s.ClosingCosts.StringFixed(2))
	ce.Logger.Debugf("Monthly P&I:            $%s", s.MonthlyPayment.StringFixed(2))
	for _, yr := range result.Records {
		ce.Logger.Debugf("  Year %2d: buy=$%s rent=$%s value=$%s balance=$%s cost=$%s rent_paid=$%s",
			yr.Year,
			yr.BuyNetWorth.StringFixed(2),
			yr.RentNetWorth.StringFixed(2),
			yr.HomeValue.StringFixed(2),
			yr.MortgageBalance.StringFixed(2),
			yr.AnnualOwnershipCost.StringFixed(2),
			yr.AnnualRent.StringFixed(2),
		)
	}
	ce.Logger.Debugf("Final advantage (buy - rent): $%s", s.Advantage.StringFixed(2))
}
