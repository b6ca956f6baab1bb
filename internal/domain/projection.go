package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyRecord represents the state of both households at the end of a single simulated year.
// Year 0 is the "sell today" snapshot taken at purchase.
type YearlyRecord struct {
	Year int `json:"year"`

	// Net worth if each household liquidated at the end of this year
	BuyNetWorth  decimal.Decimal `json:"buy_net_worth"`
	RentNetWorth decimal.Decimal `json:"rent_net_worth"`

	// Owner side
	HomeValue       decimal.Decimal `json:"home_value"`
	MortgageBalance decimal.Decimal `json:"mortgage_balance"`
	HomeEquity      decimal.Decimal `json:"home_equity"`

	// Renter side
	InvestedBalance decimal.Decimal `json:"invested_balance"`

	// Cash flows for the year
	AnnualRent          decimal.Decimal `json:"annual_rent"`
	AnnualOwnershipCost decimal.Decimal `json:"annual_ownership_cost"`
}

// Gap returns rent-side minus buy-side net worth. Positive means renting is ahead.
func (yr *YearlyRecord) Gap() decimal.Decimal {
	return yr.RentNetWorth.Sub(yr.BuyNetWorth)
}

// BuyAhead reports whether buying is strictly ahead of renting this year.
func (yr *YearlyRecord) BuyAhead() bool {
	return yr.BuyNetWorth.GreaterThan(yr.RentNetWorth)
}

// CrossoverResult describes the point where buy-side net worth first overtakes rent-side net worth
type CrossoverResult struct {
	// Fractional year of the crossing (e.g. 7.42)
	Year decimal.Decimal `json:"year"`

	// Bracketing simulated years
	PrevYear int `json:"prev_year"`
	NextYear int `json:"next_year"`

	// Fraction (0..1) of the way from PrevYear to NextYear
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Month (1..12) within the bracketing year
	Month int `json:"month"`

	// Interpolated net worth of both households at the crossing
	NetWorth decimal.Decimal `json:"net_worth"`
}

// ScenarioSummary provides the key figures of a single rent-vs-buy projection
type ScenarioSummary struct {
	DownPayment    decimal.Decimal `json:"down_payment"`
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	ClosingCosts   decimal.Decimal `json:"closing_costs"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`

	// Totals over years 1..N (year 0 carries no rent and only the sunk closing costs)
	TotalRentPaid      decimal.Decimal `json:"total_rent_paid"`
	TotalOwnershipCost decimal.Decimal `json:"total_ownership_cost"`

	FinalBuyNetWorth  decimal.Decimal `json:"final_buy_net_worth"`
	FinalRentNetWorth decimal.Decimal `json:"final_rent_net_worth"`
	Advantage         decimal.Decimal `json:"advantage"` // final buy minus final rent
	Verdict           string          `json:"verdict"`   // buy|rent|even
}

// Verdict values
const (
	VerdictBuy  = "buy"
	VerdictRent = "rent"
	VerdictEven = "even"
)

// ScenarioResult is everything an output consumer needs to render one scenario
type ScenarioResult struct {
	Name              string           `json:"name"`
	Years             int              `json:"years"`
	Inputs            ScenarioInputs   `json:"inputs"`
	Summary           ScenarioSummary  `json:"summary"`
	Records           []YearlyRecord   `json:"records"`
	Crossover         *CrossoverResult `json:"crossover,omitempty"`
	BuyLeadsFromStart bool             `json:"buy_leads_from_start"`
}

// FinalRecord returns the last yearly record, or nil for an empty projection.
func (sr *ScenarioResult) FinalRecord() *YearlyRecord {
	if len(sr.Records) == 0 {
		return nil
	}
	return &sr.Records[len(sr.Records)-1]
}

// BreakEvenRentResult contains the monthly rent at which both households end the horizon even
type BreakEvenRentResult struct {
	Years             int             `json:"years"`
	MonthlyRent       decimal.Decimal `json:"monthly_rent"`
	CurrentRent       decimal.Decimal `json:"current_rent"`
	FinalBuyNetWorth  decimal.Decimal `json:"final_buy_net_worth"`
	FinalRentNetWorth decimal.Decimal `json:"final_rent_net_worth"`
	Iterations        int             `json:"iterations"`
	Converged         bool            `json:"converged"`
}
