package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	money "github.com/rpgo/rent-vs-buy/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ErrNegativeYears is returned when a projection horizon below zero is requested
var ErrNegativeYears = errors.New("projection years cannot be negative")

// Simulate projects both households from purchase (year 0) through the given number of years.
// The returned slice always holds years+1 records ordered by year.
func Simulate(inputs domain.ScenarioInputs, years int) ([]domain.YearlyRecord, error) {
	if years < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeYears, years)
	}

	price := inputs.PurchasePrice
	downPayment := inputs.DownPayment()
	loanAmount := price.Sub(downPayment)
	closingCosts := inputs.ClosingCosts()
	monthlyPayment := MonthlyPayment(loanAmount, inputs.MortgageRate, MortgageTermYears)

	records := make([]domain.YearlyRecord, 0, years+1)

	// Year 0: what each household holds if the home were sold on the day it was bought.
	// The renter starts with the capital the buyer committed.
	invested := downPayment.Add(closingCosts)
	records = append(records, domain.YearlyRecord{
		Year:                0,
		BuyNetWorth:         downPayment.Sub(price.Mul(inputs.SellingCostRate)).Sub(closingCosts),
		RentNetWorth:        invested,
		HomeValue:           price,
		MortgageBalance:     loanAmount,
		HomeEquity:          downPayment,
		InvestedBalance:     invested,
		AnnualRent:          decimal.Zero,
		AnnualOwnershipCost: closingCosts,
	})

	appreciationFactor := one.Add(inputs.AppreciationRate)
	rentGrowthFactor := one.Add(inputs.RentGrowthRate)
	monthlyGrowth := one.Add(inputs.InvestmentReturnRate.Div(twelve))
	annualMortgage := money.NewMoneyFromDecimal(monthlyPayment).Annual().Decimal
	annualHOA := money.NewMoneyFromDecimal(inputs.MonthlyHOA).Annual().Decimal
	monthlyRent := inputs.MonthlyRent

	for year := 1; year <= years; year++ {
		homeValue := price.Mul(appreciationFactor.Pow(decimal.NewFromInt(int64(year)))).Round(Precision)
		balance := RemainingBalance(loanAmount, inputs.MortgageRate, year*12, MortgageTermYears)

		ownershipCost := annualMortgage.
			Add(PropertyTax(price, year-1, inputs.PropertyTaxRate)).
			Add(annualHOA).
			Add(homeValue.Mul(inputs.MaintenanceRate)).
			Add(AnnualInsurance(inputs.AnnualInsurance, homeValue)).
			Round(Precision)

		equity := homeValue.Sub(balance)
		sellingCosts := homeValue.Mul(inputs.SellingCostRate)
		buyNetWorth := equity.Sub(sellingCosts).Sub(closingCosts)

		annualRent := money.NewMoneyFromDecimal(monthlyRent).Annual().Decimal

		// Renter banks (or draws down) the monthly cost difference, then earns a month of return.
		monthlyOwnership := ownershipCost.Div(twelve)
		for month := 0; month < 12; month++ {
			invested = invested.Add(monthlyOwnership.Sub(monthlyRent)).Mul(monthlyGrowth).Round(Precision)
		}

		records = append(records, domain.YearlyRecord{
			Year:                year,
			BuyNetWorth:         buyNetWorth,
			RentNetWorth:        invested,
			HomeValue:           homeValue,
			MortgageBalance:     balance,
			HomeEquity:          equity,
			InvestedBalance:     invested,
			AnnualRent:          annualRent,
			AnnualOwnershipCost: ownershipCost,
		})

		monthlyRent = monthlyRent.Mul(rentGrowthFactor).Round(Precision)
	}

	return records, nil
}
