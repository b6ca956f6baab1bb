package output

import (
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/domain"
)

// GenerateAssumptions lists the modeling assumptions behind a result, from its actual inputs
func GenerateAssumptions(inputs domain.ScenarioInputs) []string {
	insurance := fmt.Sprintf("Homeowner's insurance: %s of home value annually", FormatRate(calculation.DefaultInsuranceRate))
	if !inputs.AnnualInsurance.IsZero() {
		insurance = fmt.Sprintf("Homeowner's insurance: %s per year", FormatCurrency(inputs.AnnualInsurance))
	}

	return []string{
		fmt.Sprintf("Mortgage: %d-year fixed at %s", calculation.MortgageTermYears, FormatRate(inputs.MortgageRate)),
		fmt.Sprintf("Home appreciation: %s annually", FormatRate(inputs.AppreciationRate)),
		fmt.Sprintf("Rent growth: %s annually", FormatRate(inputs.RentGrowthRate)),
		fmt.Sprintf("Investment return: %s annually, compounded monthly", FormatRate(inputs.InvestmentReturnRate)),
		fmt.Sprintf("Property tax: %s of assessed value, assessment growth capped at %s per year",
			FormatRate(inputs.PropertyTaxRate), FormatRate(calculation.AssessmentGrowthCap)),
		fmt.Sprintf("Maintenance: %s of home value annually", FormatRate(inputs.MaintenanceRate)),
		insurance,
		fmt.Sprintf("Closing costs: %s of purchase price; selling costs: %s of sale price",
			FormatRate(inputs.ClosingCostRate), FormatRate(inputs.SellingCostRate)),
		"The renter invests the down payment, closing costs and any monthly savings versus owning",
	}
}
