package calculation

import (
	"github.com/shopspring/decimal"
)

// AssessmentGrowthCap is the maximum annual growth of the assessed value (Proposition 13 style).
// It applies regardless of the market appreciation rate.
var AssessmentGrowthCap = decimal.NewFromFloat(0.02)

// DefaultInsuranceRate is the annual homeowner's insurance premium, as a fraction of the current
// home value, used when no explicit premium is supplied.
var DefaultInsuranceRate = decimal.NewFromFloat(0.0035)

// AssessedValue returns the tax basis in the given assessment year
func AssessedValue(purchasePrice decimal.Decimal, yearIndex int) decimal.Decimal {
	factor := one.Add(AssessmentGrowthCap).Pow(decimal.NewFromInt(int64(yearIndex)))
	return purchasePrice.Mul(factor)
}

// PropertyTax returns the annual tax billed on the assessment of the given year.
// The simulation bills year Y on assessment year Y-1.
func PropertyTax(purchasePrice decimal.Decimal, yearIndex int, taxRate decimal.Decimal) decimal.Decimal {
	return AssessedValue(purchasePrice, yearIndex).Mul(taxRate)
}

// AnnualInsurance returns the explicit premium, or the derived premium on the current value when it is zero
func AnnualInsurance(explicit, homeValue decimal.Decimal) decimal.Decimal {
	if explicit.IsZero() {
		return homeValue.Mul(DefaultInsuranceRate)
	}
	return explicit
}
