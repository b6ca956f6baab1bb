package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioInputs holds the fully resolved parameters of a rent-vs-buy run.
// All rates are decimals (0.065 for 6.5%) except DownPaymentPercent, which is in percent units.
// The engine performs arithmetic only; range checks belong to the input adapter.
type ScenarioInputs struct {
	PurchasePrice      decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	DownPaymentPercent decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	MortgageRate       decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`

	AppreciationRate     decimal.Decimal `yaml:"appreciation_rate" json:"appreciation_rate"`
	RentGrowthRate       decimal.Decimal `yaml:"rent_growth_rate" json:"rent_growth_rate"`
	InvestmentReturnRate decimal.Decimal `yaml:"investment_return_rate" json:"investment_return_rate"`

	// Ownership costs
	PropertyTaxRate decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	MonthlyHOA      decimal.Decimal `yaml:"monthly_hoa" json:"monthly_hoa"`
	MaintenanceRate decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"`
	ClosingCostRate decimal.Decimal `yaml:"closing_cost_rate" json:"closing_cost_rate"`
	SellingCostRate decimal.Decimal `yaml:"selling_cost_rate" json:"selling_cost_rate"`
	AnnualInsurance decimal.Decimal `yaml:"annual_insurance" json:"annual_insurance"` // zero derives 0.35% of home value
}

// DownPaymentFraction returns the down payment as a fraction of the price (20% -> 0.20)
func (si *ScenarioInputs) DownPaymentFraction() decimal.Decimal {
	return si.DownPaymentPercent.Div(decimal.NewFromInt(100))
}

// DownPayment returns the cash put down at purchase
func (si *ScenarioInputs) DownPayment() decimal.Decimal {
	return si.PurchasePrice.Mul(si.DownPaymentFraction())
}

// LoanAmount returns the financed portion of the purchase price
func (si *ScenarioInputs) LoanAmount() decimal.Decimal {
	return si.PurchasePrice.Sub(si.DownPayment())
}

// ClosingCosts returns the one-time purchase closing costs
func (si *ScenarioInputs) ClosingCosts() decimal.Decimal {
	return si.PurchasePrice.Mul(si.ClosingCostRate)
}
