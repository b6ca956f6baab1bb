package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is wrapped by every form validation failure
var ErrInvalidInput = errors.New("invalid scenario input")

// DefaultYears is the projection horizon used when none is given
const DefaultYears = 30

var hundred = decimal.NewFromInt(100)

// ScenarioForm is the user-facing scenario. Rates are in percent units (6.5 means 6.5%),
// money is in dollars. Advanced fields are optional and default like any other.
type ScenarioForm struct {
	PurchasePrice           decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	DownPaymentPercent      decimal.Decimal `yaml:"down_payment_percent" json:"down_payment_percent"`
	MortgageRatePercent     decimal.Decimal `yaml:"mortgage_rate_percent" json:"mortgage_rate_percent"`
	MonthlyRent             decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	AppreciationPercent     decimal.Decimal `yaml:"appreciation_percent" json:"appreciation_percent"`
	RentGrowthPercent       decimal.Decimal `yaml:"rent_growth_percent" json:"rent_growth_percent"`
	InvestmentReturnPercent decimal.Decimal `yaml:"investment_return_percent" json:"investment_return_percent"`
	PropertyTaxPercent      decimal.Decimal `yaml:"property_tax_percent" json:"property_tax_percent"`
	MonthlyHOA              decimal.Decimal `yaml:"monthly_hoa" json:"monthly_hoa"`
	Years                   int             `yaml:"years" json:"years"`

	// Advanced
	MaintenancePercent decimal.Decimal `yaml:"maintenance_percent" json:"maintenance_percent"`
	ClosingCostPercent decimal.Decimal `yaml:"closing_cost_percent" json:"closing_cost_percent"`
	SellingCostPercent decimal.Decimal `yaml:"selling_cost_percent" json:"selling_cost_percent"`
	AnnualInsurance    decimal.Decimal `yaml:"annual_insurance" json:"annual_insurance"` // 0 derives 0.35% of home value
}

// ScenarioFile is the on-disk scenario document
type ScenarioFile struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Scenario    ScenarioForm `yaml:"scenario" json:"scenario"`
}

// DefaultForm returns a form populated with the default scenario
func DefaultForm() ScenarioForm {
	return ScenarioForm{
		PurchasePrice:           decimal.NewFromInt(1500000),
		DownPaymentPercent:      decimal.NewFromInt(20),
		MortgageRatePercent:     decimal.NewFromFloat(6.5),
		MonthlyRent:             decimal.NewFromInt(4000),
		AppreciationPercent:     decimal.NewFromInt(3),
		RentGrowthPercent:       decimal.NewFromInt(3),
		InvestmentReturnPercent: decimal.NewFromInt(7),
		PropertyTaxPercent:      decimal.NewFromFloat(1.2),
		MonthlyHOA:              decimal.Zero,
		Years:                   DefaultYears,
		MaintenancePercent:      decimal.NewFromInt(1),
		ClosingCostPercent:      decimal.NewFromFloat(2.5),
		SellingCostPercent:      decimal.NewFromInt(6),
		AnnualInsurance:         decimal.Zero,
	}
}

// ToInputs converts the form into engine inputs, turning percentages into decimals
func (f ScenarioForm) ToInputs() domain.ScenarioInputs {
	return domain.ScenarioInputs{
		PurchasePrice:        f.PurchasePrice,
		DownPaymentPercent:   f.DownPaymentPercent,
		MortgageRate:         f.MortgageRatePercent.Div(hundred),
		MonthlyRent:          f.MonthlyRent,
		AppreciationRate:     f.AppreciationPercent.Div(hundred),
		RentGrowthRate:       f.RentGrowthPercent.Div(hundred),
		InvestmentReturnRate: f.InvestmentReturnPercent.Div(hundred),
		PropertyTaxRate:      f.PropertyTaxPercent.Div(hundred),
		MonthlyHOA:           f.MonthlyHOA,
		MaintenanceRate:      f.MaintenancePercent.Div(hundred),
		ClosingCostRate:      f.ClosingCostPercent.Div(hundred),
		SellingCostRate:      f.SellingCostPercent.Div(hundred),
		AnnualInsurance:      f.AnnualInsurance,
	}
}

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file. Fields missing from the file keep their defaults.
func (ip *InputParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates a scenario document
func (ip *InputParser) Parse(data []byte) (*ScenarioFile, error) {
	file := ScenarioFile{Scenario: DefaultForm()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if file.Name == "" {
		file.Name = "Scenario"
	}

	if err := ip.ValidateForm(&file.Scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &file, nil
}

// ValidateForm range-checks every field of a form
func (ip *InputParser) ValidateForm(form *ScenarioForm) error {
	if !form.PurchasePrice.IsPositive() {
		return invalid("purchase_price", "must be positive")
	}
	if err := between("down_payment_percent", form.DownPaymentPercent, 0, 100); err != nil {
		return err
	}
	if err := between("mortgage_rate_percent", form.MortgageRatePercent, 0, 30); err != nil {
		return err
	}

	nonNegative := []struct {
		field string
		value decimal.Decimal
	}{
		{"monthly_rent", form.MonthlyRent},
		{"monthly_hoa", form.MonthlyHOA},
		{"maintenance_percent", form.MaintenancePercent},
		{"closing_cost_percent", form.ClosingCostPercent},
		{"selling_cost_percent", form.SellingCostPercent},
		{"annual_insurance", form.AnnualInsurance},
	}
	for _, nn := range nonNegative {
		if nn.value.IsNegative() {
			return invalid(nn.field, "cannot be negative")
		}
	}

	if err := between("appreciation_percent", form.AppreciationPercent, -50, 50); err != nil {
		return err
	}
	if err := between("rent_growth_percent", form.RentGrowthPercent, -50, 50); err != nil {
		return err
	}
	if err := between("investment_return_percent", form.InvestmentReturnPercent, -50, 50); err != nil {
		return err
	}
	if err := between("property_tax_percent", form.PropertyTaxPercent, 0, 10); err != nil {
		return err
	}
	if form.Years < 0 || form.Years > 100 {
		return invalid("years", "must be between 0 and 100")
	}

	return nil
}

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

func between(field string, value decimal.Decimal, lo, hi int64) error {
	if value.LessThan(decimal.NewFromInt(lo)) || value.GreaterThan(decimal.NewFromInt(hi)) {
		return invalid(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	return nil
}

// CreateExampleScenario creates an example scenario document
func (ip *InputParser) CreateExampleScenario() *ScenarioFile {
	return &ScenarioFile{
		Name:        "Bay Area Starter Home",
		Description: "$1.5M purchase with 20% down against $4,000/month rent",
		Scenario:    DefaultForm(),
	}
}

// SaveScenario writes a scenario document as YAML
func SaveScenario(file *ScenarioFile, filename string) error {
	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario file %s: %w", filename, err)
	}

	return nil
}
