package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAssessedValue_CappedGrowth(t *testing.T) {
	price := decimal.NewFromInt(1000000)

	assertMoney(t, 1000000, AssessedValue(price, 0))
	assertMoney(t, 1020000, AssessedValue(price, 1))
	assertMoney(t, 1040400, AssessedValue(price, 2))
	assertMoney(t, 1218994.42, AssessedValue(price, 10))
}

func TestPropertyTax_IgnoresMarketAppreciation(t *testing.T) {
	price := decimal.NewFromInt(1500000)
	rate := d(0.012)

	// Year 1 is billed on the purchase price
	assertMoney(t, 18000, PropertyTax(price, 0, rate))
	assertMoney(t, 18360, PropertyTax(price, 1, rate))
	assert.True(t, PropertyTax(price, 5, decimal.Zero).IsZero())
}

func TestAnnualInsurance(t *testing.T) {
	value := decimal.NewFromInt(1545000)

	assertMoney(t, 5407.50, AnnualInsurance(decimal.Zero, value))
	assertMoney(t, 2400, AnnualInsurance(decimal.NewFromInt(2400), value))
}
