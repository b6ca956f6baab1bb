package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuery is wrapped when a query parameter is not a number
var ErrInvalidQuery = errors.New("invalid scenario query")

// Query parameter keys. Advanced fields are not carried and always come from defaults.
const (
	QueryPrice        = "price"
	QueryDown         = "down"
	QueryRate         = "rate"
	QueryRent         = "rent"
	QueryAppreciation = "appreciation"
	QueryRentGrowth   = "rentGrowth"
	QueryReturnRate   = "returnRate"
	QueryTaxRate      = "taxRate"
	QueryHOA          = "hoa"
	QueryYears        = "years"
)

// queryFields maps each decimal query key onto its form field
func queryFields(f *ScenarioForm) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		QueryPrice:        &f.PurchasePrice,
		QueryDown:         &f.DownPaymentPercent,
		QueryRate:         &f.MortgageRatePercent,
		QueryRent:         &f.MonthlyRent,
		QueryAppreciation: &f.AppreciationPercent,
		QueryRentGrowth:   &f.RentGrowthPercent,
		QueryReturnRate:   &f.InvestmentReturnPercent,
		QueryTaxRate:      &f.PropertyTaxPercent,
		QueryHOA:          &f.MonthlyHOA,
	}
}

// EncodeQuery serializes the query-carried subset of a form
func EncodeQuery(f ScenarioForm) url.Values {
	values := url.Values{}
	for key, field := range queryFields(&f) {
		values.Set(key, field.String())
	}
	values.Set(QueryYears, strconv.Itoa(f.Years))
	return values
}

// QueryString returns the canonical (key-sorted) query string of a form
func (f ScenarioForm) QueryString() string {
	return EncodeQuery(f).Encode()
}

// DecodeQuery builds a form from query parameters. Missing or empty keys keep their defaults,
// unknown keys are ignored.
func DecodeQuery(values url.Values) (ScenarioForm, error) {
	form := DefaultForm()

	for key, field := range queryFields(&form) {
		raw := strings.TrimSpace(values.Get(key))
		if raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return ScenarioForm{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidQuery, key, raw)
		}
		*field = v
	}

	if raw := strings.TrimSpace(values.Get(QueryYears)); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			return ScenarioForm{}, fmt.Errorf("%w: %s=%q is not a whole number", ErrInvalidQuery, QueryYears, raw)
		}
		form.Years = years
	}

	return form, nil
}

// ParseQuery decodes a raw query string such as "price=800000&down=10"
func ParseQuery(raw string) (ScenarioForm, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return ScenarioForm{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}
	return DecodeQuery(values)
}
