package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/rent-vs-buy/internal/domain"
)

// CSVFormatter exports one row per yearly record.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "BuyNetWorth", "RentNetWorth", "BuyMinusRent", "HomeValue", "MortgageBalance", "HomeEquity", "InvestedBalance", "AnnualRent", "AnnualOwnershipCost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range result.Records {
		row := []string{
			intToString(yr.Year),
			yr.BuyNetWorth.StringFixed(2),
			yr.RentNetWorth.StringFixed(2),
			yr.BuyNetWorth.Sub(yr.RentNetWorth).StringFixed(2),
			yr.HomeValue.StringFixed(2),
			yr.MortgageBalance.StringFixed(2),
			yr.HomeEquity.StringFixed(2),
			yr.InvestedBalance.StringFixed(2),
			yr.AnnualRent.StringFixed(2),
			yr.AnnualOwnershipCost.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
