package main

import (
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"
)

func main() {
	principal := flag.Float64("principal", 1200000, "loan amount")
	rate := flag.Float64("rate", 6.5, "annual rate in percent")
	years := flag.Int("years", calculation.MortgageTermYears, "years to print")
	flag.Parse()

	p := decimal.NewFromFloat(*principal)
	r := decimal.NewFromFloat(*rate).Div(decimal.NewFromInt(100))

	payment := calculation.MonthlyPayment(p, r, calculation.MortgageTermYears)
	fmt.Printf("Principal: %s  Rate: %s%%  Term: %d years\n", p.StringFixed(2), decimal.NewFromFloat(*rate).String(), calculation.MortgageTermYears)
	fmt.Printf("Monthly P&I: %s\n\n", payment.StringFixed(2))

	fmt.Println("Year,Balance,PrincipalPaid,InterestPaid")
	prev := p
	for y := 1; y <= *years; y++ {
		balance := calculation.RemainingBalance(p, r, y*12, calculation.MortgageTermYears)
		principalPaid := prev.Sub(balance)
		interestPaid := payment.Mul(decimal.NewFromInt(12)).Sub(principalPaid)
		if y > calculation.MortgageTermYears {
			interestPaid = decimal.Zero
		}
		fmt.Printf("%d,%s,%s,%s\n", y, balance.StringFixed(2), principalPaid.StringFixed(2), interestPaid.StringFixed(2))
		prev = balance
	}
}
