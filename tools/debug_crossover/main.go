package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <scenario-file> [years]")
		return
	}
	p := config.NewInputParser()
	file, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	form := file.Scenario
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &form.Years); err != nil {
			panic(err)
		}
	}

	records, err := calc.Simulate(form.ToInputs(), form.Years)
	if err != nil {
		panic(err)
	}

	fmt.Println("Year,Buy,Rent,Gap,GapChange,BuyAhead")
	prevGap := decimal.Zero
	for i, r := range records {
		change := decimal.Zero
		if i > 0 {
			change = r.Gap().Sub(prevGap)
		}
		fmt.Printf("%d,%s,%s,%s,%s,%t\n", r.Year, r.BuyNetWorth.StringFixed(0), r.RentNetWorth.StringFixed(0),
			r.Gap().StringFixed(0), change.StringFixed(0), r.BuyAhead())
		prevGap = r.Gap()
	}

	if calc.BuyLeadsFromStart(records) {
		fmt.Println("\nBuying leads from year 0")
	}
	co := calc.FindCrossover(records)
	if co == nil {
		fmt.Println("\nCrossover: none")
		return
	}
	fmt.Printf("\nCrossover: year=%s between %d and %d (fraction %s, month %d) net worth=%s\n",
		co.Year.StringFixed(4), co.PrevYear, co.NextYear, co.Fraction.StringFixed(4), co.Month, co.NetWorth.StringFixed(2))
}
