package calculation

import (
	"testing"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/shopspring/decimal"
)

func makeRecord(year int, buy, rent float64) domain.YearlyRecord {
	return domain.YearlyRecord{
		Year:         year,
		BuyNetWorth:  decimal.NewFromFloat(buy),
		RentNetWorth: decimal.NewFromFloat(rent),
	}
}

// Test interpolation between two simulated years
func TestFindCrossover_Interpolation(t *testing.T) {
	records := []domain.YearlyRecord{
		makeRecord(0, 100, 200),
		makeRecord(1, 180, 220),
		makeRecord(2, 260, 240),
	}

	res := FindCrossover(records)
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if res.PrevYear != 1 || res.NextYear != 2 {
		t.Fatalf("expected bracket 1..2, got %d..%d", res.PrevYear, res.NextYear)
	}
	// gap 40 closes at 60 per year -> 2/3 of the way
	if diff := res.Year.Sub(decimal.NewFromFloat(1.6667)).Abs(); diff.GreaterThan(decimal.NewFromFloat(0.0001)) {
		t.Fatalf("expected year ~1.6667, got %s", res.Year.StringFixed(6))
	}
	if res.Month != 9 {
		t.Fatalf("expected month 9, got %d", res.Month)
	}
	if !res.NetWorth.Equal(decimal.NewFromFloat(233.33)) {
		t.Fatalf("expected net worth 233.33, got %s", res.NetWorth)
	}
}

func TestFindCrossover_MonthWithinYear(t *testing.T) {
	cases := []struct {
		name  string
		gap   float64 // rent lead at year 4; buy gains 1000 on rent over year 5
		month int
	}{
		{"early", 100, 2},
		{"mid", 556, 7},
		{"late", 980, 12},
		{"first twelfth", 50, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := []domain.YearlyRecord{
				makeRecord(4, 0, tc.gap),
				makeRecord(5, 1000, tc.gap),
			}
			res := FindCrossover(records)
			if res == nil {
				t.Fatalf("expected crossover, got nil")
			}
			if res.Month != tc.month {
				t.Fatalf("fraction %s: expected month %d, got %d", res.Fraction, tc.month, res.Month)
			}
			if res.Month < 1 || res.Month > 12 {
				t.Fatalf("month %d out of range", res.Month)
			}
		})
	}
}

// Test exact tie at a simulated year followed by buy pulling ahead
func TestFindCrossover_TieThenAhead(t *testing.T) {
	records := []domain.YearlyRecord{
		makeRecord(0, 50, 100),
		makeRecord(1, 150, 150),
		makeRecord(2, 250, 200),
	}

	res := FindCrossover(records)
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if !res.Year.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected crossover at exactly year 1, got %s", res.Year)
	}
	if res.Month != 1 {
		t.Fatalf("expected month clamped to 1, got %d", res.Month)
	}
}

func TestFindCrossover_NoneWhenRentAlwaysAhead(t *testing.T) {
	records, err := Simulate(baseInputs(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res := FindCrossover(records); res != nil {
		t.Fatalf("expected no crossover, got year %s", res.Year)
	}
	if BuyLeadsFromStart(records) {
		t.Fatalf("renting should lead at year 0")
	}
}

func TestFindCrossover_NoneWhenBuyLeadsFromStart(t *testing.T) {
	records := []domain.YearlyRecord{
		makeRecord(0, 300, 200),
		makeRecord(1, 320, 210),
		makeRecord(2, 350, 230),
	}

	if res := FindCrossover(records); res != nil {
		t.Fatalf("expected no crossover, got year %s", res.Year)
	}
	if !BuyLeadsFromStart(records) {
		t.Fatalf("expected buy to lead from start")
	}
}

// Only the first buy-overtakes-rent transition is reported
func TestFindCrossover_FirstTransitionOnly(t *testing.T) {
	records := []domain.YearlyRecord{
		makeRecord(0, 100, 200),
		makeRecord(1, 250, 200),
		makeRecord(2, 180, 220),
		makeRecord(3, 300, 240),
	}

	res := FindCrossover(records)
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if res.PrevYear != 0 || res.NextYear != 1 {
		t.Fatalf("expected first crossing in 0..1, got %d..%d", res.PrevYear, res.NextYear)
	}
}

func TestFindCrossover_SimulatedScenario(t *testing.T) {
	records, err := Simulate(crossoverInputs(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res := FindCrossover(records)
	if res == nil {
		t.Fatalf("expected crossover, got nil")
	}
	if res.PrevYear != 3 || res.NextYear != 4 {
		t.Fatalf("expected bracket 3..4, got %d..%d", res.PrevYear, res.NextYear)
	}
	if diff := res.Year.Sub(decimal.NewFromFloat(3.5586)).Abs(); diff.GreaterThan(decimal.NewFromFloat(0.01)) {
		t.Fatalf("expected year ~3.56, got %s", res.Year.StringFixed(4))
	}
}

func TestFindCrossover_ShortInputs(t *testing.T) {
	if FindCrossover(nil) != nil {
		t.Fatalf("expected nil for no records")
	}
	if FindCrossover([]domain.YearlyRecord{makeRecord(0, 1, 2)}) != nil {
		t.Fatalf("expected nil for a single record")
	}
	if BuyLeadsFromStart(nil) {
		t.Fatalf("expected false for no records")
	}
}
