package integration

import (
	"context"
	"testing"

	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleScenario = "../testdata/example_scenario.yaml"

func TestEndToEndCalculation(t *testing.T) {
	// Load a scenario file and run it through the engine
	parser := config.NewInputParser()
	file, err := parser.LoadFromFile(exampleScenario)
	require.NoError(t, err)
	assert.Equal(t, "Suburban Three Bedroom", file.Name)

	engine := calculation.NewCalculationEngine()
	result, err := engine.RunScenario(context.Background(), file.Name, file.Scenario.ToInputs(), file.Scenario.Years)
	require.NoError(t, err)

	assert.Len(t, result.Records, 11)
	assert.Equal(t, domain.VerdictBuy, result.Summary.Verdict)
	assert.True(t, result.Summary.Advantage.IsPositive())

	require.NotNil(t, result.Crossover)
	assert.Equal(t, 3, result.Crossover.PrevYear)
	assert.Equal(t, 4, result.Crossover.NextYear)
	assert.InDelta(t, 3.5586, result.Crossover.Year.InexactFloat64(), 0.001)
	assert.False(t, result.BuyLeadsFromStart)
}

func TestBreakEvenAgreesWithVerdict(t *testing.T) {
	file, err := config.NewInputParser().LoadFromFile(exampleScenario)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	be, err := engine.CalculateBreakEvenRent(context.Background(), file.Scenario.ToInputs(), file.Scenario.Years)
	require.NoError(t, err)

	// Renting at the break-even rent leaves both households even
	assert.InDelta(t, 2399.55, be.MonthlyRent.InexactFloat64(), 1.0)
	assert.True(t, be.CurrentRent.GreaterThan(be.MonthlyRent), "paying 3200 rent should favor buying")

	atBreakEven := file.Scenario
	atBreakEven.MonthlyRent = be.MonthlyRent
	result, err := engine.RunScenario(context.Background(), "at break-even", atBreakEven.ToInputs(), atBreakEven.Years)
	require.NoError(t, err)
	assert.InDelta(t, 0, result.Summary.Advantage.InexactFloat64(), 500)
}

func TestScenarioValidation(t *testing.T) {
	parser := config.NewInputParser()

	file, err := parser.LoadFromFile(exampleScenario)
	require.NoError(t, err)
	require.NoError(t, parser.ValidateForm(&file.Scenario))

	// The query string carries the scenario (advanced fields keep defaults here too)
	decoded, err := config.ParseQuery(file.Scenario.QueryString())
	require.NoError(t, err)
	assert.Equal(t, file.Scenario.QueryString(), decoded.QueryString())
}
