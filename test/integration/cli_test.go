package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/rpgo/rent-vs-buy/internal/journal"
	"github.com/rpgo/rent-vs-buy/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	file, err := config.NewInputParser().LoadFromFile(exampleScenario)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	result, err := engine.RunScenario(context.Background(), file.Name, file.Scenario.ToInputs(), file.Scenario.Years)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range []string{"console", "summary", "csv", "json", "html"} {
		paths, err := output.GenerateReport(result, format, dir)
		require.NoError(t, err, format)
		require.Len(t, paths, 1)

		data, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		assert.NotEmpty(t, data, format)
	}

	csvPaths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	require.NoError(t, err)
	require.Len(t, csvPaths, 1)
	data, err := os.ReadFile(csvPaths[0])
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), file.Scenario.Years+2)
}

func TestJournalReplay(t *testing.T) {
	ctx := context.Background()
	file, err := config.NewInputParser().LoadFromFile(exampleScenario)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	result, err := engine.RunScenario(ctx, file.Name, file.Scenario.ToInputs(), file.Scenario.Years)
	require.NoError(t, err)

	store, err := journal.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer store.Close()

	run := journal.NewRun(file.Scenario.QueryString(), result)
	require.NoError(t, store.SaveRun(ctx, run))

	saved, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)

	// Re-running the saved query reproduces the saved outcome
	form, err := config.ParseQuery(saved.Query)
	require.NoError(t, err)
	replayed, err := engine.RunScenario(ctx, saved.Name, form.ToInputs(), form.Years)
	require.NoError(t, err)

	assert.True(t, replayed.Summary.FinalBuyNetWorth.Equal(saved.FinalBuyNetWorth))
	assert.True(t, replayed.Summary.FinalRentNetWorth.Equal(saved.FinalRentNetWorth))
	require.NotNil(t, saved.CrossoverYear)
	assert.True(t, replayed.Crossover.Year.Equal(*saved.CrossoverYear))
}
