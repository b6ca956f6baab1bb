package cmd

import (
	"errors"
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/calculation"
	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/spf13/cobra"
)

// scenarioFlags are shared by commands that take a scenario from a file or a query string
type scenarioFlags struct {
	query string
	years int
}

func (sf *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sf.query, "query", "q", "", "scenario as a query string, e.g. \"price=800000&rent=3500\"")
	cmd.Flags().IntVarP(&sf.years, "years", "y", config.DefaultYears, "projection horizon in years (overrides the scenario)")
}

// resolve builds the validated scenario form and its name from args and flags
func (sf *scenarioFlags) resolve(cmd *cobra.Command, args []string) (string, config.ScenarioForm, error) {
	parser := config.NewInputParser()

	var (
		name string
		form config.ScenarioForm
	)
	switch {
	case len(args) > 0 && sf.query != "":
		return "", form, errors.New("use either a scenario file or --query, not both")
	case len(args) > 0:
		file, err := parser.LoadFromFile(args[0])
		if err != nil {
			return "", form, fmt.Errorf("failed to load scenario: %w", err)
		}
		name, form = file.Name, file.Scenario
	case sf.query != "":
		decoded, err := config.ParseQuery(sf.query)
		if err != nil {
			return "", form, err
		}
		name, form = "Query", decoded
	default:
		name, form = "Default", config.DefaultForm()
	}

	if cmd.Flags().Changed("years") {
		form.Years = sf.years
	}
	if err := parser.ValidateForm(&form); err != nil {
		return "", form, err
	}
	return name, form, nil
}

// newEngine returns an engine logging through the CLI logger
func newEngine() *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	engine.Debug = debug
	return engine
}
