package cmd

import (
	"fmt"
	"os"

	"github.com/rpgo/rent-vs-buy/internal/journal"
	"github.com/rpgo/rent-vs-buy/internal/output"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario.yaml]",
	Short: "Project buy and rent net worth year by year",
	Long: `Simulate runs the projection for a scenario file, a query string or the defaults.

Formats: console, summary, csv, json, html (and "all" together with --output-dir).

Examples:
  rentvsbuy simulate
  rentvsbuy simulate scenario.yaml --format csv --output scenario.csv
  rentvsbuy simulate --query "price=600000&down=10&rent=2800" --years 10 --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

var (
	simScenario  scenarioFlags
	simFormat    string
	simOutput    string
	simOutputDir string
	simSave      bool
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simScenario.register(simulateCmd)
	simulateCmd.Flags().StringVarP(&simFormat, "format", "f", "console", "output format or alias")
	simulateCmd.Flags().StringVarP(&simOutput, "output", "o", "", "write the report to this file instead of stdout")
	simulateCmd.Flags().StringVar(&simOutputDir, "output-dir", "", "write timestamped report files to this directory")
	simulateCmd.Flags().BoolVar(&simSave, "save", false, "save the run to the journal")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	name, form, err := simScenario.resolve(cmd, args)
	if err != nil {
		return err
	}

	result, err := newEngine().RunScenario(cmd.Context(), name, form.ToInputs(), form.Years)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if simSave {
		store, err := journal.Open(cmd.Context(), settings.Journal.Driver, settings.Journal.DSN, journal.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer store.Close()

		run := journal.NewRun(form.QueryString(), result)
		if err := store.SaveRun(cmd.Context(), run); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		logger.WithField("id", run.ID).Info("run saved")
	}

	if simOutputDir != "" {
		paths, err := output.GenerateReport(result, simFormat, simOutputDir)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
		}
		return nil
	}

	formatter, err := output.Lookup(simFormat)
	if err != nil {
		return err
	}
	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("format %s: %w", formatter.Name(), err)
	}

	if simOutput != "" {
		if err := os.WriteFile(simOutput, data, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", simOutput)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
