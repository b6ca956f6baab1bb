package cmd

import (
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/output"
	"github.com/spf13/cobra"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven [scenario.yaml]",
	Short: "Find the monthly rent at which buying and renting end even",
	Long: `Breakeven searches for the starting monthly rent that leaves both households with the
same net worth at the end of the horizon. Paying more rent than this favors buying.

Example:
  rentvsbuy breakeven --query "price=500000&rate=6" --years 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBreakEven,
}

var beScenario scenarioFlags

func init() {
	rootCmd.AddCommand(breakevenCmd)
	beScenario.register(breakevenCmd)
}

func runBreakEven(cmd *cobra.Command, args []string) error {
	name, form, err := beScenario.resolve(cmd, args)
	if err != nil {
		return err
	}

	result, err := newEngine().CalculateBreakEvenRent(cmd.Context(), form.ToInputs(), form.Years)
	if err != nil {
		return fmt.Errorf("break-even for %s: %w", name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scenario:            %s\n", name)
	fmt.Fprintf(out, "Horizon:             %d years\n", result.Years)
	fmt.Fprintf(out, "Break-even rent:     %s/month\n", output.FormatCurrency(result.MonthlyRent))
	fmt.Fprintf(out, "Current rent:        %s/month\n", output.FormatCurrency(result.CurrentRent))
	fmt.Fprintf(out, "Final net worth:     %s (buy) vs %s (rent)\n",
		output.FormatCurrency(result.FinalBuyNetWorth), output.FormatCurrency(result.FinalRentNetWorth))

	switch {
	case result.CurrentRent.GreaterThan(result.MonthlyRent):
		fmt.Fprintln(out, "Current rent is above break-even: buying comes out ahead.")
	case result.CurrentRent.LessThan(result.MonthlyRent):
		fmt.Fprintln(out, "Current rent is below break-even: renting comes out ahead.")
	default:
		fmt.Fprintln(out, "Current rent is at break-even.")
	}
	if !result.Converged {
		logger.Warnf("break-even search stopped after %d iterations without converging", result.Iterations)
	}
	return nil
}
