package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/rpgo/rent-vs-buy/internal/journal"
	"github.com/rpgo/rent-vs-buy/internal/output"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse runs saved in the journal",
	Long: `Query runs saved with "simulate --save" or POST /api/runs.

Subcommands:
  list           - List the most recent runs
  show <id>      - Print one run
  replay <id>    - Re-run a saved scenario and render it

The journal backend comes from the settings (journal.driver, journal.dsn).`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyReplayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a saved scenario and render it",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryReplay,
}

var (
	historyLimit  int
	historyFormat string
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyReplayCmd)

	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", journal.DefaultListLimit, "maximum number of runs")
	historyReplayCmd.Flags().StringVarP(&historyFormat, "format", "f", "summary", "output format or alias")
}

func openJournal(cmd *cobra.Command) (journal.Store, error) {
	store, err := journal.Open(cmd.Context(), settings.Journal.Driver, settings.Journal.DSN, journal.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return store, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openJournal(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCREATED\tYEARS\tVERDICT\tCROSSOVER\tBUY\tRENT")
	for _, r := range runs {
		crossover := "-"
		if r.CrossoverYear != nil {
			crossover = output.FormatYear(*r.CrossoverYear)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.Name, r.CreatedAt.Format("2006-01-02 15:04"), r.Years, r.Verdict, crossover,
			output.FormatWholeCurrency(r.FinalBuyNetWorth), output.FormatWholeCurrency(r.FinalRentNetWorth))
	}
	return w.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openJournal(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", run.ID)
	fmt.Fprintf(out, "Name:      %s\n", run.Name)
	fmt.Fprintf(out, "Created:   %s\n", run.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Query:     %s\n", run.Query)
	fmt.Fprintf(out, "Years:     %d\n", run.Years)
	fmt.Fprintf(out, "Verdict:   %s\n", run.Verdict)
	if run.CrossoverYear != nil {
		fmt.Fprintf(out, "Crossover: year %s\n", output.FormatYear(*run.CrossoverYear))
	} else {
		fmt.Fprintln(out, "Crossover: none")
	}
	fmt.Fprintf(out, "Buy:       %s\n", output.FormatCurrency(run.FinalBuyNetWorth))
	fmt.Fprintf(out, "Rent:      %s\n", output.FormatCurrency(run.FinalRentNetWorth))
	return nil
}

func runHistoryReplay(cmd *cobra.Command, args []string) error {
	store, err := openJournal(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	form, err := config.ParseQuery(run.Query)
	if err != nil {
		return fmt.Errorf("decode saved scenario: %w", err)
	}

	result, err := newEngine().RunScenario(cmd.Context(), run.Name, form.ToInputs(), form.Years)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	formatter, err := output.Lookup(historyFormat)
	if err != nil {
		return err
	}
	data, err := formatter.Format(result)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
