package cmd

import (
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/rpgo/rent-vs-buy/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
	debug    bool

	settings config.Settings
	logger   *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rentvsbuy",
	Short: "Compare the long-run net worth of buying a home against renting and investing",
	Long: `rentvsbuy projects two households year by year: one buys a home with a mortgage,
the other rents and invests the down payment and closing costs along with any monthly savings.

It can:
  - simulate a scenario and render it as a console table, CSV, JSON or an HTML chart
  - find the crossover point where buying overtakes renting
  - solve for the monthly rent that makes both choices break even
  - save runs to a SQLite or PostgreSQL journal
  - serve the calculator over HTTP and websocket

Examples:
  rentvsbuy simulate --query "price=800000&rent=3500&years=15"
  rentvsbuy simulate scenario.yaml --format html --output-dir reports
  rentvsbuy breakeven scenario.yaml --years 10`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.LoadSettings(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			settings.Log.Level = logLevel
		}
		if debug {
			settings.Log.Level = "debug"
		}
		logger, err = logging.NewWithWriter(settings.Log, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("configure logging: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./rentvsbuy.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log the per-year calculation breakdown")
}
