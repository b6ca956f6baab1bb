package cmd

import (
	"fmt"

	"github.com/rpgo/rent-vs-buy/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Create, check and convert scenario files",
	Long: `Manage scenario files.

Subcommands:
  init      - Write an example scenario file
  validate  - Check a scenario file
  url       - Print the query string of a scenario file
  decode    - Print a query string as a scenario file`,
}

var scenarioInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example scenario file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "scenario.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		if err := config.SaveScenario(config.NewInputParser().CreateExampleScenario(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var scenarioValidateCmd = &cobra.Command{
	Use:   "validate <scenario.yaml>",
	Short: "Check a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%s, %d years)\n", args[0], file.Name, file.Scenario.Years)
		return nil
	},
}

var scenarioURLCmd = &cobra.Command{
	Use:   "url <scenario.yaml>",
	Short: "Print the query string of a scenario file",
	Long: `Print the canonical query string of a scenario. Only the basic fields are carried;
maintenance, closing, selling and insurance always come from the defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), file.Scenario.QueryString())
		return nil
	},
}

var scenarioDecodeCmd = &cobra.Command{
	Use:   "decode <query>",
	Short: "Print a query string as a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := config.ParseQuery(args[0])
		if err != nil {
			return err
		}
		if err := config.NewInputParser().ValidateForm(&form); err != nil {
			return err
		}
		data, err := yaml.Marshal(config.ScenarioFile{Name: "Decoded", Scenario: form})
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
	scenarioCmd.AddCommand(scenarioInitCmd)
	scenarioCmd.AddCommand(scenarioValidateCmd)
	scenarioCmd.AddCommand(scenarioURLCmd)
	scenarioCmd.AddCommand(scenarioDecodeCmd)
}
