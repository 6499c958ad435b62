package main

import (
	"os"

	"github.com/spf13/cobra"

	"wifisweep/internal/campaign"
	"wifisweep/internal/config"
	"wifisweep/internal/engine"
	"wifisweep/internal/logging"
)

var (
	runCSVPath    string
	runVerbose    bool
	runConfigPath string
	runSchemaPath string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the distance sweep campaign",
	Long:  "run executes every configured scenario in order, appending one result row per distance to the CSV table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadCampaign(runConfigPath, runSchemaPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger := logging.New(runVerbose)

		resultSink, cleanup, err := newSinks(runCSVPath)
		if err != nil {
			return err
		}
		defer cleanup()

		driver := campaign.NewDriver(engine.NewEventEngine(0), resultSink, logger)
		completed, err := driver.Run(cfg.Scenarios())
		if err != nil {
			return err
		}
		logger.Info("campaign complete", "scenarios", completed, "csv", runCSVPath)
		return nil
	},
}

// loadCampaign reads the campaign file, falling back to the built-in
// default study when none exists at the given path.
func loadCampaign(configPath, schemaPath string) (*config.CampaignConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(configPath, schemaPath)
}

func init() {
	runCmd.Flags().StringVar(&runCSVPath, "csv", "results.csv", "Output CSV filepath")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Log per-scenario result lines")
	runCmd.Flags().StringVar(&runConfigPath, "config", "config/campaign.yaml", "Path to campaign configuration YAML")
	runCmd.Flags().StringVar(&runSchemaPath, "schema", "schemas/campaign.cue", "Path to CUE schema file")
}
