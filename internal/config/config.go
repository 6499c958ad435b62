// YAML campaign loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wifisweep/internal/scenario"
)

// defaultStationCount matches the original study: three stations per
// distance point.
const defaultStationCount = 3

// CampaignConfig is the root configuration: the distance sweep plus the
// shared station count and timing window. station_count is a pointer so
// an explicit zero (a documented degenerate case) is distinguishable
// from the field being omitted.
type CampaignConfig struct {
	Distances    []float64 `yaml:"distances"`
	StationCount *int      `yaml:"station_count"`
	AppStart     float64   `yaml:"app_start"`
	AppStop      float64   `yaml:"app_stop"`
	SimStop      float64   `yaml:"sim_stop"`
}

// Default returns the built-in campaign mirroring the original study:
// five distances, three stations, traffic from 1 s to 10 s, simulation
// until 12 s.
func Default() *CampaignConfig {
	stations := defaultStationCount
	return &CampaignConfig{
		Distances:    []float64{5, 10, 20, 35, 50},
		StationCount: &stations,
		AppStart:     1,
		AppStop:      10,
		SimStop:      12,
	}
}

// Load reads a YAML campaign file, validating it against the CUE schema
// first when the schema file exists.
func Load(configPath, cueSchemaPath string) (*CampaignConfig, error) {
	if cueSchemaPath != "" {
		if _, err := os.Stat(cueSchemaPath); err == nil {
			if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
				return nil, err
			}
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	var cfg CampaignConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse campaign config: %w", err)
	}
	return &cfg, nil
}

// Stations returns the configured station count, defaulting to three
// when the field was omitted.
func (c *CampaignConfig) Stations() int {
	if c.StationCount == nil {
		return defaultStationCount
	}
	return *c.StationCount
}

// Validate checks the campaign-level invariants by validating each
// derived scenario. Any violation is a campaign input defect.
func (c *CampaignConfig) Validate() error {
	for _, sc := range c.Scenarios() {
		if err := sc.Validate(); err != nil {
			return fmt.Errorf("campaign config: %w", err)
		}
	}
	return nil
}

// Scenarios expands the configuration into the ordered scenario list.
func (c *CampaignConfig) Scenarios() []scenario.Scenario {
	return scenario.Sweep(c.Distances, c.Stations(), c.AppStart, c.AppStop, c.SimStop)
}
