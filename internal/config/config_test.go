package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const schema = `
distances: [...number & >=0]
station_count?: int & >=0
app_start: number & >=0
app_stop:  number & >0
sim_stop:  number & >0
`

func TestLoadValid(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "campaign.yaml", `
distances: [5, 10, 20]
station_count: 4
app_start: 1.0
app_stop: 10.0
sim_stop: 12.0
`)
	schemaPath := writeFile(t, dir, "campaign.cue", schema)

	cfg, err := Load(cfgPath, schemaPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Distances) != 3 || cfg.Distances[0] != 5 {
		t.Errorf("unexpected distances: %v", cfg.Distances)
	}
	if cfg.Stations() != 4 {
		t.Errorf("stations %d, want 4", cfg.Stations())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadDefaultsStationCount(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "campaign.yaml", `
distances: [5]
app_start: 1.0
app_stop: 10.0
sim_stop: 12.0
`)
	cfg, err := Load(cfgPath, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Stations() != 3 {
		t.Errorf("stations %d, want default 3", cfg.Stations())
	}
}

func TestLoadExplicitZeroStations(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "campaign.yaml", `
distances: [5]
station_count: 0
app_start: 1.0
app_stop: 10.0
sim_stop: 12.0
`)
	cfg, err := Load(cfgPath, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Stations() != 0 {
		t.Errorf("stations %d, want explicit 0", cfg.Stations())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero stations is a valid campaign: %v", err)
	}
}

func TestLoadSchemaRejection(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "campaign.yaml", `
distances: [-5]
app_start: 1.0
app_stop: 10.0
sim_stop: 12.0
`)
	schemaPath := writeFile(t, dir, "campaign.cue", schema)
	if _, err := Load(cfgPath, schemaPath); err == nil {
		t.Fatal("expected schema rejection for a negative distance")
	}
}

func TestValidateRejectsBadTiming(t *testing.T) {
	stations := 3
	cfg := &CampaignConfig{
		Distances:    []float64{5},
		StationCount: &stations,
		AppStart:     10,
		AppStop:      10,
		SimStop:      12,
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for app_start == app_stop")
	}
}

func TestDefaultMatchesOriginalStudy(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default campaign invalid: %v", err)
	}
	scenarios := cfg.Scenarios()
	if len(scenarios) != 5 {
		t.Fatalf("expected 5 scenarios, got %d", len(scenarios))
	}
	want := []float64{5, 10, 20, 35, 50}
	for i, sc := range scenarios {
		if sc.DistanceM != want[i] {
			t.Errorf("scenario %d distance %.1f, want %.1f", i, sc.DistanceM, want[i])
		}
		if sc.StationCount != 3 || sc.AppStart != 1 || sc.AppStop != 10 || sc.SimStop != 12 {
			t.Errorf("scenario %d parameters off: %+v", i, sc)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Fatal("expected error for a missing config file")
	}
}
