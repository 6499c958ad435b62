package scenario

import "testing"

func TestValidate(t *testing.T) {
	base := Scenario{DistanceM: 10, StationCount: 3, AppStart: 1, AppStop: 10, SimStop: 12}

	cases := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Scenario) {}, wantErr: false},
		{name: "zero distance allowed", mutate: func(s *Scenario) { s.DistanceM = 0 }, wantErr: false},
		{name: "zero stations allowed", mutate: func(s *Scenario) { s.StationCount = 0 }, wantErr: false},
		{name: "app stop equals sim stop", mutate: func(s *Scenario) { s.SimStop = s.AppStop }, wantErr: false},
		{name: "negative distance", mutate: func(s *Scenario) { s.DistanceM = -1 }, wantErr: true},
		{name: "negative stations", mutate: func(s *Scenario) { s.StationCount = -1 }, wantErr: true},
		{name: "start after stop", mutate: func(s *Scenario) { s.AppStart = 11 }, wantErr: true},
		{name: "start equals stop", mutate: func(s *Scenario) { s.AppStart = s.AppStop }, wantErr: true},
		{name: "app stop past sim stop", mutate: func(s *Scenario) { s.AppStop = 13 }, wantErr: true},
		{name: "negative start", mutate: func(s *Scenario) { s.AppStart = -0.5 }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %+v", s)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSweepPreservesOrder(t *testing.T) {
	distances := []float64{5, 10, 20, 35, 50}
	scenarios := Sweep(distances, 3, 1, 10, 12)
	if len(scenarios) != len(distances) {
		t.Fatalf("expected %d scenarios, got %d", len(distances), len(scenarios))
	}
	for i, s := range scenarios {
		if s.DistanceM != distances[i] {
			t.Errorf("scenario %d: expected distance %.1f, got %.1f", i, distances[i], s.DistanceM)
		}
		if s.StationCount != 3 || s.AppStart != 1 || s.AppStop != 10 || s.SimStop != 12 {
			t.Errorf("scenario %d carries wrong shared parameters: %+v", i, s)
		}
	}
}

func TestDuration(t *testing.T) {
	s := Scenario{AppStart: 1, AppStop: 10}
	if got := s.Duration(); got != 9 {
		t.Fatalf("expected duration 9, got %.2f", got)
	}
}
