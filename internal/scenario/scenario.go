// Scenario values describing one point of the distance sweep
package scenario

import "fmt"

// Scenario is one experiment point: a cluster of stations at a fixed
// distance from the access point, uploading for a fixed window of
// simulated time. Values are never mutated after construction.
type Scenario struct {
	DistanceM    float64
	StationCount int
	AppStart     float64
	AppStop      float64
	SimStop      float64
}

// Validate checks the scenario invariants. A violation indicates a defect
// in the campaign input, not a runtime condition, so callers abort rather
// than skip.
func (s Scenario) Validate() error {
	if s.DistanceM < 0 {
		return fmt.Errorf("distance must be non-negative, got %.2f", s.DistanceM)
	}
	if s.StationCount < 0 {
		return fmt.Errorf("station count must be non-negative, got %d", s.StationCount)
	}
	if s.AppStart < 0 {
		return fmt.Errorf("app start must be non-negative, got %.2f", s.AppStart)
	}
	if s.AppStart >= s.AppStop {
		return fmt.Errorf("app start %.2f must precede app stop %.2f", s.AppStart, s.AppStop)
	}
	if s.AppStop > s.SimStop {
		return fmt.Errorf("app stop %.2f exceeds simulation stop %.2f", s.AppStop, s.SimStop)
	}
	return nil
}

// Duration returns the length of the measured traffic window in seconds.
func (s Scenario) Duration() float64 {
	return s.AppStop - s.AppStart
}

// Sweep expands an ordered list of distances into scenarios sharing the
// same station count and timing. Order is preserved; results are written
// in the same order later.
func Sweep(distances []float64, stations int, appStart, appStop, simStop float64) []Scenario {
	out := make([]Scenario, 0, len(distances))
	for _, d := range distances {
		out = append(out, Scenario{
			DistanceM:    d,
			StationCount: stations,
			AppStart:     appStart,
			AppStop:      appStop,
			SimStop:      simStop,
		})
	}
	return out
}
