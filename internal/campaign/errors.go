package campaign

import "fmt"

// ConfigurationError marks an invalid scenario definition. Detected
// before any engine call; indicates a defect in the campaign input, so
// the whole campaign aborts.
type ConfigurationError struct {
	DistanceM float64
	Err       error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid scenario at distance %.2f m: %v", e.DistanceM, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// EngineFailure marks a simulation engine fault during build, run,
// collect, or teardown. Simulated state is not resumable mid-run, so
// there are no retries; the campaign aborts.
type EngineFailure struct {
	DistanceM float64
	Op        string
	Err       error
}

func (e *EngineFailure) Error() string {
	return fmt.Sprintf("engine %s failed at distance %.2f m: %v", e.Op, e.DistanceM, e.Err)
}

func (e *EngineFailure) Unwrap() error { return e.Err }

// PersistenceError marks a result sink fault. Rows written before the
// fault remain intact; no partial row is ever produced.
type PersistenceError struct {
	DistanceM float64
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting result at distance %.2f m: %v", e.DistanceM, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
