package sink

import "wifisweep/internal/metrics"

// MultiSink fans every row out to all wrapped sinks. The first append
// error aborts the fan-out, matching the campaign's fail-fast policy.
type MultiSink struct {
	sinks []ResultSink
}

// NewMultiSink wraps the given sinks.
func NewMultiSink(sinks ...ResultSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Append writes the row to every sink in order.
func (m *MultiSink) Append(res metrics.ScenarioResult) error {
	for _, s := range m.sinks {
		if err := s.Append(res); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink, returning the first error seen.
func (m *MultiSink) Close() error {
	var err error
	for _, s := range m.sinks {
		if e := s.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
