// Reduction of raw flow counters into per-scenario metrics
package metrics

import (
	"time"

	"wifisweep/internal/engine"
	"wifisweep/internal/scenario"
)

// ScenarioResult is one row of the results table. Never mutated once
// produced; exactly one exists per scenario.
type ScenarioResult struct {
	DistanceM      float64 `json:"distance_m"`
	ThroughputMbps float64 `json:"throughput_mbps"`
	AvgDelayMs     float64 `json:"avg_delay_ms"`
	LossPercent    float64 `json:"packet_loss_percent"`
}

// Aggregate folds the engine's counters into scenario-level metrics.
// Pure: same inputs give the same result, and the record order is
// irrelevant since every reduction is a commutative sum.
//
// Zero totals are valid inputs, not errors: no received packets means an
// average delay of zero, and no transmitted packets means zero loss.
func Aggregate(receivedBytes uint64, records []engine.FlowRecord, sc scenario.Scenario) ScenarioResult {
	var (
		delaySum time.Duration
		rx, tx   uint64
		lost     uint64
	)
	for _, rec := range records {
		delaySum += rec.DelaySum
		rx += rec.RxPackets
		tx += rec.TxPackets
		lost += rec.LostPackets
	}

	res := ScenarioResult{
		DistanceM:      sc.DistanceM,
		ThroughputMbps: float64(receivedBytes) * 8 / (sc.Duration() * 1e6),
	}
	if rx > 0 {
		res.AvgDelayMs = delaySum.Seconds() / float64(rx) * 1000
	}
	if tx > 0 {
		res.LossPercent = 100 * float64(lost) / float64(tx)
	}
	return res
}
