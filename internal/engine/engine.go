// Engine boundary consumed by the campaign driver
package engine

import (
	"time"

	"wifisweep/internal/topology"
)

// Handle identifies one built simulation run. Opaque to callers.
type Handle string

// FlowRecord carries the raw per-flow counters collected after a run.
// Records form an unordered set keyed by FlowID; callers must not rely on
// iteration order.
type FlowRecord struct {
	FlowID      string
	TxPackets   uint64
	RxPackets   uint64
	LostPackets uint64
	DelaySum    time.Duration
}

// Engine is the contract the campaign driver holds against the
// discrete-event simulation backend. Build prepares a run from a topology
// and traffic plan, Run advances simulated time to the stop instant and
// blocks until done, the two collectors expose final counters, and
// Destroy tears down all per-run state so consecutive scenarios share
// nothing.
type Engine interface {
	Build(spec topology.TopologySpec, plan topology.TrafficPlan) (Handle, error)
	Run(h Handle, stop float64) error
	ReceivedBytes(h Handle, endpoint string) (uint64, error)
	FlowRecords(h Handle) ([]FlowRecord, error)
	Destroy(h Handle) error
}
