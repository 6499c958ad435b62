// Topology and traffic derivation for one scenario
package topology

import (
	"fmt"

	"wifisweep/internal/scenario"
)

// Position is a point in the simulated coordinate space, meters.
type Position struct {
	X float64
	Y float64
	Z float64
}

// Node is one simulated device with an assigned interface address.
type Node struct {
	ID       string
	Address  string
	Position Position
}

// TopologySpec describes the node layout for one engine run: a single
// access point and a cluster of stations at the scenario distance.
type TopologySpec struct {
	AccessPoint Node
	Stations    []Node
}

// Flow is one bulk upload from a station to the access point sink.
// MaxBytes 0 means unlimited, matching a saturating TCP sender.
type Flow struct {
	ID       string
	Source   string
	Endpoint string
	SendSize int
	MaxBytes uint64
	Start    float64
	Stop     float64
}

// TrafficPlan holds the sink endpoint on the access point plus one upload
// flow per station. Empty for a zero-station scenario.
type TrafficPlan struct {
	SinkEndpoint string
	Flows        []Flow
}

const (
	sinkPort = 5000
	sendSize = 1448

	// lateralSpacingM separates stations on the Y axis so no two ever
	// share a position, including at distance zero.
	lateralSpacingM = 3.0

	// startStaggerS offsets each station's flow start so connection
	// establishment is not perfectly synchronized.
	startStaggerS = 0.1
)

// Build derives the node layout and traffic plan for one scenario. The
// access point sits at the origin; stations line up at the scenario
// distance with alternating lateral offsets (0, +3, -3, +6, -6, ...).
// Addresses come from a single /24, assigned sequentially with the access
// point first, so uniqueness holds by construction.
func Build(sc scenario.Scenario) (TopologySpec, TrafficPlan) {
	ap := Node{
		ID:       "ap-0",
		Address:  hostAddress(1),
		Position: Position{},
	}

	stations := make([]Node, 0, sc.StationCount)
	for i := 0; i < sc.StationCount; i++ {
		stations = append(stations, Node{
			ID:       fmt.Sprintf("sta-%d", i),
			Address:  hostAddress(i + 2),
			Position: Position{X: sc.DistanceM, Y: lateralOffset(i)},
		})
	}

	spec := TopologySpec{AccessPoint: ap, Stations: stations}

	plan := TrafficPlan{SinkEndpoint: fmt.Sprintf("%s:%d", ap.Address, sinkPort)}
	for i, sta := range stations {
		plan.Flows = append(plan.Flows, Flow{
			ID:       fmt.Sprintf("%s->%s", sta.ID, ap.ID),
			Source:   sta.Address,
			Endpoint: plan.SinkEndpoint,
			SendSize: sendSize,
			MaxBytes: 0,
			Start:    sc.AppStart + startStaggerS*float64(i),
			Stop:     sc.AppStop,
		})
	}

	return spec, plan
}

// lateralOffset maps a station index onto the offset sequence
// 0, +3, -3, +6, -6, ... so stations never co-locate.
func lateralOffset(i int) float64 {
	if i == 0 {
		return 0
	}
	step := float64((i + 1) / 2)
	if i%2 == 1 {
		return lateralSpacingM * step
	}
	return -lateralSpacingM * step
}

func hostAddress(host int) string {
	return fmt.Sprintf("10.1.1.%d", host)
}
