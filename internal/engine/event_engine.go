package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"wifisweep/internal/topology"

	"github.com/google/uuid"
)

// Radio model constants. The link degrades with distance following a
// log-distance shape: near the reference distance stations see close to
// the nominal 802.11a rate, far out the effective rate and delivery
// probability both collapse.
const (
	nominalRateBps   = 54e6
	referenceDistM   = 25.0
	pathLossExp      = 3.2
	baseLossProb     = 0.002
	lossKneeDistM    = 120.0
	jitterMu         = -6.0
	jitterSigma      = 0.5
	propagationSPerM = 3.34e-9
)

type event struct {
	time   float64
	action func()
}

// flowState tracks one upload flow and its reverse acknowledgement
// traffic during a run.
type flowState struct {
	flow     topology.Flow
	distance float64

	tx   uint64
	rx   uint64
	lost uint64
	// delay sums kept in seconds while the event loop runs, converted
	// to time.Duration at collection time
	delaySum    float64
	ackPackets  uint64
	ackDelaySum float64
}

// run is the full mutable state of one built scenario. Destroy drops the
// whole struct, so nothing can leak into the next run.
type run struct {
	spec topology.TopologySpec
	plan topology.TrafficPlan

	now      float64
	events   []event
	rng      *rand.Rand
	flows    []*flowState
	received map[string]uint64
	ran      bool
}

// EventEngine is a self-contained discrete-event backend implementing the
// Engine contract. Each Build creates an isolated run with its own event
// queue, counters, and RNG stream; handles are random UUIDs. A zero Seed
// gives a fixed default stream, so repeated campaigns reproduce.
type EventEngine struct {
	Seed int64

	built int64
	runs  map[Handle]*run
}

// NewEventEngine returns an engine with no active runs.
func NewEventEngine(seed int64) *EventEngine {
	return &EventEngine{Seed: seed, runs: make(map[Handle]*run)}
}

// Build validates the plan against the topology and registers a new run.
func (e *EventEngine) Build(spec topology.TopologySpec, plan topology.TrafficPlan) (Handle, error) {
	byAddr := make(map[string]topology.Node, len(spec.Stations))
	for _, sta := range spec.Stations {
		byAddr[sta.Address] = sta
	}

	r := &run{
		spec:     spec,
		plan:     plan,
		rng:      rand.New(rand.NewSource(e.Seed + e.built)),
		received: make(map[string]uint64),
	}
	for _, f := range plan.Flows {
		if f.Endpoint != plan.SinkEndpoint {
			return "", fmt.Errorf("flow %s targets unknown endpoint %s", f.ID, f.Endpoint)
		}
		sta, ok := byAddr[f.Source]
		if !ok {
			return "", fmt.Errorf("flow %s originates from unknown address %s", f.ID, f.Source)
		}
		if f.SendSize <= 0 {
			return "", fmt.Errorf("flow %s has invalid send size %d", f.ID, f.SendSize)
		}
		r.flows = append(r.flows, &flowState{
			flow:     f,
			distance: distanceTo(sta.Position, spec.AccessPoint.Position),
		})
	}

	h := Handle(uuid.New().String())
	e.runs[h] = r
	e.built++
	return h, nil
}

// Run drains the event queue until simulated time reaches stop. Blocking
// and single-threaded; returns only when the run is complete.
func (e *EventEngine) Run(h Handle, stop float64) error {
	r, err := e.lookup(h)
	if err != nil {
		return err
	}
	if r.ran {
		return fmt.Errorf("handle %s already ran; engine state is not resumable", h)
	}
	r.ran = true

	for _, fs := range r.flows {
		fs := fs
		r.schedule(fs.flow.Start, func() { r.transmit(fs) })
	}

	for len(r.events) > 0 {
		ev := r.events[0]
		if ev.time > stop {
			break
		}
		r.events = r.events[1:]
		r.now = ev.time
		ev.action()
	}
	r.events = nil
	return nil
}

// ReceivedBytes reports the application bytes delivered to an endpoint.
func (e *EventEngine) ReceivedBytes(h Handle, endpoint string) (uint64, error) {
	r, err := e.lookup(h)
	if err != nil {
		return 0, err
	}
	if !r.ran {
		return 0, fmt.Errorf("handle %s has not run yet", h)
	}
	return r.received[endpoint], nil
}

// FlowRecords returns counters for every tracked flow: one record per
// upload plus one per reverse acknowledgement stream.
func (e *EventEngine) FlowRecords(h Handle) ([]FlowRecord, error) {
	r, err := e.lookup(h)
	if err != nil {
		return nil, err
	}
	if !r.ran {
		return nil, fmt.Errorf("handle %s has not run yet", h)
	}
	records := make([]FlowRecord, 0, 2*len(r.flows))
	for _, fs := range r.flows {
		records = append(records, FlowRecord{
			FlowID:      fs.flow.ID,
			TxPackets:   fs.tx,
			RxPackets:   fs.rx,
			LostPackets: fs.lost,
			DelaySum:    secondsToDuration(fs.delaySum),
		})
		if fs.ackPackets > 0 {
			records = append(records, FlowRecord{
				FlowID:      fs.flow.ID + ":ack",
				TxPackets:   fs.ackPackets,
				RxPackets:   fs.ackPackets,
				LostPackets: 0,
				DelaySum:    secondsToDuration(fs.ackDelaySum),
			})
		}
	}
	return records, nil
}

// Destroy releases all state held for the handle.
func (e *EventEngine) Destroy(h Handle) error {
	if _, err := e.lookup(h); err != nil {
		return err
	}
	delete(e.runs, h)
	return nil
}

// ActiveRuns reports how many built runs have not been destroyed.
func (e *EventEngine) ActiveRuns() int {
	return len(e.runs)
}

func (e *EventEngine) lookup(h Handle) (*run, error) {
	r, ok := e.runs[h]
	if !ok {
		return nil, fmt.Errorf("unknown engine handle %s", h)
	}
	return r, nil
}

// schedule inserts an event keeping the queue ordered by simulated time.
func (r *run) schedule(at float64, action func()) {
	if at < r.now {
		return
	}
	i := sort.Search(len(r.events), func(i int) bool { return r.events[i].time > at })
	r.events = append(r.events, event{})
	copy(r.events[i+1:], r.events[i:])
	r.events[i] = event{time: at, action: action}
}

// transmit sends one segment on the flow and schedules the next attempt.
// The channel is shared: the effective per-flow rate is the distance-
// degraded link rate split across flows active at this instant.
func (r *run) transmit(fs *flowState) {
	if r.now >= fs.flow.Stop {
		return
	}

	active := r.activeFlows()
	perFlowRate := linkRateBps(fs.distance) / float64(active)
	airtime := float64(fs.flow.SendSize*8) / perFlowRate

	fs.tx++
	if r.rng.Float64() < lossProb(fs.distance) {
		fs.lost++
	} else {
		fs.rx++
		r.received[fs.flow.Endpoint] += uint64(fs.flow.SendSize)
		delay := airtime + fs.distance*propagationSPerM + r.jitter()
		fs.delaySum += delay
		fs.ackPackets++
		fs.ackDelaySum += fs.distance*propagationSPerM + r.jitter()/4
	}

	r.schedule(r.now+airtime, func() { r.transmit(fs) })
}

func (r *run) activeFlows() int {
	n := 0
	for _, fs := range r.flows {
		if fs.flow.Start <= r.now && r.now < fs.flow.Stop {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

// jitter samples contention delay from a log-normal with a few-ms median.
func (r *run) jitter() float64 {
	return math.Exp(jitterMu + jitterSigma*r.rng.NormFloat64())
}

func linkRateBps(distance float64) float64 {
	return nominalRateBps / (1 + math.Pow(distance/referenceDistM, pathLossExp))
}

func lossProb(distance float64) float64 {
	p := baseLossProb + math.Pow(distance/lossKneeDistM, 4)
	if p > 0.5 {
		return 0.5
	}
	return p
}

func distanceTo(a, b topology.Position) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
