// Campaign driver sequencing scenarios through the engine
package campaign

import (
	"log/slog"

	"wifisweep/internal/engine"
	"wifisweep/internal/metrics"
	"wifisweep/internal/scenario"
	"wifisweep/internal/sink"
	"wifisweep/internal/topology"
)

// Driver executes scenarios strictly sequentially, owning the engine
// lifecycle for each one: Configure, Run, Collect, Aggregate, Persist,
// Teardown. No scenario starts before the previous one has torn down;
// the engine's event scheduler is not safely reentrant across topologies
// sharing addressing state.
type Driver struct {
	engine engine.Engine
	sink   sink.ResultSink
	log    *slog.Logger
}

// NewDriver wires the driver to its engine and result sink.
func NewDriver(eng engine.Engine, s sink.ResultSink, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.Default()
	}
	return &Driver{engine: eng, sink: s, log: log}
}

// Run processes scenarios in order, appending exactly one result row per
// scenario. It returns the number of completed scenarios and the first
// fatal error, if any; on error the in-progress distance is carried in
// the typed error.
func (d *Driver) Run(scenarios []scenario.Scenario) (int, error) {
	completed := 0
	for _, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			return completed, &ConfigurationError{DistanceM: sc.DistanceM, Err: err}
		}
		res, err := d.runScenario(sc)
		if err != nil {
			return completed, err
		}
		d.log.Info("scenario complete",
			"distance_m", res.DistanceM,
			"throughput_mbps", res.ThroughputMbps,
			"avg_delay_ms", res.AvgDelayMs,
			"packet_loss_percent", res.LossPercent,
		)
		completed++
	}
	return completed, nil
}

// runScenario drives one scenario through the full state machine.
// Teardown runs on every path once the engine handle exists, including
// collect and persist failures.
func (d *Driver) runScenario(sc scenario.Scenario) (metrics.ScenarioResult, error) {
	spec, plan := topology.Build(sc)

	h, err := d.engine.Build(spec, plan)
	if err != nil {
		return metrics.ScenarioResult{}, &EngineFailure{DistanceM: sc.DistanceM, Op: "build", Err: err}
	}

	res, err := d.collectAndPersist(h, plan, sc)
	if derr := d.engine.Destroy(h); derr != nil && err == nil {
		err = &EngineFailure{DistanceM: sc.DistanceM, Op: "teardown", Err: derr}
	}
	return res, err
}

func (d *Driver) collectAndPersist(h engine.Handle, plan topology.TrafficPlan, sc scenario.Scenario) (metrics.ScenarioResult, error) {
	if err := d.engine.Run(h, sc.SimStop); err != nil {
		return metrics.ScenarioResult{}, &EngineFailure{DistanceM: sc.DistanceM, Op: "run", Err: err}
	}

	received, err := d.engine.ReceivedBytes(h, plan.SinkEndpoint)
	if err != nil {
		return metrics.ScenarioResult{}, &EngineFailure{DistanceM: sc.DistanceM, Op: "collect", Err: err}
	}
	records, err := d.engine.FlowRecords(h)
	if err != nil {
		return metrics.ScenarioResult{}, &EngineFailure{DistanceM: sc.DistanceM, Op: "collect", Err: err}
	}

	res := metrics.Aggregate(received, records, sc)
	if err := d.sink.Append(res); err != nil {
		return metrics.ScenarioResult{}, &PersistenceError{DistanceM: sc.DistanceM, Err: err}
	}
	return res, nil
}
