package metrics

import (
	"math"
	"testing"
	"time"

	"wifisweep/internal/engine"
	"wifisweep/internal/scenario"
)

var timing = scenario.Scenario{
	DistanceM:    20,
	StationCount: 3,
	AppStart:     1,
	AppStop:      10,
	SimStop:      12,
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateThroughput(t *testing.T) {
	res := Aggregate(1_250_000, nil, timing)
	want := 1_250_000 * 8 / (9 * 1e6)
	if !almostEqual(res.ThroughputMbps, want) {
		t.Errorf("throughput %.6f, want %.6f", res.ThroughputMbps, want)
	}
	if res.DistanceM != 20 {
		t.Errorf("distance %.1f, want 20", res.DistanceM)
	}
}

func TestAggregateLossPercent(t *testing.T) {
	records := []engine.FlowRecord{
		{FlowID: "a", TxPackets: 60, RxPackets: 57, LostPackets: 3},
		{FlowID: "b", TxPackets: 40, RxPackets: 38, LostPackets: 2},
	}
	res := Aggregate(0, records, timing)
	if !almostEqual(res.LossPercent, 5.0) {
		t.Errorf("loss %.4f, want 5.0", res.LossPercent)
	}
}

func TestAggregateAvgDelay(t *testing.T) {
	records := []engine.FlowRecord{
		{FlowID: "a", RxPackets: 10, TxPackets: 10, DelaySum: 100 * time.Millisecond},
		{FlowID: "b", RxPackets: 10, TxPackets: 10, DelaySum: 300 * time.Millisecond},
	}
	res := Aggregate(0, records, timing)
	if !almostEqual(res.AvgDelayMs, 20.0) {
		t.Errorf("avg delay %.4f ms, want 20.0", res.AvgDelayMs)
	}
}

func TestAggregateZeroReceivedPackets(t *testing.T) {
	records := []engine.FlowRecord{
		{FlowID: "a", TxPackets: 50, RxPackets: 0, LostPackets: 50, DelaySum: 0},
	}
	res := Aggregate(0, records, timing)
	if res.AvgDelayMs != 0 {
		t.Errorf("avg delay %.4f, want 0 when nothing was received", res.AvgDelayMs)
	}
	if !almostEqual(res.LossPercent, 100) {
		t.Errorf("loss %.4f, want 100", res.LossPercent)
	}
}

func TestAggregateZeroTransmittedPackets(t *testing.T) {
	res := Aggregate(0, nil, timing)
	if res.ThroughputMbps != 0 || res.AvgDelayMs != 0 || res.LossPercent != 0 {
		t.Errorf("expected all-zero result, got %+v", res)
	}
}

func TestAggregateOrderInvariant(t *testing.T) {
	records := []engine.FlowRecord{
		{FlowID: "a", TxPackets: 10, RxPackets: 9, LostPackets: 1, DelaySum: 90 * time.Millisecond},
		{FlowID: "b", TxPackets: 20, RxPackets: 18, LostPackets: 2, DelaySum: 200 * time.Millisecond},
		{FlowID: "c", TxPackets: 5, RxPackets: 5, LostPackets: 0, DelaySum: 10 * time.Millisecond},
	}
	reversed := []engine.FlowRecord{records[2], records[1], records[0]}

	a := Aggregate(9999, records, timing)
	b := Aggregate(9999, reversed, timing)
	if a != b {
		t.Errorf("aggregation depends on record order: %+v vs %+v", a, b)
	}
}

func TestAggregateBoundsHold(t *testing.T) {
	records := []engine.FlowRecord{
		{FlowID: "a", TxPackets: 100, RxPackets: 95, LostPackets: 5, DelaySum: time.Second},
	}
	res := Aggregate(123456, records, timing)
	if res.ThroughputMbps < 0 || res.AvgDelayMs < 0 {
		t.Errorf("negative metric: %+v", res)
	}
	if res.LossPercent < 0 || res.LossPercent > 100 {
		t.Errorf("loss out of range: %+v", res)
	}
}
