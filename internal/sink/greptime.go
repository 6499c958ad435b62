package sink

import (
	"context"
	"time"

	"wifisweep/internal/metrics"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	ingesterContext "github.com/GreptimeTeam/greptimedb-ingester-go/context"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

const resultsTable = "wifi_sweep_results"

// GreptimeSink mirrors the CSV rows into a GreptimeDB table so campaigns
// can be compared across runs. Optional: only wired up when an endpoint
// is configured.
type GreptimeSink struct {
	client     greptime.Client
	db         string
	campaignID string
}

// NewGreptimeSink connects to the ingester endpoint and creates the
// results table if it does not exist yet. Table creation is idempotent,
// the same property the CSV sink provides for its header.
func NewGreptimeSink(endpoint, database, campaignID string) (*GreptimeSink, error) {
	ctx := ingesterContext.NewContext(context.Background())
	client, err := greptime.NewClient(ctx, &greptime.Config{
		Endpoint: endpoint,
	})
	if err != nil {
		return nil, err
	}

	ddl := `
CREATE TABLE IF NOT EXISTS wifi_sweep_results (
  campaign_id STRING TAG,
  distance_m DOUBLE,
  throughput_mbps DOUBLE,
  avg_delay_ms DOUBLE,
  packet_loss_percent DOUBLE,
  ts TIMESTAMP TIME INDEX
)
`
	if _, err := client.SQL(ctx, ddl); err != nil {
		return nil, err
	}

	return &GreptimeSink{client: client, db: database, campaignID: campaignID}, nil
}

// Append inserts a single result row.
func (s *GreptimeSink) Append(res metrics.ScenarioResult) error {
	ctx := ingesterContext.NewContext(context.Background())

	tbl := table.New(resultsTable)
	tbl.AddTagColumn("campaign_id", types.StringType, 0)
	tbl.AddFieldColumn("distance_m", types.Float64Type)
	tbl.AddFieldColumn("throughput_mbps", types.Float64Type)
	tbl.AddFieldColumn("avg_delay_ms", types.Float64Type)
	tbl.AddFieldColumn("packet_loss_percent", types.Float64Type)
	tbl.SetTimeIndex("ts", types.TimestampType)

	tbl.AppendTagValue("campaign_id", s.campaignID)
	tbl.AppendFieldValue("distance_m", res.DistanceM)
	tbl.AppendFieldValue("throughput_mbps", res.ThroughputMbps)
	tbl.AppendFieldValue("avg_delay_ms", res.AvgDelayMs)
	tbl.AppendFieldValue("packet_loss_percent", res.LossPercent)
	tbl.AppendTimeIndex(time.Now().UTC())

	return s.client.Write(ctx, s.db, []*table.Table{tbl})
}

// Close is a no-op; the ingester client holds no local resources worth
// flushing here.
func (s *GreptimeSink) Close() error {
	return nil
}
