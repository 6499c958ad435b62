package main

import (
	"os"

	"github.com/google/uuid"

	"wifisweep/internal/sink"
)

// newSinks sets up the result sinks: the CSV table always, plus a
// GreptimeDB mirror when an endpoint is configured in the environment.
// It returns the sink and a cleanup function to close any resources.
func newSinks(csvPath string) (sink.ResultSink, func(), error) {
	csv, err := sink.NewCSVSink(csvPath)
	if err != nil {
		return nil, nil, err
	}

	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	if endpoint == "" {
		return csv, func() { csv.Close() }, nil
	}

	database := os.Getenv("GREPTIMEDB_DATABASE")
	if database == "" {
		database = "public"
	}
	gt, err := sink.NewGreptimeSink(endpoint, database, uuid.New().String())
	if err != nil {
		csv.Close()
		return nil, nil, err
	}
	mw := sink.NewMultiSink(csv, gt)
	return mw, func() { mw.Close() }, nil
}
