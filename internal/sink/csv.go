// Result sinks persisting one row per scenario
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"wifisweep/internal/metrics"
)

// ResultSink receives one row per completed scenario. Append must be
// atomic at row granularity: either the whole row lands or none of it.
type ResultSink interface {
	Append(res metrics.ScenarioResult) error
	Close() error
}

// Header is the fixed first line of the results table.
const Header = "distance_m,throughput_mbps,avg_delay_ms,packet_loss_percent"

// CSVSink appends fixed-precision rows to a CSV file. The header is
// written exactly once over the lifetime of the file: a fresh file gets
// one, an existing file keeps the one it has. A file whose first line is
// not the expected header is refused, since appending under a foreign
// header would silently misalign columns.
type CSVSink struct {
	file *os.File
}

// NewCSVSink opens (or creates) the results file in append mode and
// ensures the header invariant before any row is written.
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat results file: %w", err)
	}

	if info.Size() == 0 {
		if _, err := f.WriteString(Header + "\n"); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
		return &CSVSink{file: f}, nil
	}

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("read existing header: %w", err)
	}
	if strings.TrimRight(line, "\r\n") != Header || !strings.HasSuffix(line, "\n") {
		f.Close()
		return nil, fmt.Errorf("results file %s has unexpected header %q", path, strings.TrimRight(line, "\r\n"))
	}
	return &CSVSink{file: f}, nil
}

// Append writes one row. The row is composed fully in memory and handed
// to a single write call, so a crash never leaves a partial row and
// earlier rows are never touched.
func (s *CSVSink) Append(res metrics.ScenarioResult) error {
	row := fmt.Sprintf("%.2f,%.2f,%.2f,%.2f\n",
		res.DistanceM, res.ThroughputMbps, res.AvgDelayMs, res.LossPercent)
	if _, err := s.file.WriteString(row); err != nil {
		return fmt.Errorf("append result row: %w", err)
	}
	return nil
}

// Close closes the backing file.
func (s *CSVSink) Close() error {
	return s.file.Close()
}
