package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the files of one experiment run
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteDepthRecords(records []DepthRecord) error {
	header := []string{
		"depth", "agree",
		"minimax_score", "minimax_nodes", "minimax_evaluations", "minimax_duration",
		"alphabeta_score", "alphabeta_nodes", "alphabeta_evaluations", "alphabeta_cutoffs", "alphabeta_duration",
		"node_ratio",
	}

	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Depth),
			strconv.FormatBool(record.Agree()),
			formatFloat(record.Minimax.Score),
			strconv.FormatInt(record.Minimax.Nodes, 10),
			strconv.FormatInt(record.Minimax.Evaluations, 10),
			record.Minimax.Duration.String(),
			formatFloat(record.AlphaBeta.Score),
			strconv.FormatInt(record.AlphaBeta.Nodes, 10),
			strconv.FormatInt(record.AlphaBeta.Evaluations, 10),
			strconv.FormatInt(record.AlphaBeta.Cutoffs, 10),
			record.AlphaBeta.Duration.String(),
			formatFloat(record.NodeRatio()),
		}
	}
	return w.writeCSV("depth_records.csv", header, rows)
}

func (w *Writer) WriteThroughputRecords(records []ThroughputRecord) error {
	header := []string{"goroutines", "score", "move", "nodes", "cutoffs", "duration", "nodes_per_second", "speedup"}

	rows := make([][]string, len(records))
	for i, record := range records {
		speedup := 0.0
		if len(records) > 0 {
			speedup = Speedup(records[0], record)
		}
		rows[i] = []string{
			strconv.Itoa(record.Goroutines),
			formatFloat(record.Score),
			record.Move,
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			record.Duration.String(),
			formatFloat(record.NodesPerSecond()),
			formatFloat(speedup),
		}
	}
	return w.writeCSV("throughput_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
