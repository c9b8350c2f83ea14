package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
)

// WritePruningChart plots nodes and evaluations per depth for both searches into pruning.html
func (w *Writer) WritePruningChart(records []DepthRecord) error {
	depths := lo.Map(records, func(r DepthRecord, _ int) string {
		return strconv.Itoa(r.Depth)
	})
	series := func(value func(r DepthRecord) float64) []opts.LineData {
		return lo.Map(records, func(r DepthRecord, _ int) opts.LineData {
			return opts.LineData{Value: value(r)}
		})
	}

	nodes := charts.NewLine()
	nodes.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "nodes visited per depth"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	nodes.SetXAxis(depths).
		AddSeries("minimax", series(func(r DepthRecord) float64 { return float64(r.Minimax.Nodes) })).
		AddSeries("alpha-beta", series(func(r DepthRecord) float64 { return float64(r.AlphaBeta.Nodes) }))

	durations := charts.NewLine()
	durations.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "search time per depth (ms)"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	durations.SetXAxis(depths).
		AddSeries("minimax", series(func(r DepthRecord) float64 { return durationMillis(r.Minimax.Duration) })).
		AddSeries("alpha-beta", series(func(r DepthRecord) float64 { return durationMillis(r.AlphaBeta.Duration) }))

	page := components.NewPage()
	page.AddCharts(nodes, durations)

	path := filepath.Join(w.baseDir, "pruning.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create pruning chart: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render pruning chart: %w", err)
	}
	return nil
}
