package stats

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/verte-zerg/wordlog/internal/model"
)

// ErrNoTrendData is returned when no player has enough rows to chart.
var ErrNoTrendData = errors.New("no player has at least two results")

const (
	chartWidth  = 1024
	chartHeight = 512
)

// RenderTrendChart writes a PNG line chart of each player's technical
// score by puzzle number. Players with a single row are left out.
func RenderTrendChart(w io.Writer, players []model.PlayerSummary) error {
	var series []chart.Series
	for _, p := range players {
		if !p.TrendDefined {
			continue
		}
		n := len(p.Points)
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i, pt := range p.Points {
			// Points are stored most recent first; the chart reads left to right.
			xs[n-1-i] = float64(pt.Puzzle)
			ys[n-1-i] = pt.Technical
		}
		series = append(series, chart.ContinuousSeries{
			Name:    p.Name,
			XValues: xs,
			YValues: ys,
		})
	}
	if len(series) == 0 {
		return ErrNoTrendData
	}

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Puzzle",
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
		},
		YAxis: chart.YAxis{
			Name: "Technical score",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
