package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/verte-zerg/wordlog/internal/model"
)

// TrendSlope fits a least-squares line through points, which must be
// ordered most recent first. The x value of each point is its recency
// (0 for the oldest), so a positive slope means scores grow over time.
// Fewer than two points have no trend: the slope is 0 and ok is false.
func TrendSlope(points []model.TrendPoint) (slope float64, ok bool) {
	n := len(points)
	if n < 2 {
		return 0, false
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for rank, p := range points {
		xs[rank] = float64(n - 1 - rank)
		ys[rank] = p.Technical
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta, true
}
