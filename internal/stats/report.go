package stats

import (
	"context"

	"github.com/verte-zerg/wordlog/internal/model"
)

// RowSource provides every logged row.
type RowSource interface {
	Rows(ctx context.Context) ([]model.ResultRecord, error)
}

// BuildReport loads all rows and aggregates them.
func BuildReport(ctx context.Context, src RowSource) (Report, error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return Report{}, err
	}
	return Aggregate(rows), nil
}

// Player returns the summary for name, if present.
func (r Report) Player(name string) (model.PlayerSummary, bool) {
	for _, p := range r.Players {
		if p.Name == name {
			return p, true
		}
	}
	return model.PlayerSummary{}, false
}
