package stats

import (
	"sort"

	"github.com/verte-zerg/wordlog/internal/model"
)

// TopPlayersByRows returns the n players with the most rows.
func TopPlayersByRows(players []model.PlayerSummary, n int) []model.PlayerSummary {
	if len(players) == 0 {
		return nil
	}
	items := make([]model.PlayerSummary, len(players))
	copy(items, players)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rows == items[j].Rows {
			return items[i].Name < items[j].Name
		}
		return items[i].Rows > items[j].Rows
	})
	if n <= 0 || n > len(items) {
		n = len(items)
	}
	return items[:n]
}
