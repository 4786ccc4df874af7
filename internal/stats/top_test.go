package stats

import (
	"testing"

	"github.com/verte-zerg/wordlog/internal/model"
)

func TestTopPlayersByRows(t *testing.T) {
	players := []model.PlayerSummary{
		{Name: "Bob", Rows: 3},
		{Name: "Alice", Rows: 3},
		{Name: "Carol", Rows: 1},
	}
	top := TopPlayersByRows(players, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 players, got %d", len(top))
	}
	if top[0].Name != "Alice" || top[1].Name != "Bob" {
		t.Fatalf("unexpected order: %+v", top)
	}
	if all := TopPlayersByRows(players, 0); len(all) != 3 {
		t.Fatalf("expected all players for n=0, got %d", len(all))
	}
	if players[0].Name != "Bob" {
		t.Fatalf("input slice was reordered")
	}
}
