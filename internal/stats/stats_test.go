package stats

import (
	"math"
	"testing"

	"github.com/verte-zerg/wordlog/internal/model"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// row builds a result whose technical score equals skill.
func row(name string, puzzle, skill int) model.ResultRecord {
	return model.ResultRecord{PuzzleNumber: puzzle, Name: name, Attempts: 1, Skill: skill, Luck: 1}
}

func TestTechnicalScore(t *testing.T) {
	if got := TechnicalScore(99, 5, 45); !approx(got, 99.0/5.0/45.0) {
		t.Fatalf("unexpected score %v", got)
	}
	if got := TechnicalScore(70, model.Failed, 10); !approx(got, 1.0) {
		t.Fatalf("expected failed game to divide by 7, got %v", got)
	}
}

func TestTechnicalScoreGuardsZeroDivisors(t *testing.T) {
	if got := TechnicalScore(50, 2, 0); !approx(got, 25) {
		t.Fatalf("expected zero luck to count as 1, got %v", got)
	}
	if got := TechnicalScore(70, 0, 1); !approx(got, 10) {
		t.Fatalf("expected zero attempts to count as failed, got %v", got)
	}
	if got := TechnicalScore(0, 0, 0); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("expected finite score, got %v", got)
	}
}

func TestTrendSlopeSign(t *testing.T) {
	rows := []model.ResultRecord{row("A", 1, 10), row("A", 2, 20), row("A", 3, 30)}
	players := Summarize(rows)
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}
	p := players[0]
	if !p.TrendDefined {
		t.Fatalf("expected trend to be defined")
	}
	if !approx(p.Slope, 10) {
		t.Fatalf("expected slope 10, got %v", p.Slope)
	}
	if p.Points[0].Puzzle != 3 || p.Points[2].Puzzle != 1 {
		t.Fatalf("expected points most recent first, got %+v", p.Points)
	}
	declining := Summarize([]model.ResultRecord{row("B", 1, 30), row("B", 2, 20), row("B", 3, 10)})
	if !approx(declining[0].Slope, -10) {
		t.Fatalf("expected slope -10, got %v", declining[0].Slope)
	}
}

func TestTrendSlopeOrdersByPuzzleNotInput(t *testing.T) {
	rows := []model.ResultRecord{row("A", 3, 30), row("A", 1, 10), row("A", 2, 20)}
	p := Summarize(rows)[0]
	if !approx(p.Slope, 10) {
		t.Fatalf("expected slope 10 regardless of input order, got %v", p.Slope)
	}
}

func TestTrendSlopeDegenerate(t *testing.T) {
	slope, ok := TrendSlope(nil)
	if ok || slope != 0 {
		t.Fatalf("expected undefined zero slope for no points")
	}
	slope, ok = TrendSlope([]model.TrendPoint{{Puzzle: 1, Technical: 5}})
	if ok || slope != 0 {
		t.Fatalf("expected undefined zero slope for one point")
	}
}

func TestSummarizeAverages(t *testing.T) {
	rows := []model.ResultRecord{
		{PuzzleNumber: 1, Name: "Alice", Attempts: 2, Skill: 80, Luck: 40},
		{PuzzleNumber: 2, Name: "Bob", Attempts: 4, Skill: 60, Luck: 20},
		{PuzzleNumber: 2, Name: "Alice", Attempts: 4, Skill: 60, Luck: 60},
	}
	players := Summarize(rows)
	if len(players) != 2 || players[0].Name != "Alice" || players[1].Name != "Bob" {
		t.Fatalf("expected players sorted by name, got %+v", players)
	}
	alice := players[0]
	if alice.Rows != 2 || !approx(alice.AvgLuck, 50) || !approx(alice.AvgSkill, 70) {
		t.Fatalf("unexpected alice averages: %+v", alice)
	}
	wantTech := (80.0/2.0/40.0 + 60.0/4.0/60.0) / 2
	if !approx(alice.AvgTechnical, wantTech) {
		t.Fatalf("expected avg technical %v, got %v", wantTech, alice.AvgTechnical)
	}
	if players[1].TrendDefined {
		t.Fatalf("expected single-row player to have no trend")
	}
}

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil)
	if report.TotalRows != 0 || len(report.Players) != 0 || report.MostActive.Name != "" {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestAggregateExtremes(t *testing.T) {
	rows := []model.ResultRecord{
		{PuzzleNumber: 1, Name: "Alice", Attempts: 3, Skill: 90, Luck: 20},
		{PuzzleNumber: 2, Name: "Alice", Attempts: 2, Skill: 95, Luck: 30},
		{PuzzleNumber: 3, Name: "Alice", Attempts: 1, Skill: 99, Luck: 10},
		{PuzzleNumber: 1, Name: "Bob", Attempts: 4, Skill: 50, Luck: 90},
		{PuzzleNumber: 2, Name: "Bob", Attempts: 5, Skill: 40, Luck: 80},
		{PuzzleNumber: 1, Name: "Carol", Attempts: model.Failed, Skill: 30, Luck: 50},
	}
	report := Aggregate(rows)
	if report.TotalRows != 6 || len(report.Players) != 3 {
		t.Fatalf("unexpected totals: %+v", report)
	}
	checks := []struct {
		label string
		got   Pick
		want  string
	}{
		{"unluckiest", report.Unluckiest, "Alice"},
		{"luckiest", report.Luckiest, "Bob"},
		{"most skilled", report.MostSkilled, "Alice"},
		{"lowest technical", report.LowestTechnical, "Carol"},
		{"most active", report.MostActive, "Alice"},
		{"most improving", report.MostImproving, "Alice"},
		{"most declining", report.MostDeclining, "Bob"},
	}
	for _, c := range checks {
		if c.got.Name != c.want {
			t.Fatalf("%s: expected %s, got %s", c.label, c.want, c.got.Name)
		}
	}
	if !approx(report.Luckiest.Value, 85) {
		t.Fatalf("expected luckiest value 85, got %v", report.Luckiest.Value)
	}
	if report.MostActive.Value != 3 {
		t.Fatalf("expected 3 rows for most active, got %v", report.MostActive.Value)
	}
}

func TestAggregateTieBreaks(t *testing.T) {
	rows := []model.ResultRecord{
		row("Zed", 1, 10),
		row("Amy", 1, 10),
		row("Zed", 2, 20),
		row("Amy", 2, 20),
	}
	report := Aggregate(rows)
	if report.Luckiest.Name != "Amy" || report.Unluckiest.Name != "Amy" || report.MostSkilled.Name != "Amy" {
		t.Fatalf("expected ties to resolve alphabetically, got %+v", report)
	}
	if report.MostImproving.Name != "Amy" || report.MostDeclining.Name != "Amy" {
		t.Fatalf("expected trend ties to resolve alphabetically, got %+v", report)
	}
	if report.MostActive.Name != "Zed" {
		t.Fatalf("expected most active tie to resolve to first seen, got %s", report.MostActive.Name)
	}
}

func TestAggregateWithoutTrends(t *testing.T) {
	report := Aggregate([]model.ResultRecord{row("Alice", 1, 10), row("Bob", 1, 20)})
	if report.MostImproving.Name != "" || report.MostDeclining.Name != "" {
		t.Fatalf("expected no trend picks, got %+v / %+v", report.MostImproving, report.MostDeclining)
	}
}

func TestChronological(t *testing.T) {
	p := Summarize([]model.ResultRecord{row("A", 2, 20), row("A", 1, 10), row("A", 3, 30)})[0]
	got := Chronological(p)
	want := []float64{10, 20, 30}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
