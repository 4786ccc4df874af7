package stats

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/wordlog/internal/model"
	"github.com/verte-zerg/wordlog/internal/table"
)

func TestBuildReport(t *testing.T) {
	sink := table.NewCSV(filepath.Join(t.TempDir(), "results.csv"))
	ctx := context.Background()
	for i, name := range []string{"Alice", "Bob", "Alice"} {
		rec := model.ResultRecord{
			PuzzleNumber: 1360 + i,
			Name:         name,
			Attempts:     model.Attempts(3 + i),
			Skill:        90,
			Luck:         45,
			Grid:         []string{"GGGGG"},
		}
		if err := sink.Append(ctx, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	report, err := BuildReport(ctx, sink)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if report.TotalRows != 3 {
		t.Fatalf("expected 3 rows, got %d", report.TotalRows)
	}
	alice, ok := report.Player("Alice")
	if !ok {
		t.Fatalf("expected Alice in report")
	}
	if alice.Rows != 2 || !alice.TrendDefined {
		t.Fatalf("unexpected Alice summary: %+v", alice)
	}
	if report.MostActive.Name != "Alice" {
		t.Fatalf("expected Alice most active, got %s", report.MostActive.Name)
	}
	if _, ok := report.Player("Nobody"); ok {
		t.Fatalf("expected unknown player lookup to fail")
	}
}

type failingSource struct{}

func (failingSource) Rows(context.Context) ([]model.ResultRecord, error) {
	return nil, errors.New("disk on fire")
}

func TestBuildReportPropagatesErrors(t *testing.T) {
	if _, err := BuildReport(context.Background(), failingSource{}); err == nil {
		t.Fatalf("expected error from source")
	}
}
