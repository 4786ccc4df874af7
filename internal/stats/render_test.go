package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/wordlog/internal/model"
)

func sampleReport() Report {
	return Aggregate([]model.ResultRecord{
		{PuzzleNumber: 1, Name: "Alice", Attempts: 3, Skill: 90, Luck: 20},
		{PuzzleNumber: 2, Name: "Alice", Attempts: 2, Skill: 95, Luck: 30},
		{PuzzleNumber: 1, Name: "Bob", Attempts: 4, Skill: 50, Luck: 90},
		{PuzzleNumber: 2, Name: "Bob", Attempts: 5, Skill: 40, Luck: 80},
	})
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, sampleReport()); err != nil {
		t.Fatalf("render report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Most unlucky: Alice, 25.0",
		"Luckiest: Bob, 85.0",
		"Most skilled: Alice, 92.5",
		"Extremely online: Alice, 2 rows",
		"Most improved: Alice, slope +",
		"Most declined: Bob, slope -",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 7 {
		t.Fatalf("expected 7 report lines, got %d", len(lines))
	}
}

func TestRenderReportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderReport(&buf, Aggregate(nil)); err != nil {
		t.Fatalf("render report: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No results found." {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestRenderPlayerTable(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPlayerTable(&buf, sampleReport().Players, 10); err != nil {
		t.Fatalf("render table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Player") || !strings.HasPrefix(lines[1], "Alice") {
		t.Fatalf("unexpected table:\n%s", buf.String())
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderYAML(&buf, sampleReport()); err != nil {
		t.Fatalf("render yaml: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"total_rows: 4", "most_active:", "name: Alice", "players:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in yaml:\n%s", want, out)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 5, 10}); got != " +@" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{0, 10}); got != " @" {
		t.Fatalf("expected extremes to use first and last chars, got %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}
