package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/wordlog/internal/model"
)

const sparkChars = " .:-=+*#%@"

// ReportLine is one labelled entry of a rendered report.
type ReportLine struct {
	Label string
	Value string
}

// ReportLines returns the headline entries of a report in display order.
func ReportLines(r Report) []ReportLine {
	return []ReportLine{
		{"Most unlucky", pickValue(r.Unluckiest, "%.1f")},
		{"Luckiest", pickValue(r.Luckiest, "%.1f")},
		{"Most skilled", pickValue(r.MostSkilled, "%.1f")},
		{"Lowest technical score", pickValue(r.LowestTechnical, "%.3f")},
		{"Extremely online", pickValue(r.MostActive, "%.0f rows")},
		{"Most improved", pickValue(r.MostImproving, "slope %+.3f")},
		{"Most declined", pickValue(r.MostDeclining, "slope %+.3f")},
	}
}

func pickValue(p Pick, format string) string {
	if p.Name == "" {
		return "-"
	}
	return p.Name + ", " + fmt.Sprintf(format, p.Value)
}

// RenderReport prints the headline report, one line per entry.
func RenderReport(w io.Writer, r Report) error {
	if r.TotalRows == 0 {
		_, err := fmt.Fprintln(w, "No results found.")
		return err
	}
	for _, line := range ReportLines(r) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", line.Label, line.Value); err != nil {
			return err
		}
	}
	return nil
}

// RenderPlayerTable prints per-player averages with a sparkline of the
// most recent sparkWidth technical scores (all of them when sparkWidth <= 0).
func RenderPlayerTable(w io.Writer, players []model.PlayerSummary, sparkWidth int) error {
	if len(players) == 0 {
		return nil
	}
	headers := []string{"Player", "Rows", "Avg Luck", "Avg Skill", "Avg Tech", "Slope", "Recent"}
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		series := Chronological(p)
		if sparkWidth > 0 && len(series) > sparkWidth {
			series = series[len(series)-sparkWidth:]
		}
		slope := "-"
		if p.TrendDefined {
			slope = fmt.Sprintf("%+.3f", p.Slope)
		}
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%d", p.Rows),
			fmt.Sprintf("%.1f", p.AvgLuck),
			fmt.Sprintf("%.1f", p.AvgSkill),
			fmt.Sprintf("%.3f", p.AvgTechnical),
			slope,
			Sparkline(series),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderYAML writes the report as a YAML document.
func RenderYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
