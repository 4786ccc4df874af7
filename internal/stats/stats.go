// Package stats contains statistics calculations and reporting.
package stats

import (
	"sort"

	"github.com/samber/lo"

	"github.com/verte-zerg/wordlog/internal/model"
)

// TechnicalScore combines skill, attempts and luck into one number:
// (1/attempts) * skill * (1/luck). Luck below 1 counts as 1 and an attempts
// value below 1 counts as a failed game, so the result is always finite.
func TechnicalScore(skill int, attempts model.Attempts, luck int) float64 {
	if attempts < 1 {
		attempts = model.Failed
	}
	if luck < 1 {
		luck = 1
	}
	return (1 / float64(attempts)) * float64(skill) * (1 / float64(luck))
}

// Pick names the player holding an extreme value.
type Pick struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// Report summarizes every logged row.
type Report struct {
	TotalRows       int                   `yaml:"total_rows"`
	Unluckiest      Pick                  `yaml:"unluckiest"`
	Luckiest        Pick                  `yaml:"luckiest"`
	MostSkilled     Pick                  `yaml:"most_skilled"`
	LowestTechnical Pick                  `yaml:"lowest_technical"`
	MostActive      Pick                  `yaml:"most_active"`
	MostImproving   Pick                  `yaml:"most_improving"`
	MostDeclining   Pick                  `yaml:"most_declining"`
	Players         []model.PlayerSummary `yaml:"players"`
}

// Summarize folds rows into one summary per player, sorted by name.
func Summarize(rows []model.ResultRecord) []model.PlayerSummary {
	byName := lo.GroupBy(rows, func(r model.ResultRecord) string { return r.Name })
	names := lo.Keys(byName)
	sort.Strings(names)

	out := make([]model.PlayerSummary, 0, len(names))
	for _, name := range names {
		out = append(out, summarizePlayer(name, byName[name]))
	}
	return out
}

func summarizePlayer(name string, rows []model.ResultRecord) model.PlayerSummary {
	var luck, skill int
	var technical float64
	points := make([]model.TrendPoint, 0, len(rows))
	for _, r := range rows {
		score := TechnicalScore(r.Skill, r.Attempts, r.Luck)
		luck += r.Luck
		skill += r.Skill
		technical += score
		points = append(points, model.TrendPoint{Puzzle: r.PuzzleNumber, Technical: score})
	}
	count := float64(len(rows))
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Puzzle > points[j].Puzzle
	})
	slope, ok := TrendSlope(points)
	return model.PlayerSummary{
		Name:         name,
		Rows:         len(rows),
		AvgLuck:      float64(luck) / count,
		AvgSkill:     float64(skill) / count,
		AvgTechnical: technical / count,
		Points:       points,
		Slope:        slope,
		TrendDefined: ok,
	}
}

// Aggregate builds the full report. Ties go to the alphabetically first
// player, except MostActive, which goes to the player seen first in rows.
func Aggregate(rows []model.ResultRecord) Report {
	report := Report{TotalRows: len(rows)}
	if len(rows) == 0 {
		return report
	}
	players := Summarize(rows)
	report.Players = players

	unlucky := lo.MinBy(players, func(a, b model.PlayerSummary) bool { return a.AvgLuck < b.AvgLuck })
	lucky := lo.MaxBy(players, func(a, b model.PlayerSummary) bool { return a.AvgLuck > b.AvgLuck })
	skilled := lo.MaxBy(players, func(a, b model.PlayerSummary) bool { return a.AvgSkill > b.AvgSkill })
	lowest := lo.MinBy(players, func(a, b model.PlayerSummary) bool { return a.AvgTechnical < b.AvgTechnical })
	report.Unluckiest = Pick{Name: unlucky.Name, Value: unlucky.AvgLuck}
	report.Luckiest = Pick{Name: lucky.Name, Value: lucky.AvgLuck}
	report.MostSkilled = Pick{Name: skilled.Name, Value: skilled.AvgSkill}
	report.LowestTechnical = Pick{Name: lowest.Name, Value: lowest.AvgTechnical}

	counts := lo.CountValuesBy(rows, func(r model.ResultRecord) string { return r.Name })
	order := lo.Uniq(lo.Map(rows, func(r model.ResultRecord, _ int) string { return r.Name }))
	active := lo.MaxBy(order, func(a, b string) bool { return counts[a] > counts[b] })
	report.MostActive = Pick{Name: active, Value: float64(counts[active])}

	trending := lo.Filter(players, func(p model.PlayerSummary, _ int) bool { return p.TrendDefined })
	if len(trending) > 0 {
		up := lo.MaxBy(trending, func(a, b model.PlayerSummary) bool { return a.Slope > b.Slope })
		down := lo.MinBy(trending, func(a, b model.PlayerSummary) bool { return a.Slope < b.Slope })
		report.MostImproving = Pick{Name: up.Name, Value: up.Slope}
		report.MostDeclining = Pick{Name: down.Name, Value: down.Slope}
	}
	return report
}

// Chronological returns a player's technical scores oldest first.
func Chronological(p model.PlayerSummary) []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[len(p.Points)-1-i] = pt.Technical
	}
	return out
}
