// Package model defines shared data structures.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxAttempts is the number of guesses a puzzle allows.
const MaxAttempts = 6

// Attempts is the number of guesses used to solve a puzzle, or Failed.
type Attempts int

// Failed marks an unsolved puzzle. It sorts after a 6/6 solve.
const Failed Attempts = MaxAttempts + 1

// Solved reports whether the attempts value is a real 1-6 solve.
func (a Attempts) Solved() bool {
	return a >= 1 && a <= MaxAttempts
}

// String renders the attempts cell without the "/6" suffix.
func (a Attempts) String() string {
	if a == Failed {
		return "X"
	}
	return strconv.Itoa(int(a))
}

// Score renders the attempts as it appears in the share header, e.g. "4/6".
func (a Attempts) Score() string {
	return fmt.Sprintf("%s/%d", a, MaxAttempts)
}

// ParseAttempts reads "5", "5/6", "X" or "X/6".
func ParseAttempts(value string) (Attempts, error) {
	value = strings.TrimSpace(value)
	if head, _, ok := strings.Cut(value, "/"); ok {
		value = strings.TrimSpace(head)
	}
	if strings.EqualFold(value, "X") {
		return Failed, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", value)
	}
	a := Attempts(n)
	if !a.Solved() && a != Failed {
		return 0, fmt.Errorf("score %d out of range", n)
	}
	return a, nil
}

// ResultRecord is one logged game.
type ResultRecord struct {
	PuzzleNumber int
	Name         string
	Attempts     Attempts
	HardMode     bool
	Skill        int
	Luck         int
	Grid         []string
	// PlayedOn is zero when the date was not recorded.
	PlayedOn time.Time
}

// TrendPoint pairs a puzzle number with the technical score for that row.
type TrendPoint struct {
	Puzzle    int     `yaml:"puzzle"`
	Technical float64 `yaml:"technical"`
}

// PlayerSummary aggregates every row logged for one player.
type PlayerSummary struct {
	Name         string       `yaml:"name"`
	Rows         int          `yaml:"rows"`
	AvgLuck      float64      `yaml:"avg_luck"`
	AvgSkill     float64      `yaml:"avg_skill"`
	AvgTechnical float64      `yaml:"avg_technical"`
	Points       []TrendPoint `yaml:"points,omitempty"`
	Slope        float64      `yaml:"slope"`
	TrendDefined bool         `yaml:"trend_defined"`
}
