// Package parse extracts structured results from Wordle share text.
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/verte-zerg/wordlog/internal/model"
)

// ErrFormat is returned when the share text has no score header.
var ErrFormat = errors.New("score header not found")

// FormatError describes share text that could not be parsed.
type FormatError struct {
	// Line is the first non-blank line of the rejected text.
	Line string
}

func (e *FormatError) Error() string {
	if e.Line == "" {
		return ErrFormat.Error()
	}
	return fmt.Sprintf("%v: %q", ErrFormat, e.Line)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

var (
	// 1360 5/6*, 1,360 X/6
	headerPattern = regexp.MustCompile(`(\d{1,3}(?:[,.]\d{3})+|\d+)\s+([1-6]|[Xx?-])/6(\*?)`)
	skillPattern  = regexp.MustCompile(`Skill\s+(\d{1,2})/99`)
	luckPattern   = regexp.MustCompile(`Luck\s+(\d{1,2})/99`)
)

// Parse extracts a result from share text. Name and date are left empty.
func Parse(text string) (model.ResultRecord, error) {
	lines := splitLines(text)

	headerIdx := -1
	var header []string
	for i, line := range lines {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			headerIdx = i
			header = m
			break
		}
	}
	if headerIdx < 0 {
		return model.ResultRecord{}, &FormatError{Line: firstNonBlank(lines)}
	}

	number, err := parsePuzzleNumber(header[1])
	if err != nil {
		return model.ResultRecord{}, &FormatError{Line: lines[headerIdx]}
	}
	rec := model.ResultRecord{
		PuzzleNumber: number,
		Attempts:     parseAttemptsCell(header[2]),
		HardMode:     header[3] == "*",
	}

	rest := lines[headerIdx+1:]
	gridEnd := len(rest)
	for i, line := range rest {
		skill := skillPattern.FindStringSubmatch(line)
		luck := luckPattern.FindStringSubmatch(line)
		if (skill != nil || luck != nil) && i < gridEnd {
			gridEnd = i
		}
		if skill != nil && rec.Skill == 0 {
			rec.Skill, _ = strconv.Atoi(skill[1])
		}
		if luck != nil && rec.Luck == 0 {
			rec.Luck, _ = strconv.Atoi(luck[1])
		}
	}
	rec.Grid = MapGrid(gridLines(rest[:gridEnd]))
	return rec, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(strings.TrimSpace(text), "\n")
}

func firstNonBlank(lines []string) string {
	for _, line := range lines {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

func parsePuzzleNumber(value string) (int, error) {
	value = strings.NewReplacer(",", "", ".", "").Replace(value)
	return strconv.Atoi(value)
}

func parseAttemptsCell(value string) model.Attempts {
	n, err := strconv.Atoi(value)
	if err != nil {
		return model.Failed
	}
	return model.Attempts(n)
}

func gridLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !isGridLine(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}
