package table

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/verte-zerg/wordlog/internal/model"
)

// Column names in the order they are written.
const (
	ColPuzzle   = "puzzle_number"
	ColName     = "name"
	ColScore    = "score"
	ColHardMode = "hard_mode"
	ColSkill    = "skill"
	ColLuck     = "luck"
	ColGrid     = "grid"
)

// Header is the fixed header row of a results table.
var Header = []string{ColPuzzle, ColName, ColScore, ColHardMode, ColSkill, ColLuck, ColGrid}

// legacyColumns maps older header spellings onto current column names.
var legacyColumns = map[string]string{
	"wordle_number": ColPuzzle,
	"puzzle":        ColPuzzle,
	"attempts":      ColScore,
}

// CSVSink stores results in a comma-separated file with a header row.
type CSVSink struct {
	path string
}

// NewCSV returns a sink for the CSV file at path. The file is created on first append.
func NewCSV(path string) *CSVSink {
	return &CSVSink{path: path}
}

// Path returns the table file path.
func (s *CSVSink) Path() string {
	return s.path
}

// Close is a no-op; the file is opened and closed per call.
func (s *CSVSink) Close() error {
	return nil
}

// Append writes one row, preceded by the header when the file is missing or empty.
func (s *CSVSink) Append(_ context.Context, rec model.ResultRecord) error {
	writeHeader, err := s.needsHeader()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create table directory: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open table: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close; a failed flush is reported below.
			_ = cerr
		}
	}()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(Header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := writer.Write(EncodeRow(rec)); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

func (s *CSVSink) needsHeader() (bool, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to stat table: %w", err)
	}
	return info.Size() == 0, nil
}

// Rows reads every data row. A missing file yields no rows.
func (s *CSVSink) Rows(_ context.Context) ([]model.ResultRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only table.
			_ = cerr
		}
	}()
	return ReadRows(file)
}

// ReadRows decodes a results table, matching columns by header name.
func ReadRows(r io.Reader) ([]model.ResultRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []model.ResultRecord
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read table: %w", err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		rec, err := decodeRow(cols, record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("invalid row at line %d: %w", line, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.TrimPrefix(name, "\ufeff")
		name = strings.ReplaceAll(name, " ", "_")
		if mapped, ok := legacyColumns[name]; ok {
			name = mapped
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, required := range []string{ColPuzzle, ColName, ColScore} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("table header is missing column %q", required)
		}
	}
	return cols, nil
}

// EncodeRow renders a record in Header order.
func EncodeRow(rec model.ResultRecord) []string {
	return []string{
		strconv.Itoa(rec.PuzzleNumber),
		rec.Name,
		rec.Attempts.Score(),
		strconv.FormatBool(rec.HardMode),
		strconv.Itoa(rec.Skill),
		strconv.Itoa(rec.Luck),
		strings.Join(rec.Grid, "\n"),
	}
}

func decodeRow(cols map[string]int, record []string) (model.ResultRecord, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rec model.ResultRecord
	number, err := strconv.Atoi(cell(ColPuzzle))
	if err != nil {
		return rec, fmt.Errorf("invalid puzzle number %q", cell(ColPuzzle))
	}
	rec.PuzzleNumber = number
	rec.Name = cell(ColName)
	if rec.Attempts, err = model.ParseAttempts(cell(ColScore)); err != nil {
		return rec, err
	}
	if v := cell(ColHardMode); v != "" {
		if rec.HardMode, err = strconv.ParseBool(v); err != nil {
			return rec, fmt.Errorf("invalid hard mode %q", v)
		}
	}
	if rec.Skill, err = atoiOrZero(cell(ColSkill)); err != nil {
		return rec, fmt.Errorf("invalid skill: %w", err)
	}
	if rec.Luck, err = atoiOrZero(cell(ColLuck)); err != nil {
		return rec, fmt.Errorf("invalid luck: %w", err)
	}
	if grid := cell(ColGrid); grid != "" {
		rec.Grid = strings.Split(strings.ReplaceAll(grid, "\r\n", "\n"), "\n")
	}
	return rec, nil
}

func atoiOrZero(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
