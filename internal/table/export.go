package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/verte-zerg/wordlog/internal/model"
)

// Sheet names used by ExportXLSX.
const (
	ResultsSheet = "Results"
	PlayersSheet = "Players"
)

var playerHeader = []string{"name", "rows", "avg_luck", "avg_skill", "avg_technical", "trend_slope"}

// ExportXLSX writes a workbook with one sheet of raw results and one sheet
// of per-player summaries.
func ExportXLSX(w io.Writer, rows []model.ResultRecord, players []model.PlayerSummary) error {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the in-memory workbook.
			_ = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(PlayersSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSheetRow(f, ResultsSheet, 1, toAny(Header)); err != nil {
		return err
	}
	for i, rec := range rows {
		values := []any{
			rec.PuzzleNumber,
			rec.Name,
			rec.Attempts.Score(),
			rec.HardMode,
			rec.Skill,
			rec.Luck,
			strings.Join(rec.Grid, "\n"),
		}
		if err := writeSheetRow(f, ResultsSheet, i+2, values); err != nil {
			return err
		}
	}

	if err := writeSheetRow(f, PlayersSheet, 1, toAny(playerHeader)); err != nil {
		return err
	}
	for i, p := range players {
		values := []any{p.Name, p.Rows, p.AvgLuck, p.AvgSkill, p.AvgTechnical, p.Slope}
		if err := writeSheetRow(f, PlayersSheet, i+2, values); err != nil {
			return err
		}
	}

	for _, sheet := range []string{ResultsSheet, PlayersSheet} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return fmt.Errorf("failed to style header: %w", err)
		}
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
