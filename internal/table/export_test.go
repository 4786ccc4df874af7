package table

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/verte-zerg/wordlog/internal/model"
)

func TestExportXLSX(t *testing.T) {
	rows := []model.ResultRecord{sampleRecord(1360, "Alice"), sampleRecord(1361, "Bob")}
	players := []model.PlayerSummary{
		{Name: "Alice", Rows: 1, AvgLuck: 45, AvgSkill: 99, AvgTechnical: 0.44},
		{Name: "Bob", Rows: 1, AvgLuck: 45, AvgSkill: 99, AvgTechnical: 0.44},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportXLSX(&buf, rows, players))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = f.Close()
	})
	require.Equal(t, []string{ResultsSheet, PlayersSheet}, f.GetSheetList())

	results, err := f.GetRows(ResultsSheet)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, Header, results[0])
	require.Equal(t, "1360", results[1][0])
	require.Equal(t, "Bob", results[2][1])

	summary, err := f.GetRows(PlayersSheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	require.Equal(t, "Alice", summary[1][0])
}
