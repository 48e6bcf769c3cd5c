package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Data", "Jogador 1", "Jogador 2", "Jogador 3", "Jogador 4", "Dupla A", "Dupla B"},
		{"10/05/2024", "Ana", "Bia", "Caio", "Dan", "4", "2"},
		{"11/05/2024", "Caio", "Dan", "Ana", "Bia", "1", "4"},
	})

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "10/05/2024", rows[0].Date)
	assert.Equal(t, [4]string{"Ana", "Bia", "Caio", "Dan"}, rows[0].Players)
	assert.Equal(t, "4", rows[0].ScoreA)
	assert.Equal(t, "2", rows[0].ScoreB)

	assert.Equal(t, 3, rows[1].Line)
}

func TestParseWorkbookSkipsEmptyRows(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Data", "Jogador 1", "Jogador 2", "Jogador 3", "Jogador 4", "Dupla A", "Dupla B"},
		{"10/05/2024", "Ana", "Bia", "Caio", "Dan", "4", "2"},
		{"", "", "", "", "", "", ""},
		{"12/05/2024", "Ana", "Bia", "Caio", "Dan", "4", "0"},
	})

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Line numbers track the spreadsheet, not the surviving row index.
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line)
}

func TestParseWorkbookIgnoresExtraColumnsAndHeaderCase(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"#", "data", "JOGADOR 1", "Jogador 2", "Jogador 3", "Jogador 4", "dupla a", "Dupla B", "Obs"},
		{"1", "10/05/2024", "Ana", "Bia", "Caio", "Dan", "4", "2", "final"},
	})

	rows, err := ParseWorkbook(data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10/05/2024", rows[0].Date)
	assert.Equal(t, "4", rows[0].ScoreA)
}

func TestParseWorkbookMissingColumn(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Data", "Jogador 1", "Jogador 2", "Jogador 3", "Jogador 4", "Dupla A"},
		{"10/05/2024", "Ana", "Bia", "Caio", "Dan", "4"},
	})

	_, err := ParseWorkbook(data)
	require.ErrorIs(t, err, ErrWorkbookParse)
	assert.Contains(t, err.Error(), "Dupla B")
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook([]byte("definitely not a zip archive"))
	require.ErrorIs(t, err, ErrWorkbookParse)
}
