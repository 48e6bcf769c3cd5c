package importer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet column headers. The import format is the one exported by the
// history tab, so the headers are the app's Portuguese labels.
const (
	colDate    = "Data"
	colPlayer1 = "Jogador 1"
	colPlayer2 = "Jogador 2"
	colPlayer3 = "Jogador 3"
	colPlayer4 = "Jogador 4"
	colScoreA  = "Dupla A"
	colScoreB  = "Dupla B"
)

var requiredColumns = []string{colDate, colPlayer1, colPlayer2, colScoreA, colScoreB, colPlayer3, colPlayer4}

var ErrWorkbookParse = errors.New("failed to parse the Excel file")

// Row is one data row of the import spreadsheet, untouched except for cell
// lookup by header. Line is the 1-based spreadsheet line, so with the header
// on line 1 the first data row reports as line 2.
type Row struct {
	Line    int
	Date    string
	Players [4]string
	ScoreA  string
	ScoreB  string
}

// ParseWorkbook reads the first sheet of an xlsx workbook into ordered rows.
// The header row must contain every required column; extra columns (such as
// the exported match number) are ignored.
func ParseWorkbook(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWorkbookParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrWorkbookParse)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet %q: %w", ErrWorkbookParse, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrWorkbookParse, sheets[0])
	}

	colIndex := make(map[string]int, len(requiredColumns))
	for i, header := range rows[0] {
		header = strings.TrimSpace(header)
		for _, want := range requiredColumns {
			if strings.EqualFold(header, want) {
				colIndex[want] = i
			}
		}
	}
	for _, want := range requiredColumns {
		if _, ok := colIndex[want]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", ErrWorkbookParse, want)
		}
	}

	cell := func(row []string, column string) string {
		idx := colIndex[column]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	parsed := make([]Row, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		parsed = append(parsed, Row{
			Line: i + 2,
			Date: cell(row, colDate),
			Players: [4]string{
				cell(row, colPlayer1),
				cell(row, colPlayer2),
				cell(row, colPlayer3),
				cell(row, colPlayer4),
			},
			ScoreA: cell(row, colScoreA),
			ScoreB: cell(row, colScoreB),
		})
	}
	return parsed, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
