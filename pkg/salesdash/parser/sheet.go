package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
	"github.com/xuri/excelize/v2"
)

// ParseSpreadsheet decodes a workbook and converts its first sheet into raw rows.
// The first non-empty row of the sheet is the header. Numeric cells come back
// as int64 or float64, everything else as string. Blank cells are absent and
// blank rows are dropped.
func ParseSpreadsheet(content []byte) ([]models.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	cells, err := ExtractCells(f, sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrInvalidWorkbook, sheets[0], err)
	}

	return rowsFromCells(cells)
}

// rowsFromCells keys each data row by the header row.
func rowsFromCells(cells [][]string) ([]models.RawRow, error) {
	minRow, maxRow, minCol, maxCol := findDataBounds(cells)
	if minRow < 0 {
		return nil, ErrEmptyInput
	}

	headerCells := cells[minRow]
	headers := make([]string, maxCol+1)
	for colIdx := minCol; colIdx <= maxCol && colIdx < len(headerCells); colIdx++ {
		headers[colIdx] = normalizeHeader(headerCells[colIdx])
	}

	var rows []models.RawRow
	for rowIdx := minRow + 1; rowIdx <= maxRow; rowIdx++ {
		row := make(models.RawRow)
		for colIdx, cellValue := range cells[rowIdx] {
			if colIdx > maxCol || headers[colIdx] == "" {
				continue
			}
			if strings.TrimSpace(cellValue) == "" {
				continue
			}
			row[headers[colIdx]] = parseValue(cellValue)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	return rows, nil
}
