package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
	"github.com/xuri/excelize/v2"
)

// ProfileParams holds parameters for sheet profiling.
type ProfileParams struct {
	// HeaderScanRows is how many leading rows are searched for a header.
	HeaderScanRows int
	// HeaderMinCells is the number of values a header row must exceed.
	HeaderMinCells int
	// SampleRows is how many data rows feed the column profiles.
	SampleRows int
	// MaxSamples is the number of sample values kept per column.
	MaxSamples int
	// SampleWidth truncates sample values to this many characters.
	SampleWidth int
}

// DefaultProfileParams returns default profiling parameters.
func DefaultProfileParams() ProfileParams {
	return ProfileParams{
		HeaderScanRows: 10,
		HeaderMinCells: 3,
		SampleRows:     100,
		MaxSamples:     5,
		SampleWidth:    50,
	}
}

// DetectHeaderRow returns the 1-based index of the first row, among the
// leading rows, holding more than params.HeaderMinCells values.
func DetectHeaderRow(rows [][]string, params ProfileParams) (int, bool) {
	for rowIdx := 0; rowIdx < len(rows) && rowIdx < params.HeaderScanRows; rowIdx++ {
		if countRowCells(rows[rowIdx]) > params.HeaderMinCells {
			return rowIdx + 1, true
		}
	}
	return 0, false
}

// ProfileSheet describes the used range, header and column contents of a
// sheet.
func ProfileSheet(f *excelize.File, sheetName string, params ProfileParams) (models.SheetProfile, error) {
	profile := models.SheetProfile{Name: sheetName}

	rows, err := LoadSheet(f, sheetName)
	if err != nil {
		return profile, err
	}
	if len(rows) == 0 {
		return profile, nil
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return profile, nil
	}
	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	profile.Dimension = fmt.Sprintf("%s:%s", startCell, endCell)
	profile.MaxRow = maxRow + 1
	profile.MaxCol = maxCol + 1
	profile.NonEmptyCells = countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	headerRow, ok := DetectHeaderRow(rows, params)
	if !ok {
		return profile, nil
	}
	profile.HeaderRow = headerRow

	header := rows[headerRow-1]
	dataStart := headerRow // 0-based index of the first data row
	for colIdx, name := range header {
		if name == "" {
			continue
		}
		col := models.ColumnProfile{
			Index: colIdx + 1,
			Name:  name,
			Types: make(map[string]int),
		}
		for rowIdx := dataStart; rowIdx < len(rows) && rowIdx < dataStart+params.SampleRows; rowIdx++ {
			row := rows[rowIdx]
			if colIdx >= len(row) || row[colIdx] == "" {
				continue
			}
			col.Types[typeName(parseValue(row[colIdx]))]++
			if len(col.Samples) < params.MaxSamples {
				col.Samples = append(col.Samples, truncate(row[colIdx], params.SampleWidth))
			}
		}
		profile.Columns = append(profile.Columns, col)
	}

	for rowIdx := dataStart; rowIdx < len(rows); rowIdx++ {
		if countRowCells(rows[rowIdx]) > 0 {
			profile.DataRows++
		}
	}

	return profile, nil
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}

func countRowCells(row []string) int {
	n := 0
	for _, cell := range row {
		if cell != "" {
			n++
		}
	}
	return n
}

func typeName(v interface{}) string {
	switch v.(type) {
	case int64:
		return "int"
	case float64:
		return "float"
	default:
		return "string"
	}
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
