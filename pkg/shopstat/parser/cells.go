// Package parser reads job-cost rows and sheet layouts from Excel files.
package parser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
	"github.com/xuri/excelize/v2"
)

// LoadSheet returns the raw (unformatted) cell values of a sheet.
func LoadSheet(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// ReadRows reads the job-cost rows of a sheet, starting at firstDataRow
// (1-based).
func ReadRows(f *excelize.File, sheetName string, firstDataRow int) ([]models.Row, error) {
	raw, err := LoadSheet(f, sheetName)
	if err != nil {
		return nil, err
	}
	return MapRows(raw, firstDataRow), nil
}

// MapRows maps raw sheet rows to job-cost rows by column position.
// Rows before firstDataRow (1-based) are skipped.
func MapRows(raw [][]string, firstDataRow int) []models.Row {
	if firstDataRow < 1 {
		firstDataRow = 1
	}

	var result []models.Row
	for rowIdx := firstDataRow - 1; rowIdx < len(raw); rowIdx++ {
		result = append(result, mapRow(rowIdx+1, raw[rowIdx]))
	}
	return result
}

func mapRow(rowNum int, cells []string) models.Row {
	col := func(c int) string {
		if c-1 < len(cells) {
			return cells[c-1]
		}
		return ""
	}
	text := func(c int) models.Cell { return models.Text(col(c)) }
	qty := func(c int) decimal.NullDecimal { return parseQuantity(col(c)) }
	date := func(c int) models.Cell { return parseDate(col(c)) }

	return models.Row{
		R:                rowNum,
		Text48:           text(models.ColText48),
		AutoDate:         date(models.ColAutoDate),
		SalesOrder:       text(models.ColSalesOrder),
		Mark:             text(models.ColMarkInfo),
		Salesperson:      text(models.ColSalesperson),
		Customer:         text(models.ColCustomer),
		CodeSort:         text(models.ColCodeSort),
		Job:              text(models.ColJob),
		PartCustomer:     text(models.ColPartCustomer),
		Text72:           text(models.ColText72),
		Component:        text(models.ColComponent),
		Description:      text(models.ColDescription),
		UM:               text(models.ColUM),
		QtyCommitted:     qty(models.ColQtyCommitted),
		QtyIssued:        qty(models.ColQtyIssued),
		QtyOnHand:        qty(models.ColQtyOnHand),
		PurchaseOrder:    text(models.ColPurchaseOrder),
		Vendor:           text(models.ColVendor),
		QtyOrdered:       qty(models.ColQtyOrder),
		QtyReceived:      qty(models.ColQtyReceived),
		DateDue:          date(models.ColDateDueLine),
		DateLastReceived: date(models.ColDateLastReceived),
	}
}

// parseQuantity parses a numeric cell. Blank or non-numeric text yields a
// null quantity.
func parseQuantity(s string) decimal.NullDecimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// parseDate converts an Excel date serial to "2006-01-02" (with a clock
// part when one is set). Text cells are returned unchanged.
func parseDate(s string) models.Cell {
	if s == "" {
		return models.Cell{}
	}
	serial, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Text(s)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return models.Text(s)
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return models.Text(t.Format("2006-01-02"))
	}
	return models.Text(t.Format("2006-01-02 15:04:05"))
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
