package models

// WorkbookProfile describes the layout of every sheet in a workbook.
type WorkbookProfile struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists sheet profiles in workbook order.
	Sheets []SheetProfile `json:"sheets"`
}
