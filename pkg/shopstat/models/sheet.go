package models

// ColumnProfile summarizes the values found under one header column.
type ColumnProfile struct {
	// Index is the column index (1-based).
	Index int `json:"index"`
	// Name is the header cell text.
	Name string `json:"name"`
	// Types counts values by inferred type (int, float, string).
	Types map[string]int `json:"types"`
	// Samples holds the first few values, truncated.
	Samples []string `json:"samples,omitempty"`
}

// SheetProfile describes the shape of a single sheet.
type SheetProfile struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Dimension is the used range (e.g. "A1:V300"), empty for a blank sheet.
	Dimension string `json:"dimension,omitempty"`
	// MaxRow and MaxCol are the 1-based extents of the used range.
	MaxRow int `json:"max_row"`
	MaxCol int `json:"max_col"`
	// NonEmptyCells counts cells holding a value within the used range.
	NonEmptyCells int `json:"non_empty_cells"`
	// HeaderRow is the detected header row (1-based), 0 when none was found.
	HeaderRow int `json:"header_row"`
	// Columns lists header columns with their value profiles.
	Columns []ColumnProfile `json:"columns,omitempty"`
	// DataRows counts non-empty rows below the header.
	DataRows int `json:"data_rows"`
}
