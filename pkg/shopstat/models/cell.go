// Package models defines data structures for job-cost sheet analysis.
package models

import (
	"encoding/json"
	"strconv"
)

// Cell is a nullable text value read from a single sheet cell.
type Cell struct {
	// Value is the raw cell text.
	Value string
	// Valid is false when the cell was blank.
	Valid bool
}

// Text returns a Cell for s. An empty string yields a null Cell.
func Text(s string) Cell {
	return Cell{Value: s, Valid: s != ""}
}

// Present reports whether the cell holds any value.
func (c Cell) Present() bool {
	return c.Valid
}

// Truthy reports whether the cell holds a non-empty value that is not a
// numeric zero.
func (c Cell) Truthy() bool {
	if !c.Valid || c.Value == "" {
		return false
	}
	if f, err := strconv.ParseFloat(c.Value, 64); err == nil && f == 0 {
		return false
	}
	return true
}

// String returns the cell value, or "" for a null cell.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// MarshalJSON encodes a null cell as JSON null.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}
