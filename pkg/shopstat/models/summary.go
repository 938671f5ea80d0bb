package models

import "sort"

// RowCounts counts rows by classification.
type RowCounts struct {
	Header    int `json:"header"`
	Job       int `json:"job"`
	Component int `json:"component"`
	Other     int `json:"other"`
}

// Total returns the number of rows seen.
func (c RowCounts) Total() int {
	return c.Header + c.Job + c.Component + c.Other
}

// POTally counts grouped PO lines by fulfillment state.
type POTally struct {
	WithPO            int `json:"with_po"`
	FullyReceived     int `json:"fully_received"`
	PartiallyReceived int `json:"partially_received"`
	NotReceived       int `json:"not_received"`
}

// StockTally counts grouped stock lines by sufficiency.
type StockTally struct {
	Sufficient int `json:"sufficient"`
	Shortage   int `json:"shortage"`
}

// CodeSortCount is the number of header rows carrying a code-sort value.
type CodeSortCount struct {
	Code  string `json:"code"`
	Count int    `json:"count"`
}

// JobGroup holds the component records of one job in sheet order.
type JobGroup struct {
	Job        string            `json:"job"`
	Components []ComponentRecord `json:"components"`
}

// HasPO reports whether any component of the job is purchased.
func (g JobGroup) HasPO() bool {
	for _, c := range g.Components {
		if c.HasPO {
			return true
		}
	}
	return false
}

// Summary is the result of one pass over a job-cost sheet.
type Summary struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// Sheet is the analyzed sheet name.
	Sheet string `json:"sheet"`

	Rows RowCounts `json:"rows"`

	// Unique values, sorted.
	Customers   []string `json:"customers"`
	Jobs        []string `json:"jobs"`
	SalesOrders []string `json:"sales_orders"`
	Components  []string `json:"components"`
	Vendors     []string `json:"vendors"`
	PONumbers   []string `json:"po_numbers"`

	// CodeSorts is ordered by count, most common first.
	CodeSorts []CodeSortCount `json:"code_sorts"`

	// JobGroups is ordered by the first appearance of each job.
	JobGroups []JobGroup `json:"job_groups"`

	PO    POTally    `json:"po"`
	Stock StockTally `json:"stock"`

	// Orphans counts component rows seen before any job row.
	Orphans int `json:"orphans"`
}

// Shortages returns the stock records with a positive shortage, largest
// shortage first. Ties keep sheet order.
func (s *Summary) Shortages() []ComponentRecord {
	var out []ComponentRecord
	for _, g := range s.JobGroups {
		for _, c := range g.Components {
			if !c.HasPO && c.Shortage.IsPositive() {
				out = append(out, c)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Shortage.GreaterThan(out[j].Shortage)
	})
	return out
}

// ExampleJobs returns up to n jobs that have at least one PO line, in
// first-seen order.
func (s *Summary) ExampleJobs(n int) []JobGroup {
	var out []JobGroup
	for _, g := range s.JobGroups {
		if len(out) >= n {
			break
		}
		if g.HasPO() {
			out = append(out, g)
		}
	}
	return out
}
