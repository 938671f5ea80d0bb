package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
)

// TextOptions controls the optional sections of the text report.
type TextOptions struct {
	// ExampleJobs is how many jobs with PO lines get a full breakdown.
	ExampleJobs int
	// TopShortages limits the stock shortage listing. 0 omits it.
	TopShortages int
}

// DefaultTextOptions returns the default report options.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		ExampleJobs:  3,
		TopShortages: 10,
	}
}

// WriteText writes a human-readable report of s to w.
func WriteText(w io.Writer, s *models.Summary, opts TextOptions) error {
	var b strings.Builder

	section(&b, "ROW TYPE ANALYSIS")
	line(&b, "Customer/Project header rows", s.Rows.Header)
	line(&b, "Job rows", s.Rows.Job)
	line(&b, "Component detail rows", s.Rows.Component)
	line(&b, "Other/empty rows", s.Rows.Other)
	if s.Orphans > 0 {
		line(&b, "Component rows before any job", s.Orphans)
	}

	section(&b, "UNIQUE COUNTS")
	line(&b, "Unique customers", len(s.Customers))
	line(&b, "Unique jobs", len(s.Jobs))
	line(&b, "Unique sales orders", len(s.SalesOrders))
	line(&b, "Unique components", len(s.Components))
	line(&b, "Unique vendors", len(s.Vendors))
	line(&b, "Unique PO numbers", len(s.PONumbers))

	section(&b, "CODE_SORT VALUES")
	for _, cs := range s.CodeSorts {
		fmt.Fprintf(&b, "  %s: %s\n", cs.Code, humanize.Comma(int64(cs.Count)))
	}

	list(&b, "CUSTOMER LIST", s.Customers)
	list(&b, "SALES ORDER LIST", s.SalesOrders)
	list(&b, "JOB LIST", s.Jobs)

	section(&b, "PURCHASE ORDER ANALYSIS")
	line(&b, "Components with PO", s.PO.WithPO)
	line(&b, "PO fully received", s.PO.FullyReceived)
	line(&b, "PO partially received", s.PO.PartiallyReceived)
	line(&b, "PO not yet received", s.PO.NotReceived)

	section(&b, "STOCK AVAILABILITY ANALYSIS")
	line(&b, "Stock items with sufficient qty", s.Stock.Sufficient)
	line(&b, "Stock items with shortage", s.Stock.Shortage)

	if opts.TopShortages > 0 {
		shortages := s.Shortages()
		if len(shortages) > opts.TopShortages {
			shortages = shortages[:opts.TopShortages]
		}
		section(&b, fmt.Sprintf("TOP STOCK SHORTAGES (up to %d)", opts.TopShortages))
		for _, c := range shortages {
			fmt.Fprintf(&b, "  JOB %s  %s - %s: short %s (committed=%s onhand=%s)\n",
				c.Job, c.Component, c.Description, c.Shortage, c.Committed, c.OnHand)
		}
	}

	if opts.ExampleJobs > 0 {
		section(&b, fmt.Sprintf("EXAMPLE JOB BREAKDOWNS (first %d jobs with POs)", opts.ExampleJobs))
		for _, g := range s.ExampleJobs(opts.ExampleJobs) {
			fmt.Fprintf(&b, "\n  JOB: %s\n", g.Job)
			for _, c := range g.Components {
				fmt.Fprintf(&b, "    %s - %s: committed=%s onhand=%s issued=%s | %s\n",
					c.Component, c.Description, c.Committed, c.OnHand, c.Issued, sourceInfo(c))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteProfile writes a human-readable description of a workbook layout.
func WriteProfile(w io.Writer, p *models.WorkbookProfile) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Workbook: %s\n", p.BookName)
	names := make([]string, len(p.Sheets))
	for i, s := range p.Sheets {
		names[i] = s.Name
	}
	fmt.Fprintf(&b, "Sheet names: %s\n", strings.Join(names, ", "))

	for _, s := range p.Sheets {
		fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", 80))
		fmt.Fprintf(&b, "SHEET: %s\n", s.Name)
		fmt.Fprintf(&b, "Dimensions: %s\n", s.Dimension)
		fmt.Fprintf(&b, "Max row: %d, Max col: %d, Non-empty cells: %s\n",
			s.MaxRow, s.MaxCol, humanize.Comma(int64(s.NonEmptyCells)))

		if s.HeaderRow == 0 {
			b.WriteString("  Could not find header row\n")
			continue
		}

		fmt.Fprintf(&b, "\nHeader Row: %d\n", s.HeaderRow)
		for _, c := range s.Columns {
			fmt.Fprintf(&b, "  Col %d: %s\n", c.Index, c.Name)
		}

		b.WriteString("\n--- Column Data Type Analysis ---\n")
		for _, c := range s.Columns {
			fmt.Fprintf(&b, "  %s: types=%s, samples=[%s]\n", c.Name, typeCounts(c.Types), strings.Join(c.Samples, ", "))
		}

		fmt.Fprintf(&b, "\nTotal data rows (non-empty): %s\n", humanize.Comma(int64(s.DataRows)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n=== %s ===\n", title)
}

func line(b *strings.Builder, label string, n int) {
	fmt.Fprintf(b, "%s: %s\n", label, humanize.Comma(int64(n)))
}

func list(b *strings.Builder, title string, values []string) {
	section(b, title)
	for _, v := range values {
		fmt.Fprintf(b, "  %s\n", v)
	}
}

func sourceInfo(c models.ComponentRecord) string {
	if !c.HasPO {
		return "STOCK"
	}
	return fmt.Sprintf("PO#%s vendor:%s ordered:%s rcvd:%s due:%s",
		c.PO.Value, orNone(c.Vendor), qtyOrNone(c.Ordered), qtyOrNone(c.Received), orNone(c.DateDue))
}

func orNone(c models.Cell) string {
	if !c.Valid {
		return "-"
	}
	return c.Value
}

func qtyOrNone(n decimal.NullDecimal) string {
	if !n.Valid {
		return "-"
	}
	return n.Decimal.String()
}

func typeCounts(types map[string]int) string {
	keys := make([]string, 0, len(types))
	for k := range types {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, types[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
