// Package shopstat analyzes job-cost workbooks for inventory shortages and
// purchase-order fulfillment.
package shopstat

import "log/slog"

// DefaultSheet is the sheet analyzed when none is named.
const DefaultSheet = "JCS"

// Options configures analysis behavior.
type Options struct {
	// Sheet is the sheet to analyze. Defaults to DefaultSheet.
	Sheet string
	// HeaderRow is the 1-based row holding column headings. Data starts on
	// the next row. If 0, the header row is detected.
	HeaderRow int
	// Logger receives progress and diagnostic records.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		Sheet: DefaultSheet,
	}
}

// SheetName returns the sheet to analyze.
func (o Options) SheetName() string {
	if o.Sheet == "" {
		return DefaultSheet
	}
	return o.Sheet
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
