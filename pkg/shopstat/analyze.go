package shopstat

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/shopstat-go/pkg/shopstat/aggregate"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/models"
	"github.com/ukaji3/shopstat-go/pkg/shopstat/parser"
	"github.com/xuri/excelize/v2"
)

// Analyze reads one sheet of a job-cost workbook and summarizes it.
func Analyze(path string, opts Options) (*models.Summary, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	summary, err := AnalyzeWorkbook(f, opts)
	if err != nil {
		return nil, err
	}
	summary.BookName = filepath.Base(path)
	return summary, nil
}

// AnalyzeWorkbook summarizes one sheet of an open workbook.
func AnalyzeWorkbook(f *excelize.File, opts Options) (*models.Summary, error) {
	logger := opts.logger()
	sheetName := opts.SheetName()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, NewAnalysisError(sheetName, "open", ErrSheetNotFound)
	}

	raw, err := parser.LoadSheet(f, sheetName)
	if err != nil {
		return nil, NewAnalysisError(sheetName, "rows", err)
	}

	headerRow := opts.HeaderRow
	if headerRow <= 0 {
		detected, ok := parser.DetectHeaderRow(raw, parser.DefaultProfileParams())
		if !ok {
			detected = 1
			logger.Warn("no header row found, assuming row 1", slog.String("sheet", sheetName))
		}
		headerRow = detected
	}

	rows := parser.MapRows(raw, headerRow+1)
	logger.Info("sheet loaded",
		slog.String("sheet", sheetName),
		slog.Int("header_row", headerRow),
		slog.Int("rows", len(rows)))

	agg := aggregate.New(logger)
	agg.AddAll(rows)

	summary := agg.Summary()
	summary.Sheet = sheetName

	logger.Info("sheet analyzed",
		slog.String("sheet", sheetName),
		slog.Int("jobs", len(summary.Jobs)),
		slog.Int("components", summary.Rows.Component),
		slog.Int("orphans", summary.Orphans))

	return summary, nil
}

// Profile describes the layout of every sheet in a workbook.
func Profile(path string, opts Options) (*models.WorkbookProfile, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	logger := opts.logger()
	profile := &models.WorkbookProfile{BookName: filepath.Base(path)}

	for _, sheetName := range f.GetSheetList() {
		sheet, err := parser.ProfileSheet(f, sheetName, parser.DefaultProfileParams())
		if err != nil {
			return nil, NewAnalysisError(sheetName, "profile", err)
		}
		if sheet.HeaderRow == 0 {
			logger.Warn("could not find header row", slog.String("sheet", sheetName))
		}
		profile.Sheets = append(profile.Sheets, sheet)
	}

	return profile, nil
}

func open(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}
