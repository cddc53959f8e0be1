package excel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"finloom/internal/domain"
)

const consolidatedName = "ConsolidatedReports"

// reportOrder fixes the sheet order of the consolidated workbook.
var reportOrder = []string{"COGS", "PAL1", "TradingPL", "PAL2", "FinAnalysis", "SalesSummary"}

// Consolidate merges the first sheet of each report workbook into a single
// ConsolidatedReports.xlsx. Reports that have not been generated yet get a
// one-cell placeholder sheet instead.
func (s *Sink) Consolidate() (string, error) {
	out := excelize.NewFile()
	defer out.Close()

	for i, name := range reportOrder {
		if i == 0 {
			if err := out.SetSheetName("Sheet1", name); err != nil {
				return "", fmt.Errorf("excelSink.Consolidate: %w", err)
			}
		} else if _, err := out.NewSheet(name); err != nil {
			return "", fmt.Errorf("excelSink.Consolidate: %w", err)
		}

		rows, err := firstSheetRows(s.path(name))
		if err != nil {
			rows = [][]string{{"No data available for " + name + ".xlsx"}}
		}
		if err := writeRows(out, name, rows); err != nil {
			return "", fmt.Errorf("excelSink.Consolidate: %w", err)
		}
	}

	path := s.path(consolidatedName)
	if err := out.SaveAs(path); err != nil {
		return "", fmt.Errorf("excelSink.Consolidate: %w", err)
	}
	return path, nil
}

// Separate splits the consolidated workbook back into one file per
// recognized report sheet, overwriting the standalone report files.
func (s *Sink) Separate() ([]string, error) {
	path := s.path(consolidatedName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), domain.ErrReportNotFound)
	}

	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("excelSink.Separate: %w", err)
	}
	defer wb.Close()

	recognized := make(map[string]bool, len(reportOrder))
	for _, name := range reportOrder {
		recognized[name] = true
	}

	var written []string
	for _, sheet := range wb.GetSheetList() {
		if !recognized[sheet] {
			continue
		}
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("excelSink.Separate: %w", err)
		}

		out := excelize.NewFile()
		if err := out.SetSheetName("Sheet1", sheet); err != nil {
			out.Close()
			return nil, fmt.Errorf("excelSink.Separate: %w", err)
		}
		if err := writeRows(out, sheet, rows); err != nil {
			out.Close()
			return nil, fmt.Errorf("excelSink.Separate: %w", err)
		}

		dest := s.path(sheet)
		if err := out.SaveAs(dest); err != nil {
			out.Close()
			return nil, fmt.Errorf("excelSink.Separate: %w", err)
		}
		out.Close()
		written = append(written, dest)
	}

	if len(written) == 0 {
		return nil, domain.ErrNoReportSheets
	}
	return written, nil
}

func firstSheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(f.GetSheetName(0))
}

func writeRows(f *excelize.File, sheet string, rows [][]string) error {
	for i, row := range rows {
		for j, v := range row {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
