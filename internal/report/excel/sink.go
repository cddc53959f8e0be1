package excel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sink writes report workbooks under a fixed directory, one file per
// report name. Column-block reports grow to the right by one month per
// write; trend reports grow downward by one row.
type Sink struct {
	dir string
}

func NewSink(dir string) *Sink {
	return &Sink{dir: dir}
}

func (s *Sink) path(reportName string) string {
	return filepath.Join(s.dir, reportName+".xlsx")
}

// WriteColumnBlock appends one month's column block to the report file,
// creating it with headers and the label column when absent.
func (s *Sink) WriteColumnBlock(reportName, monthLabel string, columns []string, labels []string, cells [][]interface{}) (string, error) {
	path := s.path(reportName)

	f, exists, err := openOrCreate(path, reportName)
	if err != nil {
		return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	// Column B on create; otherwise the first free header column.
	startCol := 2
	if exists {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
		}
		startCol = freeHeaderColumn(rows)
	}

	if !exists {
		if err := f.SetCellValue(sheet, "A1", "Particulars"); err != nil {
			return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
		}
		for i, label := range labels {
			cell, _ := excelize.CoordinatesToCellName(1, 3+i)
			if err := f.SetCellValue(sheet, cell, label); err != nil {
				return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
			}
		}
		if err := f.SetColWidth(sheet, "A", "A", 25); err != nil {
			return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
		}
	}

	monthCell, _ := excelize.CoordinatesToCellName(startCol, 1)
	if err := f.SetCellValue(sheet, monthCell, monthLabel); err != nil {
		return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
	}
	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(startCol+i, 2)
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
		}
	}

	// Spacer rows advance the row counter without writing cells.
	for i, rowCells := range cells {
		if rowCells == nil {
			continue
		}
		for j, v := range rowCells {
			cell, _ := excelize.CoordinatesToCellName(startCol+j, 3+i)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
			}
		}
	}

	first, _ := excelize.ColumnNumberToName(startCol)
	last, _ := excelize.ColumnNumberToName(startCol + len(columns) - 1)
	if err := f.SetColWidth(sheet, first, last, 15); err != nil {
		return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("excelSink.WriteColumnBlock: %w", err)
	}
	return path, nil
}

// WriteTrendRow appends one row to the trend report file, writing the
// header rows only when the file is created.
func (s *Sink) WriteTrendRow(reportName string, headers [][]interface{}, row []interface{}) (string, error) {
	path := s.path(reportName)

	f, exists, err := openOrCreate(path, reportName)
	if err != nil {
		return "", fmt.Errorf("excelSink.WriteTrendRow: %w", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)

	startRow := len(headers) + 1
	if exists {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("excelSink.WriteTrendRow: %w", err)
		}
		startRow = len(rows) + 1
	} else {
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(1, 1+i)
			if err := f.SetSheetRow(sheet, cell, &header); err != nil {
				return "", fmt.Errorf("excelSink.WriteTrendRow: %w", err)
			}
		}
	}

	cell, _ := excelize.CoordinatesToCellName(1, startRow)
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return "", fmt.Errorf("excelSink.WriteTrendRow: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("excelSink.WriteTrendRow: %w", err)
	}
	return path, nil
}

// openOrCreate opens the workbook at path, or starts a fresh one whose
// single sheet carries the report name.
func openOrCreate(path, reportName string) (*excelize.File, bool, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, false, err
		}
		return f, true, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, false, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", reportName); err != nil {
		f.Close()
		return nil, false, err
	}
	return f, false, nil
}

// freeHeaderColumn returns the 1-based column where the next month block
// starts: one past the widest of the two header rows, so a new block never
// overlaps the previous month's columns.
func freeHeaderColumn(rows [][]string) int {
	width := 1
	for i, row := range rows {
		if i > 1 {
			break
		}
		if len(row) > width {
			width = len(row)
		}
	}
	return width + 1
}
