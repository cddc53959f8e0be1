package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"finloom/internal/domain"
)

// Reader extracts the first worksheet of an uploaded workbook as a 2-D
// cell array, the form the ledger mappers consume.
type Reader struct{}

func NewReader() Reader {
	return Reader{}
}

func (Reader) Rows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %v: %w", err, domain.ErrMalformedLedger)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets: %w", domain.ErrMalformedLedger)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %v: %w", sheet, err, domain.ErrMalformedLedger)
	}
	return rows, nil
}
