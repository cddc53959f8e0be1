package domain

import "errors"

var (
	ErrInvalidPeriodFormat = errors.New("unrecognized month or date format")
	ErrMalformedLedger     = errors.New("ledger sheet is malformed")
	ErrPeriodNotFound      = errors.New("no ledger data stored for the requested period")
	ErrReportNotFound      = errors.New("report has not been generated")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrNoReportSheets      = errors.New("workbook contains no recognized report sheets")
)
