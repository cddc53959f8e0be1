package port

import "io"

// ReportSink writes formatted report output to workbook files.
type ReportSink interface {
	// WriteColumnBlock appends one month's Qty/Rate/Value style column block
	// to the named report, creating the file with headers and a label
	// column on first write. Returns the file path written.
	WriteColumnBlock(reportName, monthLabel string, columns []string, labels []string, cells [][]interface{}) (string, error)
	// WriteTrendRow appends one row to the named trend report, writing the
	// header rows only on file creation. Returns the file path written.
	WriteTrendRow(reportName string, headers [][]interface{}, row []interface{}) (string, error)
}

// Consolidator merges the six report workbooks into a single workbook and
// splits it back again.
type Consolidator interface {
	// Consolidate combines each report's first sheet into one workbook,
	// substituting a placeholder sheet for reports not yet generated.
	Consolidate() (string, error)
	// Separate rewrites each recognized sheet of the consolidated workbook
	// as a standalone report file.
	Separate() ([]string, error)
}

// SheetReader extracts the first sheet of an uploaded workbook as a 2-D
// cell array.
type SheetReader interface {
	Rows(r io.Reader) ([][]string, error)
}
