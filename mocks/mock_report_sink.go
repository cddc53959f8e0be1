package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockReportSink is a mock implementation of port.ReportSink.
type MockReportSink struct {
	mock.Mock
}

func (m *MockReportSink) WriteColumnBlock(reportName, monthLabel string, columns []string, labels []string, cells [][]interface{}) (string, error) {
	args := m.Called(reportName, monthLabel, columns, labels, cells)
	return args.String(0), args.Error(1)
}

func (m *MockReportSink) WriteTrendRow(reportName string, headers [][]interface{}, row []interface{}) (string, error) {
	args := m.Called(reportName, headers, row)
	return args.String(0), args.Error(1)
}
