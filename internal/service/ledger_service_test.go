package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finloom/internal/config"
	"finloom/internal/domain"
	"finloom/internal/service"
	"finloom/mocks"
)

// memFile adapts an in-memory byte slice to multipart.File.
type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

// xlsxBytes returns content that passes the zip magic-byte sniff.
func xlsxBytes() []byte {
	return append([]byte("PK\x03\x04"), make([]byte, 64)...)
}

func uploadInput(name string, content []byte) service.LedgerUploadInput {
	return service.LedgerUploadInput{
		File:   memFile{bytes.NewReader(content)},
		Header: &multipart.FileHeader{Filename: name, Size: int64(len(content))},
	}
}

func newLedgerService(facts *mocks.MockFactStore, reader *mocks.MockSheetReader) service.LedgerService {
	return service.NewLedgerService(facts, reader, &config.UploadsConfig{MaxFileSizeMB: 20})
}

func TestIngestRejectsUnsupportedExtension(t *testing.T) {
	facts := new(mocks.MockFactStore)
	reader := new(mocks.MockSheetReader)
	svc := newLedgerService(facts, reader)

	_, err := svc.Ingest(context.Background(), service.LedgerStockValuation, uploadInput("ledger.csv", xlsxBytes()))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	reader.AssertNotCalled(t, "Rows", mock.Anything)
}

func TestIngestRejectsNonZipContent(t *testing.T) {
	facts := new(mocks.MockFactStore)
	reader := new(mocks.MockSheetReader)
	svc := newLedgerService(facts, reader)

	_, err := svc.Ingest(context.Background(), service.LedgerStockValuation, uploadInput("ledger.xlsx", []byte("not a workbook at all, just text")))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestIngestRejectsOversizedFile(t *testing.T) {
	facts := new(mocks.MockFactStore)
	reader := new(mocks.MockSheetReader)
	svc := service.NewLedgerService(facts, reader, &config.UploadsConfig{MaxFileSizeMB: 0})

	_, err := svc.Ingest(context.Background(), service.LedgerStockValuation, uploadInput("ledger.xlsx", xlsxBytes()))

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestIngestStoresMappedFacts(t *testing.T) {
	facts := new(mocks.MockFactStore)
	reader := new(mocks.MockSheetReader)
	svc := newLedgerService(facts, reader)

	// A minimal stock-valuation sheet: date cell plus empty body rows.
	// Every bound cell is absent and defaults to zero.
	reader.On("Rows", mock.Anything).Return([][]string{{"Feb-24"}, {}, {}, {}}, nil)
	facts.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Fact")).Return(nil)

	ledger, err := svc.Ingest(context.Background(), service.LedgerStockValuation, uploadInput("stock.xlsx", xlsxBytes()))

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), ledger.Period)
	assert.Len(t, ledger.Facts, 14)
	facts.AssertNumberOfCalls(t, "Upsert", 14)
}

func TestIngestMalformedLedger(t *testing.T) {
	facts := new(mocks.MockFactStore)
	reader := new(mocks.MockSheetReader)
	svc := newLedgerService(facts, reader)

	reader.On("Rows", mock.Anything).Return([][]string{{"Feb-24"}}, nil)

	_, err := svc.Ingest(context.Background(), service.LedgerStockValuation, uploadInput("stock.xlsx", xlsxBytes()))

	assert.ErrorIs(t, err, domain.ErrMalformedLedger)
	facts.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
