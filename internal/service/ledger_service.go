package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"finloom/internal/config"
	"finloom/internal/domain"
	"finloom/internal/ingest"
	"finloom/internal/port"
)

// LedgerCategory names one of the six uploadable ledger sheets.
type LedgerCategory string

const (
	LedgerStockValuation   LedgerCategory = "stock-valuation"
	LedgerQtyAnalysis      LedgerCategory = "qty-analysis"
	LedgerPurchases        LedgerCategory = "purchases"
	LedgerInventory        LedgerCategory = "inventory"
	LedgerDirectExpenses   LedgerCategory = "direct-expenses"
	LedgerIndirectExpenses LedgerCategory = "indirect-expenses"
)

var ledgerMappers = map[LedgerCategory]ingest.Mapper{
	LedgerStockValuation:   ingest.StockValuation,
	LedgerQtyAnalysis:      ingest.QtyAnalysis,
	LedgerPurchases:        ingest.Purchases,
	LedgerInventory:        ingest.Inventory,
	LedgerDirectExpenses:   ingest.DirectExpenses,
	LedgerIndirectExpenses: ingest.IndirectExpenses,
}

// LedgerUploadInput is the DTO for ledger upload requests.
type LedgerUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// LedgerService ingests uploaded ledger workbooks into the fact store.
type LedgerService interface {
	Ingest(ctx context.Context, category LedgerCategory, input LedgerUploadInput) (*domain.Ledger, error)
}

type ledgerService struct {
	facts  port.FactStore
	reader port.SheetReader
	cfg    *config.UploadsConfig
}

// NewLedgerService creates a new LedgerService implementation.
func NewLedgerService(facts port.FactStore, reader port.SheetReader, cfg *config.UploadsConfig) LedgerService {
	return &ledgerService{
		facts:  facts,
		reader: reader,
		cfg:    cfg,
	}
}

func (s *ledgerService) Ingest(ctx context.Context, category LedgerCategory, input LedgerUploadInput) (*domain.Ledger, error) {
	mapper, ok := ledgerMappers[category]
	if !ok {
		return nil, fmt.Errorf("ledgerService.Ingest: unknown ledger category %q", category)
	}

	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if ext != "xlsx" {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection. An xlsx
	// workbook is a zip container.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	if http.DetectContentType(buf[:n]) != "application/zip" {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for parsing
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	rows, err := s.reader.Rows(input.File)
	if err != nil {
		log.Printf("ledgerService.Ingest: failed to read %s workbook %s: %v", category, input.Header.Filename, err)
		return nil, fmt.Errorf("reading %s workbook: %w", category, err)
	}

	ledger, err := mapper(rows)
	if err != nil {
		log.Printf("ledgerService.Ingest: failed to map %s workbook %s: %v", category, input.Header.Filename, err)
		return nil, fmt.Errorf("mapping %s workbook: %w", category, err)
	}

	for i := range ledger.Facts {
		if err := s.facts.Upsert(ctx, &ledger.Facts[i]); err != nil {
			log.Printf("ledgerService.Ingest: failed to store fact %s/%s: %v",
				ledger.Facts[i].Kind, ledger.Facts[i].Category, err)
			return nil, fmt.Errorf("storing %s facts: %w", category, err)
		}
	}

	log.Printf("ledgerService.Ingest: stored %d %s facts for period %s",
		len(ledger.Facts), category, ledger.Period.Format("Jan-06"))
	return ledger, nil
}
