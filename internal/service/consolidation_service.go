package service

import (
	"fmt"
	"log"

	"finloom/internal/port"
)

// ConsolidationService merges the report workbooks into one file and splits
// a consolidated workbook back into per-report files.
type ConsolidationService interface {
	Consolidate() (string, error)
	Separate() ([]string, error)
}

type consolidationService struct {
	books port.Consolidator
}

// NewConsolidationService creates a new ConsolidationService implementation.
func NewConsolidationService(books port.Consolidator) ConsolidationService {
	return &consolidationService{books: books}
}

func (s *consolidationService) Consolidate() (string, error) {
	path, err := s.books.Consolidate()
	if err != nil {
		log.Printf("consolidationService.Consolidate: %v", err)
		return "", fmt.Errorf("consolidating reports: %w", err)
	}
	log.Printf("consolidationService.Consolidate: wrote %s", path)
	return path, nil
}

func (s *consolidationService) Separate() ([]string, error) {
	paths, err := s.books.Separate()
	if err != nil {
		log.Printf("consolidationService.Separate: %v", err)
		return nil, err
	}
	log.Printf("consolidationService.Separate: wrote %d report files", len(paths))
	return paths, nil
}
