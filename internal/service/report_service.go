package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"finloom/internal/derive"
	"finloom/internal/domain"
	"finloom/internal/period"
	"finloom/internal/port"
	"finloom/internal/report"
)

// ReportService derives the monthly reports and writes them into the report
// workbooks, returning the file path written. Fetch reads back a stored
// derived report without re-deriving.
type ReportService interface {
	Cogs(ctx context.Context, month string) (string, error)
	Pal1(ctx context.Context, month string) (string, error)
	TradingPl(ctx context.Context, month string) (string, error)
	Pal2(ctx context.Context, month string) (string, error)
	FinAnalysis(ctx context.Context, month string) (string, error)
	SalesSummary(ctx context.Context, month string) (string, error)
	Fetch(ctx context.Context, kind, month string) (json.RawMessage, error)
}

type reportService struct {
	engine  *derive.Engine
	sink    port.ReportSink
	reports port.ReportStore
}

// NewReportService creates a new ReportService implementation.
func NewReportService(engine *derive.Engine, sink port.ReportSink, reports port.ReportStore) ReportService {
	return &reportService{
		engine:  engine,
		sink:    sink,
		reports: reports,
	}
}

func monthLabel(p time.Time) string {
	return p.Format("Jan-06")
}

func (s *reportService) prepare(ctx context.Context, month string) (*derive.Context, error) {
	p, err := period.Resolve(month)
	if err != nil {
		return nil, fmt.Errorf("resolving month %q: %w", month, err)
	}
	c, err := s.engine.Prepare(ctx, p)
	if err != nil {
		log.Printf("reportService.prepare: %v", err)
		return nil, err
	}
	return c, nil
}

func (s *reportService) writeBlock(b report.ColumnBlock) (string, error) {
	path, err := s.sink.WriteColumnBlock(b.Name, b.Month, b.Columns, b.Labels, b.Cells)
	if err != nil {
		log.Printf("reportService.writeBlock: failed to write %s: %v", b.Name, err)
		return "", fmt.Errorf("writing %s workbook: %w", b.Name, err)
	}
	log.Printf("reportService.writeBlock: appended %s column block to %s", b.Month, path)
	return path, nil
}

func (s *reportService) writeTrend(t report.TrendRow) (string, error) {
	path, err := s.sink.WriteTrendRow(t.Name, t.Headers, t.Row)
	if err != nil {
		log.Printf("reportService.writeTrend: failed to write %s: %v", t.Name, err)
		return "", fmt.Errorf("writing %s workbook: %w", t.Name, err)
	}
	log.Printf("reportService.writeTrend: appended trend row to %s", path)
	return path, nil
}

func (s *reportService) Cogs(ctx context.Context, month string) (string, error) {
	c, err := s.prepare(ctx, month)
	if err != nil {
		return "", err
	}
	b, err := s.engine.Cogs(ctx, c)
	if err != nil {
		return "", fmt.Errorf("deriving cogs: %w", err)
	}
	return s.writeBlock(report.FormatCogs(b, monthLabel(c.Period)))
}

func (s *reportService) Pal1(ctx context.Context, month string) (string, error) {
	c, err := s.prepare(ctx, month)
	if err != nil {
		return "", err
	}
	p, err := s.engine.Pal1(ctx, c)
	if err != nil {
		return "", fmt.Errorf("deriving pal1: %w", err)
	}
	return s.writeBlock(report.FormatPal1(p, monthLabel(c.Period)))
}

func (s *reportService) TradingPl(ctx context.Context, month string) (string, error) {
	c, err := s.prepare(ctx, month)
	if err != nil {
		return "", err
	}
	p, err := s.engine.TradingPl(ctx, c)
	if err != nil {
		return "", fmt.Errorf("deriving trading p&l: %w", err)
	}
	return s.writeBlock(report.FormatTradingPl(p, monthLabel(c.Period)))
}

func (s *reportService) Pal2(ctx context.Context, month string) (string, error) {
	c, err := s.prepare(ctx, month)
	if err != nil {
		return "", err
	}
	p, err := s.engine.Pal2(ctx, c)
	if err != nil {
		return "", fmt.Errorf("deriving pal2: %w", err)
	}
	return s.writeBlock(report.FormatPal2(p, monthLabel(c.Period)))
}

func (s *reportService) FinAnalysis(ctx context.Context, month string) (string, error) {
	c, err := s.prepare(ctx, month)
	if err != nil {
		return "", err
	}
	f, err := s.engine.FinAnalysis(ctx, c)
	if err != nil {
		return "", fmt.Errorf("deriving financial analysis: %w", err)
	}
	return s.writeTrend(report.FormatFinAnalysis(f, monthLabel(c.Period)))
}

func (s *reportService) SalesSummary(ctx context.Context, month string) (string, error) {
	c, err := s.prepare(ctx, month)
	if err != nil {
		return "", err
	}
	sum, err := s.engine.SalesSummary(ctx, c)
	if err != nil {
		return "", fmt.Errorf("deriving sales summary: %w", err)
	}
	return s.writeTrend(report.FormatSalesSummary(sum, monthLabel(c.Period)))
}

func (s *reportService) Fetch(ctx context.Context, kind, month string) (json.RawMessage, error) {
	k, ok := domain.ParseReportKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown report kind %q: %w", kind, domain.ErrReportNotFound)
	}
	p, err := period.Resolve(month)
	if err != nil {
		return nil, fmt.Errorf("resolving month %q: %w", month, err)
	}

	var fields json.RawMessage
	found, err := s.reports.Load(ctx, p, k, &fields)
	if err != nil {
		log.Printf("reportService.Fetch: failed to load %s for %s: %v", kind, monthLabel(p), err)
		return nil, fmt.Errorf("loading %s report: %w", kind, err)
	}
	if !found {
		return nil, fmt.Errorf("%s for %s: %w", kind, monthLabel(p), domain.ErrReportNotFound)
	}
	return fields, nil
}
