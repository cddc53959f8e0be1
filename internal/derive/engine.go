package derive

import (
	"context"
	"fmt"
	"time"

	"finloom/internal/domain"
	"finloom/internal/period"
	"finloom/internal/port"
)

// Engine runs the report derivation stages for one period. Stages are
// ordered: COGS feeds PAL1, PAL1 and TradingPL feed PAL2, and the
// financial analysis reads COGS and PAL2. Requesting a later stage runs
// any missing dependency stages in the same Context first.
type Engine struct {
	facts   port.FactStore
	reports port.ReportStore
}

func NewEngine(facts port.FactStore, reports port.ReportStore) *Engine {
	return &Engine{facts: facts, reports: reports}
}

// Prepare loads the facts for p and its preceding month into a fresh
// Context. Both months must have at least one ingested fact.
func (e *Engine) Prepare(ctx context.Context, p time.Time) (*Context, error) {
	p = period.MonthStart(p)
	prior := period.Preceding(p)

	for _, month := range []time.Time{p, prior} {
		ok, err := e.facts.HasFacts(ctx, month)
		if err != nil {
			return nil, fmt.Errorf("derive.Prepare: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("no facts for %s: %w", month.Format("Jan-06"), domain.ErrPeriodNotFound)
		}
	}

	current, err := e.facts.GetAll(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("derive.Prepare: %w", err)
	}
	previous, err := e.facts.GetAll(ctx, prior)
	if err != nil {
		return nil, fmt.Errorf("derive.Prepare: %w", err)
	}

	return &Context{
		Period:  p,
		Prior:   prior,
		current: indexFacts(current),
		prior:   indexFacts(previous),
	}, nil
}

// Cogs derives the COGS bundle and persists each sub-report.
func (e *Engine) Cogs(ctx context.Context, c *Context) (*domain.CogsBundle, error) {
	if c.Cogs != nil {
		return c.Cogs, nil
	}
	bundle := buildCogs(c)

	saves := []struct {
		kind   domain.ReportKind
		report interface{}
	}{
		{domain.ReportHdpeCogs, bundle.Hdpe},
		{domain.ReportMbCogs, bundle.Mb},
		{domain.ReportCpCogs, bundle.Cp},
		{domain.ReportRmConsumptionCogs, bundle.RmConsumption},
		{domain.ReportMonofilCogs, bundle.Monofil},
		{domain.ReportTotalCogs, bundle.Total},
		{domain.ReportSfgFgOpening, bundle.SfgFgOpening},
		{domain.ReportSfgFgPurchase, bundle.SfgFgPurchase},
		{domain.ReportSfgFgClosing, bundle.SfgFgClosing},
		{domain.ReportTradingCogs, bundle.Trading},
	}
	for _, s := range saves {
		if err := e.reports.Save(ctx, c.Period, s.kind, s.report); err != nil {
			return nil, fmt.Errorf("derive.Cogs: %w", err)
		}
	}

	c.Cogs = bundle
	return bundle, nil
}

// Pal1 derives the first profit-and-loss statement. It runs the COGS stage
// first so the COGS sub-reports are derived and persisted before PAL1's,
// keeping the stage order fixed; buildPal1 itself reads only facts.
func (e *Engine) Pal1(ctx context.Context, c *Context) (*domain.Pal1, error) {
	if c.Pal1 != nil {
		return c.Pal1, nil
	}
	if _, err := e.Cogs(ctx, c); err != nil {
		return nil, err
	}

	report := buildPal1(c)
	if err := e.reports.Save(ctx, c.Period, domain.ReportPal1, report); err != nil {
		return nil, fmt.Errorf("derive.Pal1: %w", err)
	}
	c.Pal1 = report
	return report, nil
}

// TradingPl derives the trading profit-and-loss statement.
func (e *Engine) TradingPl(ctx context.Context, c *Context) (*domain.TradingPl, error) {
	if c.TradingPl != nil {
		return c.TradingPl, nil
	}

	report := buildTradingPl(c)
	if err := e.reports.Save(ctx, c.Period, domain.ReportTradingPl, report); err != nil {
		return nil, fmt.Errorf("derive.TradingPl: %w", err)
	}
	c.TradingPl = report
	return report, nil
}

// Pal2 derives the second profit-and-loss statement from this run's PAL1
// and TradingPL figures.
func (e *Engine) Pal2(ctx context.Context, c *Context) (*domain.Pal2, error) {
	if c.Pal2 != nil {
		return c.Pal2, nil
	}
	if _, err := e.Pal1(ctx, c); err != nil {
		return nil, err
	}
	if _, err := e.TradingPl(ctx, c); err != nil {
		return nil, err
	}

	report := buildPal2(c)
	if err := e.reports.Save(ctx, c.Period, domain.ReportPal2, report); err != nil {
		return nil, fmt.Errorf("derive.Pal2: %w", err)
	}
	c.Pal2 = report
	return report, nil
}

// FinAnalysis derives the financial analysis row from the COGS bundle and
// PAL2 figures of this run.
func (e *Engine) FinAnalysis(ctx context.Context, c *Context) (*domain.FinAnalysis, error) {
	if c.Fin != nil {
		return c.Fin, nil
	}
	if _, err := e.Pal2(ctx, c); err != nil {
		return nil, err
	}

	report := buildFinAnalysis(c)
	saves := []struct {
		kind   domain.ReportKind
		report interface{}
	}{
		{domain.ReportFinSales, report.Sales},
		{domain.ReportFinConsumption, report.Consumption},
		{domain.ReportFinOperating, report.Operating},
		{domain.ReportFinFixed, report.Fixed},
	}
	for _, s := range saves {
		if err := e.reports.Save(ctx, c.Period, s.kind, s.report); err != nil {
			return nil, fmt.Errorf("derive.FinAnalysis: %w", err)
		}
	}
	c.Fin = report
	return report, nil
}

// SalesSummary derives the sales summary row. It depends only on the
// period's inventory facts.
func (e *Engine) SalesSummary(ctx context.Context, c *Context) (*domain.SalesSummary, error) {
	if c.SalesSummary != nil {
		return c.SalesSummary, nil
	}

	report := buildSalesSummary(c)
	if err := e.reports.Save(ctx, c.Period, domain.ReportSalesSummary, report); err != nil {
		return nil, fmt.Errorf("derive.SalesSummary: %w", err)
	}
	c.SalesSummary = report
	return report, nil
}
