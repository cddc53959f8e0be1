package derive

import (
	"time"

	"finloom/internal/domain"
)

type factIndex map[domain.FactKind]map[string]domain.Fields

func indexFacts(facts []domain.Fact) factIndex {
	idx := make(factIndex)
	for _, f := range facts {
		byCategory := idx[f.Kind]
		if byCategory == nil {
			byCategory = make(map[string]domain.Fields)
			idx[f.Kind] = byCategory
		}
		// First matching row wins when a category repeats.
		if _, ok := byCategory[f.Category]; !ok {
			byCategory[f.Category] = f.Fields
		}
	}
	return idx
}

func (fi factIndex) get(kind domain.FactKind, category string) domain.Fields {
	return fi[kind][category]
}

// Context carries one derivation run's inputs: the facts of the requested
// period and its predecessor, and the reports derived so far in this run.
// Later stages read earlier stages' output from here, never from the store.
type Context struct {
	Period time.Time
	Prior  time.Time

	current factIndex
	prior   factIndex

	Cogs         *domain.CogsBundle
	Pal1         *domain.Pal1
	TradingPl    *domain.TradingPl
	Pal2         *domain.Pal2
	Fin          *domain.FinAnalysis
	SalesSummary *domain.SalesSummary
}

// Fact returns the named fact's fields for the requested period. A nil
// result reads as all zeros.
func (c *Context) Fact(kind domain.FactKind, category string) domain.Fields {
	return c.current.get(kind, category)
}

// PriorFact returns the named fact's fields for the preceding period.
func (c *Context) PriorFact(kind domain.FactKind, category string) domain.Fields {
	return c.prior.get(kind, category)
}

// stockTotals sums qty and value over the named stock-valuation tags.
func stockTotals(fi factIndex, tags []string) (qty, value float64) {
	for _, tag := range tags {
		f := fi.get(domain.FactStockValuation, tag)
		qty += f.Get("qty")
		value += f.Get("value")
	}
	return qty, value
}
