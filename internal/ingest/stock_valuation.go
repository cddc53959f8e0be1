package ingest

import "finloom/internal/domain"

// stockValuationRows maps sheet rows to material tags. Qty sits in column 0
// and value in column 2; the skipped rows are section headers on the sheet.
var stockValuationRows = []struct {
	Row      int
	Material string
}{
	{3, domain.MaterialHdpeGranules},
	{4, domain.MaterialMasterBatches},
	{5, domain.MaterialColourPigments},
	{6, domain.MaterialTotalRawMaterial},
	{8, domain.MaterialTapeFactory},
	{9, domain.MaterialTapeJobWork},
	{10, domain.MaterialTotalWIP},
	{12, domain.MaterialFishnetFabrics},
	{13, domain.MaterialShadenetWeedMat},
	{14, domain.MaterialPPFabricSacks},
	{15, domain.MaterialTotalFinishedGoods},
	{17, domain.MaterialPackingMaterial},
	{18, domain.MaterialSeconds},
	{19, domain.MaterialTotalConsumables},
}

// StockValuation maps the monthly stock-valuation sheet: one qty/value fact
// per material tag. The period comes from the top-left date cell.
func StockValuation(rows [][]string) (*domain.Ledger, error) {
	p, err := ledgerDate(rows, 4, 0, 0)
	if err != nil {
		return nil, err
	}

	ledger := &domain.Ledger{Period: p}
	for _, m := range stockValuationRows {
		fields := extract(rows, []binding{
			{Row: m.Row, Col: 0, Field: "qty"},
			{Row: m.Row, Col: 2, Field: "value"},
		})
		ledger.Facts = append(ledger.Facts, fact(p, domain.FactStockValuation, m.Material, fields))
	}
	return ledger, nil
}
