package ingest

import "finloom/internal/domain"

// purchaseLines binds the purchase sheet's single data row (row 2) to the
// purchase-line categories. Each line occupies a kgs/value column pair; only
// consumables differs, carrying a discount figure next to its value.
var purchaseLines = []struct {
	Category string
	KgsCol   int
	ValueCol int
}{
	{domain.PurchaseHdpe, 1, 2},
	{domain.PurchaseMasterBatch, 4, 5},
	{domain.PurchaseColourPigment, 7, 8},
	{domain.PurchaseTsn, 16, 17},
	{domain.PurchaseMsn, 19, 20},
	{domain.PurchasePps, 22, 23},
	{domain.PurchaseTotal, 25, 26},
	{domain.PurchaseSravyaOthers, 28, 29},
	{domain.PurchaseYarn, 31, 32},
	{domain.PurchaseTsnRmConsumed, 34, 35},
	{domain.PurchaseTsnConsumed, 37, 38},
	{domain.PurchaseTsnTotalConsumed, 40, 41},
	{domain.PurchaseTrading, 43, 44},
}

// Purchases maps the monthly purchase sheet: fourteen purchase-line facts,
// all read from row 2. The date sits at row 2 column 0.
func Purchases(rows [][]string) (*domain.Ledger, error) {
	p, err := ledgerDate(rows, 3, 2, 0)
	if err != nil {
		return nil, err
	}

	ledger := &domain.Ledger{Period: p}
	for _, line := range purchaseLines {
		fields := extract(rows, []binding{
			{Row: 2, Col: line.KgsCol, Field: "kgs"},
			{Row: 2, Col: line.ValueCol, Field: "value"},
		})
		ledger.Facts = append(ledger.Facts, fact(p, domain.FactPurchase, line.Category, fields))
	}

	consumables := extract(rows, []binding{
		{Row: 2, Col: 13, Field: "discount"},
		{Row: 2, Col: 14, Field: "value"},
	})
	ledger.Facts = append(ledger.Facts, fact(p, domain.FactPurchase, domain.PurchaseConsumables, consumables))

	return ledger, nil
}
