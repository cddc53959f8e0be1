package ingest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finloom/internal/domain"
	"finloom/internal/ingest"
)

// grid builds an empty sheet of the given depth; set places one cell,
// growing the row as needed.
func grid(depth int) [][]string {
	rows := make([][]string, depth)
	for i := range rows {
		rows[i] = make([]string, 8)
	}
	return rows
}

func set(rows [][]string, r, c int, v string) {
	for len(rows[r]) <= c {
		rows[r] = append(rows[r], "")
	}
	rows[r][c] = v
}

func findFact(t *testing.T, ledger *domain.Ledger, kind domain.FactKind, category string) domain.Fact {
	t.Helper()
	for _, f := range ledger.Facts {
		if f.Kind == kind && f.Category == category {
			return f
		}
	}
	t.Fatalf("no fact %s/%s in ledger", kind, category)
	return domain.Fact{}
}

func TestStockValuation(t *testing.T) {
	rows := grid(21)
	set(rows, 0, 0, "Feb-24")
	set(rows, 3, 0, "100.5")
	set(rows, 3, 2, "5000")
	set(rows, 19, 0, "7")
	set(rows, 19, 2, "930.25")

	ledger, err := ingest.StockValuation(rows)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), ledger.Period)
	assert.Len(t, ledger.Facts, 14)

	hdpe := findFact(t, ledger, domain.FactStockValuation, domain.MaterialHdpeGranules)
	assert.Equal(t, 100.5, hdpe.Fields["qty"])
	assert.Equal(t, 5000.0, hdpe.Fields["value"])

	cons := findFact(t, ledger, domain.FactStockValuation, domain.MaterialTotalConsumables)
	assert.Equal(t, 7.0, cons.Fields["qty"])
	assert.Equal(t, 930.25, cons.Fields["value"])

	// Rows never filled in read as zero.
	mb := findFact(t, ledger, domain.FactStockValuation, domain.MaterialMasterBatches)
	assert.Zero(t, mb.Fields["qty"])
	assert.Zero(t, mb.Fields["value"])
}

func TestStockValuationTooShort(t *testing.T) {
	rows := grid(3)
	set(rows, 0, 0, "Feb-24")

	_, err := ingest.StockValuation(rows)
	assert.ErrorIs(t, err, domain.ErrMalformedLedger)
}

func TestStockValuationBadDate(t *testing.T) {
	rows := grid(21)
	set(rows, 0, 0, "not a month")

	_, err := ingest.StockValuation(rows)
	assert.ErrorIs(t, err, domain.ErrMalformedLedger)
}

func TestStockValuationIdempotent(t *testing.T) {
	rows := grid(21)
	set(rows, 0, 0, "Mar-24")
	set(rows, 3, 0, "12")
	set(rows, 3, 2, "340")

	first, err := ingest.StockValuation(rows)
	require.NoError(t, err)
	second, err := ingest.StockValuation(rows)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQtyAnalysis(t *testing.T) {
	rows := grid(131)
	set(rows, 0, 1, "Feb-24")
	set(rows, 2, 1, "250")
	set(rows, 11, 1, "180")
	set(rows, 44, 1, "0.035")
	set(rows, 87, 1, "1200")
	set(rows, 130, 1, "0.5")

	ledger, err := ingest.QtyAnalysis(rows)
	require.NoError(t, err)
	assert.Len(t, ledger.Facts, 11)

	hdpe := findFact(t, ledger, domain.FactQtyAnalysis, domain.QtyHdpeStock)
	assert.Equal(t, 250.0, hdpe.Fields["openingStock"])
	assert.Equal(t, 180.0, hdpe.Fields["closingStock"])

	// Percentages arrive as fractions and are stored as whole percents.
	wastage := findFact(t, ledger, domain.FactQtyAnalysis, domain.QtyWastage)
	assert.InDelta(t, 3.5, wastage.Fields["wastagePercentage"], 1e-9)

	separated := findFact(t, ledger, domain.FactQtyAnalysis, domain.QtyRmSfgFgSeparated)
	assert.Equal(t, 50.0, separated.Fields["wastePercentage"])

	trading := findFact(t, ledger, domain.FactQtyAnalysis, domain.QtyShadeNetsTrading)
	assert.Equal(t, 1200.0, trading.Fields["receiptsMonoShade"])
}

func TestPurchases(t *testing.T) {
	rows := grid(3)
	set(rows, 2, 0, "Feb-24")
	set(rows, 2, 1, "500")
	set(rows, 2, 2, "25000")
	set(rows, 2, 13, "150")
	set(rows, 2, 14, "4200")
	set(rows, 2, 43, "9")
	set(rows, 2, 44, "810")

	ledger, err := ingest.Purchases(rows)
	require.NoError(t, err)
	assert.Len(t, ledger.Facts, 14)

	hdpe := findFact(t, ledger, domain.FactPurchase, domain.PurchaseHdpe)
	assert.Equal(t, 500.0, hdpe.Fields["kgs"])
	assert.Equal(t, 25000.0, hdpe.Fields["value"])

	cons := findFact(t, ledger, domain.FactPurchase, domain.PurchaseConsumables)
	assert.Equal(t, 150.0, cons.Fields["discount"])
	assert.Equal(t, 4200.0, cons.Fields["value"])

	trading := findFact(t, ledger, domain.FactPurchase, domain.PurchaseTrading)
	assert.Equal(t, 9.0, trading.Fields["kgs"])
	assert.Equal(t, 810.0, trading.Fields["value"])
}

func TestPurchasesDateCellPosition(t *testing.T) {
	// The purchase sheet's date sits on the data row, not the header.
	rows := grid(3)
	set(rows, 0, 0, "Feb-24")

	_, err := ingest.Purchases(rows)
	assert.ErrorIs(t, err, domain.ErrMalformedLedger)
}

func TestInventory(t *testing.T) {
	rows := grid(39)
	set(rows, 0, 1, "Feb-24")
	set(rows, 3, 1, "75")
	set(rows, 3, 3, "18750")
	set(rows, 21, 1, "30")
	set(rows, 21, 3, "1500")
	set(rows, 23, 1, "4000")
	set(rows, 23, 3, "960000")
	set(rows, 35, 3, "955000")
	set(rows, 38, 3, "1400")

	ledger, err := ingest.Inventory(rows)
	require.NoError(t, err)
	assert.Len(t, ledger.Facts, 18)

	mcf := findFact(t, ledger, domain.FactInventory, domain.InventoryMcf)
	assert.Equal(t, 75.0, mcf.Fields["outwardQty"])
	assert.Equal(t, 18750.0, mcf.Fields["amount"])

	rm := findFact(t, ledger, domain.FactInventory, domain.InventoryRawMaterial)
	assert.Equal(t, 30.0, rm.Fields["outwardQty"])

	sales := findFact(t, ledger, domain.FactSales, domain.CategorySalesDetails)
	assert.Equal(t, 4000.0, sales.Fields["grandTotalOutward"])
	assert.Equal(t, 960000.0, sales.Fields["grandTotalValue"])
	assert.Equal(t, 955000.0, sales.Fields["pal1FinalSales"])
	assert.Equal(t, 1400.0, sales.Fields["rmPurchaseForSales"])
}

func TestDirectExpenses(t *testing.T) {
	rows := grid(38)
	set(rows, 0, 1, "Feb-24")
	set(rows, 2, 1, "50000")
	set(rows, 27, 1, "8000")
	set(rows, 1, 4, "12000")
	set(rows, 24, 4, "20000")

	ledger, err := ingest.DirectExpenses(rows)
	require.NoError(t, err)
	assert.Len(t, ledger.Facts, 4)

	mfg := findFact(t, ledger, domain.FactExpenseManufacturing, domain.CategoryManufacturing)
	assert.Equal(t, 50000.0, mfg.Fields["employeeRemuneration"])

	extras := findFact(t, ledger, domain.FactExpenseExtras, domain.CategoryExtras)
	assert.Equal(t, 8000.0, extras.Fields["deprecation"])

	variable := findFact(t, ledger, domain.FactExpenseVariable, domain.CategoryVariableAndDirect)
	assert.Equal(t, 12000.0, variable.Fields["wagesFabric"])

	fixed := findFact(t, ledger, domain.FactExpenseFixed, domain.CategoryFixed)
	assert.Equal(t, 20000.0, fixed.Fields["depreciation"])
}

func TestIndirectExpenses(t *testing.T) {
	rows := [][]string{
		{"Month", "Feb-24"},
		{"Administrative Expenses", ""},
		{"Office Rent", "12000"},
		{"Printing", "800"},
		{"", "999"},
		{"Financial Expenses", ""},
		{"Bank Interest", "4500"},
		{"Selling Expenses", ""},
		{"Freight Outward", "2100"},
		{"Grand Total", ""},
		{"Indirect COST", "19400"},
	}

	ledger, err := ingest.IndirectExpenses(rows)
	require.NoError(t, err)
	assert.Len(t, ledger.Facts, 4)

	admin := findFact(t, ledger, domain.FactExpenseAdmin, domain.CategoryIndirect)
	assert.Equal(t, 12000.0, admin.Fields["Office Rent"])
	assert.Equal(t, 800.0, admin.Fields["Printing"])
	assert.Len(t, admin.Fields, 2)

	fin := findFact(t, ledger, domain.FactExpenseFinancial, domain.CategoryIndirect)
	assert.Equal(t, 4500.0, fin.Fields["Bank Interest"])

	selling := findFact(t, ledger, domain.FactExpenseSelling, domain.CategoryIndirect)
	assert.Equal(t, 2100.0, selling.Fields["Freight Outward"])

	totals := findFact(t, ledger, domain.FactExpenseTotal, domain.CategoryIndirect)
	assert.Equal(t, 19400.0, totals.Fields[domain.TotalIndirectCost])
}

func TestIndirectExpensesSellingSentinelOnce(t *testing.T) {
	rows := [][]string{
		{"Month", "Feb-24"},
		{"Selling Expenses", ""},
		{"Freight Outward", "2100"},
		{"Selling Expenses", "700"},
	}

	ledger, err := ingest.IndirectExpenses(rows)
	require.NoError(t, err)

	// The second sentinel row lands in the section as a plain expense.
	selling := findFact(t, ledger, domain.FactExpenseSelling, domain.CategoryIndirect)
	assert.Equal(t, 2100.0, selling.Fields["Freight Outward"])
	assert.Equal(t, 700.0, selling.Fields["Selling Expenses"])
}

func TestIndirectExpensesBlankValueDefaultsZero(t *testing.T) {
	rows := [][]string{
		{"Month", "Feb-24"},
		{"Administrative Expenses"},
		{"Office Rent"},
	}

	ledger, err := ingest.IndirectExpenses(rows)
	require.NoError(t, err)

	admin := findFact(t, ledger, domain.FactExpenseAdmin, domain.CategoryIndirect)
	assert.Zero(t, admin.Fields["Office Rent"])
}
