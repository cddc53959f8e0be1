package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finloom/internal/domain"
)

func TestFormatCostPercentage(t *testing.T) {
	assert.Equal(t, "42%", formatCostPercentage(420, 1000))
	assert.Equal(t, "3%", formatCostPercentage(25, 1000))
	assert.Equal(t, "", formatCostPercentage(500, 0))
	assert.Equal(t, "0%", formatCostPercentage(0, 1000))
}

func TestSumDisplayPercentages(t *testing.T) {
	assert.Equal(t, 7, sumDisplayPercentages("3%", "4%"))
	assert.Equal(t, 3, sumDisplayPercentages("3%", ""))
	assert.Equal(t, 0, sumDisplayPercentages("", ""))
}

func TestRateFallbacks(t *testing.T) {
	assert.Equal(t, "2.50", rateFixed(5, 2))
	assert.Equal(t, 0, rateFixed(5, 0))
	assert.Equal(t, "2.50", rateBlank(5, 2))
	assert.Equal(t, "", rateBlank(5, 0))
}

func TestFormatCogsLayout(t *testing.T) {
	b := &domain.CogsBundle{
		Hdpe: domain.MaterialCogs{
			OpeningStock: 100, OpeningStockValue: 5000,
			PurchaseQty: 50, PurchaseValue: 2400,
			SalesQty: 30, SalesValue: 1400,
			ClosingStockQty: 110, ClosingStockValue: 5800,
		},
	}

	block := FormatCogs(b, "Feb-24")
	assert.Equal(t, "COGS", block.Name)
	assert.Equal(t, []string{"Qty", "Rate", "Value"}, block.Columns)
	require.Len(t, block.Cells, len(block.Labels))

	assert.Equal(t, "HDPE", block.Labels[0])
	assert.Equal(t, "Opening Stock", block.Labels[1])
	assert.Equal(t, []interface{}{100.0, "50.00", 5000.0}, block.Cells[1])

	// Consumption HDPE = 100 + 50 - (30 + 110) = 10 qty, 200 value.
	assert.Equal(t, "Consumption HDPE", block.Labels[5])
	assert.Equal(t, []interface{}{10.0, "20.00", 200.0}, block.Cells[5])

	// Section spacers occupy a row but carry no cells.
	assert.Equal(t, "", block.Labels[6])
	assert.Nil(t, block.Cells[6])

	assert.Equal(t, "Trading COGS", block.Labels[len(block.Labels)-4])
	assert.Equal(t, "Difference Stock", block.Labels[len(block.Labels)-1])
}

func TestFormatPal1ValueOnlyRows(t *testing.T) {
	p := &domain.Pal1{OtherInc: 700, TotalCost: 1200, ProfitA: 300}

	block := FormatPal1(p, "Feb-24")
	require.Len(t, block.Labels, 16)
	assert.Equal(t, "Other Income", block.Labels[7])
	assert.Equal(t, []interface{}{"", "", 700.0}, block.Cells[7])
	assert.Equal(t, "Profit A", block.Labels[15])
	assert.Equal(t, []interface{}{"", "", 300.0}, block.Cells[15])
}

func TestFormatTradingPlShape(t *testing.T) {
	p := &domain.TradingPl{
		SalesMonoShadeNetQty: 100, SalesMonoShadeNetValue: 9000,
		PurchaseMsnQty: 500,
	}

	block := FormatTradingPl(p, "Feb-24")
	assert.Equal(t, []string{"Qty", "Value", "Rate"}, block.Columns)
	require.Len(t, block.Labels, 21)

	assert.Equal(t, "Sales-Mono Shade Net", block.Labels[2])
	assert.Equal(t, []interface{}{100.0, 9000.0, "90.00"}, block.Cells[2])

	// The MSN purchase line carries a quantity only.
	assert.Equal(t, "Add: Purchase MSN", block.Labels[9])
	assert.Equal(t, []interface{}{500.0, "", ""}, block.Cells[9])

	// Placeholder ledger lines stay blank.
	assert.Equal(t, "Gross Profit", block.Labels[20])
	assert.Equal(t, []interface{}{"", "", ""}, block.Cells[20])
}

func TestFormatPal2Percentages(t *testing.T) {
	p := &domain.Pal2{
		HdSaleValue:       1000,
		TradingSalesValue: 2000,
		MonofilSalesValue: 7000,
		InHouseFabrnValue: 300,
		FabricationValue:  450,
		DepreciationValue: 250,
	}

	block := FormatPal2(p, "Feb-24")
	assert.Equal(t, []string{"Cost %", "Qty", "Value", "Rate"}, block.Columns)
	require.Len(t, block.Labels, 34)

	byLabel := func(label string) []interface{} {
		t.Helper()
		for i, l := range block.Labels {
			if l == label {
				return block.Cells[i]
			}
		}
		t.Fatalf("label %q not found", label)
		return nil
	}

	// Total sales is 10000: 3%, 5% (4.5 rounds up) and 3% (2.5 rounds up).
	assert.Equal(t, "3%", byLabel("In House Fabrn")[0])
	assert.Equal(t, "5%", byLabel("Fabrication")[0])
	assert.Equal(t, "3%", byLabel("Depreciation")[0])

	// Roll-ups add the displayed integers: 3 + 5 = 8, not round(7.5).
	assert.Equal(t, "8%", byLabel("DIRECT COST")[0])
	assert.Equal(t, "3%", byLabel("FIN Cost")[0])
	assert.Equal(t, "3%", byLabel("Depn & INT")[0])
	assert.Equal(t, "11%", byLabel("Total Expns")[0])
	assert.Equal(t, "0%", byLabel("Admin")[0])

	assert.Equal(t, []interface{}{"", "", 10000.0, ""}, byLabel("Total Sales"))
}

func TestFormatPal2ZeroSalesBlanksPercentages(t *testing.T) {
	block := FormatPal2(&domain.Pal2{InHouseFabrnValue: 300}, "Feb-24")

	for i, l := range block.Labels {
		if l == "In House Fabrn" {
			assert.Equal(t, "", block.Cells[i][0])
		}
		// Constant-zero roll-ups still print "0%".
		if l == "DIRECT COST" {
			assert.Equal(t, "0%", block.Cells[i][0])
		}
	}
}

func TestFormatFinAnalysisRow(t *testing.T) {
	f := &domain.FinAnalysis{
		Sales:       domain.FinSales{Monofil: 6000, Trading: 3000, Rm: 1000, OtherInc: 200},
		Consumption: domain.FinConsumption{Monofil: 2000, TotalMonofil: 2500, TotalConsumption: 5000},
		Operating:   domain.FinOperating{Yarn: 100, Fabric: 250, Total: 350},
		Fixed:       domain.FinFixed{Depreciation: 500, Overheads: 1500},
		TotalSales:  10000,
	}

	tr := FormatFinAnalysis(f, "Feb-24")
	assert.Equal(t, "FinAnalysis", tr.Name)
	require.Len(t, tr.Headers, 1)
	require.Len(t, tr.Headers[0], 30)
	require.Len(t, tr.Row, 30)

	assert.Equal(t, "Feb-24", tr.Row[0])
	assert.Equal(t, 10000.0, tr.Row[4])
	assert.Equal(t, "40%", tr.Row[7])  // monofil consumption share
	assert.Equal(t, "100%", tr.Row[16])
	assert.Equal(t, 0, tr.Row[12])
	assert.Equal(t, "10%", tr.Row[26]) // depreciation share
}

func TestFormatSalesSummaryRow(t *testing.T) {
	s := &domain.SalesSummary{
		Mcf:    domain.SalesLine{Kgs: 10, Value: 100},
		Total3: domain.SalesLine{Kgs: 10, Value: 90},
	}

	tr := FormatSalesSummary(s, "Feb-24")
	require.Len(t, tr.Headers, 2)
	require.Len(t, tr.Headers[0], 46)
	require.Len(t, tr.Headers[1], 46)
	require.Len(t, tr.Row, 46)

	assert.Equal(t, "Feb-24", tr.Row[0])
	assert.Equal(t, 10.0, tr.Row[1])
	assert.Equal(t, "10.00", tr.Row[3])

	// Trailing MISC and LABOUR groups are blank; the last total follows.
	assert.Equal(t, "", tr.Row[37])
	assert.Equal(t, "", tr.Row[42])
	assert.Equal(t, 10.0, tr.Row[43])
	assert.Equal(t, "9.00", tr.Row[45])
}
