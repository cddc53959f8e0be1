package report

import (
	"strconv"

	"finloom/internal/domain"
)

// ColumnBlock is one month's worth of a Qty/Rate/Value style report,
// ready for the sink. Cells holds one slice per label; a nil slice marks
// a spacer row that occupies the row but writes nothing.
type ColumnBlock struct {
	Name    string
	Month   string
	Columns []string
	Labels  []string
	Cells   [][]interface{}
}

// TrendRow is one month's row of a wide trend report.
type TrendRow struct {
	Name    string
	Headers [][]interface{}
	Row     []interface{}
}

type row struct {
	label string
	cells []interface{}
}

func split(rows []row) ([]string, [][]interface{}) {
	labels := make([]string, len(rows))
	cells := make([][]interface{}, len(rows))
	for i, r := range rows {
		labels[i] = r.label
		cells[i] = r.cells
	}
	return labels, cells
}

// rateFixed divides value by qty to two decimals, falling back to a
// numeric zero when qty is zero.
func rateFixed(value, qty float64) interface{} {
	if qty != 0 {
		return strconv.FormatFloat(value/qty, 'f', 2, 64)
	}
	return 0
}

// rateBlank is rateFixed with an empty-string fallback, used by the
// reports that leave unavailable rates blank.
func rateBlank(value, qty float64) string {
	if qty != 0 {
		return strconv.FormatFloat(value/qty, 'f', 2, 64)
	}
	return ""
}

func qrv(label string, qty, value float64) row {
	return row{label, []interface{}{qty, rateFixed(value, qty), value}}
}

func valueOnly(label string, value float64) row {
	return row{label, []interface{}{"", "", value}}
}

func header(label string) row {
	return row{label, []interface{}{"", "", ""}}
}

var spacer = row{label: "", cells: nil}

// FormatCogs lays out the COGS bundle as the ten-section column block of
// the COGS workbook. The per-section consumption lines are display
// aggregates only and are not persisted.
func FormatCogs(b *domain.CogsBundle, month string) ColumnBlock {
	hdpeConsumptionQty := b.Hdpe.OpeningStock + b.Hdpe.PurchaseQty - (b.Hdpe.SalesQty + b.Hdpe.ClosingStockQty)
	hdpeConsumptionValue := b.Hdpe.OpeningStockValue + b.Hdpe.PurchaseValue - (b.Hdpe.SalesValue + b.Hdpe.ClosingStockValue)

	mbConsumptionQty := b.Mb.OpeningStock + b.Mb.PurchaseQty - b.Mb.ClosingStockQty
	mbConsumptionValue := b.Mb.OpeningStockValue + b.Mb.PurchaseValue - b.Mb.ClosingStockValue

	cpConsumptionQty := b.Cp.OpeningStock + b.Cp.PurchaseQty - b.Cp.ClosingStockQty
	cpConsumptionValue := b.Cp.OpeningStockValue + b.Cp.PurchaseValue - b.Cp.ClosingStockValue

	rmConsumptionQty := (b.RmConsumption.OpeningStock + b.RmConsumption.PurchaseQty) -
		(b.RmConsumption.ClosingStock + b.RmConsumption.Sales)
	rmConsumptionValue := (b.RmConsumption.OpeningStockValue + b.RmConsumption.PurchaseValue) -
		(b.RmConsumption.ClosingStockValue + b.RmConsumption.SalesValue)

	monofilPurchaseQty := b.Monofil.YarnPurchases + b.Monofil.PurchaseFabric
	monofilPurchaseValue := b.Monofil.YarnValue + b.Monofil.PurchaseFabricValue + b.Monofil.ConsumablesPurchase

	rows := []row{
		header("HDPE"),
		qrv("Opening Stock", b.Hdpe.OpeningStock, b.Hdpe.OpeningStockValue),
		qrv("Purchase", b.Hdpe.PurchaseQty, b.Hdpe.PurchaseValue),
		qrv("Sales", b.Hdpe.SalesQty, b.Hdpe.SalesValue),
		qrv("Closing Stock", b.Hdpe.ClosingStockQty, b.Hdpe.ClosingStockValue),
		qrv("Consumption HDPE", hdpeConsumptionQty, hdpeConsumptionValue),
		spacer,
		header("MB"),
		qrv("Opening Stock", b.Mb.OpeningStock, b.Mb.OpeningStockValue),
		qrv("Purchase", b.Mb.PurchaseQty, b.Mb.PurchaseValue),
		qrv("Closing Stock", b.Mb.ClosingStockQty, b.Mb.ClosingStockValue),
		qrv("Consumption MB", mbConsumptionQty, mbConsumptionValue),
		spacer,
		header("CP"),
		qrv("Opening Stock", b.Cp.OpeningStock, b.Cp.OpeningStockValue),
		qrv("Purchase", b.Cp.PurchaseQty, b.Cp.PurchaseValue),
		qrv("Closing Stock", b.Cp.ClosingStockQty, b.Cp.ClosingStockValue),
		qrv("Consumption CP", cpConsumptionQty, cpConsumptionValue),
		spacer,
		header("RM Consumption"),
		qrv("Opening Stock", b.RmConsumption.OpeningStock, b.RmConsumption.OpeningStockValue),
		qrv("Purchase", b.RmConsumption.PurchaseQty, b.RmConsumption.PurchaseValue),
		qrv("Sales", b.RmConsumption.Sales, b.RmConsumption.SalesValue),
		qrv("Closing Stock", b.RmConsumption.ClosingStock, b.RmConsumption.ClosingStockValue),
		qrv("Consumption RM", rmConsumptionQty, rmConsumptionValue),
		spacer,
		header("Monofilament"),
		qrv("Yarn Purchases", b.Monofil.YarnPurchases, b.Monofil.YarnValue),
		qrv("Purchase Fabric", b.Monofil.PurchaseFabric, b.Monofil.PurchaseFabricValue),
		valueOnly("Consumables Purchase", b.Monofil.ConsumablesPurchase),
		qrv("Total Purchase", monofilPurchaseQty, monofilPurchaseValue),
		qrv("Consumption Monofil", monofilPurchaseQty, monofilPurchaseValue),
		qrv("Monofil Consumption", monofilPurchaseQty+rmConsumptionQty, monofilPurchaseValue+rmConsumptionValue),
		spacer,
		header("Total COGS"),
		qrv("Opening Stock", b.Total.OpeningStock, b.Total.OpeningStockValue),
		qrv("Purchase HD", b.Total.PurchaseHD, b.Total.PurchaseHDValue),
		qrv("Purchase MD", b.Total.PurchaseMD, b.Total.PurchaseMDValue),
		qrv("Purchase Monofil", b.Total.PurchaseMonofil, b.Total.PurchaseMonofilValue),
		qrv("RM Sales", b.Total.RmSales, b.Total.RmSalesValue),
		qrv("Closing Stock", b.Total.ClosingStock, b.Total.ClosingStockValue),
		spacer,
		header("Monofil SFG/FG Opening Stock"),
		qrv("SFG Yarn", b.SfgFgOpening.SfgYarn, b.SfgFgOpening.SfgYarnValue),
		qrv("FG Fabric", b.SfgFgOpening.FgFabric, b.SfgFgOpening.FgFabricValue),
		spacer,
		header("Monofil SFG/FG Purchase"),
		qrv("SFG Yarn", b.SfgFgPurchase.SfgYarn, b.SfgFgPurchase.SfgYarnValue),
		qrv("FG Fabric", b.SfgFgPurchase.FgFabric, b.SfgFgPurchase.FgFabricValue),
		valueOnly("Consumables", b.SfgFgPurchase.Consumables),
		spacer,
		header("Monofil SFG/FG Closing Stock"),
		qrv("SFG Yarn", b.SfgFgClosing.SfgYarn, b.SfgFgClosing.SfgYarnValue),
		qrv("FG Fabric", b.SfgFgClosing.FgFabric, b.SfgFgClosing.FgFabricValue),
		spacer,
		header("Trading COGS"),
		qrv("Opening Stock", b.Trading.OpeningStock, b.Trading.OpeningStockValue),
		qrv("Closing Stock", b.Trading.ClosingStock, b.Trading.ClosingStockValue),
		qrv("Difference Stock", b.Trading.DifferenceStock, b.Trading.DifferenceStockValue),
	}

	labels, cells := split(rows)
	return ColumnBlock{
		Name:    domain.ReportNames[domain.ReportTotalCogs],
		Month:   month,
		Columns: []string{"Qty", "Rate", "Value"},
		Labels:  labels,
		Cells:   cells,
	}
}

// FormatPal1 lays out PAL1 as its sixteen-row column block.
func FormatPal1(p *domain.Pal1, month string) ColumnBlock {
	rows := []row{
		qrv("Opening Stock", p.OpeningStock, p.OpeningStockValue),
		qrv("Purchase RM", p.PurchaseRm, p.PurchaseRmValue),
		qrv("Purchase Trading", p.PurchaseTrading, p.PurchaseTradingValue),
		qrv("Purchase Consumables", p.PurchaseConsumables, p.PurchaseConsumablesValue),
		qrv("Closing Stock", p.ClosingStock, p.ClosingStockValue),
		qrv("Sales", p.Sales, p.SalesValue),
		qrv("Waste", p.Waste, p.WasteValue),
		valueOnly("Other Income", p.OtherInc),
		valueOnly("Direct Expenses", p.DirectExpenses),
		qrv("In-House Fabrication", p.InHouseFabricationQty, p.InHouseFabricationValue),
		qrv("Fabrication", p.FabricationQty, p.FabricationValue),
		valueOnly("Deprecation", p.Deprecation),
		valueOnly("Indirect Expenses", p.IndirectExpenses),
		valueOnly("Direct Cost", p.DirectCost),
		valueOnly("Total Cost", p.TotalCost),
		valueOnly("Profit A", p.ProfitA),
	}

	labels, cells := split(rows)
	return ColumnBlock{
		Name:    domain.ReportNames[domain.ReportPal1],
		Month:   month,
		Columns: []string{"Qty", "Rate", "Value"},
		Labels:  labels,
		Cells:   cells,
	}
}

// FormatTradingPl lays out TradingPL in its trading-account shape. Lines
// with no source data stay blank so the ledger layout is preserved.
func FormatTradingPl(p *domain.TradingPl, month string) ColumnBlock {
	qvr := func(label string, qty, value float64) row {
		return row{label, []interface{}{qty, value, rateBlank(value, qty)}}
	}
	blank := func(label string) row {
		return row{label, []interface{}{"", "", ""}}
	}

	rows := []row{
		blank("Sales Accounts"),
		blank("Sales-Mulch Film Fabric"),
		qvr("Sales-Mono Shade Net", p.SalesMonoShadeNetQty, p.SalesMonoShadeNetValue),
		blank("Sales-PP Woven Fabrics"),
		qvr("Sales-Tape Shade Net", p.SalesTapeShadeNetQty, p.SalesTapeShadeNetValue),
		qvr("Sales-Weed Mate Fabrics", p.SalesWeedMatQty, p.SalesWeedMatValue),
		qvr("Sales-PP Woven Sacks", p.SalesPPWovenSacksQty, p.SalesPPWovenSacksValue),
		blank("Opening Stock"),
		blank("Add Purchase"),
		{"Add: Purchase MSN", []interface{}{p.PurchaseMsnQty, "", ""}},
		qvr("Add: Purchase PP Sacks", p.PurchasePpsQty, p.PurchasePpsValue),
		qvr("Add: Purchase TSN", p.PurchaseTsnQty, p.PurchaseTsnValue),
		blank("Add: Consumption TSN"),
		blank("Add: Purchase Others"),
		blank("Less: Closing Stock"),
		blank("Cost of Sales"),
		blank("Conveyance Charges"),
		blank("Salary & Wages"),
		blank("Commission on Sales"),
		blank("Direct Expenses"),
		blank("Gross Profit"),
	}

	labels, cells := split(rows)
	return ColumnBlock{
		Name:    domain.ReportNames[domain.ReportTradingPl],
		Month:   month,
		Columns: []string{"Qty", "Value", "Rate"},
		Labels:  labels,
		Cells:   cells,
	}
}

// FormatPal2 lays out PAL2 with its leading cost-percentage column. The
// percentages are display artifacts computed against total sales; the
// roll-up lines sum the displayed integer percentages, not the
// underlying ratios.
func FormatPal2(p *domain.Pal2, month string) ColumnBlock {
	totalSales := p.HdSaleValue + p.TradingSalesValue + p.MonofilTradingValue + p.MonofilSalesValue

	inHouseFabrnPct := formatCostPercentage(p.InHouseFabrnValue, totalSales)
	fabricationPct := formatCostPercentage(p.FabricationValue, totalSales)
	directCostPct := sumDisplayPercentages(inHouseFabrnPct, fabricationPct)
	totalAdminPct := 0
	depreciationPct := formatCostPercentage(p.DepreciationValue, totalSales)
	finCostPct := sumDisplayPercentages(depreciationPct)
	totalExpnsPct := directCostPct + totalAdminPct + finCostPct

	pqvr := func(label string, pct interface{}, qty, value float64) row {
		return row{label, []interface{}{pct, qty, value, rateBlank(value, qty)}}
	}
	pctOnly := func(label string, pct int) row {
		return row{label, []interface{}{strconv.Itoa(pct) + "%", "", "", ""}}
	}
	blank := func(label string) row {
		return row{label, []interface{}{"", "", "", ""}}
	}

	rows := []row{
		pqvr("Op Stk RM Only", formatCostPercentage(p.OpeningStockValue, totalSales), p.OpeningStock, p.OpeningStockValue),
		pqvr("Purchase RM", "", p.PurchaseRmQty, p.PurchaseRmValue),
		pqvr("Purchase Trading", "", p.PurchaseTradingQty, p.PurchaseTradingValue),
		pqvr("Purchase Consumable", "", p.PurchaseConsumableQty, p.PurchaseConsumableValue),
		pqvr("Cl Stk RM Only", "", p.ClosingStock, p.ClosingStockValue),
		pqvr("HD Sale", "", p.HdSaleQty, p.HdSaleValue),
		pqvr("Trading Sales", "", p.TradingSalesQty, p.TradingSalesValue),
		pqvr("Monofil Trading", "", p.MonofilTradingQty, p.MonofilTradingValue),
		pqvr("Monofil Sales", "", p.MonofilSalesQty, p.MonofilSalesValue),
		{"Total Sales", []interface{}{"", "", totalSales, ""}},
		blank("Diff SFG/FG"),
		pqvr("GST Refund", "", p.GstRefundQty, p.GstRefundValue),
		pqvr("Waste", "", p.WasteQty, p.WasteValue),
		{"Othr Inc", []interface{}{formatCostPercentage(p.OtherIncValue, totalSales), "", p.OtherIncValue, ""}},
		pctOnly("Direct Expns", 0),
		pctOnly("Trading Expns", 0),
		pqvr("In House Fabrn", inHouseFabrnPct, p.InHouseFabrnQty, p.InHouseFabrnValue),
		pqvr("Fabrication", fabricationPct, p.FabricationQty, p.FabricationValue),
		pctOnly("DIRECT COST", directCostPct),
		pctOnly("SVE-HBSS", 0),
		pctOnly("Admin", 0),
		pctOnly("Selling", 0),
		pctOnly("TOTAL", totalAdminPct),
		blank("EBITDA"),
		{"Depreciation", []interface{}{depreciationPct, "", p.DepreciationValue, ""}},
		pctOnly("W Cap Int", 0),
		pctOnly("Term Loan", 0),
		pctOnly("Covid Int", 0),
		pctOnly("Int On Others", 0),
		pctOnly("FIN Cost", finCostPct),
		pctOnly("Depn & INT", finCostPct),
		pctOnly("Total Expns", totalExpnsPct),
		blank("Profit (A)"),
	}

	labels, cells := split(rows)
	return ColumnBlock{
		Name:    domain.ReportNames[domain.ReportPal2],
		Month:   month,
		Columns: []string{"Cost %", "Qty", "Value", "Rate"},
		Labels:  labels,
		Cells:   cells,
	}
}

// FormatFinAnalysis lays out the financial analysis as one row of the
// thirty-column trend sheet. Percentage columns are taken against total
// consumption, which itself always shows 100%.
func FormatFinAnalysis(f *domain.FinAnalysis, month string) TrendRow {
	pct := func(v float64) string {
		return formatCostPercentage(v, f.Consumption.TotalConsumption)
	}

	headers := [][]interface{}{{
		"Month", "Monofil", "Trading", "RM Sales", "Total", "Othr Inc",
		"Monofil", "%age", "MF Purchase", "SFG/FG", "Total Monofil", "%age",
		"Trading", "SFG/FG", "RM", "Total Consm", "%age",
		"Yarn", "%age", "Fabric", "%age", "Trading", "Operating Expenses", "%age",
		"OP Profit", "Depreciation", "%age", "Overheads", "%age", "NET",
	}}

	row := []interface{}{
		month,
		f.Sales.Monofil,
		f.Sales.Trading,
		f.Sales.Rm,
		f.TotalSales,
		f.Sales.OtherInc,
		f.Consumption.Monofil,
		pct(f.Consumption.Monofil),
		f.Consumption.MfPurchase,
		f.Consumption.SfgFg,
		f.Consumption.TotalMonofil,
		pct(f.Consumption.TotalMonofil),
		0, // trading consumption has no source sheet
		f.Consumption.TradingSfgFg,
		f.Consumption.Rm,
		f.Consumption.TotalConsumption,
		"100%",
		f.Operating.Yarn,
		pct(f.Operating.Yarn),
		f.Operating.Fabric,
		pct(f.Operating.Fabric),
		f.Operating.Trading,
		f.Operating.Total,
		pct(f.Operating.Total),
		f.OperatingProfit,
		f.Fixed.Depreciation,
		pct(f.Fixed.Depreciation),
		f.Fixed.Overheads,
		pct(f.Fixed.Overheads),
		f.NetProfit,
	}

	return TrendRow{Name: domain.ReportNames[domain.ReportFinSales], Headers: headers, Row: row}
}

// FormatSalesSummary lays out the sales summary as one row of the wide
// per-material trend sheet. The MISC and LABOUR groups before the last
// total have no source data and stay blank.
func FormatSalesSummary(s *domain.SalesSummary, month string) TrendRow {
	groups := []string{
		"MCF", "WM", "INH", "YARN", "TOTAL",
		"TSN", "MSN", "MISC", "PPS", "TOTAL",
		"RM", "WASTE", "MISC", "LABOUR", "TOTAL",
	}

	top := []interface{}{"MONTH"}
	sub := []interface{}{""}
	for _, g := range groups {
		top = append(top, g, "", "")
		sub = append(sub, "Kgs", "Value", "Rate")
	}

	line := func(l domain.SalesLine) []interface{} {
		return []interface{}{l.Kgs, l.Value, rateBlank(l.Value, l.Kgs)}
	}

	row := []interface{}{month}
	for _, l := range []domain.SalesLine{
		s.Mcf, s.WeedMat, s.Happa, s.Yarn, s.Total1,
		s.Tsn, s.Msn, s.Misc, s.Pps, s.Total2,
		s.RawMaterial, s.Waste,
	} {
		row = append(row, line(l)...)
	}
	row = append(row, "", "", "", "", "", "")
	row = append(row, line(s.Total3)...)

	return TrendRow{Name: domain.ReportNames[domain.ReportSalesSummary], Headers: [][]interface{}{top, sub}, Row: row}
}
