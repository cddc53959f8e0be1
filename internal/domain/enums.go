package domain

// FactKind partitions the category namespace of stored ledger facts. Each
// upload sheet writes facts under one or more kinds; categories are unique
// per (period, kind).
type FactKind string

const (
	FactStockValuation FactKind = "stock_valuation"
	FactQtyAnalysis    FactKind = "qty_analysis"
	FactPurchase       FactKind = "purchase"
	FactInventory      FactKind = "inventory"
	FactSales          FactKind = "sales"

	FactExpenseManufacturing FactKind = "expense_manufacturing"
	FactExpenseExtras        FactKind = "expense_extras"
	FactExpenseVariable      FactKind = "expense_variable"
	FactExpenseFixed         FactKind = "expense_fixed"
	FactExpenseAdmin         FactKind = "expense_admin"
	FactExpenseFinancial     FactKind = "expense_financial"
	FactExpenseSelling       FactKind = "expense_selling"
	FactExpenseTotal         FactKind = "expense_total"
)

// ReportKind identifies a derived report persisted for one period.
type ReportKind string

const (
	ReportHdpeCogs          ReportKind = "hdpe_cogs"
	ReportMbCogs            ReportKind = "mb_cogs"
	ReportCpCogs            ReportKind = "cp_cogs"
	ReportRmConsumptionCogs ReportKind = "rm_consumption_cogs"
	ReportMonofilCogs       ReportKind = "monofil_cogs"
	ReportTotalCogs         ReportKind = "total_cogs"
	ReportSfgFgOpening      ReportKind = "sfg_fg_opening"
	ReportSfgFgPurchase     ReportKind = "sfg_fg_purchase"
	ReportSfgFgClosing      ReportKind = "sfg_fg_closing"
	ReportTradingCogs       ReportKind = "trading_cogs"
	ReportPal1              ReportKind = "pal1"
	ReportTradingPl         ReportKind = "trading_pl"
	ReportPal2              ReportKind = "pal2"
	ReportFinSales          ReportKind = "fin_sales"
	ReportFinConsumption    ReportKind = "fin_consumption"
	ReportFinOperating      ReportKind = "fin_operating"
	ReportFinFixed          ReportKind = "fin_fixed"
	ReportSalesSummary      ReportKind = "sales_summary"
)

// ParseReportKind validates a stored report kind name.
func ParseReportKind(s string) (ReportKind, bool) {
	switch k := ReportKind(s); k {
	case ReportHdpeCogs, ReportMbCogs, ReportCpCogs, ReportRmConsumptionCogs,
		ReportMonofilCogs, ReportTotalCogs, ReportSfgFgOpening, ReportSfgFgPurchase,
		ReportSfgFgClosing, ReportTradingCogs, ReportPal1, ReportTradingPl,
		ReportPal2, ReportFinSales, ReportFinConsumption, ReportFinOperating,
		ReportFinFixed, ReportSalesSummary:
		return k, true
	}
	return "", false
}

// Stock-valuation material tags. The strings match the source ledgers and
// must not change while stored data exists.
const (
	MaterialHdpeGranules       = "hdpeGranules"
	MaterialMasterBatches      = "masterBatches"
	MaterialColourPigments     = "colourPigments"
	MaterialTotalRawMaterial   = "totalRawMaterial"
	MaterialTapeFactory        = "hdpe_tape_factory"
	MaterialTapeJobWork        = "hdpe_tape_job_work"
	MaterialTotalWIP           = "total_work_in_progress"
	MaterialFishnetFabrics     = "hdpe_fishnet_fabrics"
	MaterialShadenetWeedMat    = "shadenet_fabrics_weed_mat"
	MaterialPPFabricSacks      = "pp_fabric_sacks"
	MaterialTotalFinishedGoods = "total_finished_goods"
	MaterialPackingMaterial    = "packing_material"
	MaterialSeconds            = "seconds"
	MaterialTotalConsumables   = "total_consumables"
)

// Purchase-line categories.
const (
	PurchaseHdpe             = "hdpe"
	PurchaseMasterBatch      = "mb"
	PurchaseColourPigment    = "cp"
	PurchaseConsumables      = "consumables"
	PurchaseTsn              = "tsn"
	PurchaseMsn              = "msn"
	PurchasePps              = "pps"
	PurchaseTotal            = "total"
	PurchaseSravyaOthers     = "sravya_others"
	PurchaseYarn             = "yarn"
	PurchaseTsnRmConsumed    = "tsn_rm_consumed"
	PurchaseTsnConsumed      = "tsn_consumed"
	PurchaseTsnTotalConsumed = "tsn_total_rm_consumed"
	PurchaseTrading          = "trading"
)

// Quantity-analysis sub-fact categories, one per block of the source sheet.
const (
	QtyHdpeStock         = "hdpe_stock"
	QtyMbStock           = "mb_stock"
	QtyCpStock           = "cp_stock"
	QtyWastage           = "wastage_computation"
	QtyMonofilFactory    = "monofil_factory"
	QtyMonofilFabricator = "monofil_fabricator"
	QtyWovenFabric       = "woven_fabric"
	QtyShadeNetsTrading  = "shade_nets_trading"
	QtyWaste             = "waste_qty"
	QtyConsolidated      = "consolidated"
	QtyRmSfgFgSeparated  = "rm_sfg_fg_separated"
)

// Inventory material names, verbatim from the sales/inventory sheet.
const (
	InventoryMcf           = "MCF"
	InventoryWmf           = "WMF"
	InventoryInsectBags    = "MONOFILAMENT FABRIC INSECT BAGS"
	InventoryInsectNet     = "MONOFILAMENT FABRIC INSECT NET"
	InventoryHappa         = "MONOFILAMENT FABRIC HAPPA"
	InventoryNwfYarn       = "NWF/Yarn"
	InventoryMsn           = "MSN"
	InventoryTsn           = "TSN"
	InventoryPPWovenSacks  = "PP Woven Sacks"
	InventoryAntiBirdNet   = "ANTI BIRD NET / Rope/MULCH/FIBC"
	InventoryKnittedFabric = "Knitted Fabric 8\" Red/60\" D Green"
	InventoryWeedMat       = "Weed Mat 1.25 Mtrs Black"
	InventoryFibc          = "Flexible Intermediate Bulk Container"
	InventoryPackingMat    = "Packing Materials / Old use Batteries"
	InventoryMonofilWaste  = "HDPE Monofilament Waste"
	InventorySaleOfAsset   = "Sale of Asset Etc"
	InventoryRawMaterial   = "Raw Material"
)

// Singleton fact categories.
const (
	CategorySalesDetails      = "sales_details"
	CategoryManufacturing     = "manufacturing"
	CategoryExtras            = "extras"
	CategoryVariableAndDirect = "variable_and_direct"
	CategoryFixed             = "fixed"
	CategoryIndirect          = "indirect"

	// Expense-total label carrying the indirect cost figure consumed by PAL1.
	TotalIndirectCost = "Indirect COST"
)

// ReportNames maps the six exported report families to their workbook and
// sheet names on disk.
var ReportNames = map[ReportKind]string{
	ReportTotalCogs:    "COGS",
	ReportPal1:         "PAL1",
	ReportTradingPl:    "TradingPL",
	ReportPal2:         "PAL2",
	ReportFinSales:     "FinAnalysis",
	ReportSalesSummary: "SalesSummary",
}
