package domain

// MaterialCogs holds the per-material cost-of-goods figures for one of the
// three raw materials (HDPE granules, master batches, colour pigments).
// Sales figures are populated for HDPE only.
type MaterialCogs struct {
	OpeningStock      float64 `json:"openingStock"`
	OpeningStockValue float64 `json:"openingStockValue"`
	PurchaseQty       float64 `json:"purchaseQty"`
	PurchaseValue     float64 `json:"purchaseValue"`
	SalesQty          float64 `json:"salesQty"`
	SalesValue        float64 `json:"salesValue"`
	ClosingStockQty   float64 `json:"closingStockQty"`
	ClosingStockValue float64 `json:"closingStockValue"`
}

// RmConsumptionCogs aggregates the three raw-material COGS records.
type RmConsumptionCogs struct {
	OpeningStock      float64 `json:"openingStock"`
	OpeningStockValue float64 `json:"openingStockValue"`
	PurchaseQty       float64 `json:"purchaseQty"`
	PurchaseValue     float64 `json:"purchaseValue"`
	Sales             float64 `json:"sales"`
	SalesValue        float64 `json:"salesValue"`
	ClosingStock      float64 `json:"closingStock"`
	ClosingStockValue float64 `json:"closingStockValue"`
}

// MonofilCogs holds the monofilament purchase figures.
type MonofilCogs struct {
	YarnPurchases       float64 `json:"yarnPurchases"`
	YarnValue           float64 `json:"yarnValue"`
	PurchaseFabric      float64 `json:"purchaseFabric"`
	PurchaseFabricValue float64 `json:"purchaseFabricValue"`
	ConsumablesPurchase float64 `json:"consumablesPurchase"`
}

// TotalCogs restates the headline COGS figures across material groups.
type TotalCogs struct {
	OpeningStock         float64 `json:"openingStock"`
	OpeningStockValue    float64 `json:"openingStockValue"`
	PurchaseHD           float64 `json:"purchaseHD"`
	PurchaseHDValue      float64 `json:"purchaseHDValue"`
	PurchaseMD           float64 `json:"purchaseMD"`
	PurchaseMDValue      float64 `json:"purchaseMDValue"`
	PurchaseMonofil      float64 `json:"purchaseMonofil"`
	PurchaseMonofilValue float64 `json:"purchaseMonofilValue"`
	RmSales              float64 `json:"rmSales"`
	RmSalesValue         float64 `json:"rmSalesValue"`
	ClosingStock         float64 `json:"closingStock"`
	ClosingStockValue    float64 `json:"closingStockValue"`
}

// SfgFgStock holds semi-finished (tape yarn) and finished (fabric) goods
// stock at one boundary of the period.
type SfgFgStock struct {
	SfgYarn       float64 `json:"sfgYarn"`
	SfgYarnValue  float64 `json:"sfgYarnValue"`
	FgFabric      float64 `json:"fgFabric"`
	FgFabricValue float64 `json:"fgFabricValue"`
}

// SfgFgPurchase holds the period's SFG/FG purchases plus consumables.
type SfgFgPurchase struct {
	SfgYarn       float64 `json:"sfgYarn"`
	SfgYarnValue  float64 `json:"sfgYarnValue"`
	FgFabric      float64 `json:"fgFabric"`
	FgFabricValue float64 `json:"fgFabricValue"`
	Consumables   float64 `json:"consumables"`
}

// TradingCogs compares trading-goods stock across the period boundary.
// DifferenceStock carries the absolute difference as reported; the signed
// fields preserve the underlying direction for diagnostics.
type TradingCogs struct {
	OpeningStock          float64 `json:"openingStock"`
	OpeningStockValue     float64 `json:"openingStockValue"`
	ClosingStock          float64 `json:"closingStock"`
	ClosingStockValue     float64 `json:"closingStockValue"`
	DifferenceStock       float64 `json:"differenceStock"`
	DifferenceStockValue  float64 `json:"differenceStockValue"`
	SignedDifference      float64 `json:"signedDifference"`
	SignedDifferenceValue float64 `json:"signedDifferenceValue"`
}

// CogsBundle is the full output of the COGS derivation stage.
type CogsBundle struct {
	Hdpe          MaterialCogs
	Mb            MaterialCogs
	Cp            MaterialCogs
	RmConsumption RmConsumptionCogs
	Monofil       MonofilCogs
	Total         TotalCogs
	SfgFgOpening  SfgFgStock
	SfgFgPurchase SfgFgPurchase
	SfgFgClosing  SfgFgStock
	Trading       TradingCogs
}

// Pal1 is the first profit-and-loss layer. ProfitA is reported as an
// absolute value; SignedProfit keeps the pre-abs figure for diagnostics.
type Pal1 struct {
	OpeningStock             float64 `json:"openingStock"`
	OpeningStockValue        float64 `json:"openingStockValue"`
	PurchaseRm               float64 `json:"purchaseRm"`
	PurchaseRmValue          float64 `json:"purchaseRmValue"`
	PurchaseTrading          float64 `json:"purchaseTrading"`
	PurchaseTradingValue     float64 `json:"purchaseTradingValue"`
	PurchaseConsumables      float64 `json:"purchaseConsumables"`
	PurchaseConsumablesValue float64 `json:"purchaseConsumablesValue"`
	ClosingStock             float64 `json:"closingStock"`
	ClosingStockValue        float64 `json:"closingStockValue"`
	Sales                    float64 `json:"sales"`
	SalesValue               float64 `json:"salesValue"`
	Waste                    float64 `json:"waste"`
	WasteValue               float64 `json:"wasteValue"`
	OtherInc                 float64 `json:"otherInc"`
	DirectExpenses           float64 `json:"directExpenses"`
	InHouseFabricationQty    float64 `json:"inHouseFabricationQty"`
	InHouseFabricationValue  float64 `json:"inHouseFabricationValue"`
	FabricationQty           float64 `json:"fabricationQty"`
	FabricationValue         float64 `json:"fabricationValue"`
	Deprecation              float64 `json:"deprecation"`
	IndirectExpenses         float64 `json:"indirectExpenses"`
	DirectCost               float64 `json:"directCost"`
	TotalCost                float64 `json:"totalCost"`
	ProfitA                  float64 `json:"profitA"`
	SignedProfit             float64 `json:"signedProfit"`
}

// TradingPl is the trading-goods profit-and-loss report, current period
// only.
type TradingPl struct {
	SalesMonoShadeNetQty   float64 `json:"salesMonoShadeNetQty"`
	SalesMonoShadeNetValue float64 `json:"salesMonoShadeNetValue"`
	SalesTapeShadeNetQty   float64 `json:"salesTapeShadeNetQty"`
	SalesTapeShadeNetValue float64 `json:"salesTapeShadeNetValue"`
	SalesWeedMatQty        float64 `json:"salesWeedMatQty"`
	SalesWeedMatValue      float64 `json:"salesWeedMatValue"`
	SalesPPWovenSacksQty   float64 `json:"salesPPWovenSacksQty"`
	SalesPPWovenSacksValue float64 `json:"salesPPWovenSacksValue"`
	PurchaseMsnQty         float64 `json:"purchaseMsnQty"`
	PurchasePpsQty         float64 `json:"purchasePpsQty"`
	PurchasePpsValue       float64 `json:"purchasePpsValue"`
	PurchaseTsnQty         float64 `json:"purchaseTsnQty"`
	PurchaseTsnValue       float64 `json:"purchaseTsnValue"`
}

// Pal2 is the second profit-and-loss layer, built on PAL1 and TradingPL.
type Pal2 struct {
	OpeningStock            float64 `json:"openingStock"`
	OpeningStockValue       float64 `json:"openingStockValue"`
	PurchaseRmQty           float64 `json:"purchaseRmQty"`
	PurchaseRmValue         float64 `json:"purchaseRmValue"`
	PurchaseTradingQty      float64 `json:"purchaseTradingQty"`
	PurchaseTradingValue    float64 `json:"purchaseTradingValue"`
	PurchaseConsumableQty   float64 `json:"purchaseConsumableQty"`
	PurchaseConsumableValue float64 `json:"purchaseConsumableValue"`
	ClosingStock            float64 `json:"closingStock"`
	ClosingStockValue       float64 `json:"closingStockValue"`
	HdSaleQty               float64 `json:"hdSaleQty"`
	HdSaleValue             float64 `json:"hdSaleValue"`
	TradingSalesQty         float64 `json:"tradingSalesQty"`
	TradingSalesValue       float64 `json:"tradingSalesValue"`
	MonofilTradingQty       float64 `json:"monofilTradingQty"`
	MonofilTradingValue     float64 `json:"monofilTradingValue"`
	GstRefundQty            float64 `json:"gstRefundQty"`
	GstRefundValue          float64 `json:"gstRefundValue"`
	WasteQty                float64 `json:"wasteQty"`
	WasteValue              float64 `json:"wasteValue"`
	OtherIncValue           float64 `json:"otherIncValue"`
	InHouseFabrnQty         float64 `json:"inHouseFabrnQty"`
	InHouseFabrnValue       float64 `json:"inHouseFabrnValue"`
	FabricationQty          float64 `json:"fabricationQty"`
	FabricationValue        float64 `json:"fabricationValue"`
	DepreciationValue       float64 `json:"depreciationValue"`
	MonofilSalesQty         float64 `json:"monofilSalesQty"`
	MonofilSalesValue       float64 `json:"monofilSalesValue"`
}

// FinSales is the sales block of the financial analysis.
type FinSales struct {
	Monofil  float64 `json:"monofil"`
	Trading  float64 `json:"trading"`
	Rm       float64 `json:"rm"`
	OtherInc float64 `json:"otherInc"`
}

// FinConsumption is the consumption block of the financial analysis.
type FinConsumption struct {
	Monofil          float64 `json:"monofil"`
	MfPurchase       float64 `json:"mfPurchase"`
	SfgFg            float64 `json:"sfgFg"`
	TradingSfgFg     float64 `json:"tradingSfgFg"`
	Rm               float64 `json:"rm"`
	TotalMonofil     float64 `json:"totalMonofil"`
	TotalConsumption float64 `json:"totalConsumption"`
}

// FinOperating is the operating-expenses block of the financial analysis.
// Fabric is already net of the prior period's fabric wage offset.
type FinOperating struct {
	Yarn    float64 `json:"yarn"`
	Fabric  float64 `json:"fabric"`
	Trading float64 `json:"trading"`
	Total   float64 `json:"total"`
}

// FinFixed is the fixed-expenses block of the financial analysis.
type FinFixed struct {
	Depreciation float64 `json:"depreciation"`
	Overheads    float64 `json:"overheads"`
}

// FinAnalysis is the full output of the financial-analysis stage. The four
// blocks are persisted individually; the profit lines are derived from
// them.
type FinAnalysis struct {
	Sales           FinSales
	Consumption     FinConsumption
	Operating       FinOperating
	Fixed           FinFixed
	TotalSales      float64
	OperatingProfit float64
	NetProfit       float64
}

// SalesLine is one (kgs, value) pair of the sales summary.
type SalesLine struct {
	Kgs   float64 `json:"kgs"`
	Value float64 `json:"value"`
}

// Add returns the element-wise sum of two sales lines.
func (l SalesLine) Add(o SalesLine) SalesLine {
	return SalesLine{Kgs: l.Kgs + o.Kgs, Value: l.Value + o.Value}
}

// SalesSummary is the per-material sales roll-up for one period.
type SalesSummary struct {
	Mcf         SalesLine `json:"mcf"`
	WeedMat     SalesLine `json:"weedMat"`
	Happa       SalesLine `json:"happa"`
	Yarn        SalesLine `json:"yarn"`
	Tsn         SalesLine `json:"tsn"`
	Msn         SalesLine `json:"msn"`
	Misc        SalesLine `json:"misc"`
	Pps         SalesLine `json:"pps"`
	RawMaterial SalesLine `json:"rawMaterial"`
	Waste       SalesLine `json:"waste"`
	Total1      SalesLine `json:"total1"`
	Total2      SalesLine `json:"total2"`
	Total3      SalesLine `json:"total3"`
}
