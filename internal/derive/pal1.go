package derive

import (
	"finloom/internal/domain"
)

// pal1StockTags are the stock-valuation lines counted as stock on hand in
// the first profit-and-loss statement.
var pal1StockTags = []string{
	domain.MaterialPPFabricSacks,
	domain.MaterialShadenetWeedMat,
	domain.MaterialFishnetFabrics,
	domain.MaterialTapeFactory,
	domain.MaterialTapeJobWork,
	domain.MaterialHdpeGranules,
	domain.MaterialMasterBatches,
	domain.MaterialColourPigments,
}

func buildPal1(c *Context) *domain.Pal1 {
	hdpe := c.Fact(domain.FactPurchase, domain.PurchaseHdpe)
	mb := c.Fact(domain.FactPurchase, domain.PurchaseMasterBatch)
	cp := c.Fact(domain.FactPurchase, domain.PurchaseColourPigment)
	trading := c.Fact(domain.FactPurchase, domain.PurchaseTrading)
	yarn := c.Fact(domain.FactPurchase, domain.PurchaseYarn)
	sravya := c.Fact(domain.FactPurchase, domain.PurchaseSravyaOthers)
	consumables := c.Fact(domain.FactPurchase, domain.PurchaseConsumables)

	salesDetails := c.Fact(domain.FactSales, domain.CategorySalesDetails)
	waste := c.Fact(domain.FactInventory, domain.InventoryMonofilWaste)
	extras := c.Fact(domain.FactExpenseExtras, domain.CategoryExtras)
	totals := c.Fact(domain.FactExpenseTotal, domain.CategoryIndirect)

	r := &domain.Pal1{}
	r.OpeningStock, r.OpeningStockValue = stockTotals(c.prior, pal1StockTags)
	r.ClosingStock, r.ClosingStockValue = stockTotals(c.current, pal1StockTags)

	r.PurchaseRm = cp.Get("kgs") + mb.Get("kgs") + hdpe.Get("kgs")
	r.PurchaseRmValue = cp.Get("value") + mb.Get("value") + hdpe.Get("value") - consumables.Get("discount")
	r.PurchaseTrading = trading.Get("kgs")
	r.PurchaseTradingValue = trading.Get("value")
	r.PurchaseConsumables = yarn.Get("kgs") + sravya.Get("kgs")
	r.PurchaseConsumablesValue = yarn.Get("value") + sravya.Get("value") + consumables.Get("value")

	r.Waste = waste.Get("outwardQty")
	r.WasteValue = waste.Get("amount")
	r.Sales = salesDetails.Get("grandTotalOutward") - r.Waste
	r.SalesValue = salesDetails.Get("pal1FinalSales")
	r.OtherInc = salesDetails.Get("otherIncome")

	r.DirectExpenses = extras.Get("manufacturing")
	r.InHouseFabricationQty = extras.Get("inHouseQty")
	r.InHouseFabricationValue = extras.Get("inHouseFabrication")
	r.FabricationQty = extras.Get("fabricators")
	r.FabricationValue = extras.Get("fabrication")
	r.Deprecation = extras.Get("deprecation")
	r.IndirectExpenses = totals.Get(domain.TotalIndirectCost)

	r.DirectCost = r.DirectExpenses + r.FabricationValue + r.InHouseFabricationValue
	r.TotalCost = r.DirectCost + r.IndirectExpenses + r.Deprecation

	goodsAvailable := r.OpeningStockValue + r.PurchaseRmValue + r.PurchaseTradingValue + r.PurchaseConsumablesValue
	consumed := goodsAvailable - r.ClosingStockValue
	grossMargin := r.SalesValue - consumed
	income := grossMargin + r.WasteValue + r.OtherInc

	r.SignedProfit = income - r.TotalCost
	r.ProfitA = abs(r.SignedProfit)
	return r
}
