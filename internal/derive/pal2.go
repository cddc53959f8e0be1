package derive

import (
	"math"

	"finloom/internal/domain"
)

// monofilTradingRate is the fixed rupees-per-kg rate used to value the
// monofilament trading quantity.
const monofilTradingRate = 248.96

// pal2StockTags restrict the second profit-and-loss stock lines to raw
// material only.
var pal2StockTags = []string{
	domain.MaterialHdpeGranules,
	domain.MaterialMasterBatches,
	domain.MaterialColourPigments,
}

// buildPal2 derives the second profit-and-loss layer from this run's PAL1
// and TradingPL reports. Both must already be present on the Context.
func buildPal2(c *Context) *domain.Pal2 {
	pal1 := c.Pal1
	trading := c.TradingPl

	saleOfAsset := c.Fact(domain.FactInventory, domain.InventorySaleOfAsset)
	rawMaterial := c.Fact(domain.FactInventory, domain.InventoryRawMaterial)
	waste := c.Fact(domain.FactInventory, domain.InventoryMonofilWaste)

	r := &domain.Pal2{}
	r.OpeningStock, r.OpeningStockValue = stockTotals(c.prior, pal2StockTags)
	r.ClosingStock, r.ClosingStockValue = stockTotals(c.current, pal2StockTags)

	r.PurchaseRmQty = pal1.PurchaseRm
	r.PurchaseRmValue = pal1.PurchaseRmValue
	r.PurchaseTradingQty = math.Round(pal1.PurchaseTrading)
	r.PurchaseTradingValue = math.Round(pal1.PurchaseTradingValue)
	r.PurchaseConsumableQty = math.Round(pal1.PurchaseConsumables)
	r.PurchaseConsumableValue = math.Round(pal1.PurchaseConsumablesValue)

	r.HdSaleQty = math.Round(saleOfAsset.Get("outwardQty") + rawMaterial.Get("outwardQty"))
	r.HdSaleValue = math.Round(saleOfAsset.Get("amount") + rawMaterial.Get("amount"))
	r.TradingSalesQty = math.Round(trading.SalesMonoShadeNetQty + trading.SalesTapeShadeNetQty +
		trading.SalesWeedMatQty + trading.SalesPPWovenSacksQty)
	r.TradingSalesValue = math.Round(trading.SalesMonoShadeNetValue + trading.SalesTapeShadeNetValue +
		trading.SalesWeedMatValue + trading.SalesPPWovenSacksValue)
	r.MonofilTradingQty = math.Round(pal1.PurchaseConsumables)
	r.MonofilTradingValue = math.Round(r.MonofilTradingQty * monofilTradingRate)

	r.WasteQty = waste.Get("outwardQty")
	r.WasteValue = waste.Get("amount")
	r.OtherIncValue = math.Round(pal1.OtherInc)

	r.InHouseFabrnQty = pal1.InHouseFabricationQty
	r.InHouseFabrnValue = pal1.InHouseFabricationValue
	r.FabricationQty = pal1.FabricationQty
	r.FabricationValue = pal1.FabricationValue
	r.DepreciationValue = pal1.Deprecation

	r.MonofilSalesQty = math.Round(math.Round(pal1.Sales) - (r.HdSaleQty + r.TradingSalesQty + r.MonofilTradingQty))
	r.MonofilSalesValue = math.Round(math.Round(pal1.SalesValue) - (r.HdSaleValue + r.TradingSalesValue + r.MonofilTradingValue))
	return r
}
