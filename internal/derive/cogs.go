package derive

import (
	"finloom/internal/domain"
)

// materialCogs derives one raw material's COGS record from the prior
// period's stock valuation, this period's purchases and this period's
// stock valuation. The consumables discount is netted off the purchase
// value for HDPE only, which is also the only material with sales.
func materialCogs(c *Context, material, purchaseCategory string) domain.MaterialCogs {
	opening := c.PriorFact(domain.FactStockValuation, material)
	closing := c.Fact(domain.FactStockValuation, material)
	purchase := c.Fact(domain.FactPurchase, purchaseCategory)

	return domain.MaterialCogs{
		OpeningStock:      opening.Get("qty"),
		OpeningStockValue: opening.Get("value"),
		PurchaseQty:       purchase.Get("kgs"),
		PurchaseValue:     purchase.Get("value"),
		ClosingStockQty:   closing.Get("qty"),
		ClosingStockValue: closing.Get("value"),
	}
}

func sfgFgStock(fi factIndex) domain.SfgFgStock {
	yarnQty, yarnValue := stockTotals(fi, []string{
		domain.MaterialTapeFactory,
		domain.MaterialTapeJobWork,
	})
	fabric := fi.get(domain.FactStockValuation, domain.MaterialFishnetFabrics)
	return domain.SfgFgStock{
		SfgYarn:       yarnQty,
		SfgYarnValue:  yarnValue,
		FgFabric:      fabric.Get("qty"),
		FgFabricValue: fabric.Get("value"),
	}
}

func buildCogs(c *Context) *domain.CogsBundle {
	consumables := c.Fact(domain.FactPurchase, domain.PurchaseConsumables)
	rmSales := c.Fact(domain.FactInventory, domain.InventoryRawMaterial)
	salesDetails := c.Fact(domain.FactSales, domain.CategorySalesDetails)

	hdpe := materialCogs(c, domain.MaterialHdpeGranules, domain.PurchaseHdpe)
	hdpe.PurchaseValue -= consumables.Get("discount")
	hdpe.SalesQty = rmSales.Get("outwardQty")
	hdpe.SalesValue = salesDetails.Get("rmPurchaseForSales")

	mb := materialCogs(c, domain.MaterialMasterBatches, domain.PurchaseMasterBatch)
	cp := materialCogs(c, domain.MaterialColourPigments, domain.PurchaseColourPigment)

	rm := domain.RmConsumptionCogs{
		OpeningStock:      hdpe.OpeningStock + mb.OpeningStock + cp.OpeningStock,
		OpeningStockValue: hdpe.OpeningStockValue + mb.OpeningStockValue + cp.OpeningStockValue,
		PurchaseQty:       hdpe.PurchaseQty + mb.PurchaseQty + cp.PurchaseQty,
		PurchaseValue:     hdpe.PurchaseValue + mb.PurchaseValue + cp.PurchaseValue,
		Sales:             hdpe.SalesQty,
		SalesValue:        hdpe.SalesValue,
		ClosingStock:      hdpe.ClosingStockQty + mb.ClosingStockQty + cp.ClosingStockQty,
		ClosingStockValue: hdpe.ClosingStockValue + mb.ClosingStockValue + cp.ClosingStockValue,
	}

	yarn := c.Fact(domain.FactPurchase, domain.PurchaseYarn)
	sravya := c.Fact(domain.FactPurchase, domain.PurchaseSravyaOthers)
	monofil := domain.MonofilCogs{
		YarnPurchases:       yarn.Get("kgs"),
		YarnValue:           yarn.Get("value"),
		PurchaseFabric:      sravya.Get("kgs"),
		PurchaseFabricValue: sravya.Get("value"),
		ConsumablesPurchase: consumables.Get("value"),
	}

	total := domain.TotalCogs{
		OpeningStock:         rm.OpeningStock,
		OpeningStockValue:    rm.OpeningStockValue,
		PurchaseHD:           hdpe.PurchaseQty,
		PurchaseHDValue:      hdpe.PurchaseValue,
		PurchaseMD:           mb.PurchaseQty,
		PurchaseMDValue:      mb.PurchaseValue,
		PurchaseMonofil:      monofil.YarnPurchases,
		PurchaseMonofilValue: monofil.YarnValue,
		RmSales:              rm.Sales,
		RmSalesValue:         rm.SalesValue,
		ClosingStock:         rm.ClosingStock,
		ClosingStockValue:    rm.ClosingStockValue,
	}

	sfgPurchase := domain.SfgFgPurchase{
		SfgYarn:       yarn.Get("kgs"),
		SfgYarnValue:  yarn.Get("value"),
		FgFabric:      sravya.Get("kgs"),
		FgFabricValue: sravya.Get("value"),
		Consumables:   consumables.Get("value"),
	}

	tradingOpening := c.PriorFact(domain.FactStockValuation, domain.MaterialShadenetWeedMat)
	closingQty, closingValue := stockTotals(c.current, []string{
		domain.MaterialShadenetWeedMat,
		domain.MaterialPPFabricSacks,
	})
	trading := domain.TradingCogs{
		OpeningStock:          tradingOpening.Get("qty"),
		OpeningStockValue:     tradingOpening.Get("value"),
		ClosingStock:          closingQty,
		ClosingStockValue:     closingValue,
		SignedDifference:      tradingOpening.Get("qty") - closingQty,
		SignedDifferenceValue: tradingOpening.Get("value") - closingValue,
	}
	trading.DifferenceStock = abs(trading.SignedDifference)
	trading.DifferenceStockValue = abs(trading.SignedDifferenceValue)

	return &domain.CogsBundle{
		Hdpe:          hdpe,
		Mb:            mb,
		Cp:            cp,
		RmConsumption: rm,
		Monofil:       monofil,
		Total:         total,
		SfgFgOpening:  sfgFgStock(c.prior),
		SfgFgPurchase: sfgPurchase,
		SfgFgClosing:  sfgFgStock(c.current),
		Trading:       trading,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
