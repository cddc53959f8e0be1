package derive

import (
	"finloom/internal/domain"
)

func salesLine(c *Context, material string) domain.SalesLine {
	f := c.Fact(domain.FactInventory, material)
	return domain.SalesLine{Kgs: f.Get("outwardQty"), Value: f.Get("amount")}
}

func buildSalesSummary(c *Context) *domain.SalesSummary {
	r := &domain.SalesSummary{
		Mcf:         salesLine(c, domain.InventoryMcf),
		WeedMat:     salesLine(c, domain.InventoryWmf),
		Happa:       salesLine(c, domain.InventoryHappa),
		Yarn:        salesLine(c, domain.InventoryNwfYarn),
		Tsn:         salesLine(c, domain.InventoryTsn),
		Msn:         salesLine(c, domain.InventoryMsn),
		Pps:         salesLine(c, domain.InventoryPPWovenSacks),
		RawMaterial: salesLine(c, domain.InventoryRawMaterial),
		Waste:       salesLine(c, domain.InventoryMonofilWaste),
	}
	r.Misc = salesLine(c, domain.InventoryAntiBirdNet).
		Add(salesLine(c, domain.InventoryKnittedFabric)).
		Add(salesLine(c, domain.InventoryWeedMat))

	r.Total1 = r.Mcf.Add(r.WeedMat).Add(r.Happa).Add(r.Yarn)
	r.Total2 = r.Tsn.Add(r.Msn).Add(r.Misc).Add(r.Pps)
	r.Total3 = r.RawMaterial.Add(r.Waste)
	return r
}
