package ingest

import "finloom/internal/domain"

// inventoryRows maps sheet rows to inventory material names. Outward qty is
// column 1, amount column 3; the gaps are the sheet's sub-total rows.
var inventoryRows = []struct {
	Row      int
	Material string
}{
	{3, domain.InventoryMcf},
	{4, domain.InventoryWmf},
	{5, domain.InventoryInsectBags},
	{6, domain.InventoryInsectNet},
	{7, domain.InventoryHappa},
	{8, domain.InventoryNwfYarn},
	{10, domain.InventoryMsn},
	{11, domain.InventoryTsn},
	{12, domain.InventoryPPWovenSacks},
	{13, domain.InventoryAntiBirdNet},
	{14, domain.InventoryKnittedFabric},
	{15, domain.InventoryWeedMat},
	{17, domain.InventoryFibc},
	{18, domain.InventoryPackingMat},
	{19, domain.InventoryMonofilWaste},
	{20, domain.InventorySaleOfAsset},
	{21, domain.InventoryRawMaterial},
}

var salesDetailBindings = []binding{
	{Row: 23, Col: 1, Field: "grandTotalOutward"},
	{Row: 23, Col: 3, Field: "grandTotalValue"},
	{Row: 24, Col: 3, Field: "otherIncome"},
	{Row: 26, Col: 3, Field: "grossSales"},
	{Row: 27, Col: 3, Field: "tax"},
	{Row: 28, Col: 3, Field: "tcs"},
	{Row: 31, Col: 3, Field: "discount"},
	{Row: 33, Col: 3, Field: "creditNote"},
	{Row: 35, Col: 3, Field: "pal1FinalSales"},
	{Row: 38, Col: 3, Field: "rmPurchaseForSales"},
}

// Inventory maps the inventory/sales sheet: seventeen per-material
// outward/amount facts plus one sales-details fact with the sheet's summary
// figures.
func Inventory(rows [][]string) (*domain.Ledger, error) {
	p, err := ledgerDate(rows, 3, 0, 1)
	if err != nil {
		return nil, err
	}

	ledger := &domain.Ledger{Period: p}
	for _, m := range inventoryRows {
		fields := extract(rows, []binding{
			{Row: m.Row, Col: 1, Field: "outwardQty"},
			{Row: m.Row, Col: 3, Field: "amount"},
		})
		ledger.Facts = append(ledger.Facts, fact(p, domain.FactInventory, m.Material, fields))
	}

	sales := extract(rows, salesDetailBindings)
	ledger.Facts = append(ledger.Facts, fact(p, domain.FactSales, domain.CategorySalesDetails, sales))

	return ledger, nil
}
