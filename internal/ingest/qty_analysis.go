package ingest

import "finloom/internal/domain"

// qtyAnalysisBlocks binds each block of the quantity-analysis sheet to one
// sub-fact. All figures sit in column 1; row gaps are the sheet's block
// headers. The two wastage percentages arrive as fractions and are scaled to
// whole percents on ingest.
var qtyAnalysisBlocks = []struct {
	Category string
	Bindings []binding
}{
	{domain.QtyHdpeStock, []binding{
		{Row: 2, Col: 1, Field: "openingStock"},
		{Row: 3, Col: 1, Field: "purchases"},
		{Row: 4, Col: 1, Field: "jobWorkReceipts"},
		{Row: 5, Col: 1, Field: "purchaseReturn"},
		{Row: 6, Col: 1, Field: "consumptionMonofil"},
		{Row: 7, Col: 1, Field: "consumptionShadeNet"},
		{Row: 8, Col: 1, Field: "consumptionPPFabric"},
		{Row: 10, Col: 1, Field: "sales"},
		{Row: 11, Col: 1, Field: "closingStock"},
	}},
	{domain.QtyMbStock, []binding{
		{Row: 13, Col: 1, Field: "openingStock"},
		{Row: 14, Col: 1, Field: "purchases"},
		{Row: 15, Col: 1, Field: "purchaseReturn"},
		{Row: 16, Col: 1, Field: "consumptionMonofil"},
		{Row: 17, Col: 1, Field: "consumptionShadeNet"},
		{Row: 18, Col: 1, Field: "consumptionPPFabricSales"},
		{Row: 19, Col: 1, Field: "consumption"},
		{Row: 20, Col: 1, Field: "sales"},
		{Row: 21, Col: 1, Field: "closingStock"},
	}},
	{domain.QtyCpStock, []binding{
		{Row: 23, Col: 1, Field: "openingStock"},
		{Row: 24, Col: 1, Field: "purchases"},
		{Row: 25, Col: 1, Field: "purchaseReturn"},
		{Row: 26, Col: 1, Field: "consumptionMonofil"},
		{Row: 27, Col: 1, Field: "consumptionShadeNet"},
		{Row: 28, Col: 1, Field: "consumptionPPFabric"},
		{Row: 29, Col: 1, Field: "consumption"},
		{Row: 30, Col: 1, Field: "closingStock"},
	}},
	{domain.QtyWastage, []binding{
		{Row: 34, Col: 1, Field: "consumptionMonofil"},
		{Row: 35, Col: 1, Field: "consumptionShadeNet"},
		{Row: 36, Col: 1, Field: "consumptionPPFabric"},
		{Row: 39, Col: 1, Field: "hdpeMonofilament"},
		{Row: 40, Col: 1, Field: "hdpeMonofilamentSec"},
		{Row: 41, Col: 1, Field: "packingMaterials"},
		{Row: 42, Col: 1, Field: "totalProduction"},
		{Row: 43, Col: 1, Field: "wastage"},
		{Row: 44, Col: 1, Field: "wastagePercentage", Scale: 100},
	}},
	{domain.QtyMonofilFactory, []binding{
		{Row: 47, Col: 1, Field: "openingBalance"},
		{Row: 48, Col: 1, Field: "production"},
		{Row: 49, Col: 1, Field: "jobWorkProduction"},
		{Row: 50, Col: 1, Field: "rf"},
		{Row: 51, Col: 1, Field: "total"},
		{Row: 52, Col: 1, Field: "consumption"},
		{Row: 53, Col: 1, Field: "sales"},
		{Row: 54, Col: 1, Field: "jobWork"},
		{Row: 55, Col: 1, Field: "totalConsumption"},
		{Row: 56, Col: 1, Field: "closingBalance"},
	}},
	{domain.QtyMonofilFabricator, []binding{
		{Row: 58, Col: 1, Field: "openingBalance"},
		{Row: 59, Col: 1, Field: "hdpeMonofilamentReceipt"},
		{Row: 60, Col: 1, Field: "total"},
		{Row: 62, Col: 1, Field: "hdpeWovenFabrics"},
		{Row: 63, Col: 1, Field: "hdpeWovenFabricsRF"},
		{Row: 64, Col: 1, Field: "hdpeWovenFabricsSec"},
		{Row: 65, Col: 1, Field: "waste"},
		{Row: 66, Col: 1, Field: "ropeHanks"},
		{Row: 67, Col: 1, Field: "totalProcessed"},
		{Row: 68, Col: 1, Field: "wastePercentage", Scale: 100},
		{Row: 69, Col: 1, Field: "closingBalance"},
	}},
	{domain.QtyWovenFabric, []binding{
		{Row: 74, Col: 1, Field: "openingBalance"},
		{Row: 75, Col: 1, Field: "production"},
		{Row: 76, Col: 1, Field: "purchases"},
		{Row: 77, Col: 1, Field: "productionJWSalesReturn"},
		{Row: 78, Col: 1, Field: "sales"},
		{Row: 79, Col: 1, Field: "stockTransferSales"},
		{Row: 80, Col: 1, Field: "jwIssues"},
		{Row: 81, Col: 1, Field: "samplesAndCutPieces"},
		{Row: 82, Col: 1, Field: "closingBalance"},
	}},
	{domain.QtyShadeNetsTrading, []binding{
		{Row: 84, Col: 1, Field: "openingBalance"},
		{Row: 85, Col: 1, Field: "receiptsTapeShadePurchase"},
		{Row: 86, Col: 1, Field: "receiptsTSNJobWork"},
		{Row: 87, Col: 1, Field: "receiptsMonoShade"},
		{Row: 88, Col: 1, Field: "receiptsWeedMat"},
		{Row: 89, Col: 1, Field: "receiptsMulch"},
		{Row: 90, Col: 1, Field: "receiptsPPFabric"},
		{Row: 91, Col: 1, Field: "receiptsPPSacks"},
		{Row: 92, Col: 1, Field: "totalReceipts"},
		{Row: 93, Col: 1, Field: "buringLoss"},
		{Row: 94, Col: 1, Field: "salesMSN"},
		{Row: 95, Col: 1, Field: "salesTSN"},
		{Row: 96, Col: 1, Field: "salesWeedMat"},
		{Row: 97, Col: 1, Field: "salesMulch"},
		{Row: 98, Col: 1, Field: "salesPPFabric"},
		{Row: 99, Col: 1, Field: "salesPPSacks"},
		{Row: 100, Col: 1, Field: "salesTotal"},
		{Row: 101, Col: 1, Field: "closingBalance"},
	}},
	{domain.QtyWaste, []binding{
		{Row: 105, Col: 1, Field: "openingBalance"},
		{Row: 106, Col: 1, Field: "receipts"},
		{Row: 107, Col: 1, Field: "issuedForProcessing"},
		{Row: 108, Col: 1, Field: "buringLoss"},
		{Row: 109, Col: 1, Field: "sales"},
		{Row: 110, Col: 1, Field: "closingBalance"},
	}},
	{domain.QtyConsolidated, []binding{
		{Row: 112, Col: 1, Field: "openingStock"},
		{Row: 113, Col: 1, Field: "purchases"},
		{Row: 114, Col: 1, Field: "totalStock"},
		{Row: 115, Col: 1, Field: "closingStock"},
		{Row: 116, Col: 1, Field: "consumption"},
		{Row: 117, Col: 1, Field: "sales"},
		{Row: 118, Col: 1, Field: "waste"},
		{Row: 119, Col: 1, Field: "wastePercentage", Scale: 100},
	}},
	{domain.QtyRmSfgFgSeparated, []binding{
		{Row: 121, Col: 1, Field: "openingStockRM"},
		{Row: 122, Col: 1, Field: "purchases"},
		{Row: 123, Col: 1, Field: "totalStock"},
		{Row: 124, Col: 1, Field: "closingStockRM"},
		{Row: 125, Col: 1, Field: "saleFromRM"},
		{Row: 126, Col: 1, Field: "saleFromSFGFG"},
		{Row: 127, Col: 1, Field: "saleAndWasteConsumption"},
		{Row: 128, Col: 1, Field: "sales"},
		{Row: 129, Col: 1, Field: "waste"},
		{Row: 130, Col: 1, Field: "wastePercentage", Scale: 100},
	}},
}

// QtyAnalysis maps the quantity-analysis sheet into its eleven sub-facts.
func QtyAnalysis(rows [][]string) (*domain.Ledger, error) {
	p, err := ledgerDate(rows, 4, 0, 1)
	if err != nil {
		return nil, err
	}

	ledger := &domain.Ledger{Period: p}
	for _, b := range qtyAnalysisBlocks {
		ledger.Facts = append(ledger.Facts, fact(p, domain.FactQtyAnalysis, b.Category, extract(rows, b.Bindings)))
	}
	return ledger, nil
}
