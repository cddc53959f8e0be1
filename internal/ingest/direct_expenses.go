package ingest

import "finloom/internal/domain"

// The direct-expenses sheet carries four blocks on one page: manufacturing
// and extras in column 1, variable-and-direct and fixed in column 4.
var directExpenseBlocks = []struct {
	Kind     domain.FactKind
	Category string
	Bindings []binding
}{
	{domain.FactExpenseManufacturing, domain.CategoryManufacturing, []binding{
		{Row: 2, Col: 1, Field: "employeeRemuneration"},
		{Row: 3, Col: 1, Field: "coolieCartage"},
		{Row: 4, Col: 1, Field: "depreciation"},
		{Row: 5, Col: 1, Field: "fabricationChargesBlore"},
		{Row: 6, Col: 1, Field: "fabricationChargesSircilla"},
		{Row: 7, Col: 1, Field: "factoryRepair"},
		{Row: 8, Col: 1, Field: "forwardingChargesPaid"},
		{Row: 9, Col: 1, Field: "freightInwards"},
		{Row: 10, Col: 1, Field: "insuranceOnAssets"},
		{Row: 11, Col: 1, Field: "itcReversal"},
		{Row: 12, Col: 1, Field: "medicalExpenses"},
		{Row: 13, Col: 1, Field: "packingMaterial"},
		{Row: 14, Col: 1, Field: "electricity"},
		{Row: 15, Col: 1, Field: "processingCharges"},
		{Row: 16, Col: 1, Field: "rent"},
		{Row: 17, Col: 1, Field: "repairAMC"},
		{Row: 18, Col: 1, Field: "yarnProcessing"},
	}},
	{domain.FactExpenseExtras, domain.CategoryExtras, []binding{
		{Row: 22, Col: 1, Field: "manufacturing"},
		{Row: 23, Col: 1, Field: "itcReserved"},
		{Row: 24, Col: 1, Field: "inHouseFabrication"},
		{Row: 25, Col: 1, Field: "fabrication"},
		{Row: 26, Col: 1, Field: "directExpenses"},
		{Row: 27, Col: 1, Field: "deprecation"},
		{Row: 28, Col: 1, Field: "total"},
		{Row: 29, Col: 1, Field: "totalFabrication"},
		{Row: 31, Col: 1, Field: "inHouseQty"},
		{Row: 32, Col: 1, Field: "fabricators"},
		{Row: 33, Col: 1, Field: "yarnProcessingQty"},
		{Row: 34, Col: 1, Field: "indirect"},
		{Row: 35, Col: 1, Field: "totalExpenses"},
		{Row: 37, Col: 1, Field: "pnl"},
	}},
	{domain.FactExpenseVariable, domain.CategoryVariableAndDirect, []binding{
		{Row: 1, Col: 4, Field: "wagesFabric"},
		{Row: 2, Col: 4, Field: "wagesInspectionDispatch"},
		{Row: 3, Col: 4, Field: "fabricationCharges"},
		{Row: 4, Col: 4, Field: "wagesYarn"},
		{Row: 5, Col: 4, Field: "yarnProcessingCharges"},
		{Row: 6, Col: 4, Field: "freightInward"},
		{Row: 7, Col: 4, Field: "powerBill"},
		{Row: 8, Col: 4, Field: "rmMachinery"},
		{Row: 9, Col: 4, Field: "rmElectricals"},
		{Row: 10, Col: 4, Field: "rent"},
		{Row: 11, Col: 4, Field: "packingCharges"},
		{Row: 12, Col: 4, Field: "misc"},
		{Row: 14, Col: 4, Field: "workingCapitalBankCharges"},
		{Row: 15, Col: 4, Field: "workingCapitalLc"},
		{Row: 16, Col: 4, Field: "workingCapitalOcc"},
	}},
	{domain.FactExpenseFixed, domain.CategoryFixed, []binding{
		{Row: 21, Col: 4, Field: "employeesWelfareExp"},
		{Row: 22, Col: 4, Field: "salariesOffice"},
		{Row: 23, Col: 4, Field: "directorsRemuneration"},
		{Row: 24, Col: 4, Field: "depreciation"},
		{Row: 25, Col: 4, Field: "admnExpns"},
		{Row: 26, Col: 4, Field: "sellingExpns"},
		{Row: 27, Col: 4, Field: "financeCostIntOnECLGS"},
		{Row: 28, Col: 4, Field: "financeCostIntOnDeposits"},
	}},
}

// DirectExpenses maps the direct-expenses sheet into its four expense facts.
func DirectExpenses(rows [][]string) (*domain.Ledger, error) {
	p, err := ledgerDate(rows, 3, 0, 1)
	if err != nil {
		return nil, err
	}

	ledger := &domain.Ledger{Period: p}
	for _, b := range directExpenseBlocks {
		ledger.Facts = append(ledger.Facts, fact(p, b.Kind, b.Category, extract(rows, b.Bindings)))
	}
	return ledger, nil
}
