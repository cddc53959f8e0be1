package derive

import (
	"finloom/internal/domain"
)

// fabricWageFields are the variable-expense lines whose prior-period sum is
// netted off the current period's fabric operating cost.
var fabricWageFields = []string{"wagesFabric", "wagesInspectionDispatch", "fabricationCharges"}

// buildFinAnalysis derives the financial-analysis row from this run's COGS
// bundle and PAL2 report plus the period's expense facts. Both dependency
// reports must already be present on the Context.
func buildFinAnalysis(c *Context) *domain.FinAnalysis {
	cogs := c.Cogs
	pal2 := c.Pal2

	consumption := domain.FinConsumption{
		Monofil: (cogs.RmConsumption.OpeningStockValue + cogs.RmConsumption.PurchaseValue) -
			(cogs.RmConsumption.SalesValue + cogs.RmConsumption.ClosingStockValue),
		MfPurchase: cogs.Monofil.YarnValue + cogs.Monofil.PurchaseFabricValue +
			cogs.Monofil.ConsumablesPurchase,
		SfgFg: (cogs.SfgFgOpening.SfgYarnValue + cogs.SfgFgOpening.FgFabricValue) -
			(cogs.SfgFgClosing.SfgYarnValue + cogs.SfgFgClosing.FgFabricValue),
		TradingSfgFg: cogs.Trading.DifferenceStockValue,
		Rm:           cogs.RmConsumption.SalesValue,
	}
	consumption.TotalMonofil = consumption.Monofil + consumption.MfPurchase + consumption.SfgFg
	consumption.TotalConsumption = consumption.TotalMonofil + consumption.TradingSfgFg + consumption.Rm

	sales := domain.FinSales{
		Monofil:  pal2.MonofilSalesValue + pal2.MonofilTradingValue,
		Trading:  pal2.TradingSalesValue,
		Rm:       pal2.HdSaleValue,
		OtherInc: pal2.GstRefundValue + pal2.OtherIncValue + pal2.WasteValue,
	}

	variable := c.Fact(domain.FactExpenseVariable, domain.CategoryVariableAndDirect)
	priorVariable := c.PriorFact(domain.FactExpenseVariable, domain.CategoryVariableAndDirect)
	priorFabricWages := priorVariable.Sum(fabricWageFields...)

	operating := domain.FinOperating{
		Yarn:   variable.Get("wagesYarn"),
		Fabric: variable.Sum(fabricWageFields...) - priorFabricWages,
		Total:  variable.SumExcept() - priorFabricWages,
	}

	fixedFact := c.Fact(domain.FactExpenseFixed, domain.CategoryFixed)
	fixed := domain.FinFixed{
		Depreciation: fixedFact.Get("depreciation"),
		Overheads:    fixedFact.SumExcept("depreciation"),
	}

	r := &domain.FinAnalysis{
		Sales:       sales,
		Consumption: consumption,
		Operating:   operating,
		Fixed:       fixed,
	}
	r.TotalSales = sales.Monofil + sales.Trading + sales.Rm
	r.OperatingProfit = r.TotalSales + sales.OtherInc - consumption.TotalConsumption - operating.Total
	r.NetProfit = r.OperatingProfit - fixed.Depreciation - fixed.Overheads
	return r
}
