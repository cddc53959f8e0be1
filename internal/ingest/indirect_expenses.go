package ingest

import "finloom/internal/domain"

// IndirectExpenses maps the indirect-expenses sheet by scanning sections
// instead of fixed rows: sentinel label rows switch the active section, and
// every labelled row after a sentinel contributes one (label, value) field.
// The selling sentinel is honored only once; a repeated "Selling Expenses"
// label later in the sheet is treated as a data row.
func IndirectExpenses(rows [][]string) (*domain.Ledger, error) {
	p, err := ledgerDate(rows, 3, 0, 1)
	if err != nil {
		return nil, err
	}

	sections := map[domain.FactKind]domain.Fields{}
	var current domain.FactKind
	sellingSeen := false

	for i := 1; i < len(rows); i++ {
		label := cellString(rows, i, 0)
		if label == "" {
			continue
		}

		switch {
		case label == "Administrative Expenses":
			current = domain.FactExpenseAdmin
		case label == "Financial Expenses":
			current = domain.FactExpenseFinancial
		case label == "Selling Expenses" && !sellingSeen:
			current = domain.FactExpenseSelling
			sellingSeen = true
		case label == "Grand Total":
			current = domain.FactExpenseTotal
		case current != "":
			if sections[current] == nil {
				sections[current] = domain.Fields{}
			}
			sections[current][label] = cell(rows, i, 1)
		}
	}

	ledger := &domain.Ledger{Period: p}
	for _, kind := range []domain.FactKind{
		domain.FactExpenseAdmin,
		domain.FactExpenseFinancial,
		domain.FactExpenseSelling,
		domain.FactExpenseTotal,
	} {
		if fields, ok := sections[kind]; ok {
			ledger.Facts = append(ledger.Facts, fact(p, kind, domain.CategoryIndirect, fields))
		}
	}
	return ledger, nil
}
