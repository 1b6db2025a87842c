// Package summary contains spending summary use cases.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// Summarize computes the per-category spending summary for one month.
// A category yields a row only when it has spending or a budget; rows are
// ordered by total spent, highest first, with ties keeping category order.
func Summarize(
	categories []*entity.Category,
	expenses []*entity.Expense,
	budgets []*entity.Budget,
) []entity.SpendingSummaryRow {
	spentByCategory := make(map[string]decimal.Decimal, len(categories))
	for _, expense := range expenses {
		key := expense.CategoryID.String()
		spentByCategory[key] = spentByCategory[key].Add(expense.Amount)
	}

	budgetByCategory := make(map[string]decimal.Decimal, len(budgets))
	for _, budget := range budgets {
		budgetByCategory[budget.CategoryID.String()] = budget.Amount
	}

	rows := make([]entity.SpendingSummaryRow, 0, len(categories))
	for _, category := range categories {
		key := category.ID.String()
		spent := spentByCategory[key]
		budget := budgetByCategory[key]

		if !spent.IsPositive() && !budget.IsPositive() {
			continue
		}

		var percentage float64
		if budget.IsPositive() {
			pct := spent.Mul(decimal.NewFromInt(100)).Div(budget)
			percentage, _ = pct.Round(2).Float64()
		}

		rows = append(rows, entity.SpendingSummaryRow{
			CategoryID:    category.ID,
			CategoryName:  category.Name,
			CategoryIcon:  category.Icon,
			CategoryColor: category.Color,
			TotalSpent:    spent,
			BudgetAmount:  budget,
			Percentage:    percentage,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSpent.GreaterThan(rows[j].TotalSpent)
	})

	return rows
}

// TotalSpent folds the amounts of all expenses in scope. It runs over the raw
// expense set rather than summary rows, so spending under a since-deleted
// category still counts toward the household total.
func TotalSpent(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// TotalBudget folds the amounts of all budgets in scope.
func TotalBudget(budgets []*entity.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, budget := range budgets {
		total = total.Add(budget.Amount)
	}
	return total
}
