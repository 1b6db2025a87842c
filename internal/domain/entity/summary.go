// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SpendingSummaryRow is the per-category aggregation of amount spent versus
// budgeted for a month. It is computed on demand and never persisted.
type SpendingSummaryRow struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryIcon  string
	CategoryColor string
	TotalSpent    decimal.Decimal
	BudgetAmount  decimal.Decimal
	// Percentage is TotalSpent/BudgetAmount*100, or 0 when no budget is set.
	Percentage float64
}

// SpendingSummary is a household's monthly summary: per-category rows plus
// totals folded over every expense and budget recorded for the month. The
// totals cover spending under categories that were deleted afterwards, which
// no longer yield a row.
type SpendingSummary struct {
	Rows        []SpendingSummaryRow
	TotalSpent  decimal.Decimal
	TotalBudget decimal.Decimal
}

// InsightType classifies a spending insight.
type InsightType string

const (
	InsightTypeTip     InsightType = "tip"
	InsightTypeWarning InsightType = "warning"
	InsightTypeTrend   InsightType = "trend"
)

// Insight is a locally computed observation about household spending.
type Insight struct {
	Type        InsightType
	Title       string
	Description string
}
