// Package analytics contains the pure transforms that turn a transaction
// set into per-period stats, detected spending patterns, behavioral
// profiles, category trends, and recommended actions. Every function here
// is stateless and never mutates its input.
package analytics

import "math"

// Stats summarizes income and spending for one transaction set. Money
// fields are rounded to 2 decimals and the rate to 3, at construction
// time only; internal accumulation stays in full precision.
type Stats struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`
	SavingsRate  float64 `json:"savings_rate"`
}

// CategorySpend is one row of the expense breakdown.
type CategorySpend struct {
	Category   string  `json:"category"`
	TotalSpend float64 `json:"total_spend"`
}

// FeeSummary reports fee-like expense transactions.
type FeeSummary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// SpikeSummary reports days whose spend blew past the typical daily level.
type SpikeSummary struct {
	Days       []string `json:"days"`
	ExtraSpend float64  `json:"extra_spend"`
}

// SubscriptionSummary reports recurring-service expense transactions.
type SubscriptionSummary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// CashflowFlag classifies overall cashflow health.
type CashflowFlag string

// Cashflow health levels, from worst to best.
const (
	CashflowCritical CashflowFlag = "critical"
	CashflowWarning  CashflowFlag = "warning"
	CashflowOK       CashflowFlag = "ok"
)

// PatternReport is the fixed-shape result of pattern detection. Its field
// names form a data contract with the action recommender and the story
// generator; do not reshape it.
type PatternReport struct {
	HighFees      FeeSummary          `json:"high_fees"`
	ImpulseSpikes SpikeSummary        `json:"impulse_spikes"`
	Subscriptions SubscriptionSummary `json:"subscriptions"`
	CashflowFlag  CashflowFlag        `json:"cashflow_flag"`
}

// BehaviorProfile maps each month to a persona label and carries the
// static descriptions for all four personas.
type BehaviorProfile struct {
	LabelsByPeriod      map[string]string `json:"labels_by_period"`
	ClusterDescriptions map[string]string `json:"cluster_descriptions"`
}

// TrendRow compares one category's current-period spend against its
// rolling baseline. DeltaPct is nil when there is no baseline to compare
// against, which is distinct from a zero change.
type TrendRow struct {
	DeltaPct *float64 `json:"delta_pct"`
	Category string   `json:"category"`
	Current  float64  `json:"current"`
	Baseline float64  `json:"baseline"`
	Delta    float64  `json:"delta"`
}

// PeriodSummary is one row of the monthly or weekly income/expense rollup.
type PeriodSummary struct {
	Period       string  `json:"period"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
