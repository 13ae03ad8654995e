package balance

import "context"

// BalanceService computes the day-by-day reconciliation of worked time
// against the schedule for a requested window.
type BalanceService interface {
	GetSummary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
