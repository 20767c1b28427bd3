package service

import (
	"context"
	"log/slog"

	"restaurant-pos/internal/ledger"
)

// ReportService exposes read-only views over the order ledger.
type ReportService struct {
	orders *ledger.OrderLedger
	log    *slog.Logger
}

// NewReportService creates a new report service.
func NewReportService(orders *ledger.OrderLedger, log *slog.Logger) *ReportService {
	return &ReportService{orders: orders, log: log}
}

// History returns every raw order record in append order.
func (s *ReportService) History(ctx context.Context) ([]string, error) {
	return s.orders.ReadAll(ctx)
}

// Summary aggregates order count and total revenue over the whole ledger.
func (s *ReportService) Summary(ctx context.Context) (ledger.Summary, error) {
	summary, err := s.orders.Aggregate(ctx)
	if err != nil {
		return ledger.Summary{}, err
	}
	s.log.Debug("summary computed",
		"order_count", summary.OrderCount,
		"total_revenue", summary.TotalRevenue.StringFixed(2),
	)
	return summary, nil
}
