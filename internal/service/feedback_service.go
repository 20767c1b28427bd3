package service

import (
	"context"
	"log/slog"

	"restaurant-pos/internal/ledger"
	"restaurant-pos/internal/validation"
)

// FeedbackService records and lists customer feedback. Clear is exposed as a
// capability; the shell invokes it only after its own admin authorization.
type FeedbackService struct {
	feedback *ledger.FeedbackLedger
	log      *slog.Logger
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(feedback *ledger.FeedbackLedger, log *slog.Logger) *FeedbackService {
	return &FeedbackService{feedback: feedback, log: log}
}

// Record validates and durably appends one feedback entry.
func (s *FeedbackService) Record(ctx context.Context, req validation.FeedbackRequest) error {
	if err := validation.Validate(req); err != nil {
		return err
	}
	if err := s.feedback.Append(ctx, req.CustomerName, req.Text); err != nil {
		s.log.Error("feedback persistence failed", "customer", req.CustomerName, "error", err)
		return err
	}
	s.log.Info("feedback recorded", "customer", req.CustomerName)
	return nil
}

// List returns every raw feedback line in append order.
func (s *FeedbackService) List(ctx context.Context) ([]string, error) {
	return s.feedback.ReadAll(ctx)
}

// Clear truncates the feedback store. The only destructive persisted-state
// operation in the system.
func (s *FeedbackService) Clear(ctx context.Context) error {
	if err := s.feedback.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("feedback cleared")
	return nil
}
