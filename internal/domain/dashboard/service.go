// Package dashboard aggregates the read-only home screen summary.
package dashboard

import (
	"context"
	"fmt"

	"aurora-app-go/internal/domain/habits"
	"aurora-app-go/internal/domain/metrics"
	"aurora-app-go/internal/domain/records"
	"github.com/shopspring/decimal"
)

type HabitSummarizer interface {
	Summary(ctx context.Context, ns records.Namespace) (habits.Summary, error)
}

type FinanceSummarizer interface {
	Summary(ctx context.Context, ns records.Namespace) (metrics.FinanceSummary, error)
}

type CalorieCounter interface {
	CaloriesToday(ctx context.Context, ns records.Namespace) (float64, error)
}

type PendingCounter interface {
	Pending(ctx context.Context, ns records.Namespace) (int, error)
}

type Summary struct {
	HabitsProgress   int             `json:"habitsProgress"`
	Balance          decimal.Decimal `json:"balance"`
	CaloriesToday    float64         `json:"caloriesToday"`
	PendingReminders int             `json:"pendingReminders"`
}

type Service struct {
	habits    HabitSummarizer
	finances  FinanceSummarizer
	calories  CalorieCounter
	reminders PendingCounter
}

func NewService(habits HabitSummarizer, finances FinanceSummarizer, calories CalorieCounter, reminders PendingCounter) *Service {
	return &Service{
		habits:    habits,
		finances:  finances,
		calories:  calories,
		reminders: reminders,
	}
}

func (s *Service) Summary(ctx context.Context, ns records.Namespace) (Summary, error) {
	habitSummary, err := s.habits.Summary(ctx, ns)
	if err != nil {
		return Summary{}, fmt.Errorf("habits summary: %w", err)
	}
	finance, err := s.finances.Summary(ctx, ns)
	if err != nil {
		return Summary{}, fmt.Errorf("finance summary: %w", err)
	}
	calories, err := s.calories.CaloriesToday(ctx, ns)
	if err != nil {
		return Summary{}, fmt.Errorf("calories today: %w", err)
	}
	pending, err := s.reminders.Pending(ctx, ns)
	if err != nil {
		return Summary{}, fmt.Errorf("pending reminders: %w", err)
	}

	return Summary{
		HabitsProgress:   habitSummary.CompletionPercent,
		Balance:          finance.Balance,
		CaloriesToday:    calories,
		PendingReminders: pending,
	}, nil
}
