package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"aurora-app-go/internal/domain/finances"
	"aurora-app-go/internal/domain/habits"
	"aurora-app-go/internal/domain/nutrition"
	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/domain/reminders"
	"aurora-app-go/internal/repository/inmemory"
	"github.com/shopspring/decimal"
)

func TestSummaryAcrossDomains(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC) }
	repo := records.NewRepository(inmemory.NewRecordStore(), records.WithClock(now), records.WithLocation(time.UTC))
	ns := records.LocalNamespace("aurora")

	habitService := habits.NewService(repo)
	financeService := finances.NewService(repo)
	nutritionService := nutrition.NewService(repo)
	reminderService := reminders.NewService(repo)

	if _, err := habitService.Toggle(ctx, ns, "1"); err != nil {
		t.Fatalf("toggle habit: %v", err)
	}
	_, _ = financeService.Add(ctx, ns, finances.AddInput{Description: "Salário", Amount: decimal.NewNullDecimal(decimal.NewFromInt(3000)), Type: finances.TypeIncome})
	_, _ = financeService.Add(ctx, ns, finances.AddInput{Description: "Aluguel", Amount: decimal.NewNullDecimal(decimal.NewFromInt(1000)), Type: finances.TypeFixedExpense})
	calories := 350.0
	if _, err := nutritionService.AddManualFood(ctx, ns, nutrition.ManualFoodInput{MealID: "1", Name: "Omelete", Calories: &calories}); err != nil {
		t.Fatalf("add food: %v", err)
	}
	_, _ = reminderService.Add(ctx, ns, reminders.AddInput{Text: "Dentista"})
	done, _ := reminderService.Add(ctx, ns, reminders.AddInput{Text: "Pagar conta"})
	_, _ = reminderService.Toggle(ctx, ns, done.ID)

	service := NewService(habitService, financeService, nutritionService, reminderService)
	summary, err := service.Summary(ctx, ns)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.HabitsProgress != 25 {
		t.Fatalf("habits progress = %d, want 25", summary.HabitsProgress)
	}
	if !summary.Balance.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("balance = %s, want 2000", summary.Balance)
	}
	if summary.CaloriesToday != 350 || summary.PendingReminders != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

type failingCounter struct{}

func (failingCounter) Pending(context.Context, records.Namespace) (int, error) {
	return 0, errors.New("boom")
}

func TestSummaryPropagatesErrors(t *testing.T) {
	repo := records.NewRepository(inmemory.NewRecordStore())
	nutritionService := nutrition.NewService(repo)
	service := NewService(habits.NewService(repo), finances.NewService(repo), nutritionService, failingCounter{})

	if _, err := service.Summary(context.Background(), records.LocalNamespace("aurora")); err == nil {
		t.Fatalf("expected error")
	}
}
