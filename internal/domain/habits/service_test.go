package habits

import (
	"context"
	"errors"
	"testing"
	"time"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/repository/inmemory"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestService(clock *testClock) (*Service, records.Namespace) {
	repo := records.NewRepository(inmemory.NewRecordStore(), records.WithClock(clock.Now), records.WithLocation(time.UTC))
	return NewService(repo), records.LocalNamespace("aurora")
}

func TestListSeedsStarterHabits(t *testing.T) {
	service, ns := newTestService(&testClock{now: time.Now()})

	items, err := service.List(context.Background(), ns)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 starter habits, got %d", len(items))
	}
	if items[0].ID != "1" || items[0].Name != "Beber 3L de Água" || items[0].Icon != "💧" || items[0].Color != "bg-blue-500" {
		t.Fatalf("unexpected first habit %+v", items[0])
	}
}

func TestAddAppendsWithDefaults(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService(&testClock{now: time.Now()})

	if _, err := service.Add(ctx, ns, AddInput{Name: " "}); !errors.Is(err, records.ErrIncompleteInput) {
		t.Fatalf("expected incomplete input, got %v", err)
	}

	habit, err := service.Add(ctx, ns, AddInput{Name: "Dormir cedo"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if habit.Icon != DefaultIcon || habit.Color != DefaultColor || habit.Streak != 0 {
		t.Fatalf("unexpected defaults %+v", habit)
	}

	items, _ := service.List(ctx, ns)
	if len(items) != 5 || items[4].ID != habit.ID {
		t.Fatalf("expected habit appended after starters, got %d items", len(items))
	}
}

func TestToggleStreakWithoutDateValidation(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService(&testClock{now: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)})

	on, err := service.Toggle(ctx, ns, "1")
	if err != nil || !on.CompletedToday || on.Streak != 1 {
		t.Fatalf("toggle on: %+v %v", on, err)
	}
	off, _ := service.Toggle(ctx, ns, "1")
	if off.CompletedToday || off.Streak != 0 {
		t.Fatalf("toggle off: %+v", off)
	}
	off, _ = service.Toggle(ctx, ns, "1")
	off, _ = service.Toggle(ctx, ns, "1")
	if off.Streak != 0 {
		t.Fatalf("streak must floor at zero, got %d", off.Streak)
	}
	again, _ := service.Toggle(ctx, ns, "1")
	if again.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", again.Streak)
	}
	if len(again.History) != 1 || again.History[0].Day != "2026-05-04" || again.History[0].Score != 1 {
		t.Fatalf("unexpected history %+v", again.History)
	}

	if _, err := service.Toggle(ctx, ns, "missing"); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound, got %v", err)
	}
}

func TestDailyResetClearsCompletedOnNextDay(t *testing.T) {
	ctx := context.Background()
	clock := &testClock{now: time.Date(2026, 5, 4, 22, 0, 0, 0, time.UTC)}
	service, ns := newTestService(clock)

	if _, err := service.Toggle(ctx, ns, "2"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	// the toggle stamped today, so a same-day load keeps the flag
	items, _ := service.List(ctx, ns)
	if !items[1].CompletedToday {
		t.Fatalf("same-day load must keep the flag")
	}

	clock.now = clock.now.Add(3 * time.Hour)
	items, _ = service.List(ctx, ns)
	if items[1].CompletedToday {
		t.Fatalf("expected reset on the next day")
	}
	if items[1].Streak != 1 {
		t.Fatalf("reset must keep the streak, got %d", items[1].Streak)
	}
}

func TestGoalAndSummary(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService(&testClock{now: time.Now()})

	goal, err := service.Goal(ctx, ns)
	if err != nil || goal != DefaultGoal {
		t.Fatalf("default goal = %d err=%v", goal, err)
	}
	if err := service.SetGoal(ctx, ns, 0); !errors.Is(err, ErrInvalidGoal) {
		t.Fatalf("expected ErrInvalidGoal, got %v", err)
	}
	if err := service.SetGoal(ctx, ns, 2); err != nil {
		t.Fatalf("set goal: %v", err)
	}

	_, _ = service.Toggle(ctx, ns, "1")
	_, _ = service.Toggle(ctx, ns, "3")
	_, _ = service.Toggle(ctx, ns, "4")

	summary, err := service.Summary(ctx, ns)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Completed != 3 || summary.Total != 4 || summary.GoalProgress != 100 || summary.CompletionPercent != 75 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}
