package work

import (
	"context"
	"errors"
	"testing"
	"time"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/repository/inmemory"
)

func newTestService() (*Service, records.Namespace) {
	now := func() time.Time { return time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC) }
	repo := records.NewRepository(inmemory.NewRecordStore(), records.WithClock(now), records.WithLocation(time.UTC))
	return NewService(repo), records.LocalNamespace("aurora")
}

func TestJobsAndTasks(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()

	if _, err := service.AddJob(ctx, ns, " "); !errors.Is(err, ErrJobNameRequired) {
		t.Fatalf("expected ErrJobNameRequired, got %v", err)
	}
	first, _ := service.AddJob(ctx, ns, "Hospital")
	second, _ := service.AddJob(ctx, ns, "Clínica")

	jobs, _ := service.ListJobs(ctx, ns)
	if len(jobs) != 2 || jobs[0].ID != first.ID || jobs[1].ID != second.ID {
		t.Fatalf("jobs must keep insertion order: %+v", jobs)
	}

	task, err := service.AddTask(ctx, ns, "Enviar relatório")
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	toggled, _ := service.ToggleTask(ctx, ns, task.ID)
	if !toggled.Completed {
		t.Fatalf("expected completed task")
	}
	if _, err := service.ToggleTask(ctx, ns, "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := service.DeleteTask(ctx, ns, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
}

func TestToggleDay(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()
	job, _ := service.AddJob(ctx, ns, "Hospital")
	other, _ := service.AddJob(ctx, ns, "Clínica")

	if _, err := service.ToggleDay(ctx, ns, "10/02/2026", job.ID); !errors.Is(err, ErrInvalidDay) {
		t.Fatalf("expected ErrInvalidDay, got %v", err)
	}
	if _, err := service.ToggleDay(ctx, ns, "2026-02-10", "missing"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	ids, _ := service.ToggleDay(ctx, ns, "2026-02-10", job.ID)
	ids, _ = service.ToggleDay(ctx, ns, "2026-02-10", other.ID)
	if len(ids) != 2 || ids[0] != job.ID || ids[1] != other.ID {
		t.Fatalf("unexpected ids %v", ids)
	}

	ids, _ = service.ToggleDay(ctx, ns, "2026-02-10", job.ID)
	if len(ids) != 1 || ids[0] != other.ID {
		t.Fatalf("toggle must remove the job, got %v", ids)
	}
	ids, _ = service.ToggleDay(ctx, ns, "2026-02-10", other.ID)
	schedule, _ := service.Schedule(ctx, ns)
	if len(ids) != 0 || len(schedule) != 0 {
		t.Fatalf("empty days must be dropped: %v %v", ids, schedule)
	}
}

func TestMonthSkipsDeletedJobs(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()
	kept, _ := service.AddJob(ctx, ns, "Hospital")
	removed, _ := service.AddJob(ctx, ns, "Clínica")

	_, _ = service.ToggleDay(ctx, ns, "2026-02-10", kept.ID)
	_, _ = service.ToggleDay(ctx, ns, "2026-02-10", removed.ID)
	if err := service.DeleteJob(ctx, ns, removed.ID); err != nil {
		t.Fatalf("delete job: %v", err)
	}

	schedule, _ := service.Schedule(ctx, ns)
	if len(schedule["2026-02-10"]) != 2 {
		t.Fatalf("deleting a job must not touch the schedule: %v", schedule)
	}

	month, err := service.Month(ctx, ns, 2026, 2)
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if len(month.Days) != 28 || month.FirstWeekday != int(time.Sunday) {
		t.Fatalf("unexpected layout %d days, first weekday %d", len(month.Days), month.FirstWeekday)
	}
	day := month.Days[9]
	if !day.IsToday || len(day.Jobs) != 1 || day.Jobs[0].ID != kept.ID || day.Jobs[0].Color != "bg-indigo-500" {
		t.Fatalf("unexpected day %+v", day)
	}

	if _, err := service.Month(ctx, ns, 2026, 13); !errors.Is(err, ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestJobColorWraps(t *testing.T) {
	if JobColor(6) != JobColor(0) || JobColor(1) != "bg-pink-500" {
		t.Fatalf("unexpected color wrap")
	}
}
