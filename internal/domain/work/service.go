package work

import (
	"context"
	"errors"
	"strings"
	"time"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/domain/reminders"
)

type Service struct {
	repo *records.Repository
}

func NewService(repo *records.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) jobs(ns records.Namespace) *records.Collection[Job] {
	return records.Open(s.repo, ns, records.CollectionSpec[Job]{
		Domain: records.DomainWorkShifts,
		ID:     func(j Job) string { return j.ID },
	})
}

func (s *Service) tasks(ns records.Namespace) *records.Collection[Task] {
	return records.Open(s.repo, ns, records.CollectionSpec[Task]{
		Domain: records.DomainWorkTasks,
		ID:     reminders.ReminderID,
	})
}

func (s *Service) schedule(ns records.Namespace) *records.Value[Schedule] {
	return records.OpenValue(s.repo, ns, records.ValueSpec[Schedule]{
		Domain:  records.DomainWorkSchedule,
		Default: func() Schedule { return Schedule{} },
	})
}

// Job operations

func (s *Service) ListJobs(ctx context.Context, ns records.Namespace) ([]Job, error) {
	return s.jobs(ns).Load(ctx)
}

func (s *Service) AddJob(ctx context.Context, ns records.Namespace, name string) (*Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrJobNameRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	job := Job{ID: id, JobName: name}
	if err := s.jobs(ns).Append(ctx, job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes the job only. Schedule entries that still name it are
// left in place and skipped by the month view.
func (s *Service) DeleteJob(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.jobs(ns).Delete(ctx, id)
	return err
}

// Task operations

func (s *Service) ListTasks(ctx context.Context, ns records.Namespace) ([]Task, error) {
	return s.tasks(ns).Load(ctx)
}

func (s *Service) AddTask(ctx context.Context, ns records.Namespace, text string) (*Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTaskTextRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	task := Task{ID: id, Text: text}
	if err := s.tasks(ns).Append(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Service) ToggleTask(ctx context.Context, ns records.Namespace, id string) (*Task, error) {
	updated, err := s.tasks(ns).Update(ctx, id, func(t Task) (Task, error) {
		t.Completed = !t.Completed
		return t, nil
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *Service) DeleteTask(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.tasks(ns).Delete(ctx, id)
	return err
}

// Schedule operations

func (s *Service) Schedule(ctx context.Context, ns records.Namespace) (Schedule, error) {
	return s.schedule(ns).Get(ctx)
}

// ToggleDay marks or unmarks jobID as worked on day and returns the ids
// now scheduled for that day.
func (s *Service) ToggleDay(ctx context.Context, ns records.Namespace, day, jobID string) ([]string, error) {
	if _, err := time.Parse(records.DayLayout, day); err != nil {
		return nil, ErrInvalidDay
	}
	if _, err := s.jobs(ns).Find(ctx, jobID); err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	var onDay []string
	_, err := s.schedule(ns).Mutate(ctx, func(schedule Schedule) (Schedule, error) {
		if schedule == nil {
			schedule = Schedule{}
		}
		onDay = toggleID(schedule[day], jobID)
		if len(onDay) == 0 {
			delete(schedule, day)
		} else {
			schedule[day] = onDay
		}
		return schedule, nil
	})
	if err != nil {
		return nil, err
	}
	if onDay == nil {
		onDay = []string{}
	}
	return onDay, nil
}

// CurrentMonth is the month view of the repository's today.
func (s *Service) CurrentMonth(ctx context.Context, ns records.Namespace) (Month, error) {
	now := s.repo.Now()
	return s.Month(ctx, ns, now.Year(), int(now.Month()))
}

func (s *Service) Month(ctx context.Context, ns records.Namespace, year, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, ErrInvalidMonth
	}
	jobs, err := s.ListJobs(ctx, ns)
	if err != nil {
		return Month{}, err
	}
	schedule, err := s.Schedule(ctx, ns)
	if err != nil {
		return Month{}, err
	}
	return BuildMonth(year, time.Month(month), jobs, schedule, s.repo.Today()), nil
}

// BuildMonth lays out one calendar month. Job ids that no longer exist are
// skipped.
func BuildMonth(year int, month time.Month, jobs []Job, schedule Schedule, today string) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byID := make(map[string]ScheduledJob, len(jobs))
	for i, job := range jobs {
		byID[job.ID] = ScheduledJob{ID: job.ID, JobName: job.JobName, Color: JobColor(i)}
	}

	out := Month{
		Year:         year,
		Month:        int(month),
		FirstWeekday: int(first.Weekday()),
		Days:         make([]CalendarDay, 0, daysInMonth),
	}
	for d := 1; d <= daysInMonth; d++ {
		date := first.AddDate(0, 0, d-1).Format(records.DayLayout)
		day := CalendarDay{Date: date, Day: d, IsToday: date == today, Jobs: []ScheduledJob{}}
		for _, id := range schedule[date] {
			if job, ok := byID[id]; ok {
				day.Jobs = append(day.Jobs, job)
			}
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func toggleID(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	found := false
	for _, existing := range ids {
		if existing == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
