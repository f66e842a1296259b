package habits

import (
	"context"
	"errors"
	"strings"

	"aurora-app-go/internal/domain/metrics"
	"aurora-app-go/internal/domain/records"
)

type Service struct {
	repo *records.Repository
}

func NewService(repo *records.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) collection(ns records.Namespace) *records.Collection[Habit] {
	return records.Open(s.repo, ns, records.CollectionSpec[Habit]{
		Domain:   records.DomainHabits,
		ID:       func(h Habit) string { return h.ID },
		Defaults: starterHabits,
		Reset: &records.DailyReset[Habit]{
			Stamp: records.DomainHabitsLastReset,
			Clear: func(h Habit) Habit {
				h.CompletedToday = false
				return h
			},
		},
	})
}

func (s *Service) goal(ns records.Namespace) *records.Value[int] {
	return records.OpenValue(s.repo, ns, records.ValueSpec[int]{
		Domain:  records.DomainHabitsGoal,
		Default: func() int { return DefaultGoal },
	})
}

func (s *Service) List(ctx context.Context, ns records.Namespace) ([]Habit, error) {
	return s.collection(ns).Load(ctx)
}

// Add appends a habit; an empty icon falls back to the default sparkle.
func (s *Service) Add(ctx context.Context, ns records.Namespace, input AddInput) (*Habit, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		icon = DefaultIcon
	}

	habit := Habit{
		ID:      id,
		Name:    input.Name,
		History: []HistoryPoint{},
		Icon:    icon,
		Color:   DefaultColor,
	}
	if err := s.collection(ns).Append(ctx, habit); err != nil {
		return nil, err
	}
	return &habit, nil
}

// Toggle flips completedToday. Checking adds one to the streak, unchecking
// removes one (never below zero); previous days are not inspected.
func (s *Service) Toggle(ctx context.Context, ns records.Namespace, id string) (*Habit, error) {
	today := s.repo.Today()
	updated, err := s.collection(ns).Update(ctx, id, func(h Habit) (Habit, error) {
		h.CompletedToday = !h.CompletedToday
		if h.CompletedToday {
			h.Streak++
		} else if h.Streak > 0 {
			h.Streak--
		}
		h.History = recordDay(h.History, today, h.CompletedToday)
		return h, nil
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.collection(ns).Delete(ctx, id)
	return err
}

func (s *Service) Goal(ctx context.Context, ns records.Namespace) (int, error) {
	goal, err := s.goal(ns).Get(ctx)
	if err != nil {
		return 0, err
	}
	if goal <= 0 {
		return DefaultGoal, nil
	}
	return goal, nil
}

func (s *Service) SetGoal(ctx context.Context, ns records.Namespace, goal int) error {
	if goal < 1 {
		return ErrInvalidGoal
	}
	return s.goal(ns).Set(ctx, goal)
}

func (s *Service) Summary(ctx context.Context, ns records.Namespace) (Summary, error) {
	items, err := s.List(ctx, ns)
	if err != nil {
		return Summary{}, err
	}
	goal, err := s.Goal(ctx, ns)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(items, goal), nil
}

func Summarize(items []Habit, goal int) Summary {
	completed := 0
	for _, h := range items {
		if h.CompletedToday {
			completed++
		}
	}
	return Summary{
		Completed:         completed,
		Total:             len(items),
		Goal:              goal,
		GoalProgress:      metrics.GoalProgress(completed, goal),
		CompletionPercent: metrics.CompletionPercent(completed, len(items)),
	}
}

func recordDay(history []HistoryPoint, day string, done bool) []HistoryPoint {
	score := 0
	if done {
		score = 1
	}

	out := make([]HistoryPoint, 0, len(history)+1)
	replaced := false
	for _, point := range history {
		if point.Day == day {
			point.Score = score
			replaced = true
		}
		out = append(out, point)
	}
	if !replaced {
		out = append(out, HistoryPoint{Day: day, Score: score})
	}
	return out
}
