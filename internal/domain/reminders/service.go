package reminders

import (
	"context"
	"errors"
	"strings"

	"aurora-app-go/internal/domain/records"
)

type Service struct {
	repo *records.Repository
}

func NewService(repo *records.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) collection(ns records.Namespace) *records.Collection[Reminder] {
	return records.Open(s.repo, ns, records.CollectionSpec[Reminder]{
		Domain: records.DomainReminders,
		ID:     ReminderID,
	})
}

func (s *Service) List(ctx context.Context, ns records.Namespace) ([]Reminder, error) {
	return s.collection(ns).Load(ctx)
}

// Add stores a reminder at the front of the list.
func (s *Service) Add(ctx context.Context, ns records.Namespace, input AddInput) (*Reminder, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, ErrTextRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}

	reminder := Reminder{
		ID:       id,
		Text:     input.Text,
		Datetime: input.Datetime,
	}
	if err := s.collection(ns).Prepend(ctx, reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (s *Service) Toggle(ctx context.Context, ns records.Namespace, id string) (*Reminder, error) {
	updated, err := s.collection(ns).Update(ctx, id, func(r Reminder) (Reminder, error) {
		r.Completed = !r.Completed
		return r, nil
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a reminder. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.collection(ns).Delete(ctx, id)
	return err
}

func (s *Service) Pending(ctx context.Context, ns records.Namespace) (int, error) {
	items, err := s.List(ctx, ns)
	if err != nil {
		return 0, err
	}
	return CountPending(items), nil
}

func CountPending(items []Reminder) int {
	pending := 0
	for _, item := range items {
		if !item.Completed {
			pending++
		}
	}
	return pending
}
