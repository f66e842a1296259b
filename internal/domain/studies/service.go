package studies

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

func (s *Service) topics(ns records.Namespace) *records.Collection[Topic] {
	return records.Open(s.repo, ns, records.CollectionSpec[Topic]{
		Domain: records.DomainStudyTopics,
		ID:     func(t Topic) string { return t.ID },
	})
}

func (s *Service) books(ns records.Namespace) *records.Collection[Book] {
	return records.Open(s.repo, ns, records.CollectionSpec[Book]{
		Domain: records.DomainStudyBooks,
		ID:     func(b Book) string { return b.ID },
	})
}

func (s *Service) ListTopics(ctx context.Context, ns records.Namespace) ([]Topic, error) {
	return s.topics(ns).Load(ctx)
}

func (s *Service) AddTopic(ctx context.Context, ns records.Namespace, input AddTopicInput) (*Topic, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Topic) == "" {
		return nil, ErrTopicRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	topic := Topic{ID: id, Subject: input.Subject, Topic: input.Topic, Status: TopicToStudy}
	if err := s.topics(ns).Prepend(ctx, topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (s *Service) SetTopicStatus(ctx context.Context, ns records.Namespace, id string, status TopicStatus) (*Topic, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	updated, err := s.topics(ns).Update(ctx, id, func(t Topic) (Topic, error) {
		t.Status = status
		return t, nil
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *Service) DeleteTopic(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.topics(ns).Delete(ctx, id)
	return err
}

func (s *Service) ListBooks(ctx context.Context, ns records.Namespace) ([]Book, error) {
	return s.books(ns).Load(ctx)
}

func (s *Service) AddBook(ctx context.Context, ns records.Namespace, title string) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	book := Book{ID: id, Title: title, Status: BookReading}
	if err := s.books(ns).Prepend(ctx, book); err != nil {
		return nil, err
	}
	return &book, nil
}

// ToggleBook flips a book between reading and finished.
func (s *Service) ToggleBook(ctx context.Context, ns records.Namespace, id string) (*Book, error) {
	return s.updateBook(ctx, ns, id, func(b Book) Book {
		if b.Status == BookReading {
			b.Status = BookFinished
		} else {
			b.Status = BookReading
		}
		return b
	})
}

func (s *Service) RateBook(ctx context.Context, ns records.Namespace, id string, rating int) (*Book, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	return s.updateBook(ctx, ns, id, func(b Book) Book {
		b.Rating = rating
		return b
	})
}

func (s *Service) updateBook(ctx context.Context, ns records.Namespace, id string, fn func(Book) Book) (*Book, error) {
	updated, err := s.books(ns).Update(ctx, id, func(b Book) (Book, error) {
		return fn(b), nil
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *Service) DeleteBook(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.books(ns).Delete(ctx, id)
	return err
}

func (s *Service) Progress(ctx context.Context, ns records.Namespace) (Progress, error) {
	topics, err := s.ListTopics(ctx, ns)
	if err != nil {
		return Progress{}, err
	}
	books, err := s.ListBooks(ctx, ns)
	if err != nil {
		return Progress{}, err
	}
	return Summarize(topics, books), nil
}

// Summarize reports the share of finished topics and the number of books read.
func Summarize(topics []Topic, books []Book) Progress {
	out := Progress{Total: len(topics)}
	for _, t := range topics {
		if t.Status == TopicDone {
			out.Done++
		}
	}
	for _, b := range books {
		if b.Status == BookFinished {
			out.Read++
		}
	}
	out.Progress = metrics.CompletionPercent(out.Done, out.Total)
	return out
}
