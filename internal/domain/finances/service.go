package finances

import (
	"context"
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

func (s *Service) collection(ns records.Namespace) *records.Collection[Transaction] {
	return records.Open(s.repo, ns, records.CollectionSpec[Transaction]{
		Domain: records.DomainFinances,
		ID:     func(t Transaction) string { return t.ID },
	})
}

// List returns the transactions newest first, optionally filtered by a
// case-insensitive match on description or category.
func (s *Service) List(ctx context.Context, ns records.Namespace, filter ListFilter) ([]Transaction, error) {
	items, err := s.collection(ns).Load(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(items, filter.Search), nil
}

func (s *Service) Add(ctx context.Context, ns records.Namespace, input AddInput) (*Transaction, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrDescriptionRequired
	}
	if !input.Amount.Valid {
		return nil, ErrAmountRequired
	}
	if input.Amount.Decimal.IsNegative() {
		return nil, ErrNegativeAmount
	}

	kind := input.Type
	if kind == "" {
		kind = DefaultType
	}
	if !kind.Valid() {
		return nil, ErrInvalidType
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}

	tx := Transaction{
		ID:          id,
		Description: input.Description,
		Amount:      input.Amount.Decimal,
		Type:        kind,
		Category:    NormalizeCategory(input.Category),
		Date:        s.repo.Now(),
	}
	if err := s.collection(ns).Prepend(ctx, tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *Service) Delete(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.collection(ns).Delete(ctx, id)
	return err
}

func (s *Service) Summary(ctx context.Context, ns records.Namespace) (metrics.FinanceSummary, error) {
	items, err := s.collection(ns).Load(ctx)
	if err != nil {
		return metrics.FinanceSummary{}, err
	}
	return Summarize(items), nil
}

func Summarize(items []Transaction) metrics.FinanceSummary {
	flows := make([]metrics.Flow, 0, len(items))
	for _, item := range items {
		flows = append(flows, metrics.Flow{Type: item.Type, Amount: item.Amount})
	}
	return metrics.SummarizeFinances(flows)
}

// NormalizeCategory keeps predefined categories, defaults an empty one to
// the first category and maps anything else to Outros.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return Categories[0]
	}
	for _, known := range Categories {
		if known == category {
			return known
		}
	}
	return FallbackCategory
}

func Filter(items []Transaction, search string) []Transaction {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return items
	}

	result := make([]Transaction, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Description), search) ||
			strings.Contains(strings.ToLower(item.Category), search) {
			result = append(result, item)
		}
	}
	return result
}
