package home

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

func (s *Service) collection(ns records.Namespace) *records.Collection[ShoppingItem] {
	return records.Open(s.repo, ns, records.CollectionSpec[ShoppingItem]{
		Domain: records.DomainShoppingList,
		ID:     func(i ShoppingItem) string { return i.ID },
	})
}

func (s *Service) List(ctx context.Context, ns records.Namespace) ([]ShoppingItem, error) {
	return s.collection(ns).Load(ctx)
}

// Grouped returns the non-empty categories in display order.
func (s *Service) Grouped(ctx context.Context, ns records.Namespace) ([]Group, error) {
	items, err := s.List(ctx, ns)
	if err != nil {
		return nil, err
	}
	return GroupByCategory(items), nil
}

func (s *Service) Add(ctx context.Context, ns records.Namespace, input AddInput) (*ShoppingItem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}
	category := input.Category
	if category == "" {
		category = CategoryGrocery
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	item := ShoppingItem{ID: id, Name: input.Name, Category: category}
	if err := s.collection(ns).Append(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Toggle(ctx context.Context, ns records.Namespace, id string) (*ShoppingItem, error) {
	updated, err := s.collection(ns).Update(ctx, id, func(i ShoppingItem) (ShoppingItem, error) {
		i.Completed = !i.Completed
		return i, nil
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.collection(ns).Delete(ctx, id)
	return err
}

// CompareUnitPrice is stateless; it lives here because the comparator is
// part of the home screen.
func (s *Service) CompareUnitPrice(a, b metrics.PriceQuote) metrics.UnitPriceComparison {
	return metrics.CompareUnitPrice(a, b)
}

func GroupByCategory(items []ShoppingItem) []Group {
	byCategory := make(map[Category][]ShoppingItem, len(Categories))
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	groups := make([]Group, 0, len(byCategory))
	for _, category := range Categories {
		catItems := byCategory[category]
		if len(catItems) == 0 {
			continue
		}
		groups = append(groups, Group{Category: category, Label: category.Label(), Items: catItems})
	}
	return groups
}
