package nutrition

import (
	"context"
	"errors"
	"strconv"
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

func (s *Service) meals(ns records.Namespace) *records.Collection[Meal] {
	return records.Open(s.repo, ns, records.CollectionSpec[Meal]{
		Domain:   records.DomainMeals,
		ID:       func(m Meal) string { return m.ID },
		Defaults: defaultMeals,
		Reset: &records.DailyReset[Meal]{
			Stamp: records.DomainNutritionLastReset,
			Clear: func(m Meal) Meal {
				m.Items = []FoodItem{}
				return m
			},
			ClearWhenUnstamped: true,
		},
	})
}

func (s *Service) bio(ns records.Namespace) *records.Value[Biometrics] {
	return records.OpenValue(s.repo, ns, records.ValueSpec[Biometrics]{
		Domain:  records.DomainBio,
		Default: metrics.DefaultBiometrics,
	})
}

func (s *Service) ListMeals(ctx context.Context, ns records.Namespace) ([]Meal, error) {
	return s.meals(ns).Load(ctx)
}

// AddMeal appends a meal; names are stored upper-cased.
func (s *Service) AddMeal(ctx context.Context, ns records.Namespace, name string) (*Meal, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMealNameRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}

	meal := Meal{ID: id, Name: strings.ToUpper(name), Items: []FoodItem{}}
	if err := s.meals(ns).Append(ctx, meal); err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal removes a meal together with its logged items.
func (s *Service) DeleteMeal(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.meals(ns).Delete(ctx, id)
	return err
}

// AddFood logs a database food scaled from its per-100 g values.
func (s *Service) AddFood(ctx context.Context, ns records.Namespace, input AddFoodInput) (*FoodItem, error) {
	food, ok := lookupFood(input.Food)
	if !ok {
		return nil, ErrFoodNotFound
	}

	grams := input.Grams
	if grams <= 0 {
		grams = DefaultPortionGrams
	}
	macros := metrics.ScalePer100g(food.Per100, grams)

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	item := FoodItem{
		ID:       id,
		Name:     food.Name + " (" + strconv.FormatFloat(grams, 'f', -1, 64) + "g)",
		Calories: macros.Calories,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fat:      macros.Fat,
	}
	if err := s.appendItem(ctx, ns, input.MealID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AddManualFood logs a free-form item. Name and calories are required;
// missing macros count as zero.
func (s *Service) AddManualFood(ctx context.Context, ns records.Namespace, input ManualFoodInput) (*FoodItem, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrFoodNameRequired
	}
	if input.Calories == nil {
		return nil, ErrCaloriesRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	item := FoodItem{
		ID:       id,
		Name:     input.Name,
		Calories: *input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	}
	if err := s.appendItem(ctx, ns, input.MealID, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveFood drops an item from a meal. Unknown items are ignored.
func (s *Service) RemoveFood(ctx context.Context, ns records.Namespace, mealID, itemID string) error {
	_, err := s.meals(ns).Update(ctx, mealID, func(m Meal) (Meal, error) {
		items := make([]FoodItem, 0, len(m.Items))
		for _, item := range m.Items {
			if item.ID != itemID {
				items = append(items, item)
			}
		}
		m.Items = items
		return m, nil
	})
	if errors.Is(err, records.ErrNotFound) {
		return ErrMealNotFound
	}
	return err
}

func (s *Service) appendItem(ctx context.Context, ns records.Namespace, mealID string, item FoodItem) error {
	_, err := s.meals(ns).Update(ctx, mealID, func(m Meal) (Meal, error) {
		m.Items = append(append([]FoodItem{}, m.Items...), item)
		return m, nil
	})
	if errors.Is(err, records.ErrNotFound) {
		return ErrMealNotFound
	}
	return err
}

func (s *Service) Biometrics(ctx context.Context, ns records.Namespace) (Biometrics, error) {
	return s.bio(ns).Get(ctx)
}

func (s *Service) SetBiometrics(ctx context.Context, ns records.Namespace, bio Biometrics) (Biometrics, error) {
	if bio.Weight < 0 || bio.Height < 0 || bio.Age < 0 {
		return Biometrics{}, ErrInvalidBiometrics
	}
	if err := s.bio(ns).Set(ctx, bio); err != nil {
		return Biometrics{}, err
	}
	return bio, nil
}

// Overview bundles the day's meals with targets and logged totals.
func (s *Service) Overview(ctx context.Context, ns records.Namespace) (Overview, error) {
	meals, err := s.ListMeals(ctx, ns)
	if err != nil {
		return Overview{}, err
	}
	bio, err := s.Biometrics(ctx, ns)
	if err != nil {
		return Overview{}, err
	}
	return Overview{
		Meals:   meals,
		Targets: metrics.NutritionTargets(bio),
		Totals:  Totals(meals),
		Bio:     bio,
	}, nil
}

func (s *Service) CaloriesToday(ctx context.Context, ns records.Namespace) (float64, error) {
	meals, err := s.ListMeals(ctx, ns)
	if err != nil {
		return 0, err
	}
	return Totals(meals).Calories, nil
}

func Totals(meals []Meal) metrics.Macros {
	var total metrics.Macros
	for _, meal := range meals {
		for _, item := range meal.Items {
			total = total.Add(item.Macros())
		}
	}
	return total
}
