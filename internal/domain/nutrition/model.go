package nutrition

import "aurora-app-go/internal/domain/metrics"

// DefaultPortionGrams is used when a database food is added without an
// amount.
const DefaultPortionGrams = 100

type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (f FoodItem) Macros() metrics.Macros {
	return metrics.Macros{Calories: f.Calories, Protein: f.Protein, Carbs: f.Carbs, Fat: f.Fat}
}

type Meal struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []FoodItem `json:"items"`
}

func defaultMeals() []Meal {
	return []Meal{
		{ID: "1", Name: "CAFÉ DA MANHÃ", Items: []FoodItem{}},
		{ID: "2", Name: "ALMOÇO", Items: []FoodItem{}},
		{ID: "3", Name: "CAFÉ DA TARDE", Items: []FoodItem{}},
		{ID: "4", Name: "JANTA", Items: []FoodItem{}},
	}
}

type Biometrics = metrics.Biometrics

type AddFoodInput struct {
	MealID string
	Food   string
	// Grams <= 0 means DefaultPortionGrams.
	Grams float64
}

type ManualFoodInput struct {
	MealID   string
	Name     string
	Calories *float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type Overview struct {
	Meals   []Meal          `json:"meals"`
	Targets metrics.Targets `json:"targets"`
	Totals  metrics.Macros  `json:"totals"`
	Bio     Biometrics      `json:"bio"`
}
