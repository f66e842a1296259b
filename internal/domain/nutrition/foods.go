package nutrition

import (
	"strings"

	"aurora-app-go/internal/domain/metrics"
)

// Food is a database entry with values per 100 g.
type Food struct {
	Name   string         `json:"name"`
	Per100 metrics.Macros `json:"per100g"`
	Unit   string         `json:"unit"`
}

var foodDatabase = []Food{
	{Name: "Frango Desfiado", Per100: metrics.Macros{Calories: 195, Protein: 29.5, Carbs: 0, Fat: 7.7}, Unit: "g"},
	{Name: "Arroz Branco", Per100: metrics.Macros{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3}, Unit: "g"},
	{Name: "Feijão Carioca", Per100: metrics.Macros{Calories: 76, Protein: 4.8, Carbs: 13.6, Fat: 0.5}, Unit: "g"},
	{Name: "Ovo Inteiro", Per100: metrics.Macros{Calories: 143, Protein: 13, Carbs: 1.1, Fat: 9.5}, Unit: "g"},
	{Name: "Patinho Moído", Per100: metrics.Macros{Calories: 219, Protein: 35.9, Carbs: 0, Fat: 7.3}, Unit: "g"},
	{Name: "Banana Nanica", Per100: metrics.Macros{Calories: 92, Protein: 1.3, Carbs: 23.8, Fat: 0.3}, Unit: "g"},
	{Name: "Whey Protein", Per100: metrics.Macros{Calories: 390, Protein: 80, Carbs: 5, Fat: 6}, Unit: "g"},
	{Name: "Azeite de Oliva", Per100: metrics.Macros{Calories: 884, Protein: 0, Carbs: 0, Fat: 100}, Unit: "g"},
	{Name: "Pão Integral", Per100: metrics.Macros{Calories: 250, Protein: 10, Carbs: 45, Fat: 3}, Unit: "g"},
}

// SearchFoods matches term case-insensitively against food names. An empty
// term returns the whole database.
func SearchFoods(term string) []Food {
	term = strings.ToLower(strings.TrimSpace(term))
	result := make([]Food, 0, len(foodDatabase))
	for _, food := range foodDatabase {
		if term == "" || strings.Contains(strings.ToLower(food.Name), term) {
			result = append(result, food)
		}
	}
	return result
}

func lookupFood(name string) (Food, bool) {
	for _, food := range foodDatabase {
		if strings.EqualFold(food.Name, strings.TrimSpace(name)) {
			return food, true
		}
	}
	return Food{}, false
}
