package home

type Category string

const (
	CategoryGrocery  Category = "grocery"
	CategoryMeat     Category = "meat"
	CategoryBakery   Category = "bakery"
	CategoryFrozen   Category = "frozen"
	CategoryBeverage Category = "beverage"
	CategoryHygiene  Category = "hygiene"
	CategoryCleaning Category = "cleaning"
	CategoryOther    Category = "other"
)

// Categories is the display order of the shopping list.
var Categories = []Category{
	CategoryGrocery,
	CategoryMeat,
	CategoryBakery,
	CategoryFrozen,
	CategoryBeverage,
	CategoryHygiene,
	CategoryCleaning,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryGrocery:  "Mercado",
	CategoryMeat:     "Açougue",
	CategoryBakery:   "Padaria",
	CategoryFrozen:   "Congelados",
	CategoryBeverage: "Bebidas",
	CategoryHygiene:  "Higiene",
	CategoryCleaning: "Limpeza",
	CategoryOther:    "Outros",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	return categoryLabels[c]
}

type ShoppingItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	Completed bool     `json:"completed"`
}

type AddInput struct {
	Name     string
	Category Category
}

type Group struct {
	Category Category       `json:"category"`
	Label    string         `json:"label"`
	Items    []ShoppingItem `json:"items"`
}
