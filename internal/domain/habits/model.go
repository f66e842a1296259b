package habits

const (
	DefaultIcon  = "✨"
	DefaultColor = "bg-indigo-500"
	DefaultGoal  = 3
)

type HistoryPoint struct {
	Day   string `json:"day"`
	Score int    `json:"score"`
}

type Habit struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Streak         int            `json:"streak"`
	CompletedToday bool           `json:"completedToday"`
	History        []HistoryPoint `json:"history"`
	Icon           string         `json:"icon,omitempty"`
	Color          string         `json:"color,omitempty"`
}

type AddInput struct {
	Name string
	Icon string
}

type Summary struct {
	Completed         int     `json:"completed"`
	Total             int     `json:"total"`
	Goal              int     `json:"goal"`
	GoalProgress      float64 `json:"goalProgress"`
	CompletionPercent int     `json:"completionPercent"`
}

// AvailableIcons is the emoji palette offered when creating a habit.
var AvailableIcons = []string{"✨", "💪", "🧠", "🏃", "💤", "🥗", "🎸", "💻", "☀️", "💊", "📝", "💧", "📚", "🧘", "🚶", "🍎", "🍵", "🎨", "🔇", "🤝"}

func starterHabits() []Habit {
	return []Habit{
		{ID: "1", Name: "Beber 3L de Água", History: []HistoryPoint{}, Icon: "💧", Color: "bg-blue-500"},
		{ID: "2", Name: "Ler 10 páginas", History: []HistoryPoint{}, Icon: "📚", Color: "bg-amber-500"},
		{ID: "3", Name: "Meditação", History: []HistoryPoint{}, Icon: "🧘", Color: "bg-purple-500"},
		{ID: "4", Name: "Exercício Físico", History: []HistoryPoint{}, Icon: "💪", Color: "bg-rose-500"},
	}
}
