package workout

import "aurora-app-go/internal/domain/metrics"

const (
	DefaultSets         = 1
	DefaultSheetSets    = "3"
	DefaultSheetReps    = "12"
	DefaultSheetRest    = "60"
	DefaultSheetLoad    = "0"
	DefaultCardioType   = metrics.CardioRun
	DefaultCardioEffort = metrics.IntensityModerate
)

// LiftingEntry represents one logged exercise with its load.
type LiftingEntry struct {
	ID       string  `json:"id"`
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Sets     float64 `json:"sets"`
	Reps     float64 `json:"reps"`
	RPE      float64 `json:"rpe"`
	Date     string  `json:"date"`
}

// RunSession represents one cardio session. Type and intensity may be empty
// on sessions stored before they existed; reads fall back to the defaults.
type RunSession struct {
	ID          string             `json:"id"`
	DistanceKm  float64            `json:"distanceKm"`
	TimeMinutes float64            `json:"timeMinutes"`
	Date        string             `json:"date"`
	Type        metrics.CardioType `json:"type,omitempty"`
	Intensity   metrics.Intensity  `json:"intensity,omitempty"`
}

// RunView is a session with its derived figures.
type RunView struct {
	RunSession
	Pace     string  `json:"pace"`
	Speed    string  `json:"speed"`
	Calories float64 `json:"calories"`
}

// SheetExercise keeps the user's free text for every field.
type SheetExercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest,omitempty"`
	Load string `json:"load,omitempty"`
}

// TrainingSheet represents a reusable workout plan.
type TrainingSheet struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Exercises []SheetExercise `json:"exercises"`
}

type AddLiftInput struct {
	Exercise string
	Weight   float64
	Sets     float64
	Reps     float64
	RPE      float64
}

type AddRunInput struct {
	DistanceKm  float64
	TimeMinutes float64
	Type        metrics.CardioType
	Intensity   metrics.Intensity
}

type AddSheetExerciseInput struct {
	Name string
	Sets string
	Reps string
	Rest string
	Load string
}
