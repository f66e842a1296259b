package metrics

import (
	"sort"
)

type LiftSet struct {
	Exercise string
	Weight   float64
	Sets     float64
	Reps     float64
	// Date is a day in records.DayLayout.
	Date string
}

type ProgressPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
	Sets   float64 `json:"sets"`
}

type ExerciseProgress struct {
	Exercise string          `json:"exercise"`
	PR       float64         `json:"pr"`
	Volume   float64         `json:"totalVolume"`
	Sessions int             `json:"sessions"`
	Points   []ProgressPoint `json:"points"`
}

// Progress summarizes every logged set whose exercise matches name exactly.
// Points are ordered by date, oldest first.
func Progress(sets []LiftSet, name string) ExerciseProgress {
	result := ExerciseProgress{Exercise: name, Points: []ProgressPoint{}}
	if name == "" {
		return result
	}

	for _, set := range sets {
		if set.Exercise != name {
			continue
		}
		if result.Sessions == 0 || set.Weight > result.PR {
			result.PR = set.Weight
		}
		result.Volume += set.Weight * set.Reps * set.Sets
		result.Sessions++
		result.Points = append(result.Points, ProgressPoint{
			Date:   set.Date,
			Weight: set.Weight,
			Reps:   set.Reps,
			Sets:   set.Sets,
		})
	}

	sort.SliceStable(result.Points, func(i, j int) bool {
		return result.Points[i].Date < result.Points[j].Date
	})
	return result
}

// UniqueExercises returns the distinct exercise names, sorted.
func UniqueExercises(sets []LiftSet) []string {
	seen := make(map[string]struct{}, len(sets))
	names := make([]string, 0, len(sets))
	for _, set := range sets {
		if _, ok := seen[set.Exercise]; ok {
			continue
		}
		seen[set.Exercise] = struct{}{}
		names = append(names, set.Exercise)
	}
	sort.Strings(names)
	return names
}
