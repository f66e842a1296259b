package metrics

import (
	"fmt"
	"math"
	"strconv"
)

type CardioType string

const (
	CardioRun  CardioType = "run"
	CardioWalk CardioType = "walk"
	CardioBike CardioType = "bike"
)

func (t CardioType) Valid() bool {
	return t == CardioRun || t == CardioWalk || t == CardioBike
}

// kcal per minute
func (t CardioType) baseFactor() float64 {
	switch t {
	case CardioBike:
		return 8
	case CardioWalk:
		return 5
	default:
		return 10
	}
}

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

func (i Intensity) Valid() bool {
	return i == IntensityLow || i == IntensityModerate || i == IntensityHigh
}

func (i Intensity) multiplier() float64 {
	switch i {
	case IntensityHigh:
		return 1.2
	case IntensityLow:
		return 0.8
	default:
		return 1
	}
}

// Pace formats minutes per kilometre as M:SS. A non-positive distance
// yields "0:00". Seconds are rounded on their own and never carried, so a
// pace just under a whole minute prints as "5:60".
func Pace(distanceKm, timeMinutes float64) string {
	if distanceKm <= 0 {
		return "0:00"
	}
	pace := timeMinutes / distanceKm
	mins := math.Floor(pace)
	secs := roundHalfUp((pace - mins) * 60)
	return fmt.Sprintf("%d:%02d", int(mins), int(secs))
}

// Speed formats km/h with one decimal. A non-positive time yields "0.0".
func Speed(distanceKm, timeMinutes float64) string {
	if timeMinutes <= 0 {
		return "0.0"
	}
	return strconv.FormatFloat(distanceKm/(timeMinutes/60), 'f', 1, 64)
}

// CardioCalories is a rough estimate: minutes x type factor x intensity.
func CardioCalories(timeMinutes float64, kind CardioType, intensity Intensity) float64 {
	return timeMinutes * kind.baseFactor() * intensity.multiplier()
}

type CardioSession struct {
	DistanceKm  float64
	TimeMinutes float64
	Type        CardioType
	Intensity   Intensity
}

type CardioStats struct {
	TotalKm       float64 `json:"totalKm"`
	TotalMinutes  float64 `json:"totalMinutes"`
	AveragePace   string  `json:"avgPace"`
	TotalCalories int     `json:"totalCalories"`
}

func SummarizeCardio(sessions []CardioSession) CardioStats {
	var stats CardioStats
	var calories float64
	for _, s := range sessions {
		stats.TotalKm += s.DistanceKm
		stats.TotalMinutes += s.TimeMinutes
		calories += CardioCalories(s.TimeMinutes, s.Type, s.Intensity)
	}
	stats.AveragePace = Pace(stats.TotalKm, stats.TotalMinutes)
	stats.TotalCalories = Round(calories)
	return stats
}
