package metrics

import "math"

// GoalProgress is completed/goal as a percentage capped at 100. A
// non-positive goal yields 0.
func GoalProgress(completed, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Min(float64(completed)/float64(goal)*100, 100)
}

// CompletionPercent is the rounded share of done over total.
func CompletionPercent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return Round(float64(done) / float64(total) * 100)
}
