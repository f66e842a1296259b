package work

import "aurora-app-go/internal/domain/reminders"

// Job is a place the user works at. IsWorking is kept for stored data but
// nothing toggles it.
type Job struct {
	ID        string `json:"id"`
	JobName   string `json:"jobName"`
	IsWorking bool   `json:"isWorking"`
}

type Task = reminders.Reminder

// Schedule maps a day (YYYY-MM-DD) to the ids of the jobs worked that day.
type Schedule map[string][]string

// JobColors are assigned by job position, wrapping around.
var JobColors = []string{
	"bg-indigo-500",
	"bg-pink-500",
	"bg-emerald-500",
	"bg-amber-500",
	"bg-violet-500",
	"bg-sky-500",
}

func JobColor(index int) string {
	return JobColors[index%len(JobColors)]
}

type ScheduledJob struct {
	ID      string `json:"id"`
	JobName string `json:"jobName"`
	Color   string `json:"color"`
}

type CalendarDay struct {
	Date    string         `json:"date"`
	Day     int            `json:"day"`
	IsToday bool           `json:"isToday"`
	Jobs    []ScheduledJob `json:"jobs"`
}

type Month struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	// FirstWeekday is the weekday of day 1, Sunday = 0.
	FirstWeekday int           `json:"firstWeekday"`
	Days         []CalendarDay `json:"days"`
}
