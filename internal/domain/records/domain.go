package records

import (
	"strings"
)

// Domain names one persisted collection (or singleton) of a user.
type Domain string

const (
	DomainReminders          Domain = "reminders"
	DomainHabits             Domain = "habits"
	DomainHabitsLastReset    Domain = "habits_last_reset"
	DomainHabitsGoal         Domain = "habits_goal"
	DomainFinances           Domain = "finances"
	DomainMeals              Domain = "meals"
	DomainNutritionLastReset Domain = "nutrition_last_reset"
	DomainBio                Domain = "bio"
	DomainShoppingList       Domain = "shopping_list"
	DomainStudyTopics        Domain = "study_topics"
	DomainStudyBooks         Domain = "study_books"
	DomainWorkoutLifting     Domain = "workout_lifting"
	DomainWorkoutRuns        Domain = "workout_runs"
	DomainWorkoutSheets      Domain = "workout_sheets"
	DomainWorkShifts         Domain = "work_shifts"
	DomainWorkTasks          Domain = "work_tasks"
	DomainWorkSchedule       Domain = "work_schedule"
	DomainHealthExams        Domain = "health_exams"
)

var allDomains = []Domain{
	DomainReminders,
	DomainHabits,
	DomainHabitsLastReset,
	DomainHabitsGoal,
	DomainFinances,
	DomainMeals,
	DomainNutritionLastReset,
	DomainBio,
	DomainShoppingList,
	DomainStudyTopics,
	DomainStudyBooks,
	DomainWorkoutLifting,
	DomainWorkoutRuns,
	DomainWorkoutSheets,
	DomainWorkShifts,
	DomainWorkTasks,
	DomainWorkSchedule,
	DomainHealthExams,
}

func Domains() []Domain {
	return append([]Domain(nil), allDomains...)
}

func (d Domain) Valid() bool {
	for _, known := range allDomains {
		if d == known {
			return true
		}
	}
	return false
}

// LocalOwner is the owner marker used when no authenticated identity exists.
const LocalOwner = "local"

// Namespace scopes every key of one user: <app>_<owner>_<domain>.
type Namespace struct {
	App   string
	Owner string
}

// NewNamespace derives the owner from an email; an empty email maps to the
// local marker.
func NewNamespace(app, email string) Namespace {
	owner := strings.ToLower(strings.TrimSpace(email))
	if owner == "" {
		owner = LocalOwner
	}
	return Namespace{App: app, Owner: owner}
}

func LocalNamespace(app string) Namespace {
	return Namespace{App: app, Owner: LocalOwner}
}

// Prefix is shared by all keys of the namespace and by no key of any other
// namespace.
func (n Namespace) Prefix() string {
	return n.App + "_" + escapeOwner(n.Owner) + "_"
}

func (n Namespace) Key(d Domain) string {
	return n.Prefix() + string(d)
}

// DomainOf maps a key produced by Key back to its domain.
func (n Namespace) DomainOf(key string) (Domain, bool) {
	rest, ok := strings.CutPrefix(key, n.Prefix())
	if !ok {
		return "", false
	}
	d := Domain(rest)
	return d, d.Valid()
}

// ProfileKey is the key of the device-local profile singleton. The colon
// keeps it outside every namespace prefix, local included.
func ProfileKey(app string) string {
	return app + ":local_profile"
}

var ownerEscaper = strings.NewReplacer("%", "%25", "_", "%5F")

func escapeOwner(owner string) string {
	return ownerEscaper.Replace(owner)
}
