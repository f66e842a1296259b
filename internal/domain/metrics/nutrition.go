package metrics

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtreme   ActivityLevel = "extreme"
)

var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityExtreme:   1.9,
}

// Factor returns the TDEE multiplier. Unknown levels count as sedentary.
func (l ActivityLevel) Factor() float64 {
	if factor, ok := activityFactors[l]; ok {
		return factor
	}
	return activityFactors[ActivitySedentary]
}

func (l ActivityLevel) Valid() bool {
	_, ok := activityFactors[l]
	return ok
}

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

func (g Goal) Adjustment() float64 {
	switch g {
	case GoalLose:
		return -500
	case GoalGain:
		return 500
	default:
		return 0
	}
}

func (g Goal) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

// Biometrics is the per-user singleton that drives calorie targets.
type Biometrics struct {
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	Age           float64       `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
}

func DefaultBiometrics() Biometrics {
	return Biometrics{
		Weight:        70,
		Height:        175,
		Age:           25,
		Gender:        GenderMale,
		ActivityLevel: ActivityModerate,
		Goal:          GoalMaintain,
	}
}

// BMR is the basal metabolic rate. Only male selects the male
// coefficients; anything else uses the female ones.
func BMR(b Biometrics) float64 {
	if b.Gender == GenderMale {
		return 88.36 + 13.4*b.Weight + 4.8*b.Height - 5.7*b.Age
	}
	return 447.59 + 9.2*b.Weight + 3.1*b.Height - 4.3*b.Age
}

// TDEE is BMR times the activity factor, shifted by the goal adjustment.
func TDEE(b Biometrics) float64 {
	return BMR(b)*b.ActivityLevel.Factor() + b.Goal.Adjustment()
}

type Targets struct {
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
}

// NutritionTargets derives the daily macro split. Carbs take whatever the
// protein and fat targets leave and may be negative.
func NutritionTargets(b Biometrics) Targets {
	tdee := TDEE(b)
	protein := 2 * b.Weight
	fat := 0.8 * b.Weight
	carbs := (tdee - protein*4 - fat*9) / 4

	return Targets{
		BMR:      BMR(b),
		TDEE:     tdee,
		Calories: Round(tdee),
		Protein:  Round(protein),
		Carbs:    Round(carbs),
		Fat:      Round(fat),
	}
}

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
	}
}

func SumMacros(items []Macros) Macros {
	var total Macros
	for _, item := range items {
		total = total.Add(item)
	}
	return total
}

// ScalePer100g scales per-100 g reference values to grams and rounds each
// field.
func ScalePer100g(per100 Macros, grams float64) Macros {
	ratio := grams / 100
	return Macros{
		Calories: roundHalfUp(per100.Calories * ratio),
		Protein:  roundHalfUp(per100.Protein * ratio),
		Carbs:    roundHalfUp(per100.Carbs * ratio),
		Fat:      roundHalfUp(per100.Fat * ratio),
	}
}
