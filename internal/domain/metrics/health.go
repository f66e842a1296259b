package metrics

// Reference is one entry of the exam reference table. Min == Max == 0 means
// the metric has no reference range.
type Reference struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

func (r Reference) HasRange() bool {
	return !(r.Min == 0 && r.Max == 0)
}

type Status string

const (
	StatusNeutral Status = "neutral"
	StatusLow     Status = "Baixo"
	StatusHigh    Status = "Alto"
	StatusNormal  Status = "Normal"
)

func (s Status) Abnormal() bool {
	return s == StatusLow || s == StatusHigh
}

func Classify(ref Reference, value float64) Status {
	if !ref.HasRange() {
		return StatusNeutral
	}
	switch {
	case value < ref.Min:
		return StatusLow
	case value > ref.Max:
		return StatusHigh
	default:
		return StatusNormal
	}
}

// AlertCount counts the metrics outside their range. Metrics missing from
// refs are neutral.
func AlertCount(values map[string]float64, refs map[string]Reference) int {
	count := 0
	for id, value := range values {
		ref, ok := refs[id]
		if !ok {
			continue
		}
		if Classify(ref, value).Abnormal() {
			count++
		}
	}
	return count
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

func AlertSeverity(alerts int) Severity {
	if alerts > 0 {
		return SeverityWarning
	}
	return SeveritySuccess
}
