package health

import "aurora-app-go/internal/domain/metrics"

const DefaultLocation = "Não informado"

const (
	messageWarning = "Exame registrado. Atenção: detectamos %d indicador(es) fora da referência."
	messageSuccess = "Exame registrado com sucesso! Todos os indicadores dentro da normalidade."
)

// Exam is one lab report. Metrics maps a reference id to its result.
type Exam struct {
	ID       string             `json:"id"`
	Date     string             `json:"date"`
	Location string             `json:"location"`
	Metrics  map[string]float64 `json:"metrics"`
}

type AddExamInput struct {
	Date     string
	Location string
	Metrics  map[string]float64
}

type Notification struct {
	Type    metrics.Severity `json:"type"`
	Message string           `json:"message"`
}

type AddExamResult struct {
	Exam         Exam         `json:"exam"`
	Alerts       int          `json:"alerts"`
	Notification Notification `json:"notification"`
}

type ExamView struct {
	Exam
	Statuses map[string]metrics.Status `json:"statuses"`
	Issues   int                       `json:"issues"`
}

type SeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type Series struct {
	Metric metrics.Reference `json:"metric"`
	Points []SeriesPoint     `json:"points"`
}

type Latest struct {
	Exam   *Exam `json:"exam"`
	Issues int   `json:"issues"`
}
