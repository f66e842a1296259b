package health

import (
	"context"
	"fmt"
	"strings"
	"time"

	"aurora-app-go/internal/domain/metrics"
	"aurora-app-go/internal/domain/records"
)

type Service struct {
	repo *records.Repository
}

func NewService(repo *records.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) exams(ns records.Namespace) *records.Collection[Exam] {
	return records.Open(s.repo, ns, records.CollectionSpec[Exam]{
		Domain: records.DomainHealthExams,
		ID:     func(e Exam) string { return e.ID },
	})
}

func (s *Service) List(ctx context.Context, ns records.Namespace) ([]ExamView, error) {
	exams, err := s.exams(ns).Load(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ExamView, 0, len(exams))
	for _, exam := range exams {
		views = append(views, View(exam))
	}
	return views, nil
}

// AddExam stores an exam at the front of the history and reports how many
// results fall outside their reference range.
func (s *Service) AddExam(ctx context.Context, ns records.Namespace, input AddExamInput) (*AddExamResult, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		return nil, ErrDateRequired
	}
	if _, err := time.Parse(records.DayLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	values := make(map[string]float64, len(input.Metrics))
	for id, value := range input.Metrics {
		if _, ok := LookupReference(id); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, id)
		}
		values[id] = value
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = DefaultLocation
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	exam := Exam{ID: id, Date: date, Location: location, Metrics: values}
	if err := s.exams(ns).Prepend(ctx, exam); err != nil {
		return nil, err
	}

	alerts := metrics.AlertCount(exam.Metrics, referenceByID)
	return &AddExamResult{
		Exam:         exam,
		Alerts:       alerts,
		Notification: notify(alerts),
	}, nil
}

func (s *Service) Delete(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.exams(ns).Delete(ctx, id)
	return err
}

func (s *Service) Series(ctx context.Context, ns records.Namespace, metricID string) (*Series, error) {
	ref, ok := LookupReference(metricID)
	if !ok {
		return nil, ErrUnknownMetric
	}
	exams, err := s.exams(ns).Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Series{Metric: ref, Points: BuildSeries(exams, metricID)}, nil
}

// Latest reports the newest exam and its number of out-of-range results.
func (s *Service) Latest(ctx context.Context, ns records.Namespace) (Latest, error) {
	exams, err := s.exams(ns).Load(ctx)
	if err != nil {
		return Latest{}, err
	}
	if len(exams) == 0 {
		return Latest{}, nil
	}
	exam := exams[0]
	return Latest{Exam: &exam, Issues: metrics.AlertCount(exam.Metrics, referenceByID)}, nil
}

func View(exam Exam) ExamView {
	statuses := make(map[string]metrics.Status, len(exam.Metrics))
	issues := 0
	for id, value := range exam.Metrics {
		ref, ok := LookupReference(id)
		if !ok {
			statuses[id] = metrics.StatusNeutral
			continue
		}
		status := metrics.Classify(ref, value)
		statuses[id] = status
		if status.Abnormal() {
			issues++
		}
	}
	return ExamView{Exam: exam, Statuses: statuses, Issues: issues}
}

// BuildSeries charts one metric oldest first. Exams stored newest first are
// walked in reverse; missing and zero results are skipped.
func BuildSeries(exams []Exam, metricID string) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(exams))
	for i := len(exams) - 1; i >= 0; i-- {
		value, ok := exams[i].Metrics[metricID]
		if !ok || value == 0 {
			continue
		}
		points = append(points, SeriesPoint{Date: exams[i].Date, Value: value})
	}
	return points
}

func notify(alerts int) Notification {
	severity := metrics.AlertSeverity(alerts)
	if severity == metrics.SeverityWarning {
		return Notification{Type: severity, Message: fmt.Sprintf(messageWarning, alerts)}
	}
	return Notification{Type: severity, Message: messageSuccess}
}
