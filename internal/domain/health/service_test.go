package health

import (
	"context"
	"errors"
	"testing"

	"aurora-app-go/internal/domain/metrics"
	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/repository/inmemory"
)

func newTestService() (*Service, records.Namespace) {
	return NewService(records.NewRepository(inmemory.NewRecordStore())), records.LocalNamespace("aurora")
}

func TestReferenceTable(t *testing.T) {
	refs := References()
	if len(refs) != 23 {
		t.Fatalf("expected 23 reference metrics, got %d", len(refs))
	}
	known := map[string]bool{}
	for _, c := range Categories() {
		known[c.ID] = true
	}
	for _, ref := range refs {
		if !known[ref.Category] {
			t.Fatalf("metric %s has unknown category %q", ref.ID, ref.Category)
		}
	}
	if ref, _ := LookupReference("weight"); ref.HasRange() {
		t.Fatalf("weight must have no reference range")
	}
}

func TestAddExam(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()

	if _, err := service.AddExam(ctx, ns, AddExamInput{}); !errors.Is(err, ErrDateRequired) {
		t.Fatalf("expected ErrDateRequired, got %v", err)
	}
	if _, err := service.AddExam(ctx, ns, AddExamInput{Date: "01/02/2026"}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	_, err := service.AddExam(ctx, ns, AddExamInput{Date: "2026-02-01", Metrics: map[string]float64{"vitamina_z": 1}})
	if !errors.Is(err, ErrUnknownMetric) || !errors.Is(err, records.ErrInvalidInput) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}

	result, err := service.AddExam(ctx, ns, AddExamInput{
		Date:    "2026-02-01",
		Metrics: map[string]float64{"testo_total": 900, "glicose": 60, "weight": 500},
	})
	if err != nil {
		t.Fatalf("add exam: %v", err)
	}
	if result.Alerts != 2 || result.Notification.Type != metrics.SeverityWarning {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Exam.Location != DefaultLocation {
		t.Fatalf("location = %q, want default", result.Exam.Location)
	}

	clean, _ := service.AddExam(ctx, ns, AddExamInput{Date: "2026-03-01", Location: "Lab", Metrics: map[string]float64{"glicose": 85}})
	if clean.Alerts != 0 || clean.Notification.Type != metrics.SeveritySuccess {
		t.Fatalf("unexpected clean result %+v", clean)
	}

	views, _ := service.List(ctx, ns)
	if len(views) != 2 || views[0].ID != clean.Exam.ID {
		t.Fatalf("exams must be newest first: %+v", views)
	}
	if views[1].Statuses["testo_total"] != metrics.StatusHigh || views[1].Statuses["weight"] != metrics.StatusNeutral || views[1].Issues != 2 {
		t.Fatalf("unexpected statuses %+v", views[1])
	}

	latest, _ := service.Latest(ctx, ns)
	if latest.Exam == nil || latest.Exam.ID != clean.Exam.ID || latest.Issues != 0 {
		t.Fatalf("unexpected latest %+v", latest)
	}
}

func TestSeries(t *testing.T) {
	ctx := context.Background()
	service, ns := newTestService()

	_, _ = service.AddExam(ctx, ns, AddExamInput{Date: "2026-01-01", Metrics: map[string]float64{"glicose": 90}})
	_, _ = service.AddExam(ctx, ns, AddExamInput{Date: "2026-02-01", Metrics: map[string]float64{"glicose": 0}})
	_, _ = service.AddExam(ctx, ns, AddExamInput{Date: "2026-03-01", Metrics: map[string]float64{"hdl": 50}})
	_, _ = service.AddExam(ctx, ns, AddExamInput{Date: "2026-04-01", Metrics: map[string]float64{"glicose": 101}})

	series, err := service.Series(ctx, ns, "glicose")
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(series.Points) != 2 || series.Points[0].Date != "2026-01-01" || series.Points[1].Value != 101 {
		t.Fatalf("unexpected points %+v", series.Points)
	}

	if _, err := service.Series(ctx, ns, "nope"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}

	empty, _ := NewService(records.NewRepository(inmemory.NewRecordStore())).Latest(ctx, ns)
	if empty.Exam != nil || empty.Issues != 0 {
		t.Fatalf("unexpected latest on empty history %+v", empty)
	}
}
