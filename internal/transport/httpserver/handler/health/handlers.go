package health

import (
	"net/http"

	healthdomain "aurora-app-go/internal/domain/health"
	"aurora-app-go/internal/domain/metrics"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Health *healthdomain.Service
	log    logger.Logger
}

func New(health *healthdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Health: health,
		log:    log,
	}
}

type createExamRequest struct {
	Date     string             `json:"date"`
	Location string             `json:"location"`
	Metrics  map[string]float64 `json:"metrics"`
}

type referencesResponse struct {
	Categories []healthdomain.Category `json:"categories"`
	Metrics    []metrics.Reference     `json:"metrics"`
}

func (h *Handlers) References(w http.ResponseWriter, r *http.Request) {
	commonhandler.WriteJSON(w, http.StatusOK, referencesResponse{
		Categories: healthdomain.Categories(),
		Metrics:    healthdomain.References(),
	})
}

func (h *Handlers) ListExams(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Health.List(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateExam(w http.ResponseWriter, r *http.Request) {
	var req createExamRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	result, err := h.Health.AddExam(r.Context(), ns, healthdomain.AddExamInput{
		Date:     req.Date,
		Location: req.Location,
		Metrics:  req.Metrics,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handlers) DeleteExam(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Health.Delete(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) Latest(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	latest, err := h.Health.Latest(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, latest)
}

func (h *Handlers) Series(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	series, err := h.Health.Series(r.Context(), ns, chi.URLParam(r, "metric"))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, series)
}
