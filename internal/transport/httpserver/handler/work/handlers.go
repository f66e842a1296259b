package work

import (
	"net/http"
	"strings"

	workdomain "aurora-app-go/internal/domain/work"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Work *workdomain.Service
	log  logger.Logger
}

func New(work *workdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Work: work,
		log:  log,
	}
}

type createJobRequest struct {
	JobName string `json:"jobName"`
}

type createTaskRequest struct {
	Text string `json:"text"`
}

type toggleDayRequest struct {
	JobID string `json:"jobId"`
}

type toggleDayResponse struct {
	Date string   `json:"date"`
	Jobs []string `json:"jobs"`
}

// Job handlers

func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Work.ListJobs(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Work.AddJob(r.Context(), ns, req.JobName)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Work.DeleteJob(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

// Task handlers

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Work.ListTasks(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Work.AddTask(r.Context(), ns, req.Text)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	updated, err := h.Work.ToggleTask(r.Context(), ns, chi.URLParam(r, "id"))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Work.DeleteTask(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

// Schedule handlers

// Calendar returns the month given as ?month=YYYY-MM, or the current one.
func (h *Handlers) Calendar(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	value := strings.TrimSpace(r.URL.Query().Get("month"))
	if value == "" {
		month, err := h.Work.CurrentMonth(r.Context(), ns)
		if err != nil {
			commonhandler.WriteServiceError(w, h.log, err)
			return
		}
		commonhandler.WriteJSON(w, http.StatusOK, month)
		return
	}

	year, month, err := commonhandler.ParseMonth(value)
	if err != nil {
		commonhandler.WriteError(w, http.StatusBadRequest, "invalid_request", "invalid month")
		return
	}
	view, err := h.Work.Month(r.Context(), ns, year, int(month))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, view)
}

func (h *Handlers) ToggleDay(w http.ResponseWriter, r *http.Request) {
	var req toggleDayRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	day := chi.URLParam(r, "date")
	jobs, err := h.Work.ToggleDay(r.Context(), ns, day, req.JobID)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toggleDayResponse{Date: day, Jobs: jobs})
}
