package habits

import (
	"net/http"

	habitsdomain "aurora-app-go/internal/domain/habits"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Habits *habitsdomain.Service
	log    logger.Logger
}

func New(habits *habitsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Habits: habits,
		log:    log,
	}
}

type createHabitRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type goalRequest struct {
	Goal int `json:"goal"`
}

type habitListResponse struct {
	Items   []habitsdomain.Habit `json:"items"`
	Summary habitsdomain.Summary `json:"summary"`
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Habits.List(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	goal, err := h.Habits.Goal(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, habitListResponse{
		Items:   items,
		Summary: habitsdomain.Summarize(items, goal),
	})
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Habits.Add(r.Context(), ns, habitsdomain.AddInput{Name: req.Name, Icon: req.Icon})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) Toggle(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	updated, err := h.Habits.Toggle(r.Context(), ns, chi.URLParam(r, "id"))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Habits.Delete(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) SetGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Habits.SetGoal(r.Context(), ns, req.Goal); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	summary, err := h.Habits.Summary(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, summary)
}
