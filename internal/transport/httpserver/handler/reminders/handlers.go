package reminders

import (
	"net/http"

	remindersdomain "aurora-app-go/internal/domain/reminders"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Reminders *remindersdomain.Service
	log       logger.Logger
}

func New(reminders *remindersdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Reminders: reminders,
		log:       log,
	}
}

type createReminderRequest struct {
	Text     string  `json:"text"`
	Datetime *string `json:"datetime"`
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Reminders.List(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, items)
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Reminders.Add(r.Context(), ns, remindersdomain.AddInput{
		Text:     req.Text,
		Datetime: req.Datetime,
	})
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

	updated, err := h.Reminders.Toggle(r.Context(), ns, chi.URLParam(r, "id"))
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

	if err := h.Reminders.Delete(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}
