package home

import (
	"net/http"

	homedomain "aurora-app-go/internal/domain/home"
	"aurora-app-go/internal/domain/metrics"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Home *homedomain.Service
	log  logger.Logger
}

func New(home *homedomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Home: home,
		log:  log,
	}
}

type createItemRequest struct {
	Name     string              `json:"name"`
	Category homedomain.Category `json:"category"`
}

type compareRequest struct {
	A metrics.PriceQuote `json:"a"`
	B metrics.PriceQuote `json:"b"`
}

// List returns the shopping list grouped by category; ?flat=true returns
// the raw list.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("flat") == "true" {
		items, err := h.Home.List(r.Context(), ns)
		if err != nil {
			commonhandler.WriteServiceError(w, h.log, err)
			return
		}
		commonhandler.WriteJSON(w, http.StatusOK, items)
		return
	}

	groups, err := h.Home.Grouped(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, groups)
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Home.Add(r.Context(), ns, homedomain.AddInput{Name: req.Name, Category: req.Category})
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

	updated, err := h.Home.Toggle(r.Context(), ns, chi.URLParam(r, "id"))
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

	if err := h.Home.Delete(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) CompareUnitPrice(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, h.Home.CompareUnitPrice(req.A, req.B))
}
