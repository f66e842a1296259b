package finances

import (
	"net/http"

	financesdomain "aurora-app-go/internal/domain/finances"
	"aurora-app-go/internal/domain/metrics"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Handlers struct {
	Finances *financesdomain.Service
	log      logger.Logger
}

func New(finances *financesdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Finances: finances,
		log:      log,
	}
}

type createTransactionRequest struct {
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	Type        financesdomain.Type `json:"type"`
	Category    string              `json:"category"`
}

type transactionListResponse struct {
	Items      []financesdomain.Transaction `json:"items"`
	Summary    metrics.FinanceSummary       `json:"summary"`
	Categories []string                     `json:"categories"`
}

// List filters by ?search= while the summary always covers every
// transaction.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	all, err := h.Finances.List(r.Context(), ns, financesdomain.ListFilter{})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, transactionListResponse{
		Items:      financesdomain.Filter(all, r.URL.Query().Get("search")),
		Summary:    financesdomain.Summarize(all),
		Categories: financesdomain.Categories,
	})
}

func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Finances.Add(r.Context(), ns, financesdomain.AddInput{
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Finances.Delete(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	summary, err := h.Finances.Summary(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, summary)
}
