package dashboard

import (
	"net/http"

	dashboarddomain "aurora-app-go/internal/domain/dashboard"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
)

type Handlers struct {
	Dashboard *dashboarddomain.Service
	log       logger.Logger
}

func New(dashboard *dashboarddomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Dashboard: dashboard,
		log:       log,
	}
}

func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	summary, err := h.Dashboard.Summary(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, summary)
}
