package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/domain/subscription"
	userdomain "aurora-app-go/internal/domain/user"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/internal/transport/httpserver/middleware"
)

const (
	upgradeMessage = "Upgrade realizado com sucesso!"
	paymentMessage = "Pagamento confirmado! Bem-vindo ao Aurora Pro."
)

type tabAccess struct {
	subscription.TabInfo
	Allowed bool `json:"allowed"`
}

type upgradeResponse struct {
	Profile  userdomain.Profile `json:"profile"`
	Upgraded bool               `json:"upgraded"`
	Message  string             `json:"message,omitempty"`
}

type exportResponse struct {
	Namespace string                             `json:"namespace"`
	Profile   userdomain.Profile                 `json:"profile"`
	Records   map[records.Domain]json.RawMessage `json:"records"`
}

type resetResponse struct {
	Deleted int `json:"deleted"`
}

func (h *Handlers) identity(w http.ResponseWriter, r *http.Request) (userdomain.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		commonhandler.WriteError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
	}
	return identity, ok
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	if resolved, ok := middleware.ProfileFromContext(r.Context()); ok {
		commonhandler.WriteJSON(w, http.StatusOK, resolved)
		return
	}

	resolved, err := h.Users.Resolve(r.Context(), identity)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, resolved)
}

// Tabs lists every section with whether the caller's plan opens it.
func (h *Handlers) Tabs(w http.ResponseWriter, r *http.Request) {
	plan := subscription.PlanFree
	if resolved, ok := middleware.ProfileFromContext(r.Context()); ok {
		plan = resolved.Profile.Subscription
	}

	tabs := subscription.Tabs()
	result := make([]tabAccess, 0, len(tabs))
	for _, tab := range tabs {
		result = append(result, tabAccess{TabInfo: tab, Allowed: subscription.CanAccess(plan, tab.ID)})
	}
	commonhandler.WriteJSON(w, http.StatusOK, result)
}

// Billing handlers

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	checkout, err := h.Users.Checkout(r.Context(), identity)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, checkout)
}

// ConfirmPayment reads the payment provider's return parameters.
func (h *Handlers) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	profile, upgraded, err := h.Users.ConfirmPayment(r.Context(), identity, r.URL.Query())
	if err != nil {
		h.writeProfileError(w, err)
		return
	}

	response := upgradeResponse{Profile: profile, Upgraded: upgraded}
	if upgraded {
		response.Message = paymentMessage
	}
	commonhandler.WriteJSON(w, http.StatusOK, response)
}

func (h *Handlers) Upgrade(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	resolved, err := h.Users.Upgrade(r.Context(), identity)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, upgradeResponse{
		Profile:  resolved.Profile,
		Upgraded: true,
		Message:  upgradeMessage,
	})
}

// Data handlers

func (h *Handlers) Export(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	ns := h.Users.Namespace(identity)
	data, err := h.Records.Export(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	resolved, err := h.Users.Resolve(r.Context(), identity)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, exportResponse{
		Namespace: ns.Prefix(),
		Profile:   resolved.Profile,
		Records:   data,
	})
}

func (h *Handlers) Reset(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	deleted, err := h.Users.ResetData(r.Context(), identity)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	h.log.Info("data reset", "user_id", identity.ID, "deleted", deleted)
	commonhandler.WriteJSON(w, http.StatusOK, resetResponse{Deleted: deleted})
}

func (h *Handlers) writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userdomain.ErrRemoteDisabled):
		commonhandler.WriteError(w, http.StatusServiceUnavailable, "profiles_unavailable", err.Error())
		return
	case errors.Is(err, userdomain.ErrUpgradeNotSaved):
		h.log.BusinessError("upgrade not saved", err)
		commonhandler.WriteError(w, http.StatusBadGateway, "upgrade_not_saved", userdomain.ErrUpgradeNotSaved.Error())
		return
	}
	commonhandler.WriteServiceError(w, h.log, err)
}
