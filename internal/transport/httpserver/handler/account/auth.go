package account

import (
	"errors"
	"net/http"
	"strings"

	userdomain "aurora-app-go/internal/domain/user"
	"aurora-app-go/internal/identity/supabase"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/internal/transport/httpserver/middleware"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type authMeResponse struct {
	ID      string              `json:"id"`
	Email   string              `json:"email"`
	Name    string              `json:"name"`
	Local   bool                `json:"local"`
	Profile userdomain.Resolved `json:"profile"`
}

func (h *Handlers) AuthMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		commonhandler.WriteError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}
	resolved, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		var err error
		resolved, err = h.Users.Resolve(r.Context(), identity)
		if err != nil {
			commonhandler.WriteServiceError(w, h.log, err)
			return
		}
	}

	name := identity.Name
	if name == "" {
		name = resolved.Profile.Name
	}
	commonhandler.WriteJSON(w, http.StatusOK, authMeResponse{
		ID:      resolved.Profile.ID,
		Email:   resolved.Profile.Email,
		Name:    name,
		Local:   identity.IsLocal(),
		Profile: resolved,
	})
}

func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	if !h.validCredentials(w, req) {
		return
	}

	session, err := h.Auth.SignIn(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, session)
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	if !h.validCredentials(w, req) {
		return
	}

	result, err := h.Auth.SignUp(r.Context(), strings.TrimSpace(req.Email), req.Password, strings.TrimSpace(req.Name))
	if err != nil {
		h.writeAuthError(w, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	token := middleware.AccessTokenFromContext(r.Context())
	if h.Auth == nil || token == "" {
		commonhandler.WriteNoContent(w)
		return
	}

	if err := h.Auth.SignOut(r.Context(), token); err != nil {
		h.writeAuthError(w, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) validCredentials(w http.ResponseWriter, req credentialsRequest) bool {
	if h.Auth == nil {
		commonhandler.WriteError(w, http.StatusServiceUnavailable, "auth_not_configured", "auth not configured")
		return false
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		commonhandler.WriteError(w, http.StatusUnprocessableEntity, "incomplete_input", "email and password are required")
		return false
	}
	return true
}

func (h *Handlers) writeAuthError(w http.ResponseWriter, err error) {
	var apiErr *supabase.APIError
	switch {
	case errors.Is(err, supabase.ErrInvalidCredentials):
		commonhandler.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
	case errors.Is(err, supabase.ErrUserExists):
		commonhandler.WriteError(w, http.StatusConflict, "user_exists", "user already registered")
	case errors.Is(err, supabase.ErrNotConfigured):
		commonhandler.WriteError(w, http.StatusServiceUnavailable, "auth_not_configured", "auth not configured")
	case errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError:
		commonhandler.WriteError(w, http.StatusBadRequest, "auth_rejected", apiErr.Message)
	default:
		h.log.BusinessError("auth: remote call failed", err)
		commonhandler.WriteError(w, http.StatusBadGateway, "auth_unavailable", "authentication service unavailable")
	}
}
