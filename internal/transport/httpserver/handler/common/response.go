package common

import (
	"encoding/json"
	"errors"
	"net/http"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/domain/subscription"
	"aurora-app-go/internal/transport/httpserver/middleware"
	"aurora-app-go/pkg/logger"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeError(w, status, code, message)
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, payload)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func DecodeJSON(r *http.Request, dst interface{}) error {
	return decodeJSON(r, dst)
}

// DecodeBody decodes the request body and answers 400 on malformed JSON.
func DecodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := decodeJSON(r, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return false
	}
	return true
}

// WriteServiceError maps domain error kinds onto HTTP statuses. Anything
// unclassified is logged and hidden behind a 500.
func WriteServiceError(w http.ResponseWriter, log logger.Logger, err error) {
	switch {
	case errors.Is(err, records.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, records.ErrIncompleteInput):
		writeError(w, http.StatusUnprocessableEntity, "incomplete_input", err.Error())
	case errors.Is(err, records.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, subscription.ErrUpgradeRequired):
		writeError(w, http.StatusPaymentRequired, "upgrade_required", err.Error())
	default:
		log.InternalError("request failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// Namespace returns the caller's record namespace or answers 401.
func Namespace(w http.ResponseWriter, r *http.Request) (records.Namespace, bool) {
	ns, ok := middleware.NamespaceFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return records.Namespace{}, false
	}
	return ns, true
}
