package common

import (
	"net/http"
	"time"
)

type Handlers struct {
	started time.Time
	storage string
}

func New(storage string) *Handlers {
	return &Handlers{started: time.Now(), storage: storage}
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Uptime  string `json:"uptime"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Storage: h.storage,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}
