package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"aurora-app-go/internal/config"
	"aurora-app-go/pkg/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds the API server. WriteTimeout must outlast requestTimeout so
// chi can still write its 504.
func New(cfg config.Config, handler http.Handler, log logger.Logger) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       idleTimeout,
		ErrorLog:          log.StdLogger(slog.LevelWarn),
	}
}
