package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger verifica a disponibilidade de uma dependência (ex.: banco de dados)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde o estado da API; o banco é verificado quando configurado
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("Banco de dados indisponível no healthcheck")
				body["status"] = "degraded"
				body["database"] = "unavailable"
				writeJSON(w, http.StatusServiceUnavailable, body)
				return
			}
			body["database"] = "ok"
		}

		writeJSON(w, http.StatusOK, body)
	})
}
