package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-pipeline/pkg/middleware"
)

type stubTrigger struct{}

func (stubTrigger) TriggerManualSync() bool { return true }

func (stubTrigger) GetStatus() map[string]any { return map[string]any{} }

func newTestConfig(t *testing.T) *config.Config {
	return &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "0",
			AllowedOrigins: []string{"http://dashboard.local"},
		},
		Pipeline:  config.Pipeline{OutputDir: t.TempDir()},
		SecretKey: "segredo",
	}
}

func TestNew(t *testing.T) {
	cfg := newTestConfig(t)

	t.Run("Sem agendador", func(t *testing.T) {
		_, err := New(cfg, Dependencies{Authenticator: authenticating.NewService(cfg)})
		assert.Error(t, err)
	})

	t.Run("Sem autenticador", func(t *testing.T) {
		_, err := New(cfg, Dependencies{Trigger: stubTrigger{}})
		assert.Error(t, err)
	})

	t.Run("Chave de assinatura padrão", func(t *testing.T) {
		insecure := newTestConfig(t)
		insecure.SecretKey = config.DefaultSecretKey

		_, err := New(insecure, Dependencies{
			Trigger:       stubTrigger{},
			Authenticator: authenticating.NewService(insecure),
		})
		assert.ErrorIs(t, err, config.ErrDefaultSecretKey)
	})
}

func TestServer_Handler(t *testing.T) {
	cfg := newTestConfig(t)

	srv, err := New(cfg, Dependencies{
		Trigger:       stubTrigger{},
		Authenticator: authenticating.NewService(cfg),
	})
	require.NoError(t, err)

	t.Run("Healthcheck com CORS e correlation id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://dashboard.local", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("Relatórios sem banco", func(t *testing.T) {
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports/monthly-revenue", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("Disparo exige token", func(t *testing.T) {
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
