package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-report-pipeline/internal/api/handler/router"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

type fakeTrigger struct {
	accept bool
	calls  int
}

func (f *fakeTrigger) TriggerManualSync() bool {
	f.calls++
	return f.accept
}

func (f *fakeTrigger) GetStatus() map[string]any {
	return map[string]any{"sync_running": false, "sync_enabled": true}
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		expected int
		status   string
	}{
		{name: "Sem banco configurado", db: nil, expected: http.StatusOK, status: "ok"},
		{name: "Banco disponível", db: fakePinger{}, expected: http.StatusOK, status: "ok"},
		{name: "Banco indisponível", db: fakePinger{err: errors.New("down")}, expected: http.StatusServiceUnavailable, status: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(Healthcheck(tt.db)...))

			rec := serve(t, rt, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tt.expected, rec.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body["status"])
		})
	}
}

func TestReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSalesReportRepository(ctrl)
	rt := router.New(router.WithRoutes(Reports(repo)...))

	t.Run("Receita mensal", func(t *testing.T) {
		repo.EXPECT().MonthlyRevenue(gomock.Any()).Return([]domain.MonthlyRevenue{
			{Month: 11, MonthName: "Nov", Revenue: decimal.NewFromInt(1600)},
		}, nil)

		rec := serve(t, rt, httptest.NewRequest(http.MethodGet, "/v1/reports/monthly-revenue", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Report string                  `json:"report"`
			Data   []domain.MonthlyRevenue `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "monthly-revenue", body.Report)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "Nov", body.Data[0].MonthName)
		assert.True(t, decimal.NewFromInt(1600).Equal(body.Data[0].Revenue))
	})

	t.Run("Erro no banco", func(t *testing.T) {
		repo.EXPECT().QuarterlyRevenue(gomock.Any()).Return(nil, errors.New("db error"))

		rec := serve(t, rt, httptest.NewRequest(http.MethodGet, "/v1/reports/quarterly-revenue", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("Banco desabilitado", func(t *testing.T) {
		disabled := router.New(router.WithRoutes(Reports(nil)...))

		rec := serve(t, disabled, httptest.NewRequest(http.MethodGet, "/v1/reports/product-revenue", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestCharts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, reporting.MonthlyRevenueChart), []byte("\x89PNG"), 0o644))

	rt := router.New(router.WithRoutes(Charts(dir)...))

	tests := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "Gráfico existente", path: "/v1/charts/" + reporting.MonthlyRevenueChart, expected: http.StatusOK},
		{name: "Gráfico conhecido ainda não gerado", path: "/v1/charts/" + reporting.ProductRevenueChart, expected: http.StatusNotFound},
		{name: "Nome desconhecido", path: "/v1/charts/secrets.txt", expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, rt, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}

	t.Run("Lista apenas os gráficos gerados", func(t *testing.T) {
		rec := serve(t, rt, httptest.NewRequest(http.MethodGet, "/v1/charts", nil))

		var body map[string][]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, []string{reporting.MonthlyRevenueChart}, body["charts"])
	})
}

func TestPipelineRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := authenticating.NewService(&config.Config{SecretKey: "segredo"})
	token, err := auth.GenerateToken("ops", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	runs := mocks.NewMockPipelineRunRepository(ctrl)

	t.Run("Disparo manual aceito", func(t *testing.T) {
		trigger := &fakeTrigger{accept: true}
		rt := router.New(router.WithRoutes(Pipeline(trigger, runs, auth)...))

		req := httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := serve(t, rt, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, trigger.calls)
	})

	t.Run("Disparo manual com execução em andamento", func(t *testing.T) {
		trigger := &fakeTrigger{accept: false}
		rt := router.New(router.WithRoutes(Pipeline(trigger, runs, auth)...))

		req := httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := serve(t, rt, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Disparo manual sem token", func(t *testing.T) {
		trigger := &fakeTrigger{accept: true}
		rt := router.New(router.WithRoutes(Pipeline(trigger, runs, auth)...))

		rec := serve(t, rt, httptest.NewRequest(http.MethodPost, "/v1/pipeline/run", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, 0, trigger.calls)
	})

	t.Run("Status com última execução", func(t *testing.T) {
		runs.EXPECT().GetLatest(gomock.Any()).Return(&domain.PipelineRun{ID: "run-1", Status: domain.RunStatusSucceeded}, nil)
		rt := router.New(router.WithRoutes(Pipeline(&fakeTrigger{}, runs, auth)...))

		rec := serve(t, rt, httptest.NewRequest(http.MethodGet, "/v1/pipeline/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Scheduler map[string]any      `json:"scheduler"`
			LatestRun *domain.PipelineRun `json:"latest_run"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body.Scheduler["sync_enabled"])
		require.NotNil(t, body.LatestRun)
		assert.Equal(t, "run-1", body.LatestRun.ID)
	})
}

func TestRouter_NotFound(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(nil)...))

	rec := serve(t, rt, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
