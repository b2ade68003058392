package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/sales-report-pipeline/internal/api/handler/router"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-pipeline/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Reports(service repository.SalesReportRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/monthly-revenue",
			Method:  http.MethodGet,
			Handler: GetMonthlyRevenue(service),
		},
		{
			Path:    "/v1/reports/product-revenue",
			Method:  http.MethodGet,
			Handler: GetProductRevenue(service),
		},
		{
			Path:    "/v1/reports/monthly-quantity",
			Method:  http.MethodGet,
			Handler: GetMonthlyQuantity(service),
		},
		{
			Path:    "/v1/reports/quarterly-revenue",
			Method:  http.MethodGet,
			Handler: GetQuarterlyRevenue(service),
		},
	}
}

func Charts(outputDir string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/charts",
			Method:  http.MethodGet,
			Handler: ListCharts(outputDir),
		},
		{
			Path:    "/v1/charts/:name",
			Method:  http.MethodGet,
			Handler: GetChart(outputDir),
		},
	}
}

func Pipeline(trigger PipelineTrigger, runs repository.PipelineRunRepository, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/pipeline/status",
			Method:  http.MethodGet,
			Handler: GetPipelineStatus(trigger, runs),
		},
		{
			Path:    "/v1/pipeline/run",
			Method:  http.MethodPost,
			Handler: RunPipeline(trigger),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.RequireToken(authenticator),
				middleware.AdminOnly(),
			},
		},
	}
}
