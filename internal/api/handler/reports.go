package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/sales-report-pipeline/pkg/apiErrors"
)

// reportHandler adapta uma consulta de agregação em um handler JSON
func reportHandler[T any](name string, service repository.SalesReportRepository, query func(repository.SalesReportRepository, context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Exportação para banco de dados desabilitada", nil)
			return
		}

		result, err := query(service, r.Context())
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao buscar relatório %s", name)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar relatório", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"report": name,
			"data":   result,
		})
	}
}

// GetMonthlyRevenue retorna a receita por mês
func GetMonthlyRevenue(service repository.SalesReportRepository) http.HandlerFunc {
	return reportHandler("monthly-revenue", service, repository.SalesReportRepository.MonthlyRevenue)
}

// GetProductRevenue retorna a receita por tipo de produto
func GetProductRevenue(service repository.SalesReportRepository) http.HandlerFunc {
	return reportHandler("product-revenue", service, repository.SalesReportRepository.ProductRevenue)
}

// GetMonthlyQuantity retorna a quantidade vendida por mês
func GetMonthlyQuantity(service repository.SalesReportRepository) http.HandlerFunc {
	return reportHandler("monthly-quantity", service, repository.SalesReportRepository.MonthlyQuantity)
}

// GetQuarterlyRevenue retorna a participação de cada trimestre na receita
func GetQuarterlyRevenue(service repository.SalesReportRepository) http.HandlerFunc {
	return reportHandler("quarterly-revenue", service, repository.SalesReportRepository.QuarterlyRevenue)
}
