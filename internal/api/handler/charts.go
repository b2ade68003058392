package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-pipeline/pkg/apiErrors"
)

// ListCharts retorna os gráficos já gerados no diretório de saída
func ListCharts(outputDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available := make([]string, 0, len(reporting.ChartNames))
		for _, name := range reporting.ChartNames {
			if _, err := os.Stat(filepath.Join(outputDir, name)); err == nil {
				available = append(available, name)
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{"charts": available})
	}
}

// GetChart serve um dos gráficos gerados. Apenas os nomes conhecidos são aceitos.
func GetChart(outputDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if !slices.Contains(reporting.ChartNames, name) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Gráfico desconhecido", map[string]any{"available": reporting.ChartNames})
			return
		}

		path := filepath.Join(outputDir, name)
		if _, err := os.Stat(path); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Gráfico ainda não gerado", nil)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		http.ServeFile(w, r, path)
	}
}
