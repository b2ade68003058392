package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/apiErrors"
	"github.com/vfg2006/sales-report-pipeline/pkg/middleware"
)

// PipelineTrigger dispara e acompanha execuções do pipeline
type PipelineTrigger interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunPipeline dispara uma execução manual em segundo plano
func RunPipeline(trigger PipelineTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			logrus.WithField("user", claims.Name).Info("Execução manual do pipeline solicitada")
		}

		if !trigger.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Pipeline já está em execução", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Pipeline iniciado com sucesso",
		})
	}
}

// GetPipelineStatus retorna o estado do agendador e a última execução registrada
func GetPipelineStatus(trigger PipelineTrigger, runs repository.PipelineRunRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"scheduler": trigger.GetStatus(),
		}

		if runs != nil {
			latest, err := runs.GetLatest(r.Context())
			if err != nil {
				logrus.WithError(err).Error("Erro ao buscar última execução do pipeline")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar última execução", nil)
				return
			}
			body["latest_run"] = latest
		}

		writeJSON(w, http.StatusOK, body)
	}
}
