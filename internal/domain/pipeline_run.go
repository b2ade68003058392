package domain

import "time"

// RunStatus representa o estado de uma execução do pipeline
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// PipelineRun registra uma execução completa do pipeline
type PipelineRun struct {
	ID            string     `json:"id"`
	InputPath     string     `json:"input_path"`
	CleanPath     string     `json:"clean_path"`
	CleanChecksum string     `json:"clean_checksum,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	LoadedRows    int        `json:"loaded_rows"`
	DuplicateRows int        `json:"duplicate_rows"`
	InvalidRows   int        `json:"invalid_rows"`
	CleanedRows   int        `json:"cleaned_rows"`
	Charts        []string   `json:"charts"`
	Status        RunStatus  `json:"status"`
	Error         string     `json:"error,omitempty"`
}

// ApplyStats copia as estatísticas de limpeza para a execução
func (r *PipelineRun) ApplyStats(stats CleaningStats) {
	r.LoadedRows = stats.Loaded
	r.DuplicateRows = stats.Duplicates
	r.InvalidRows = stats.Invalid
	r.CleanedRows = stats.Retained
}

// Finish marca a execução como concluída com o status informado
func (r *PipelineRun) Finish(err error) {
	now := time.Now()
	r.FinishedAt = &now
	if err != nil {
		r.Status = RunStatusFailed
		r.Error = err.Error()
		return
	}
	r.Status = RunStatusSucceeded
}
