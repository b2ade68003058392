package repository

//go:generate mockgen -source=pipeline_run.go -destination=mocks/mock_pipeline_run.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

const pipelineRunTable = "pipeline_runs"

type PipelineRunRepository interface {
	Save(ctx context.Context, run *domain.PipelineRun) error
	GetLatest(ctx context.Context) (*domain.PipelineRun, error)
}

type pipelineRunRepository struct {
	conn *sqldb.Connection
}

func NewPipelineRunRepository(conn *sqldb.Connection) PipelineRunRepository {
	return &pipelineRunRepository{
		conn: conn,
	}
}

// Save insere a execução ou atualiza o registro existente com o mesmo id
func (r *pipelineRunRepository) Save(ctx context.Context, run *domain.PipelineRun) error {
	charts, err := json.Marshal(run.Charts)
	if err != nil {
		return fmt.Errorf("erro ao serializar gráficos: %w", err)
	}
	if run.Charts == nil {
		charts = []byte("[]")
	}

	var finishedAt interface{}
	if run.FinishedAt != nil {
		finishedAt = run.FinishedAt.UTC()
	}

	query, args, err := r.conn.Builder().
		Insert(pipelineRunTable).
		Columns(
			"id",
			"input_path",
			"clean_path",
			"clean_checksum",
			"status",
			"error",
			"loaded_rows",
			"duplicate_rows",
			"invalid_rows",
			"cleaned_rows",
			"charts",
			"started_at",
			"finished_at",
		).
		Values(
			run.ID,
			run.InputPath,
			run.CleanPath,
			run.CleanChecksum,
			string(run.Status),
			run.Error,
			run.LoadedRows,
			run.DuplicateRows,
			run.InvalidRows,
			run.CleanedRows,
			string(charts),
			run.StartedAt.UTC(),
			finishedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			clean_checksum = EXCLUDED.clean_checksum,
			status = EXCLUDED.status,
			error = EXCLUDED.error,
			loaded_rows = EXCLUDED.loaded_rows,
			duplicate_rows = EXCLUDED.duplicate_rows,
			invalid_rows = EXCLUDED.invalid_rows,
			cleaned_rows = EXCLUDED.cleaned_rows,
			charts = EXCLUDED.charts,
			finished_at = EXCLUDED.finished_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução do pipeline: %w", err)
	}

	return nil
}

// GetLatest retorna a execução mais recente, ou nil quando nenhuma foi registrada
func (r *pipelineRunRepository) GetLatest(ctx context.Context) (*domain.PipelineRun, error) {
	query, args, err := r.conn.Builder().
		Select(
			"id",
			"input_path",
			"clean_path",
			"clean_checksum",
			"status",
			"error",
			"loaded_rows",
			"duplicate_rows",
			"invalid_rows",
			"cleaned_rows",
			"charts",
			"started_at",
			"finished_at",
		).
		From(pipelineRunTable).
		OrderBy("started_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	run, err := scanPipelineRun(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar última execução: %w", err)
	}

	return run, nil
}

func scanPipelineRun(row squirrel.RowScanner) (*domain.PipelineRun, error) {
	var (
		run        domain.PipelineRun
		status     string
		charts     string
		finishedAt sql.NullTime
	)

	err := row.Scan(
		&run.ID,
		&run.InputPath,
		&run.CleanPath,
		&run.CleanChecksum,
		&status,
		&run.Error,
		&run.LoadedRows,
		&run.DuplicateRows,
		&run.InvalidRows,
		&run.CleanedRows,
		&charts,
		&run.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	run.Status = domain.RunStatus(status)
	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}

	if err := json.Unmarshal([]byte(charts), &run.Charts); err != nil {
		return nil, fmt.Errorf("erro ao ler gráficos da execução: %w", err)
	}

	return &run, nil
}
