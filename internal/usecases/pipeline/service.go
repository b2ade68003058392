// Package pipeline orquestra a execução completa: carga, limpeza, enriquecimento,
// persistência, gráficos e exportações
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/preprocessing"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/reporting"
	"github.com/vfg2006/sales-report-pipeline/pkg/log"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
)

type Service struct {
	cfg       *config.Config
	persister Persister
	reporter  Reporter

	workbook Exporter
	summary  Exporter

	salesRepo repository.SalesRecordRepository
	runRepo   repository.PipelineRunRepository

	runMutex sync.Mutex
	stateMu  sync.RWMutex
	lastRun  *domain.PipelineRun
}

func NewService(cfg *config.Config, persister Persister, reporter Reporter) *Service {
	return &Service{
		cfg:       cfg,
		persister: persister,
		reporter:  reporter,
	}
}

// WithExporters habilita as exportações; um exporter nil é ignorado
func (s *Service) WithExporters(workbook, summary Exporter) *Service {
	s.workbook = workbook
	s.summary = summary
	return s
}

// WithStore habilita a gravação da tabela enriquecida e do histórico de execuções no banco
func (s *Service) WithStore(salesRepo repository.SalesRecordRepository, runRepo repository.PipelineRunRepository) *Service {
	s.salesRepo = salesRepo
	s.runRepo = runRepo
	return s
}

// Run executa o pipeline de forma sequencial. Execuções concorrentes são recusadas
// com ErrRunInProgress.
func (s *Service) Run(ctx context.Context) (*domain.PipelineRun, error) {
	if !s.runMutex.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.runMutex.Unlock()

	if log.GetCorrelationID(ctx) == "" {
		ctx, _ = log.WithCorrelationID(ctx)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar id da execução")
	}

	run := &domain.PipelineRun{
		ID:        id,
		InputPath: s.cfg.Pipeline.InputPath,
		CleanPath: s.cfg.Pipeline.CleanPath,
		StartedAt: time.Now(),
		Status:    domain.RunStatusRunning,
		Charts:    []string{},
	}
	ctx = log.WithRunID(ctx, run.ID)
	logger := log.ForContext(ctx)
	logger.Infof("Iniciando pipeline de vendas a partir de %s", run.InputPath)

	s.saveRun(ctx, logger, run)

	err = s.execute(ctx, logger, run)
	run.Finish(err)
	s.saveRun(ctx, logger, run)

	s.stateMu.Lock()
	s.lastRun = run
	s.stateMu.Unlock()

	if err != nil {
		logger.WithError(err).Error("Pipeline de vendas falhou")
		return run, err
	}

	logger.WithFields(log.Fields{
		"cleaned_rows": run.CleanedRows,
		"charts":       len(run.Charts),
		"duration":     run.FinishedAt.Sub(run.StartedAt).String(),
	}).Info("Pipeline de vendas concluído")

	return run, nil
}

// LastRun retorna a última execução concluída neste processo
func (s *Service) LastRun() *domain.PipelineRun {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.lastRun
}

func (s *Service) execute(ctx context.Context, logger log.Logger, run *domain.PipelineRun) error {
	table, err := preprocessing.Load(s.cfg.Pipeline.InputPath)
	if err != nil {
		return err
	}
	logger.Debugf("Carregadas %d linhas com %d colunas", table.Len(), len(table.Columns))

	cleaned, stats := preprocessing.Clean(table)
	run.ApplyStats(stats)
	logger.WithFields(log.Fields{
		"loaded":     stats.Loaded,
		"duplicates": stats.Duplicates,
		"invalid":    stats.Invalid,
		"retained":   stats.Retained,
	}).Info("Limpeza concluída")

	enriched := preprocessing.Enrich(cleaned)

	if err := ctx.Err(); err != nil {
		return err
	}

	checksum, err := s.persister.Save(enriched, s.cfg.Pipeline.CleanPath)
	if err != nil {
		return err
	}
	run.CleanChecksum = checksum
	logger.WithField("checksum", checksum).Infof("Tabela limpa salva em %s", s.cfg.Pipeline.CleanPath)

	if s.salesRepo != nil {
		if err := s.salesRepo.ReplaceAll(ctx, run.ID, enriched.Records); err != nil {
			return err
		}
		logger.Debug("Registros de venda gravados no banco")
	}

	report, err := s.reporter.BuildReport(enriched)
	if errors.Is(err, reporting.ErrEmptyTable) {
		logger.Warn("Nenhum registro válido após a limpeza, gráficos não serão gerados")
		return s.removeStaleCharts(logger)
	}
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	charts, err := s.reporter.RenderAll(report, s.cfg.Pipeline.OutputDir)
	run.Charts = append(run.Charts, charts...)
	if err != nil {
		return err
	}

	return s.export(logger, report)
}

func (s *Service) export(logger log.Logger, report *domain.SalesReport) error {
	if s.workbook != nil {
		if err := s.workbook.Export(report, s.cfg.Export.WorkbookPath); err != nil {
			return err
		}
		logger.Infof("Planilha de relatório salva em %s", s.cfg.Export.WorkbookPath)
	}

	if s.summary != nil {
		if err := s.summary.Export(report, s.cfg.Export.SummaryPath); err != nil {
			return err
		}
		logger.Infof("Resumo salvo em %s", s.cfg.Export.SummaryPath)
	}

	return nil
}

// removeStaleCharts apaga os gráficos de execuções anteriores para que não sejam
// servidos como resultado de uma execução sem registros
func (s *Service) removeStaleCharts(logger log.Logger) error {
	for _, name := range reporting.ChartNames {
		path := filepath.Join(s.cfg.Pipeline.OutputDir, name)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return pkgerrors.Wrapf(err, "erro ao remover gráfico antigo %s", path)
		}
		logger.Debugf("Gráfico antigo removido: %s", path)
	}
	return nil
}

// saveRun registra a execução no banco; falhas aqui não interrompem o pipeline
func (s *Service) saveRun(ctx context.Context, logger log.Logger, run *domain.PipelineRun) {
	if s.runRepo == nil {
		return
	}

	if err := s.runRepo.Save(context.WithoutCancel(ctx), run); err != nil {
		logger.WithError(err).Warn("Erro ao registrar execução do pipeline")
	}
}
