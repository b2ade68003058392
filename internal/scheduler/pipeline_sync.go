package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

// PipelineRunner executa uma rodada completa do pipeline
type PipelineRunner interface {
	Run(ctx context.Context) (*domain.PipelineRun, error)
}

// PipelineSyncConfig representa a configuração do agendador do pipeline
type PipelineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PipelineSyncService agenda reexecuções do pipeline de vendas e permite disparos manuais
type PipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              PipelineSyncConfig
	runner              PipelineRunner
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRun             *domain.PipelineRun
	lastError           string
}

// NewPipelineSyncService cria uma nova instância do agendador do pipeline
func NewPipelineSyncService(runner PipelineRunner, appConfig *config.Config) *PipelineSyncService {
	syncConfig := PipelineSyncConfig{
		CronSchedule: appConfig.PipelineSync.CronSchedule,
		SyncEnabled:  appConfig.PipelineSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		runner:    runner,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Agendamento do pipeline desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline de vendas")

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncPipeline()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pipeline de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PipelineSyncService) syncPipeline() {
	if !s.acquire() {
		logrus.Info("Pipeline de vendas já em andamento, ignorando")
		return
	}
	s.runPipeline()
}

// acquire marca a execução como iniciada; retorna false se já houver uma em andamento
func (s *PipelineSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *PipelineSyncService) runPipeline() {
	s.syncMutex.Lock()
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	run, err := s.runner.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = ""
	if run != nil {
		s.lastRun = run
	}
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na execução do pipeline de vendas")
		return
	}

	logrus.WithField("duration", s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String()).
		Info("Execução do pipeline de vendas concluída")
}

// TriggerManualSync dispara uma execução em segundo plano. Retorna false quando
// já existe uma execução em andamento.
func (s *PipelineSyncService) TriggerManualSync() bool {
	if !s.acquire() {
		logrus.Info("Pipeline de vendas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando execução manual do pipeline de vendas")
	go s.runPipeline()
	return true
}

// GetStatus retorna o status atual do agendador e da última execução
func (s *PipelineSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastRun != nil {
		status["last_run_id"] = s.lastRun.ID
		status["last_run_status"] = s.lastRun.Status
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}

	return status
}
