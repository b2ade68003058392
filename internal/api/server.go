package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/sales-report-pipeline/internal/api/handler"
	"github.com/vfg2006/sales-report-pipeline/internal/api/handler/router"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-pipeline/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Dependencies reúne os serviços expostos pela API. Repositórios e banco podem
// ser nil quando a exportação para banco estiver desabilitada.
type Dependencies struct {
	Reports       repository.SalesReportRepository
	Runs          repository.PipelineRunRepository
	DB            handler.Pinger
	Trigger       handler.PipelineTrigger
	Authenticator authenticating.Authenticator
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if err := config.ValidateAPI(cfg); err != nil {
		return nil, err
	}
	if deps.Trigger == nil {
		return nil, fmt.Errorf("agendador do pipeline não configurado")
	}
	if deps.Authenticator == nil {
		return nil, fmt.Errorf("autenticador não configurado")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.DB)...),
		router.WithRoutes(handler.Reports(deps.Reports)...),
		router.WithRoutes(handler.Charts(cfg.Pipeline.OutputDir)...),
		router.WithRoutes(handler.Pipeline(deps.Trigger, deps.Runs, deps.Authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins...),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia de middlewares e rotas, usada nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
