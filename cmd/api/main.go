package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/internal/api"
	"github.com/vfg2006/sales-report-pipeline/internal/bootstrap"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/internal/scheduler"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/sales-report-pipeline/pkg/log"
)

var adminToken = flag.String("admin-token", "", "Gera um token de administrador para o nome informado e encerra")

func main() {
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.LogFormat)

	if err := config.ValidateAPI(cfg); err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	authenticator := authenticating.NewService(cfg)

	if *adminToken != "" {
		token, err := authenticator.GenerateToken(*adminToken, domain.RoleAdmin, authenticating.DefaultTokenTTL)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar token")
		}
		fmt.Println(token)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o pipeline")
	}
	defer app.Close()

	pipelineSyncService := scheduler.NewPipelineSyncService(app.Pipeline, cfg)
	if err := pipelineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline")
	}

	deps := api.Dependencies{
		Reports:       app.Reports,
		Runs:          app.Runs,
		Trigger:       pipelineSyncService,
		Authenticator: authenticator,
	}
	// Um *sqldb.Connection nil não pode virar um Pinger não nil
	if app.Conn != nil {
		deps.DB = app.Conn
	}

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
