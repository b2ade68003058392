package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/internal/bootstrap"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o pipeline")
	}
	defer app.Close()

	run, err := app.Pipeline.Run(ctx)
	if err != nil {
		// Fatal encerra sem executar os defers
		_ = app.Close()
		logrus.WithError(err).Fatal("Erro ao executar o pipeline")
	}

	fmt.Printf("Preprocessing & visualization complete. %d charts saved to the '%s' directory.\n", len(run.Charts), cfg.Pipeline.OutputDir)
}
