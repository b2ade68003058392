// Package bootstrap monta o pipeline e o armazenamento a partir da configuração,
// compartilhado pelos executáveis em cmd/
package bootstrap

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/chart"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/export"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/repository"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/storage/csvfile"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/pipeline"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/reporting"
)

type App struct {
	Pipeline *pipeline.Service

	// Preenchidos apenas com a exportação para banco habilitada
	Conn    *sqldb.Connection
	Reports repository.SalesReportRepository
	Runs    repository.PipelineRunRepository
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	reporter := reporting.NewService(chart.NewRenderer(), cfg)
	service := pipeline.NewService(cfg, csvfile.NewWriter(), reporter)

	var workbook, summary pipeline.Exporter
	if cfg.Export.WorkbookEnabled {
		workbook = export.NewWorkbookExporter()
	}
	if cfg.Export.SummaryEnabled {
		summary = export.NewSummaryExporter()
	}
	service.WithExporters(workbook, summary)

	app := &App{Pipeline: service}

	if !cfg.Database.Enabled {
		logrus.Info("Exportação para banco de dados desabilitada")
		return app, nil
	}

	conn, err := sqldb.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao conectar ao banco (%s)", cfg.Database.Driver)
	}

	if err := conn.Migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, pkgerrors.Wrap(err, "erro ao aplicar migrações")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com banco de dados estabelecida com sucesso")

	app.Conn = conn
	app.Reports = repository.NewSalesReportRepository(conn)
	app.Runs = repository.NewPipelineRunRepository(conn)
	service.WithStore(repository.NewSalesRecordRepository(conn), app.Runs)

	return app, nil
}

func (a *App) Close() error {
	if a.Conn == nil {
		return nil
	}
	return a.Conn.Close()
}
