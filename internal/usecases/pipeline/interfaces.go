package pipeline

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_pipeline.go -package=mocks

import "github.com/vfg2006/sales-report-pipeline/internal/domain"

// Persister grava a tabela enriquecida no caminho informado e retorna o
// checksum do arquivo gerado
type Persister interface {
	Save(table *domain.SalesTable, path string) (string, error)
}

// Reporter calcula as agregações e desenha os gráficos
type Reporter interface {
	BuildReport(table *domain.SalesTable) (*domain.SalesReport, error)
	RenderAll(report *domain.SalesReport, outputDir string) ([]string, error)
}

// Exporter grava o relatório em um formato externo (planilha, JSON)
type Exporter interface {
	Export(report *domain.SalesReport, path string) error
}
