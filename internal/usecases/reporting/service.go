package reporting

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

const (
	DefaultSampleSize = 1000
	DefaultSampleSeed = 1
)

// Service gera as agregações de vendas e desenha os gráficos correspondentes.
// Cada relatório é independente e depende apenas da tabela enriquecida.
type Service struct {
	renderer   ChartRenderer
	sampleSize int
	sampleSeed int64
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(renderer ChartRenderer, cfg *config.Config) *Service {
	s := &Service{
		renderer:   renderer,
		sampleSize: DefaultSampleSize,
		sampleSeed: DefaultSampleSeed,
	}

	if cfg != nil {
		if cfg.Report.ScatterSampleSize > 0 {
			s.sampleSize = cfg.Report.ScatterSampleSize
		}
		s.sampleSeed = cfg.Report.ScatterSampleSeed
	}

	return s
}

// BuildReport calcula todas as agregações a partir da tabela enriquecida
func (s *Service) BuildReport(table *domain.SalesTable) (*domain.SalesReport, error) {
	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}

	totalRevenue, totalQuantity := Totals(table)

	return &domain.SalesReport{
		RecordCount:      table.Len(),
		TotalRevenue:     totalRevenue,
		TotalQuantity:    totalQuantity,
		MonthlyRevenue:   MonthlyRevenue(table),
		ProductRevenue:   ProductRevenue(table),
		MonthlyQuantity:  MonthlyQuantity(table),
		QuarterlyRevenue: QuarterlyRevenue(table),
		PriceQuantity:    PriceQuantitySample(table, s.sampleSize, s.sampleSeed),
	}, nil
}

// RenderAll desenha os cinco gráficos em sequência no diretório de saída,
// retornando os caminhos dos arquivos gerados
func (s *Service) RenderAll(report *domain.SalesReport, outputDir string) ([]string, error) {
	if report == nil || report.RecordCount == 0 {
		return nil, ErrEmptyTable
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório de saída %s", outputDir)
	}

	renders := []struct {
		chart  string
		render func(path string) error
	}{
		{MonthlyRevenueChart, func(p string) error { return s.renderer.RenderMonthlyRevenue(report.MonthlyRevenue, p) }},
		{ProductRevenueChart, func(p string) error { return s.renderer.RenderProductRevenue(report.ProductRevenue, p) }},
		{MonthlyQuantityChart, func(p string) error { return s.renderer.RenderMonthlyQuantity(report.MonthlyQuantity, p) }},
		{QuarterlyRevenuePieChart, func(p string) error { return s.renderer.RenderQuarterlyRevenue(report.QuarterlyRevenue, p) }},
		{PriceVsQuantityScatter, func(p string) error { return s.renderer.RenderPriceVsQuantity(report.PriceQuantity, p) }},
	}

	paths := make([]string, 0, len(renders))
	for _, r := range renders {
		path := filepath.Join(outputDir, r.chart)
		if err := r.render(path); err != nil {
			return paths, &ChartError{Chart: r.chart, Err: err}
		}

		logrus.WithField("chart", path).Debug("Gráfico gerado")
		paths = append(paths, path)
	}

	return paths, nil
}

// PlotMonthlyRevenue agrega e desenha apenas o gráfico de receita mensal
func (s *Service) PlotMonthlyRevenue(table *domain.SalesTable, outputDir string) error {
	if table.Len() == 0 {
		return ErrEmptyTable
	}
	return s.renderer.RenderMonthlyRevenue(MonthlyRevenue(table), filepath.Join(outputDir, MonthlyRevenueChart))
}

// PlotProductRevenue agrega e desenha apenas o gráfico de receita por produto
func (s *Service) PlotProductRevenue(table *domain.SalesTable, outputDir string) error {
	if table.Len() == 0 {
		return ErrEmptyTable
	}
	return s.renderer.RenderProductRevenue(ProductRevenue(table), filepath.Join(outputDir, ProductRevenueChart))
}

// PlotMonthlyQuantity agrega e desenha apenas o gráfico de quantidade mensal
func (s *Service) PlotMonthlyQuantity(table *domain.SalesTable, outputDir string) error {
	if table.Len() == 0 {
		return ErrEmptyTable
	}
	return s.renderer.RenderMonthlyQuantity(MonthlyQuantity(table), filepath.Join(outputDir, MonthlyQuantityChart))
}

// PlotQuarterlyRevenue agrega e desenha apenas o gráfico de pizza trimestral
func (s *Service) PlotQuarterlyRevenue(table *domain.SalesTable, outputDir string) error {
	if table.Len() == 0 {
		return ErrEmptyTable
	}
	return s.renderer.RenderQuarterlyRevenue(QuarterlyRevenue(table), filepath.Join(outputDir, QuarterlyRevenuePieChart))
}

// PlotPriceVsQuantity sorteia a amostra e desenha apenas o gráfico de dispersão
func (s *Service) PlotPriceVsQuantity(table *domain.SalesTable, outputDir string) error {
	if table.Len() == 0 {
		return ErrEmptyTable
	}
	sample := PriceQuantitySample(table, s.sampleSize, s.sampleSeed)
	return s.renderer.RenderPriceVsQuantity(sample, filepath.Join(outputDir, PriceVsQuantityScatter))
}
