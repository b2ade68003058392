package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_chart_renderer.go -package=mocks

import "github.com/vfg2006/sales-report-pipeline/internal/domain"

// Nomes fixos dos arquivos de gráfico gerados no diretório de saída
const (
	MonthlyRevenueChart      = "monthly_revenue.png"
	ProductRevenueChart      = "product_revenue.png"
	MonthlyQuantityChart     = "monthly_quantity.png"
	QuarterlyRevenuePieChart = "quarterly_revenue_pie.png"
	PriceVsQuantityScatter   = "price_vs_quantity_scatter.png"
)

// ChartNames lista os gráficos na ordem em que são gerados
var ChartNames = []string{
	MonthlyRevenueChart,
	ProductRevenueChart,
	MonthlyQuantityChart,
	QuarterlyRevenuePieChart,
	PriceVsQuantityScatter,
}

// ChartRenderer define a interface de desenho dos gráficos. Cada método cria
// (ou sobrescreve) o arquivo de imagem no caminho informado.
type ChartRenderer interface {
	// RenderMonthlyRevenue desenha a receita por mês em um gráfico de linha
	RenderMonthlyRevenue(data []domain.MonthlyRevenue, path string) error
	// RenderProductRevenue desenha a receita por produto em um gráfico de barras
	RenderProductRevenue(data []domain.ProductRevenue, path string) error
	// RenderMonthlyQuantity desenha a quantidade por mês em um gráfico de linha
	RenderMonthlyQuantity(data []domain.MonthlyQuantity, path string) error
	// RenderQuarterlyRevenue desenha a participação de cada trimestre em um gráfico de pizza
	RenderQuarterlyRevenue(data []domain.QuarterlyRevenue, path string) error
	// RenderPriceVsQuantity desenha a amostra preço x quantidade em um gráfico de dispersão
	RenderPriceVsQuantity(data []domain.PricePoint, path string) error
}
