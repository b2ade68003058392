// Package chart desenha os gráficos de vendas com gonum/plot
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var ErrNoData = errors.New("no data to plot")

var (
	royalBlue  = color.RGBA{R: 65, G: 105, B: 225, A: 255}
	skyBlue    = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	seaGreen   = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	darkOrange = color.NRGBA{R: 255, G: 140, B: 0, A: 128}
)

// Renderer implementa reporting.ChartRenderer gerando arquivos PNG
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderMonthlyRevenue desenha a tendência de receita mensal
func (r *Renderer) RenderMonthlyRevenue(data []domain.MonthlyRevenue, path string) error {
	if len(data) == 0 {
		return ErrNoData
	}

	labels := make([]string, len(data))
	xys := make(plotter.XYs, len(data))
	for i, m := range data {
		labels[i] = m.MonthName
		xys[i].X = float64(i)
		xys[i].Y = m.Revenue.InexactFloat64()
	}

	p := newPlot(fmt.Sprintf("Total Monthly Revenue Trend (%s - %s)", labels[0], labels[len(labels)-1]), "Month", "Total Revenue")
	if err := addLine(p, xys, royalBlue, draw.CircleGlyph{}); err != nil {
		return err
	}
	p.NominalX(labels...)
	p.Y.Tick.Marker = thousandsTicks{}

	return save(p, 12, 6, path)
}

// RenderProductRevenue desenha a receita total por tipo de produto
func (r *Renderer) RenderProductRevenue(data []domain.ProductRevenue, path string) error {
	if len(data) == 0 {
		return ErrNoData
	}

	labels := make([]string, len(data))
	values := make(plotter.Values, len(data))
	for i, pr := range data {
		labels[i] = pr.ProductType
		values[i] = pr.Revenue.InexactFloat64()
	}

	p := newPlot("Total Revenue by Product Type", "Product Type", "Total Revenue")

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao criar gráfico de barras")
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0
	p.Y.Tick.Marker = thousandsTicks{}

	return save(p, 12, 7, path)
}

// RenderMonthlyQuantity desenha a quantidade de itens vendidos por mês
func (r *Renderer) RenderMonthlyQuantity(data []domain.MonthlyQuantity, path string) error {
	if len(data) == 0 {
		return ErrNoData
	}

	labels := make([]string, len(data))
	xys := make(plotter.XYs, len(data))
	for i, m := range data {
		labels[i] = m.MonthName
		xys[i].X = float64(i)
		xys[i].Y = float64(m.Quantity)
	}

	p := newPlot("Total Items Sold Per Month", "Month", "Quantity Sold")
	if err := addLine(p, xys, seaGreen, draw.BoxGlyph{}); err != nil {
		return err
	}
	p.NominalX(labels...)

	return save(p, 12, 6, path)
}

// RenderQuarterlyRevenue desenha a participação de cada trimestre na receita
func (r *Renderer) RenderQuarterlyRevenue(data []domain.QuarterlyRevenue, path string) error {
	if len(data) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Revenue Contribution by Quarter"
	p.HideAxes()
	p.Add(newPie(data))

	return save(p, 8, 8, path)
}

// RenderPriceVsQuantity desenha a amostra de preço unitário x quantidade com eixo x logarítmico
func (r *Renderer) RenderPriceVsQuantity(data []domain.PricePoint, path string) error {
	if len(data) == 0 {
		return ErrNoData
	}

	xys := make(plotter.XYs, len(data))
	minPrice, maxPrice := data[0].UnitPrice, data[0].UnitPrice
	for i, pt := range data {
		if pt.UnitPrice <= 0 {
			return fmt.Errorf("preço unitário inválido para escala logarítmica: %v", pt.UnitPrice)
		}
		xys[i].X = pt.UnitPrice
		xys[i].Y = float64(pt.Quantity)
		minPrice = min(minPrice, pt.UnitPrice)
		maxPrice = max(maxPrice, pt.UnitPrice)
	}

	p := newPlot("Unit Price vs. Order Quantity", "Unit Price ($)", "Quantity in Order")

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao criar gráfico de dispersão")
	}
	scatter.GlyphStyle.Color = darkOrange
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	p.Add(scatter)
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min = minPrice * 0.9
	p.X.Max = maxPrice * 1.1

	return save(p, 10, 6, path)
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, xys plotter.XYs, c color.Color, shape draw.GlyphDrawer) error {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao criar gráfico de linha")
	}

	line.Color = c
	line.Width = vg.Points(2)
	points.Color = c
	points.Shape = shape
	points.Radius = vg.Points(4)

	p.Add(line, points)
	return nil
}

// save grava o gráfico no caminho informado; largura e altura em polegadas
func save(p *plot.Plot, width, height float64, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return pkgerrors.Wrapf(err, "erro ao criar diretório de %s", path)
	}

	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return pkgerrors.Wrapf(err, "erro ao salvar gráfico %s", path)
	}

	return nil
}

// thousandsTicks usa as marcações padrão com rótulos no formato $<x/1000>K
type thousandsTicks struct{}

func (thousandsTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = utils.FormatThousands(ticks[i].Value)
		}
	}
	return ticks
}
