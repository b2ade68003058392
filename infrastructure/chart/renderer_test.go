package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, path string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, pngSignature), "arquivo %s não é PNG", path)
}

func TestRenderer_RenderAllChartTypes(t *testing.T) {
	r := NewRenderer()
	dir := filepath.Join(t.TempDir(), "outputs")

	tests := []struct {
		name   string
		file   string
		render func(path string) error
	}{
		{
			name: "Receita mensal",
			file: "monthly_revenue.png",
			render: func(path string) error {
				return r.RenderMonthlyRevenue([]domain.MonthlyRevenue{
					{Month: 2, MonthName: "Feb", Revenue: decimal.NewFromInt(1350)},
					{Month: 11, MonthName: "Nov", Revenue: decimal.NewFromInt(1600)},
				}, path)
			},
		},
		{
			name: "Receita por produto",
			file: "product_revenue.png",
			render: func(path string) error {
				return r.RenderProductRevenue([]domain.ProductRevenue{
					{ProductType: "Smartphone", Revenue: decimal.NewFromInt(1600)},
					{ProductType: "Laptop", Revenue: decimal.NewFromInt(1350)},
				}, path)
			},
		},
		{
			name: "Quantidade mensal",
			file: "monthly_quantity.png",
			render: func(path string) error {
				return r.RenderMonthlyQuantity([]domain.MonthlyQuantity{
					{Month: 2, MonthName: "Feb", Quantity: 1},
					{Month: 11, MonthName: "Nov", Quantity: 2},
				}, path)
			},
		},
		{
			name: "Pizza trimestral",
			file: "quarterly_revenue_pie.png",
			render: func(path string) error {
				return r.RenderQuarterlyRevenue([]domain.QuarterlyRevenue{
					{Quarter: 1, Label: "Q1", Revenue: decimal.NewFromInt(1350), Share: 45.76},
					{Quarter: 4, Label: "Q4", Revenue: decimal.NewFromInt(1600), Share: 54.24, Exploded: true},
				}, path)
			},
		},
		{
			name: "Dispersão preço x quantidade",
			file: "price_vs_quantity_scatter.png",
			render: func(path string) error {
				return r.RenderPriceVsQuantity([]domain.PricePoint{
					{UnitPrice: 800, Quantity: 2},
					{UnitPrice: 1350, Quantity: 1},
					{UnitPrice: 25.5, Quantity: 4},
				}, path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)

			require.NoError(t, tt.render(path))
			assertPNG(t, path)
		})
	}
}

func TestRenderer_EmptyData(t *testing.T) {
	r := NewRenderer()
	path := filepath.Join(t.TempDir(), "empty.png")

	assert.ErrorIs(t, r.RenderMonthlyRevenue(nil, path), ErrNoData)
	assert.ErrorIs(t, r.RenderProductRevenue(nil, path), ErrNoData)
	assert.ErrorIs(t, r.RenderMonthlyQuantity(nil, path), ErrNoData)
	assert.ErrorIs(t, r.RenderQuarterlyRevenue(nil, path), ErrNoData)
	assert.ErrorIs(t, r.RenderPriceVsQuantity(nil, path), ErrNoData)
	assert.NoFileExists(t, path)
}

func TestRenderer_ScatterRejectsNonPositivePrice(t *testing.T) {
	r := NewRenderer()

	err := r.RenderPriceVsQuantity([]domain.PricePoint{{UnitPrice: 0, Quantity: 1}}, filepath.Join(t.TempDir(), "scatter.png"))

	assert.Error(t, err)
}

func TestThousandsTicks(t *testing.T) {
	ticks := thousandsTicks{}.Ticks(0, 5000)

	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		assert.Regexp(t, `^\$\d+K$`, tick.Label)
	}
}
