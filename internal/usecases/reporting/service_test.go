package reporting

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestNewService_Defaults(t *testing.T) {
	s := NewService(nil, nil)
	assert.Equal(t, DefaultSampleSize, s.sampleSize)
	assert.Equal(t, int64(DefaultSampleSeed), s.sampleSeed)

	s = NewService(nil, &config.Config{Report: config.Report{ScatterSampleSize: 10, ScatterSampleSeed: 7}})
	assert.Equal(t, 10, s.sampleSize)
	assert.Equal(t, int64(7), s.sampleSeed)
}

func TestService_BuildReport(t *testing.T) {
	s := NewService(nil, nil)

	t.Run("Tabela vazia retorna ErrEmptyTable", func(t *testing.T) {
		report, err := s.BuildReport(enrichedTable())
		assert.ErrorIs(t, err, ErrEmptyTable)
		assert.Nil(t, report)
	})

	t.Run("Calcula totais e agregações", func(t *testing.T) {
		report, err := s.BuildReport(sampleTable())
		require.NoError(t, err)

		assert.Equal(t, 5, report.RecordCount)
		assert.Equal(t, "5851.48", report.TotalRevenue.String())
		assert.Equal(t, int64(12), report.TotalQuantity)
		assert.Len(t, report.MonthlyRevenue, 3)
		assert.Len(t, report.ProductRevenue, 4)
		assert.Len(t, report.MonthlyQuantity, 3)
		assert.Len(t, report.QuarterlyRevenue, 3)
		assert.Len(t, report.PriceQuantity, 5)
	})
}

func TestService_RenderAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockChartRenderer(ctrl)
	s := NewService(renderer, nil)

	report, err := s.BuildReport(sampleTable())
	require.NoError(t, err)

	tests := []struct {
		name          string
		setup         func(dir string)
		expectedCount int
		expectedErr   string
	}{
		{
			name: "Gera os cinco gráficos em ordem",
			setup: func(dir string) {
				gomock.InOrder(
					renderer.EXPECT().RenderMonthlyRevenue(report.MonthlyRevenue, filepath.Join(dir, MonthlyRevenueChart)).Return(nil),
					renderer.EXPECT().RenderProductRevenue(report.ProductRevenue, filepath.Join(dir, ProductRevenueChart)).Return(nil),
					renderer.EXPECT().RenderMonthlyQuantity(report.MonthlyQuantity, filepath.Join(dir, MonthlyQuantityChart)).Return(nil),
					renderer.EXPECT().RenderQuarterlyRevenue(report.QuarterlyRevenue, filepath.Join(dir, QuarterlyRevenuePieChart)).Return(nil),
					renderer.EXPECT().RenderPriceVsQuantity(report.PriceQuantity, filepath.Join(dir, PriceVsQuantityScatter)).Return(nil),
				)
			},
			expectedCount: 5,
		},
		{
			name: "Erro em um gráfico interrompe a geração",
			setup: func(dir string) {
				renderer.EXPECT().RenderMonthlyRevenue(gomock.Any(), gomock.Any()).Return(nil)
				renderer.EXPECT().RenderProductRevenue(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			expectedCount: 1,
			expectedErr:   ProductRevenueChart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "outputs")
			tt.setup(dir)

			paths, err := s.RenderAll(report, dir)

			assert.Len(t, paths, tt.expectedCount)
			if tt.expectedErr != "" {
				var chartErr *ChartError
				require.ErrorAs(t, err, &chartErr)
				assert.Equal(t, tt.expectedErr, chartErr.Chart)
				return
			}

			require.NoError(t, err)
			info, statErr := os.Stat(dir)
			require.NoError(t, statErr)
			assert.True(t, info.IsDir())
			assert.Equal(t, filepath.Join(dir, ChartNames[0]), paths[0])
		})
	}
}

func TestService_RenderAll_EmptyReport(t *testing.T) {
	s := NewService(nil, nil)

	paths, err := s.RenderAll(&domain.SalesReport{}, t.TempDir())

	assert.ErrorIs(t, err, ErrEmptyTable)
	assert.Empty(t, paths)
}

func TestService_PlotIndividually(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	renderer := mocks.NewMockChartRenderer(ctrl)
	s := NewService(renderer, nil)
	dir := t.TempDir()
	table := sampleTable()

	renderer.EXPECT().RenderQuarterlyRevenue(QuarterlyRevenue(table), filepath.Join(dir, QuarterlyRevenuePieChart)).Return(nil)

	assert.NoError(t, s.PlotQuarterlyRevenue(table, dir))
	assert.ErrorIs(t, s.PlotMonthlyRevenue(enrichedTable(), dir), ErrEmptyTable)
}
