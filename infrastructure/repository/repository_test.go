package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
)

func newTestConnection(t *testing.T) *sqldb.Connection {
	t.Helper()

	conn, err := sqldb.NewConnection(context.Background(), config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "sales.sqlite"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Migrate(context.Background()))
	return conn
}

func salesRecord(date string, product string, price string, qty int) *domain.SalesRecord {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}

	r := &domain.SalesRecord{
		PurchaseDate: d,
		ProductType:  product,
		UnitPrice:    decimal.RequireFromString(price),
		Quantity:     qty,
		Extra:        map[string]string{"Customer ID": "1000"},
	}
	r.Revenue = r.ComputeRevenue()
	r.Month = int(d.Month())
	r.MonthName = utils.MonthAbbreviation(r.Month)
	r.Quarter = utils.QuarterOf(r.Month)
	r.Year = d.Year()
	return r
}

func sampleRecords() []*domain.SalesRecord {
	return []*domain.SalesRecord{
		salesRecord("2023-11-05", "Laptop", "999.99", 2),
		salesRecord("2024-02-14", "Tablet", "300", 1),
		salesRecord("2024-11-20", "Smartphone", "650.50", 3),
		salesRecord("2024-05-01", "Laptop", "1200", 1),
		salesRecord("2024-02-28", "Headphones", "80", 5),
	}
}

func TestSalesRecordRepository_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSalesRecordRepository(newTestConnection(t))

	require.NoError(t, repo.ReplaceAll(ctx, "run-1", sampleRecords()))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// Uma nova execução substitui os registros anteriores
	require.NoError(t, repo.ReplaceAll(ctx, "run-2", sampleRecords()[:2]))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSalesRecordRepository_ReplaceAllInBatches(t *testing.T) {
	ctx := context.Background()
	repo := NewSalesRecordRepository(newTestConnection(t))

	records := make([]*domain.SalesRecord, 0, insertBatchSize*2+7)
	for i := 0; i < cap(records); i++ {
		records = append(records, salesRecord("2024-01-10", "Laptop", "10", i%3+1))
	}

	require.NoError(t, repo.ReplaceAll(ctx, "run-batch", records))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(records), count)
}

func TestSalesReportRepository(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)
	require.NoError(t, NewSalesRecordRepository(conn).ReplaceAll(ctx, "run-1", sampleRecords()))

	repo := NewSalesReportRepository(conn)

	t.Run("Receita mensal em ordem de mês", func(t *testing.T) {
		result, err := repo.MonthlyRevenue(ctx)
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, "Feb", result[0].MonthName)
		assert.True(t, decimal.NewFromInt(700).Equal(result[0].Revenue))
		assert.True(t, decimal.NewFromInt(1200).Equal(result[1].Revenue))
		assert.True(t, decimal.RequireFromString("3951.48").Equal(result[2].Revenue), result[2].Revenue.String())
	})

	t.Run("Receita por produto da maior para a menor", func(t *testing.T) {
		result, err := repo.ProductRevenue(ctx)
		require.NoError(t, err)

		names := make([]string, 0, len(result))
		for _, p := range result {
			names = append(names, p.ProductType)
		}
		assert.Equal(t, []string{"Laptop", "Smartphone", "Headphones", "Tablet"}, names)
		assert.True(t, decimal.RequireFromString("3199.98").Equal(result[0].Revenue), result[0].Revenue.String())
	})

	t.Run("Quantidade mensal", func(t *testing.T) {
		result, err := repo.MonthlyQuantity(ctx)
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, int64(6), result[0].Quantity)
		assert.Equal(t, int64(1), result[1].Quantity)
		assert.Equal(t, int64(5), result[2].Quantity)
	})

	t.Run("Receita trimestral com destaque", func(t *testing.T) {
		result, err := repo.QuarterlyRevenue(ctx)
		require.NoError(t, err)

		require.Len(t, result, 3)
		assert.Equal(t, "Q4", result[2].Label)
		assert.True(t, result[2].Exploded)
		assert.False(t, result[0].Exploded)
		assert.InDelta(t, 100.0, result[0].Share+result[1].Share+result[2].Share, 0.0001)
	})
}

func TestSalesReportRepository_EmptyTable(t *testing.T) {
	repo := NewSalesReportRepository(newTestConnection(t))

	result, err := repo.MonthlyRevenue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestPipelineRunRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPipelineRunRepository(newTestConnection(t))

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest, "sem execuções registradas")

	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	first := &domain.PipelineRun{
		ID:        "run-1",
		InputPath: "data/raw/electronics_sales.csv",
		CleanPath: "data/processed/electronics_sales_cleaned.csv",
		StartedAt: started,
		Status:    domain.RunStatusRunning,
	}
	require.NoError(t, repo.Save(ctx, first))

	second := &domain.PipelineRun{
		ID:        "run-2",
		InputPath: first.InputPath,
		CleanPath: first.CleanPath,
		StartedAt: started.Add(time.Hour),
		Status:    domain.RunStatusRunning,
	}
	require.NoError(t, repo.Save(ctx, second))

	second.ApplyStats(domain.CleaningStats{Loaded: 3, Duplicates: 1, Invalid: 0, Retained: 2})
	second.Charts = []string{"outputs/monthly_revenue.png"}
	second.CleanChecksum = "abc123"
	second.Finish(nil)
	require.NoError(t, repo.Save(ctx, second))

	latest, err = repo.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)

	assert.Equal(t, "run-2", latest.ID)
	assert.Equal(t, domain.RunStatusSucceeded, latest.Status)
	assert.Equal(t, 3, latest.LoadedRows)
	assert.Equal(t, 1, latest.DuplicateRows)
	assert.Equal(t, 2, latest.CleanedRows)
	assert.Equal(t, []string{"outputs/monthly_revenue.png"}, latest.Charts)
	assert.Equal(t, "abc123", latest.CleanChecksum)
	assert.NotNil(t, latest.FinishedAt)
	assert.True(t, latest.StartedAt.Equal(second.StartedAt))
}
