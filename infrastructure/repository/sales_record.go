// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=sales_record.go -destination=mocks/mock_sales_record.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	salesRecordTable = "sales_records"

	// Linhas por INSERT; mantém o número de parâmetros abaixo do limite do SQLite
	insertBatchSize = 500
)

var salesRecordColumns = []string{
	"run_id",
	"seq",
	"purchase_date",
	"product_type",
	"unit_price",
	"quantity",
	"revenue",
	"month",
	"month_name",
	"quarter",
	"year",
	"extra",
}

type SalesRecordRepository interface {
	ReplaceAll(ctx context.Context, runID string, records []*domain.SalesRecord) error
	Count(ctx context.Context) (int, error)
}

type salesRecordRepository struct {
	conn *sqldb.Connection
}

func NewSalesRecordRepository(conn *sqldb.Connection) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

// ReplaceAll substitui todo o conteúdo da tabela pelos registros enriquecidos da execução
func (r *salesRecordRepository) ReplaceAll(ctx context.Context, runID string, records []*domain.SalesRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := r.conn.Builder().Delete(salesRecordTable).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao limpar registros de venda: %w", err)
		}

		for start := 0; start < len(records); start += insertBatchSize {
			end := min(start+insertBatchSize, len(records))
			if err := r.insertBatch(ctx, tx, runID, start, records[start:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *salesRecordRepository) insertBatch(ctx context.Context, tx sqldb.Queryer, runID string, offset int, records []*domain.SalesRecord) error {
	builder := r.conn.Builder().
		Insert(salesRecordTable).
		Columns(salesRecordColumns...)

	for i, rec := range records {
		extra, err := marshalExtra(rec.Extra)
		if err != nil {
			return err
		}

		builder = builder.Values(
			runID,
			offset+i+1,
			rec.PurchaseDate.UTC(),
			rec.ProductType,
			rec.UnitPrice,
			rec.Quantity,
			rec.Revenue,
			rec.Month,
			rec.MonthName,
			rec.Quarter,
			rec.Year,
			extra,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir registros de venda: %w", err)
	}

	return nil
}

func (r *salesRecordRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.conn.Builder().
		Select("COUNT(*)").
		From(salesRecordTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de venda: %w", err)
	}

	return count, nil
}

func marshalExtra(extra map[string]string) (string, error) {
	if len(extra) == 0 {
		return "{}", nil
	}

	data, err := json.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar colunas extras: %w", err)
	}
	return string(data), nil
}
