package repository

//go:generate mockgen -source=sales_report.go -destination=mocks/mock_sales_report.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
)

// Casas decimais mantidas nas somas; o SQLite soma NUMERIC como ponto flutuante
const moneyScale = 4

// SalesReportRepository calcula as agregações diretamente sobre a tabela armazenada
type SalesReportRepository interface {
	MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error)
	ProductRevenue(ctx context.Context) ([]domain.ProductRevenue, error)
	MonthlyQuantity(ctx context.Context) ([]domain.MonthlyQuantity, error)
	QuarterlyRevenue(ctx context.Context) ([]domain.QuarterlyRevenue, error)
}

type salesReportRepository struct {
	conn *sqldb.Connection
}

func NewSalesReportRepository(conn *sqldb.Connection) SalesReportRepository {
	return &salesReportRepository{
		conn: conn,
	}
}

func (r *salesReportRepository) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error) {
	query, args, err := r.conn.Builder().
		Select("month", "SUM(revenue)").
		From(salesRecordTable).
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result := make([]domain.MonthlyRevenue, 0, 12)
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		var (
			month   int
			revenue string
		)
		if err := rows.Scan(&month, &revenue); err != nil {
			return err
		}

		amount, err := parseMoney(revenue)
		if err != nil {
			return err
		}

		result = append(result, domain.MonthlyRevenue{
			Month:     month,
			MonthName: utils.MonthAbbreviation(month),
			Revenue:   amount,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar receita mensal: %w", err)
	}

	return result, nil
}

func (r *salesReportRepository) ProductRevenue(ctx context.Context) ([]domain.ProductRevenue, error) {
	query, args, err := r.conn.Builder().
		Select("product_type", "SUM(revenue) AS total").
		From(salesRecordTable).
		GroupBy("product_type").
		OrderBy("total DESC", "product_type ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result := make([]domain.ProductRevenue, 0)
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		var (
			product string
			revenue string
		)
		if err := rows.Scan(&product, &revenue); err != nil {
			return err
		}

		amount, err := parseMoney(revenue)
		if err != nil {
			return err
		}

		result = append(result, domain.ProductRevenue{ProductType: product, Revenue: amount})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar receita por produto: %w", err)
	}

	return result, nil
}

func (r *salesReportRepository) MonthlyQuantity(ctx context.Context) ([]domain.MonthlyQuantity, error) {
	query, args, err := r.conn.Builder().
		Select("month", "SUM(quantity)").
		From(salesRecordTable).
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result := make([]domain.MonthlyQuantity, 0, 12)
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		var month int
		var quantity int64
		if err := rows.Scan(&month, &quantity); err != nil {
			return err
		}

		result = append(result, domain.MonthlyQuantity{
			Month:     month,
			MonthName: utils.MonthAbbreviation(month),
			Quantity:  quantity,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar quantidade mensal: %w", err)
	}

	return result, nil
}

func (r *salesReportRepository) QuarterlyRevenue(ctx context.Context) ([]domain.QuarterlyRevenue, error) {
	query, args, err := r.conn.Builder().
		Select("quarter", "SUM(revenue)").
		From(salesRecordTable).
		GroupBy("quarter").
		OrderBy("quarter ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result := make([]domain.QuarterlyRevenue, 0, 4)
	err = r.query(ctx, query, args, func(rows *sql.Rows) error {
		var (
			quarter int
			revenue string
		)
		if err := rows.Scan(&quarter, &revenue); err != nil {
			return err
		}

		amount, err := parseMoney(revenue)
		if err != nil {
			return err
		}

		result = append(result, domain.QuarterlyRevenue{
			Quarter: quarter,
			Label:   fmt.Sprintf("Q%d", quarter),
			Revenue: amount,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar receita trimestral: %w", err)
	}

	domain.ApplyQuarterlyShares(result)
	return result, nil
}

func (r *salesReportRepository) query(ctx context.Context, query string, args []interface{}, scan func(*sql.Rows) error) error {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}

	return rows.Err()
}

func parseMoney(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor monetário inválido %q: %w", value, err)
	}
	return amount.Round(moneyScale), nil
}
