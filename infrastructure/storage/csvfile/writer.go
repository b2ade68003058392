// Package csvfile persiste a tabela de vendas em arquivo delimitado por vírgulas
package csvfile

import (
	"bufio"
	"encoding/csv"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
	"golang.org/x/crypto/blake2b"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Writer grava a tabela limpa/enriquecida sem coluna de índice
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Save cria os diretórios necessários, sobrescreve o arquivo de destino e
// retorna o checksum BLAKE2b-256 (hex) do conteúdo gravado
func (w *Writer) Save(table *domain.SalesTable, path string) (string, error) {
	if table == nil {
		return "", errors.New("tabela nula")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar diretório de %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao criar arquivo %s", path)
	}
	defer f.Close()

	hash, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	buf := bufio.NewWriter(f)
	if err := Write(table, io.MultiWriter(buf, hash)); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar %s", path)
	}

	if err := buf.Flush(); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar %s", path)
	}

	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "erro ao fechar %s", path)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Write serializa a tabela no writer informado
func Write(table *domain.SalesTable, w io.Writer) error {
	columns := table.OutputColumns()
	derived := table.DerivedColumns()
	layout := DateLayout(table.Records)

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}

	row := make([]string, len(columns))
	for _, r := range table.Records {
		for i, column := range columns {
			if isComputable(column) && !slices.Contains(derived, column) {
				// Coluna de entrada homônima de uma calculada ainda não gerada
				row[i] = r.Extra[column]
				continue
			}
			row[i] = formatValue(r, column, layout)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// DateLayout retorna o formato curto quando nenhuma data tem horário
func DateLayout(records []*domain.SalesRecord) string {
	for _, r := range records {
		if !utils.IsMidnight(r.PurchaseDate) {
			return dateTimeLayout
		}
	}
	return dateLayout
}

// isComputable indica se a coluna é uma das calculadas pelo pipeline
func isComputable(column string) bool {
	return column == domain.ColumnRevenue || slices.Contains(domain.CalendarColumns, column)
}

func formatValue(r *domain.SalesRecord, column, layout string) string {
	switch column {
	case domain.ColumnPurchaseDate:
		if r.PurchaseDate.IsZero() {
			return ""
		}
		return r.PurchaseDate.Format(layout)
	case domain.ColumnProductType:
		return r.ProductType
	case domain.ColumnUnitPrice:
		return r.UnitPrice.String()
	case domain.ColumnQuantity:
		return strconv.Itoa(r.Quantity)
	case domain.ColumnRevenue:
		return r.Revenue.String()
	case domain.ColumnMonth:
		return strconv.Itoa(r.Month)
	case domain.ColumnMonthName:
		return r.MonthName
	case domain.ColumnQuarter:
		return strconv.Itoa(r.Quarter)
	case domain.ColumnYear:
		return strconv.Itoa(r.Year)
	default:
		return r.Extra[column]
	}
}
