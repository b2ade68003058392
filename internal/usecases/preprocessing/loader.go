// Package preprocessing carrega, limpa e enriquece a tabela de vendas
package preprocessing

import (
	"bytes"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load lê o arquivo de vendas delimitado por vírgulas do caminho informado
func Load(path string) (*domain.SalesTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrInputNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "erro ao abrir arquivo de entrada %s", path)
	}
	defer f.Close()

	table, err := LoadReader(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "erro ao carregar %s", path)
	}

	return table, nil
}

// LoadReader lê a tabela de vendas de um reader, preservando a ordem das linhas
func LoadReader(r io.Reader) (*domain.SalesTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler entrada")
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}

	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
		index[columns[i]] = i
	}

	for _, required := range domain.RequiredColumns {
		if _, ok := index[required]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", required)
		}
	}

	table := &domain.SalesTable{
		Columns: columns,
		Records: make([]*domain.SalesRecord, 0),
		Stage:   domain.StageLoaded,
	}

	line := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrMalformedInput, err.Error())
		}
		line++

		record, err := parseRecord(rec, columns, line)
		if err != nil {
			return nil, err
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

func parseRecord(rec []string, columns []string, line int) (*domain.SalesRecord, error) {
	record := &domain.SalesRecord{}

	for i, column := range columns {
		value := ""
		if i < len(rec) {
			value = rec[i]
		}

		switch column {
		case domain.ColumnPurchaseDate:
			date, err := utils.ParseDate(value)
			if err != nil {
				return nil, &ParseError{Line: line, Column: column, Value: value, Err: err}
			}
			record.PurchaseDate = date
		case domain.ColumnProductType:
			record.ProductType = strings.TrimSpace(value)
		case domain.ColumnUnitPrice:
			price, err := parseUnitPrice(value)
			if err != nil {
				return nil, &ParseError{Line: line, Column: column, Value: value, Err: err}
			}
			record.UnitPrice = price
		case domain.ColumnQuantity:
			quantity, err := parseQuantity(value)
			if err != nil {
				return nil, &ParseError{Line: line, Column: column, Value: value, Err: err}
			}
			record.Quantity = quantity
		default:
			if record.Extra == nil {
				record.Extra = make(map[string]string)
			}
			record.Extra[column] = value
		}
	}

	return record, nil
}

// parseUnitPrice converte o preço; vazio vira zero e a linha é descartada na limpeza
func parseUnitPrice(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

// parseQuantity aceita inteiros e decimais integrais ("2.0")
func parseQuantity(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	quantity, err := strconv.Atoi(value)
	if err == nil {
		return quantity, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, err
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, errors.Errorf("quantidade não inteira: %s", value)
	}

	whole := d.BigInt()
	if !whole.IsInt64() || whole.Int64() > math.MaxInt || whole.Int64() < math.MinInt {
		return 0, errors.Errorf("quantidade fora do intervalo: %s", value)
	}

	return int(whole.Int64()), nil
}
