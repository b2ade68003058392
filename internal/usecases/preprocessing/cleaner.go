package preprocessing

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

// Clean remove duplicatas exatas e linhas com quantidade, preço ou data inválidos,
// calculando a receita de cada linha mantida. A tabela de entrada não é alterada.
func Clean(table *domain.SalesTable) (*domain.SalesTable, domain.CleaningStats) {
	stats := domain.CleaningStats{Loaded: table.Len()}

	cleaned := &domain.SalesTable{
		Columns: append([]string(nil), table.Columns...),
		Records: make([]*domain.SalesRecord, 0, table.Len()),
		Stage:   domain.StageCleaned,
	}

	seen := make(map[string]struct{}, table.Len())
	for _, record := range table.Records {
		key := recordKey(record, table.Columns)
		if _, duplicated := seen[key]; duplicated {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		if !record.IsValid() {
			stats.Invalid++
			continue
		}

		clone := record.Clone()
		clone.Revenue = clone.ComputeRevenue()
		cleaned.Records = append(cleaned.Records, clone)
	}

	stats.Retained = len(cleaned.Records)

	return cleaned, stats
}

// recordKey monta a chave de duplicidade a partir de todas as colunas originais,
// usando os valores já convertidos (800 e 800.0 são o mesmo preço)
func recordKey(record *domain.SalesRecord, columns []string) string {
	parts := make([]string, len(columns))
	for i, column := range columns {
		switch column {
		case domain.ColumnPurchaseDate:
			if record.PurchaseDate.IsZero() {
				parts[i] = ""
			} else {
				parts[i] = record.PurchaseDate.Format(time.RFC3339Nano)
			}
		case domain.ColumnProductType:
			parts[i] = record.ProductType
		case domain.ColumnUnitPrice:
			parts[i] = record.UnitPrice.String()
		case domain.ColumnQuantity:
			parts[i] = strconv.Itoa(record.Quantity)
		default:
			parts[i] = record.Extra[column]
		}
	}
	return strings.Join(parts, "\x1f")
}
