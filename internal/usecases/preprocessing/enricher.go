package preprocessing

import (
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
)

// Enrich adiciona mês, nome do mês, trimestre e ano derivados da data de compra
func Enrich(table *domain.SalesTable) *domain.SalesTable {
	enriched := &domain.SalesTable{
		Columns: append([]string(nil), table.Columns...),
		Records: make([]*domain.SalesRecord, 0, table.Len()),
		Stage:   domain.StageEnriched,
	}

	for _, record := range table.Records {
		clone := record.Clone()
		if clone.Revenue.IsZero() {
			clone.Revenue = clone.ComputeRevenue()
		}

		month := int(clone.PurchaseDate.Month())
		clone.Month = month
		clone.MonthName = utils.MonthAbbreviation(month)
		clone.Quarter = utils.QuarterOf(month)
		clone.Year = clone.PurchaseDate.Year()

		enriched.Records = append(enriched.Records, clone)
	}

	return enriched
}
