// Package reporting agrega a tabela enriquecida e gera os gráficos de vendas
package reporting

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/vfg2006/sales-report-pipeline/pkg/utils"
)

// MonthlyRevenue soma a receita por mês, em ordem crescente de mês
func MonthlyRevenue(table *domain.SalesTable) []domain.MonthlyRevenue {
	totals := make(map[int]decimal.Decimal)
	for _, r := range table.Records {
		totals[r.Month] = totals[r.Month].Add(r.Revenue)
	}

	result := make([]domain.MonthlyRevenue, 0, len(totals))
	for _, month := range sortedKeys(totals) {
		result = append(result, domain.MonthlyRevenue{
			Month:     month,
			MonthName: utils.MonthAbbreviation(month),
			Revenue:   totals[month],
		})
	}

	return result
}

// ProductRevenue soma a receita por tipo de produto, da maior para a menor
func ProductRevenue(table *domain.SalesTable) []domain.ProductRevenue {
	totals := make(map[string]decimal.Decimal)
	for _, r := range table.Records {
		totals[r.ProductType] = totals[r.ProductType].Add(r.Revenue)
	}

	result := make([]domain.ProductRevenue, 0, len(totals))
	for product, revenue := range totals {
		result = append(result, domain.ProductRevenue{ProductType: product, Revenue: revenue})
	}

	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Revenue.Cmp(result[j].Revenue); cmp != 0 {
			return cmp > 0
		}
		return result[i].ProductType < result[j].ProductType
	})

	return result
}

// MonthlyQuantity soma a quantidade vendida por mês, em ordem crescente de mês
func MonthlyQuantity(table *domain.SalesTable) []domain.MonthlyQuantity {
	totals := make(map[int]int64)
	for _, r := range table.Records {
		totals[r.Month] += int64(r.Quantity)
	}

	months := make([]int, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Ints(months)

	result := make([]domain.MonthlyQuantity, 0, len(months))
	for _, month := range months {
		result = append(result, domain.MonthlyQuantity{
			Month:     month,
			MonthName: utils.MonthAbbreviation(month),
			Quantity:  totals[month],
		})
	}

	return result
}

// QuarterlyRevenue soma a receita por trimestre e calcula a participação de cada um.
// O trimestre de maior receita (o primeiro, em caso de empate) é destacado.
func QuarterlyRevenue(table *domain.SalesTable) []domain.QuarterlyRevenue {
	totals := make(map[int]decimal.Decimal)
	for _, r := range table.Records {
		totals[r.Quarter] = totals[r.Quarter].Add(r.Revenue)
	}

	result := make([]domain.QuarterlyRevenue, 0, len(totals))
	for _, quarter := range sortedKeys(totals) {
		result = append(result, domain.QuarterlyRevenue{
			Quarter: quarter,
			Label:   fmt.Sprintf("Q%d", quarter),
			Revenue: totals[quarter],
		})
	}
	domain.ApplyQuarterlyShares(result)

	return result
}

// PriceQuantitySample sorteia até sampleSize registros com semente fixa,
// mantendo a ordem original da tabela entre os sorteados
func PriceQuantitySample(table *domain.SalesTable, sampleSize int, seed int64) []domain.PricePoint {
	n := table.Len()
	if sampleSize > n {
		sampleSize = n
	}
	if sampleSize <= 0 {
		return []domain.PricePoint{}
	}

	rng := rand.New(rand.NewSource(seed))
	indexes := rng.Perm(n)[:sampleSize]
	sort.Ints(indexes)

	result := make([]domain.PricePoint, 0, sampleSize)
	for _, i := range indexes {
		r := table.Records[i]
		result = append(result, domain.PricePoint{
			UnitPrice: r.UnitPrice.InexactFloat64(),
			Quantity:  r.Quantity,
		})
	}

	return result
}

// Totals retorna a receita e a quantidade totais da tabela
func Totals(table *domain.SalesTable) (decimal.Decimal, int64) {
	revenue := decimal.Zero
	var quantity int64
	for _, r := range table.Records {
		revenue = revenue.Add(r.Revenue)
		quantity += int64(r.Quantity)
	}
	return revenue, quantity
}

func sortedKeys(m map[int]decimal.Decimal) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
