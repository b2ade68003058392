package domain

import "github.com/shopspring/decimal"

// MonthlyRevenue é a receita total de um mês (somando todos os anos)
type MonthlyRevenue struct {
	Month     int             `json:"month"`
	MonthName string          `json:"month_name"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// ProductRevenue é a receita total de um tipo de produto
type ProductRevenue struct {
	ProductType string          `json:"product_type"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// MonthlyQuantity é a quantidade total vendida em um mês
type MonthlyQuantity struct {
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Quantity  int64  `json:"quantity"`
}

// QuarterlyRevenue é a participação de um trimestre na receita total
type QuarterlyRevenue struct {
	Quarter  int             `json:"quarter"`
	Label    string          `json:"label"`
	Revenue  decimal.Decimal `json:"revenue"`
	Share    float64         `json:"share"` // Percentual (0-100)
	Exploded bool            `json:"exploded"`
}

// PricePoint é um ponto da amostra preço unitário x quantidade
type PricePoint struct {
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// SalesReport agrupa todas as agregações geradas a partir da tabela enriquecida
type SalesReport struct {
	RecordCount      int                `json:"record_count"`
	TotalRevenue     decimal.Decimal    `json:"total_revenue"`
	TotalQuantity    int64              `json:"total_quantity"`
	MonthlyRevenue   []MonthlyRevenue   `json:"monthly_revenue"`
	ProductRevenue   []ProductRevenue   `json:"product_revenue"`
	MonthlyQuantity  []MonthlyQuantity  `json:"monthly_quantity"`
	QuarterlyRevenue []QuarterlyRevenue `json:"quarterly_revenue"`
	PriceQuantity    []PricePoint       `json:"price_quantity_sample"`
}

var hundred = decimal.NewFromInt(100)

// ApplyQuarterlyShares calcula a participação percentual de cada trimestre e
// destaca o de maior receita (o primeiro, em caso de empate)
func ApplyQuarterlyShares(quarters []QuarterlyRevenue) {
	total := decimal.Zero
	for _, q := range quarters {
		total = total.Add(q.Revenue)
	}

	largest := -1
	for i := range quarters {
		quarters[i].Share = 0
		quarters[i].Exploded = false
		if total.IsPositive() {
			quarters[i].Share = quarters[i].Revenue.Mul(hundred).Div(total).InexactFloat64()
		}
		if largest < 0 || quarters[i].Revenue.GreaterThan(quarters[largest].Revenue) {
			largest = i
		}
	}

	if largest >= 0 {
		quarters[largest].Exploded = true
	}
}
