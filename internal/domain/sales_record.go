package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nomes das colunas do arquivo de vendas
const (
	ColumnPurchaseDate = "Purchase Date"
	ColumnProductType  = "Product Type"
	ColumnUnitPrice    = "Unit Price"
	ColumnQuantity     = "Quantity"

	ColumnRevenue   = "Revenue"
	ColumnMonth     = "Month"
	ColumnMonthName = "MonthName"
	ColumnQuarter   = "Quarter"
	ColumnYear      = "Year"
)

// RequiredColumns lista as colunas obrigatórias no cabeçalho do arquivo de entrada
var RequiredColumns = []string{
	ColumnPurchaseDate,
	ColumnProductType,
	ColumnUnitPrice,
	ColumnQuantity,
}

// CalendarColumns são as colunas derivadas da data de compra
var CalendarColumns = []string{
	ColumnMonth,
	ColumnMonthName,
	ColumnQuarter,
	ColumnYear,
}

// SalesRecord representa uma transação de venda de eletrônicos
type SalesRecord struct {
	PurchaseDate time.Time
	ProductType  string
	UnitPrice    decimal.Decimal
	Quantity     int
	Extra        map[string]string // Demais colunas do arquivo, preservadas na saída

	Revenue   decimal.Decimal
	Month     int
	MonthName string
	Quarter   int
	Year      int
}

// Clone retorna uma cópia independente do registro
func (r *SalesRecord) Clone() *SalesRecord {
	clone := *r
	if r.Extra != nil {
		clone.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			clone.Extra[k] = v
		}
	}
	return &clone
}

// ComputeRevenue calcula a receita do registro (preço unitário x quantidade)
func (r *SalesRecord) ComputeRevenue() decimal.Decimal {
	return r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// IsValid indica se o registro tem quantidade e preço positivos e data de compra
func (r *SalesRecord) IsValid() bool {
	return r.Quantity > 0 && r.UnitPrice.IsPositive() && !r.PurchaseDate.IsZero()
}
