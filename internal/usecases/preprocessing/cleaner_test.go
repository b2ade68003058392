package preprocessing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

func TestClean_DocumentedExample(t *testing.T) {
	table, err := LoadReader(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	cleaned, stats := Clean(table)

	assert.Equal(t, domain.StageCleaned, cleaned.Stage)
	require.Len(t, cleaned.Records, 2)
	assert.Equal(t, "1600", cleaned.Records[0].Revenue.String())
	assert.Equal(t, "1350", cleaned.Records[1].Revenue.String())
	assert.Equal(t, domain.CleaningStats{Loaded: 3, Duplicates: 1, Invalid: 0, Retained: 2}, stats)

	// A tabela original não é alterada
	assert.Len(t, table.Records, 3)
	assert.True(t, table.Records[0].Revenue.IsZero())
}

func TestClean_DropsNonPositiveValues(t *testing.T) {
	input := `Purchase Date,Product Type,Unit Price,Quantity
2024-01-05,Laptop,1000,0
2024-01-06,Laptop,0,2
2024-01-07,Headphones,-150,1
2024-01-08,Headphones,150,-3
,Smart Watch,250,2
2024-01-09,Smart Watch,250,2
`
	table, err := LoadReader(strings.NewReader(input))
	require.NoError(t, err)

	cleaned, stats := Clean(table)

	require.Len(t, cleaned.Records, 1)
	assert.Equal(t, "Smart Watch", cleaned.Records[0].ProductType)
	assert.Equal(t, 5, stats.Invalid)
	assert.Equal(t, 1, stats.Retained)
}

func TestClean_DuplicatesUseParsedValues(t *testing.T) {
	input := `Purchase Date,Product Type,Unit Price,Quantity,Store
2024-03-01,Laptop,800,1,A
2024-03-01,Laptop,800.00,1,A
2024-03-01,Laptop,800,1,B
`
	table, err := LoadReader(strings.NewReader(input))
	require.NoError(t, err)

	cleaned, stats := Clean(table)

	assert.Equal(t, 1, stats.Duplicates)
	require.Len(t, cleaned.Records, 2)
	assert.Equal(t, "A", cleaned.Records[0].Extra["Store"])
	assert.Equal(t, "B", cleaned.Records[1].Extra["Store"])
}

func TestClean_Invariants(t *testing.T) {
	input := `Purchase Date,Product Type,Unit Price,Quantity
2023-09-15,Laptop,1200,1
2023-11-20,Smartphone,800,2
2023-11-22,Headphones,150,3
2023-11-22,Headphones,150,3
2024-02-10,Laptop,1350,1
2024-04-05,Smart Watch,250,2
2024-07-18,Smartphone,900,1
2024-07-19,Tablet,0,1
2024-08-01,Tablet,499.99,0
2024-08-02,Tablet,499.99,4
`
	table, err := LoadReader(strings.NewReader(input))
	require.NoError(t, err)

	cleaned, _ := Clean(table)

	seen := map[string]bool{}
	for _, r := range cleaned.Records {
		assert.Greater(t, r.Quantity, 0)
		assert.True(t, r.UnitPrice.IsPositive())
		assert.True(t, r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity))).Equal(r.Revenue))

		key := recordKey(r, cleaned.Columns)
		assert.False(t, seen[key], "registro duplicado: %s", key)
		seen[key] = true
	}
	assert.Len(t, cleaned.Records, 7)
}

func TestClean_EmptyTable(t *testing.T) {
	table := &domain.SalesTable{Columns: domain.RequiredColumns}

	cleaned, stats := Clean(table)

	assert.Equal(t, 0, cleaned.Len())
	assert.Equal(t, domain.CleaningStats{}, stats)
}
