package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{name: "data ISO", input: "2023-11-20", expected: time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)},
		{name: "data e hora", input: "2024-02-10 13:45:00", expected: time.Date(2024, 2, 10, 13, 45, 0, 0, time.UTC)},
		{name: "formato americano", input: "9/15/2023", expected: time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)},
		{name: "espaços nas pontas", input: "  2024-07-18 ", expected: time.Date(2024, 7, 18, 0, 0, 0, 0, time.UTC)},
		{name: "vazia", input: "", expected: time.Time{}},
		{name: "inválida", input: "ontem", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "esperado %s, obtido %s", tt.expected, got)
		})
	}
}

func TestQuarterOf(t *testing.T) {
	expected := map[int]int{1: 1, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 3, 8: 3, 9: 3, 10: 4, 11: 4, 12: 4}
	for month, quarter := range expected {
		assert.Equal(t, quarter, QuarterOf(month), "mês %d", month)
	}
}

func TestMonthAbbreviation(t *testing.T) {
	assert.Equal(t, "Jan", MonthAbbreviation(1))
	assert.Equal(t, "Sep", MonthAbbreviation(9))
	assert.Equal(t, "Dec", MonthAbbreviation(12))
	assert.Equal(t, "", MonthAbbreviation(13))
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "$0K", FormatThousands(0))
	assert.Equal(t, "$25K", FormatThousands(25000))
	assert.Equal(t, "$2K", FormatThousands(1600))
	assert.Equal(t, "45.5%", FormatPercent(45.46))
}
