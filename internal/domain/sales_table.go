package domain

import "slices"

// TableStage indica até qual etapa do pipeline a tabela foi processada
type TableStage int

const (
	StageLoaded TableStage = iota
	StageCleaned
	StageEnriched
)

func (s TableStage) String() string {
	switch s {
	case StageCleaned:
		return "cleaned"
	case StageEnriched:
		return "enriched"
	default:
		return "loaded"
	}
}

// SalesTable é a tabela de vendas em memória, na ordem do arquivo de origem
type SalesTable struct {
	Columns []string // Cabeçalho original (sem espaços nas pontas)
	Records []*SalesRecord
	Stage   TableStage
}

// Len retorna o número de registros da tabela
func (t *SalesTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// DerivedColumns retorna as colunas calculadas pelo pipeline até o estágio atual
func (t *SalesTable) DerivedColumns() []string {
	derived := make([]string, 0, 1+len(CalendarColumns))
	if t.Stage >= StageCleaned {
		derived = append(derived, ColumnRevenue)
	}
	if t.Stage >= StageEnriched {
		derived = append(derived, CalendarColumns...)
	}
	return derived
}

// OutputColumns retorna as colunas que devem ser persistidas para o estágio atual.
// Colunas de entrada com o mesmo nome de uma coluna calculada são substituídas por ela.
func (t *SalesTable) OutputColumns() []string {
	derived := t.DerivedColumns()

	cols := make([]string, 0, len(t.Columns)+len(derived))
	for _, column := range t.Columns {
		if !slices.Contains(derived, column) {
			cols = append(cols, column)
		}
	}
	return append(cols, derived...)
}

// CleaningStats resume o resultado da limpeza
type CleaningStats struct {
	Loaded     int `json:"loaded"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
	Retained   int `json:"retained"`
}
