package reporting

import (
	"errors"
	"fmt"
)

// ErrEmptyTable indica que não há registros para gerar gráficos
var ErrEmptyTable = errors.New("enriched table has no records")

// ChartError é um erro de renderização de um gráfico específico
type ChartError struct {
	Chart string
	Err   error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("erro ao gerar gráfico %s: %v", e.Chart, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}
