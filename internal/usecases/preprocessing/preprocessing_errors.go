package preprocessing

import (
	"errors"
	"fmt"
)

// Erros específicos da etapa de pré-processamento
var (
	ErrInputNotFound  = errors.New("input file not found")
	ErrEmptyInput     = errors.New("input file has no header row")
	ErrMissingColumn  = errors.New("required column missing")
	ErrInvalidValue   = errors.New("invalid value")
	ErrMalformedInput = errors.New("malformed delimited input")
)

// ParseError é um erro de conversão de um valor do arquivo de entrada
type ParseError struct {
	Line   int    // Linha do arquivo (o cabeçalho é a linha 1)
	Column string // Coluna do valor inválido
	Value  string // Valor original
	Err    error  // Erro de conversão
}

// Error implementa a interface error
func (e *ParseError) Error() string {
	return fmt.Sprintf("linha %d, coluna %q: valor %q inválido: %v", e.Line, e.Column, e.Value, e.Err)
}

// Unwrap permite comparar com ErrInvalidValue via errors.Is
func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Err}
}
