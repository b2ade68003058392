package pipeline

import "errors"

// ErrRunInProgress indica que já existe uma execução do pipeline em andamento
var ErrRunInProgress = errors.New("pipeline run already in progress")
