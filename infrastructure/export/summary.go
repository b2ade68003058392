package export

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SummaryExporter grava as agregações em JSON. A saída não contém horários,
// então a mesma entrada gera sempre o mesmo arquivo.
type SummaryExporter struct{}

func NewSummaryExporter() *SummaryExporter {
	return &SummaryExporter{}
}

func (e *SummaryExporter) Export(report *domain.SalesReport, path string) error {
	if report == nil {
		return errors.New("relatório nulo")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resumo")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório de %s", path)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao salvar resumo %s", path)
	}

	return nil
}
