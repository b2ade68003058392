// Package export grava as agregações de vendas em formatos para consumo externo
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-report-pipeline/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Nomes das abas da planilha de relatório
const (
	SheetMonthlyRevenue   = "Monthly Revenue"
	SheetProductRevenue   = "Product Revenue"
	SheetMonthlyQuantity  = "Monthly Quantity"
	SheetQuarterlyRevenue = "Quarterly Revenue"
)

// Formato numérico embutido do Excel: #,##0.00
const currencyNumFmt = 4

// WorkbookExporter grava o relatório em uma planilha .xlsx com uma aba por agregação
type WorkbookExporter struct{}

func NewWorkbookExporter() *WorkbookExporter {
	return &WorkbookExporter{}
}

// Export sobrescreve a planilha no caminho informado
func (e *WorkbookExporter) Export(report *domain.SalesReport, path string) error {
	if report == nil {
		return errors.New("relatório nulo")
	}

	f := excelize.NewFile()
	defer f.Close()

	currency, err := f.NewStyle(&excelize.Style{NumFmt: currencyNumFmt})
	if err != nil {
		return errors.Wrap(err, "erro ao criar estilo da planilha")
	}

	sheets := []struct {
		name       string
		header     []interface{}
		rows       [][]interface{}
		revenueCol string // Coluna formatada como moeda; vazio quando não há receita
	}{
		{SheetMonthlyRevenue, []interface{}{"Month", "MonthName", "Revenue"}, monthlyRevenueRows(report), "C"},
		{SheetProductRevenue, []interface{}{"Product Type", "Revenue"}, productRevenueRows(report), "B"},
		{SheetMonthlyQuantity, []interface{}{"Month", "MonthName", "Quantity"}, monthlyQuantityRows(report), ""},
		{SheetQuarterlyRevenue, []interface{}{"Quarter", "Revenue", "Share (%)"}, quarterlyRevenueRows(report), "B"},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return errors.Wrapf(err, "erro ao renomear aba %s", sheet.name)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return errors.Wrapf(err, "erro ao criar aba %s", sheet.name)
		}

		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows); err != nil {
			return errors.Wrapf(err, "erro ao preencher aba %s", sheet.name)
		}

		if sheet.revenueCol != "" && len(sheet.rows) > 0 {
			first := fmt.Sprintf("%s2", sheet.revenueCol)
			last := fmt.Sprintf("%s%d", sheet.revenueCol, len(sheet.rows)+1)
			if err := f.SetCellStyle(sheet.name, first, last, currency); err != nil {
				return errors.Wrapf(err, "erro ao formatar aba %s", sheet.name)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório de %s", path)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "erro ao salvar planilha %s", path)
	}

	return nil
}

func writeSheet(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func monthlyRevenueRows(report *domain.SalesReport) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.MonthlyRevenue))
	for _, m := range report.MonthlyRevenue {
		rows = append(rows, []interface{}{m.Month, m.MonthName, m.Revenue.InexactFloat64()})
	}
	return rows
}

func productRevenueRows(report *domain.SalesReport) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.ProductRevenue))
	for _, p := range report.ProductRevenue {
		rows = append(rows, []interface{}{p.ProductType, p.Revenue.InexactFloat64()})
	}
	return rows
}

func monthlyQuantityRows(report *domain.SalesReport) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.MonthlyQuantity))
	for _, m := range report.MonthlyQuantity {
		rows = append(rows, []interface{}{m.Month, m.MonthName, m.Quantity})
	}
	return rows
}

func quarterlyRevenueRows(report *domain.SalesReport) [][]interface{} {
	rows := make([][]interface{}, 0, len(report.QuarterlyRevenue))
	for _, q := range report.QuarterlyRevenue {
		rows = append(rows, []interface{}{q.Label, q.Revenue.InexactFloat64(), q.Share})
	}
	return rows
}
