package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts são os formatos aceitos para datas de compra
var DateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
}

// ParseDate converte uma data usando o primeiro layout compatível.
// Uma string vazia retorna a data zero sem erro.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, nil
	}

	for _, layout := range DateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data em formato não reconhecido: %q", dateStr)
}

// IsMidnight indica se a data não possui componente de horário
func IsMidnight(date time.Time) bool {
	return date.Hour() == 0 && date.Minute() == 0 && date.Second() == 0 && date.Nanosecond() == 0
}

// MonthAbbreviation retorna a abreviação em inglês de três letras do mês (Jan..Dec)
func MonthAbbreviation(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()[:3]
}

// QuarterOf retorna o trimestre (1-4) de um mês
func QuarterOf(month int) int {
	return (month + 2) / 3
}
