package utils

import "fmt"

// FormatThousands formata um valor monetário em milhares ($12K)
func FormatThousands(v float64) string {
	return fmt.Sprintf("$%.0fK", v/1000)
}

// FormatPercent formata um percentual com uma casa decimal (12.3%)
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
