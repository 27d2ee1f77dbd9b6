package finance

import (
	"fmt"
	"strings"
	"time"
)

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "01/2006"
)

// ParseMonth interpreta "YYYY-MM" e retorna o primeiro instante do mês em UTC
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(monthKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, use YYYY-MM: %w", s, err)
	}
	return t, nil
}

// MonthStart primeiro instante do mês civil (UTC) que contém t
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths soma n meses ao início do mês de t
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// MonthRange intervalo [início do mês, início do mês seguinte)
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := MonthStart(t)
	return start, start.AddDate(0, 1, 0)
}

// SameMonth compara ano e mês em UTC
func SameMonth(a, b time.Time) bool {
	return MonthStart(a).Equal(MonthStart(b))
}

// MonthKey formato "YYYY-MM"
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// MonthLabel formato "MM/YYYY"
func MonthLabel(t time.Time) string {
	return t.UTC().Format(monthLabelLayout)
}
