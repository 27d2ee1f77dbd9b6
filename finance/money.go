package finance

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata valor em reais no padrão pt-BR (R$ 1.234,56)
func FormatBRL(v float64) string {
	return brPrinter.Sprintf("R$ %.2f", v)
}
