package aiaction

import (
	"fmt"
	"strings"

	"bfx/finance"
	"bfx/models"
)

// Executed ação executada e seu resultado
type Executed struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
	Result any            `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

const summaryNames = 5

func joinNames(names []string, limit int) string {
	var out []string
	for _, n := range names {
		if n == "" {
			continue
		}
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return strings.Join(out, ", ")
}

// SummarizeExpenses quantidade e total das despesas
func SummarizeExpenses(rows []models.Expense) string {
	var total float64
	for _, e := range rows {
		total += e.Amount
	}
	return fmt.Sprintf("Despesas encontradas: %d. Total: %s.", len(rows), finance.FormatBRL(total))
}

// Summarize resumo textual das ações executadas, uma linha por ação
func Summarize(executed []Executed) string {
	parts := make([]string, 0, len(executed))
	for _, item := range executed {
		parts = append(parts, summarizeOne(item))
	}
	return strings.Join(parts, "\n")
}

func summarizeOne(item Executed) string {
	if item.Error != "" {
		return fmt.Sprintf("Falha em %s: %s.", item.Name, item.Error)
	}

	switch r := item.Result.(type) {
	case []models.Customer:
		names := make([]string, len(r))
		for i, c := range r {
			names[i] = c.Name
		}
		if s := joinNames(names, summaryNames); s != "" {
			return fmt.Sprintf("Clientes encontrados: %s.", s)
		}
		return "Nenhum cliente encontrado."
	case []models.Product:
		names := make([]string, len(r))
		for i, p := range r {
			names[i] = p.Name
		}
		if s := joinNames(names, summaryNames); s != "" {
			return fmt.Sprintf("Produtos encontrados: %s.", s)
		}
		return "Nenhum produto encontrado."
	case []models.Sale:
		var total float64
		for _, s := range r {
			total += s.GrossValue()
		}
		return fmt.Sprintf("Vendas encontradas: %d. Total: %s.", len(r), finance.FormatBRL(total))
	case []models.Expense:
		return SummarizeExpenses(r)
	case []models.User:
		names := make([]string, len(r))
		for i := range r {
			names[i] = r[i].Label()
		}
		if s := joinNames(names, summaryNames); s != "" {
			return fmt.Sprintf("Usuários encontrados: %s.", s)
		}
		return "Nenhum usuário encontrado."
	case []models.PartnerCompany:
		names := make([]string, len(r))
		for i, p := range r {
			names[i] = p.Name
		}
		if s := joinNames(names, summaryNames); s != "" {
			return fmt.Sprintf("Empresas encontradas: %s.", s)
		}
		return "Nenhuma empresa encontrada."
	case finance.DRE:
		return fmt.Sprintf("DRE %s: receita %s, margem %s, lucro líquido %s.",
			r.Month, finance.FormatBRL(r.GrossRevenue), finance.FormatBRL(r.Margin), finance.FormatBRL(r.NetProfit))
	case finance.CreditLimit:
		return fmt.Sprintf("Margem disponível de %s: %s (comprometido %s de %s).",
			r.Name, finance.FormatBRL(r.AvailableMargin), finance.FormatBRL(r.CurrentCommitment), finance.FormatBRL(r.TotalMargin))
	}
	return fmt.Sprintf("Ação executada: %s.", item.Name)
}
