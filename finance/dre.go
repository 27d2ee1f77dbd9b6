package finance

import (
	"sort"
	"time"

	"bfx/models"
)

// NoSellerLabel agrupamento das vendas sem vendedor
const NoSellerLabel = "Sem Vendedor"

// DREDetail composição dos custos variáveis
type DREDetail struct {
	COGS             float64 `json:"cmv"`
	Commissions      float64 `json:"comissoes"`
	VariableExpenses float64 `json:"variaveis"`
	RealFreight      float64 `json:"freteReal"`
}

// SellerCommission receita e comissão de um vendedor no período
type SellerCommission struct {
	SellerID   *uint   `json:"vendedorId"`
	Seller     string  `json:"vendedor"`
	Revenue    float64 `json:"receita"`
	Pct        float64 `json:"pct"`
	Commission float64 `json:"comissao"`
	Registered bool    `json:"cadastrado"` // false quando usa o percentual padrão
}

// DRE demonstração de resultado de um mês
type DRE struct {
	Month             string             `json:"mes"`
	GrossRevenue      float64            `json:"receita"`
	VariableCostTotal float64            `json:"custosVar"`
	Margin            float64            `json:"margem"`
	FixedExpenses     float64            `json:"fixas"`
	NetProfit         float64            `json:"lucro"`
	MarginRatio       float64            `json:"margemPct"`
	BreakEvenRevenue  float64            `json:"pontoEq"`
	GlobalTarget      float64            `json:"metaGlobal"`
	Detail            DREDetail          `json:"detalhe"`
	Sellers           []SellerCommission `json:"vendedores"`
	UnmatchedSellers  []uint             `json:"vendedoresNaoEncontrados,omitempty"`
	SalesCount        int                `json:"qtdVendas"`
	ExpensesCount     int                `json:"qtdDespesas"`
}

// CalculateDRE monta o DRE do mês. Linhas fora do mês são ignoradas.
// users é a tabela completa de usuários: fornece percentuais de comissão e metas.
func CalculateDRE(month time.Time, sales []models.Sale, expenses []models.Expense, users []models.User, rules Rules) DRE {
	start, end := MonthRange(month)
	inMonth := func(t time.Time) bool {
		return !t.Before(start) && t.Before(end)
	}

	byID := make(map[uint]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	d := DRE{Month: MonthKey(start)}

	groups := make(map[uint]*SellerCommission)
	var order []uint
	unmatched := make(map[uint]bool)

	for _, s := range sales {
		if !inMonth(s.SaleDate) {
			continue
		}
		d.SalesCount++
		gross := s.GrossValue()
		d.GrossRevenue += gross
		d.Detail.COGS += s.ProductCost
		d.Detail.RealFreight += s.ShippingCost

		var key uint
		if s.SellerID != nil {
			key = *s.SellerID
		}
		g, ok := groups[key]
		if !ok {
			g = newSellerGroup(key, s, byID, rules)
			if key != 0 && !g.Registered {
				unmatched[key] = true
			}
			groups[key] = g
			order = append(order, key)
		}
		g.Revenue += gross
	}

	for _, key := range order {
		g := groups[key]
		g.Commission = g.Revenue * (g.Pct / 100)
		d.Detail.Commissions += g.Commission
		d.Sellers = append(d.Sellers, *g)
	}
	sort.SliceStable(d.Sellers, func(i, j int) bool { return d.Sellers[i].Seller < d.Sellers[j].Seller })

	for id := range unmatched {
		d.UnmatchedSellers = append(d.UnmatchedSellers, id)
	}
	sort.Slice(d.UnmatchedSellers, func(i, j int) bool { return d.UnmatchedSellers[i] < d.UnmatchedSellers[j] })

	for _, e := range expenses {
		if !inMonth(e.ExpenseDate) {
			continue
		}
		d.ExpensesCount++
		switch e.Type {
		case models.ExpenseFixed:
			d.FixedExpenses += e.Amount
		case models.ExpenseVariable:
			d.Detail.VariableExpenses += e.Amount
		}
	}

	d.VariableCostTotal = d.Detail.COGS + d.Detail.Commissions + d.Detail.VariableExpenses + d.Detail.RealFreight
	d.Margin = d.GrossRevenue - d.VariableCostTotal
	d.NetProfit = d.Margin - d.FixedExpenses
	if d.GrossRevenue > 0 {
		d.MarginRatio = d.Margin / d.GrossRevenue
	}
	if d.MarginRatio > 0 {
		d.BreakEvenRevenue = d.FixedExpenses / d.MarginRatio
	}

	for _, u := range users {
		d.GlobalTarget += u.MonthlyTarget
	}
	if d.GlobalTarget == 0 {
		d.GlobalTarget = rules.DefaultGlobalTarget
	}

	return d
}

func newSellerGroup(key uint, s models.Sale, byID map[uint]*models.User, rules Rules) *SellerCommission {
	g := &SellerCommission{Seller: NoSellerLabel, Pct: rules.DefaultCommissionPct}
	if key == 0 {
		return g
	}
	id := key
	g.SellerID = &id
	if u, ok := byID[key]; ok {
		g.Seller = u.Label()
		// percentual zero no cadastro cai no padrão, como venda sem vendedor
		if u.CommissionPct > 0 {
			g.Pct = u.CommissionPct
		}
		g.Registered = true
		return g
	}
	if s.Seller != "" {
		g.Seller = s.Seller
	}
	return g
}
