// Package finance contém o núcleo de cálculo financeiro: projeção de fluxo de
// caixa por parcelas, DRE mensal, limite de crédito consignado, precificação
// de venda e comissões. Todas as funções são puras sobre as linhas recebidas.
package finance

import "bfx/config"

// Rules parâmetros das regras de negócio
type Rules struct {
	BillingCutoffDay     int     // vendas até este dia vencem no mês seguinte
	DefaultCommissionPct float64 // usado quando a venda não tem vendedor cadastrado
	CreditIncomeRatio    float64 // fração da renda comprometível
	CreditInstallmentCap float64 // teto absoluto de parcela
	CreditTolerance      float64 // folga de arredondamento na aprovação
	DefaultGlobalTarget  float64
	ProjectionMonths     int
	InvoiceTaxPct        float64
}

// DefaultRules regras padrão da BFX
func DefaultRules() Rules {
	return Rules{
		BillingCutoffDay:     20,
		DefaultCommissionPct: 2,
		CreditIncomeRatio:    0.30,
		CreditInstallmentCap: 475,
		CreditTolerance:      1,
		DefaultGlobalTarget:  100000,
		ProjectionMonths:     6,
		InvoiceTaxPct:        5.97,
	}
}

// RulesFromConfig monta as regras a partir da configuração; campos zerados usam o padrão
func RulesFromConfig(cfg config.FinanceConfig) Rules {
	r := DefaultRules()
	if cfg.BillingCutoffDay > 0 {
		r.BillingCutoffDay = cfg.BillingCutoffDay
	}
	if cfg.DefaultCommissionPct > 0 {
		r.DefaultCommissionPct = cfg.DefaultCommissionPct
	}
	if cfg.CreditIncomeRatio > 0 {
		r.CreditIncomeRatio = cfg.CreditIncomeRatio
	}
	if cfg.CreditInstallmentCap > 0 {
		r.CreditInstallmentCap = cfg.CreditInstallmentCap
	}
	if cfg.CreditTolerance >= 0 {
		r.CreditTolerance = cfg.CreditTolerance
	}
	if cfg.DefaultGlobalTarget > 0 {
		r.DefaultGlobalTarget = cfg.DefaultGlobalTarget
	}
	if cfg.ProjectionMonths > 0 {
		r.ProjectionMonths = cfg.ProjectionMonths
	}
	if cfg.InvoiceTaxPct > 0 {
		r.InvoiceTaxPct = cfg.InvoiceTaxPct
	}
	return r
}
