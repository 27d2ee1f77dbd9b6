package finance

import (
	"math"
	"time"

	"bfx/models"
)

// CreditCheck resultado consultivo do limite de crédito; estourar o limite não é erro
type CreditCheck struct {
	OK        bool    `json:"ok"`
	Available float64 `json:"disp"`
	Committed float64 `json:"tomado"`
	Ceiling   float64 `json:"teto"`
}

// CreditLimit resposta da rota /api/clientes/:id/limite
type CreditLimit struct {
	Name              string  `json:"nome"`
	Income            float64 `json:"renda"`
	TotalMargin       float64 `json:"margemTotal"`
	CurrentCommitment float64 `json:"comprometimentoAtual"`
	AvailableMargin   float64 `json:"margemDisponivel"`
	MaxInstallmentCap float64 `json:"tetoParcelaMax"`
}

// CreditCeiling teto mensal de parcelas: o menor entre a fração da renda e o teto fixo
func CreditCeiling(income float64, rules Rules) float64 {
	return math.Min(income*rules.CreditIncomeRatio, rules.CreditInstallmentCap)
}

// CommittedInstallments soma das parcelas ativas no mês de now
func CommittedInstallments(sales []models.Sale, now time.Time, rules Rules) float64 {
	current := MonthStart(now)
	var total float64
	for _, s := range sales {
		start, end := InstallmentWindow(s, rules.BillingCutoffDay)
		if !start.After(current) && current.Before(end) {
			total += s.InstallmentValue
		}
	}
	return total
}

// EvaluateCredit verifica se uma nova parcela cabe no limite do cliente.
// Cliente ausente ou sem renda declarada é aprovado com tudo zerado.
func EvaluateCredit(customer *models.Customer, sales []models.Sale, newInstallment float64, now time.Time, rules Rules) CreditCheck {
	income := customer.DeclaredIncome()
	if income == 0 {
		return CreditCheck{OK: true}
	}

	ceiling := CreditCeiling(income, rules)
	committed := CommittedInstallments(sales, now, rules)
	return CreditCheck{
		OK:        committed+newInstallment <= ceiling+rules.CreditTolerance,
		Available: ceiling - committed,
		Committed: committed,
		Ceiling:   ceiling,
	}
}

// Limit monta o resumo de margem consignável do cliente
func Limit(customer models.Customer, sales []models.Sale, now time.Time, rules Rules) CreditLimit {
	income := customer.DeclaredIncome()
	total := income * rules.CreditIncomeRatio
	committed := CommittedInstallments(sales, now, rules)
	return CreditLimit{
		Name:              customer.Name,
		Income:            income,
		TotalMargin:       total,
		CurrentCommitment: committed,
		AvailableMargin:   total - committed,
		MaxInstallmentCap: rules.CreditInstallmentCap,
	}
}
