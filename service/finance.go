package service

import (
	"context"
	"errors"
	"time"

	"bfx/config"
	"bfx/finance"
	"bfx/logger"
	"bfx/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrCustomerNotFound cliente inexistente
var ErrCustomerNotFound = errors.New("cliente não encontrado")

// FinanceService consultas financeiras sobre o banco. Cada chamada relê as linhas.
type FinanceService struct {
	db    *gorm.DB
	rules finance.Rules
	now   func() time.Time
}

// NewFinanceService cria o serviço financeiro
func NewFinanceService(db *gorm.DB, rules finance.Rules) *FinanceService {
	return &FinanceService{db: db, rules: rules, now: time.Now}
}

// DefaultRules regras da configuração global, ou o padrão sem configuração
func DefaultRules() finance.Rules {
	if config.GlobalConfig == nil {
		return finance.DefaultRules()
	}
	return finance.RulesFromConfig(config.GlobalConfig.Finance)
}

// WithClock substitui o relógio (testes)
func (s *FinanceService) WithClock(now func() time.Time) *FinanceService {
	s.now = now
	return s
}

// Rules regras em uso
func (s *FinanceService) Rules() finance.Rules {
	return s.rules
}

// resolveMonth mês informado ou o mês corrente quando vazio
func (s *FinanceService) resolveMonth(month string) (time.Time, error) {
	if month == "" {
		return finance.MonthStart(s.now()), nil
	}
	return finance.ParseMonth(month)
}

// DRE demonstração de resultado do mês "YYYY-MM"
func (s *FinanceService) DRE(ctx context.Context, month string) (finance.DRE, error) {
	m, err := s.resolveMonth(month)
	if err != nil {
		return finance.DRE{}, err
	}
	start, end := finance.MonthRange(m)
	db := s.db.WithContext(ctx)

	var sales []models.Sale
	if err := db.Where("sale_date >= ? AND sale_date < ?", start, end).Find(&sales).Error; err != nil {
		return finance.DRE{}, err
	}
	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		return finance.DRE{}, err
	}
	var expenses []models.Expense
	if err := db.Where("expense_date >= ? AND expense_date < ?", start, end).Find(&expenses).Error; err != nil {
		return finance.DRE{}, err
	}

	d := finance.CalculateDRE(m, sales, expenses, users, s.rules)
	if len(d.UnmatchedSellers) > 0 {
		logger.L().Warn("vendas com vendedor inexistente, comissão padrão aplicada",
			zap.String("mes", d.Month),
			zap.Uints("vendedores", d.UnmatchedSellers),
			zap.Float64("pct_padrao", s.rules.DefaultCommissionPct))
	}
	return d, nil
}

// CashFlow projeção de caixa a partir do mês informado (ou do corrente)
func (s *FinanceService) CashFlow(ctx context.Context, month string) ([]finance.CashFlowRow, error) {
	ref, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var sales []models.Sale
	if err := db.Find(&sales).Error; err != nil {
		return nil, err
	}

	months := s.rules.ProjectionMonths
	if months <= 0 {
		months = finance.DefaultRules().ProjectionMonths
	}
	var expenses []models.Expense
	if err := db.Where("expense_date >= ? AND expense_date < ?", ref, finance.AddMonths(ref, months)).
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	return finance.ProjectCashFlow(ref, sales, expenses, s.rules), nil
}

// findCustomer busca o cliente; (nil, nil) quando não existe
func (s *FinanceService) findCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// customerSales vendas do cliente; exceptSale > 0 deixa essa venda de fora
func (s *FinanceService) customerSales(ctx context.Context, id, exceptSale uint) ([]models.Sale, error) {
	q := s.db.WithContext(ctx).Where("customer_id = ?", id)
	if exceptSale > 0 {
		q = q.Where("id <> ?", exceptSale)
	}
	var sales []models.Sale
	err := q.Find(&sales).Error
	return sales, err
}

// CheckCredit avalia uma nova parcela para o cliente. Resultado apenas consultivo.
func (s *FinanceService) CheckCredit(ctx context.Context, customerID uint, newInstallment float64) (finance.CreditCheck, error) {
	return s.checkCredit(ctx, customerID, newInstallment, 0)
}

// CheckSale avalia a parcela de uma venda já gravada; a própria venda não entra no comprometido
func (s *FinanceService) CheckSale(ctx context.Context, sale *models.Sale) (finance.CreditCheck, error) {
	if sale.CustomerID == nil {
		return finance.EvaluateCredit(nil, nil, sale.InstallmentValue, s.now(), s.rules), nil
	}
	return s.checkCredit(ctx, *sale.CustomerID, sale.InstallmentValue, sale.ID)
}

func (s *FinanceService) checkCredit(ctx context.Context, customerID uint, newInstallment float64, exceptSale uint) (finance.CreditCheck, error) {
	c, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return finance.CreditCheck{}, err
	}
	if c == nil || c.DeclaredIncome() == 0 {
		return finance.EvaluateCredit(c, nil, newInstallment, s.now(), s.rules), nil
	}

	sales, err := s.customerSales(ctx, customerID, exceptSale)
	if err != nil {
		return finance.CreditCheck{}, err
	}
	check := finance.EvaluateCredit(c, sales, newInstallment, s.now(), s.rules)
	if !check.OK {
		logger.L().Info("parcela acima do limite do cliente",
			zap.Uint("cliente_id", customerID),
			zap.Float64("parcela", newInstallment),
			zap.Float64("tomado", check.Committed),
			zap.Float64("teto", check.Ceiling))
	}
	return check, nil
}

// Limit margem consignável do cliente
func (s *FinanceService) Limit(ctx context.Context, customerID uint) (finance.CreditLimit, error) {
	c, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return finance.CreditLimit{}, err
	}
	if c == nil {
		return finance.CreditLimit{}, ErrCustomerNotFound
	}
	sales, err := s.customerSales(ctx, customerID, 0)
	if err != nil {
		return finance.CreditLimit{}, err
	}
	return finance.Limit(*c, sales, s.now(), s.rules), nil
}

// CommissionFilter filtros do relatório de comissões
type CommissionFilter struct {
	SellerID *uint
	From     *time.Time
	To       *time.Time // inclusivo até o fim do dia
}

func (s *FinanceService) filteredSales(ctx context.Context, f CommissionFilter) ([]models.Sale, error) {
	q := s.db.WithContext(ctx).Model(&models.Sale{})
	if f.SellerID != nil {
		q = q.Where("seller_id = ?", *f.SellerID)
	}
	if f.From != nil {
		q = q.Where("sale_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("sale_date <= ?", f.To.Add(24*time.Hour-time.Second))
	}
	var sales []models.Sale
	err := q.Order("sale_date DESC").Find(&sales).Error
	return sales, err
}

// Commissions total de comissão por vendedor
func (s *FinanceService) Commissions(ctx context.Context, f CommissionFilter) ([]finance.CommissionTotal, error) {
	sales, err := s.filteredSales(ctx, f)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return finance.Commissions(sales, users), nil
}

// CommissionDetails comissão venda a venda
func (s *FinanceService) CommissionDetails(ctx context.Context, f CommissionFilter) ([]finance.CommissionLine, error) {
	sales, err := s.filteredSales(ctx, f)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(sales))
	for _, sale := range sales {
		if sale.CustomerID != nil {
			ids = append(ids, *sale.CustomerID)
		}
	}
	names := make(map[uint]string, len(ids))
	if len(ids) > 0 {
		var customers []models.Customer
		if err := s.db.WithContext(ctx).Select("id", "name").Where("id IN ?", ids).Find(&customers).Error; err != nil {
			return nil, err
		}
		for _, c := range customers {
			names[c.ID] = c.Name
		}
	}
	return finance.CommissionDetails(sales, users, names), nil
}
