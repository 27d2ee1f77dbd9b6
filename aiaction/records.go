package aiaction

import (
	"context"
	"fmt"
	"strings"

	"bfx/models"
)

type searchParams struct {
	Search string `json:"search"`
	Limit  int    `json:"limit"`
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

func listCustomers(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p searchParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	q := d.db.WithContext(ctx).Order("name ASC").Limit(clampLimit(p.Limit, 50, 200))
	if p.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(p.Search))
	}
	var list []models.Customer
	return list, q.Find(&list).Error
}

type createCustomerParams struct {
	Nome      string   `json:"nome"`
	Tipo      string   `json:"tipo"`
	CPF       string   `json:"cpf"`
	CNPJ      string   `json:"cnpj"`
	Renda     *float64 `json:"renda"`
	Empresa   string   `json:"empresa"`
	Telefone  string   `json:"telefone"`
	CEP       string   `json:"cep"`
	Endereco  string   `json:"endereco"`
	Matricula string   `json:"matricula"`
}

func createCustomer(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p createCustomerParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Nome) == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", ErrInvalidParams)
	}
	kind := strings.ToUpper(p.Tipo)
	if kind != "PJ" {
		kind = "PF"
	}
	c := models.Customer{
		Name:         strings.TrimSpace(p.Nome),
		Kind:         kind,
		CPF:          p.CPF,
		CNPJ:         p.CNPJ,
		Income:       p.Renda,
		Company:      p.Empresa,
		Phone:        p.Telefone,
		CEP:          p.CEP,
		Address:      p.Endereco,
		Registration: p.Matricula,
	}
	if err := d.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func listProducts(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p searchParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	q := d.db.WithContext(ctx).Order("name ASC").Limit(clampLimit(p.Limit, 50, 200))
	if p.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", likePattern(p.Search))
	}
	var list []models.Product
	return list, q.Find(&list).Error
}

type createProductParams struct {
	Nome        string  `json:"nome"`
	Marca       string  `json:"marca"`
	NCM         string  `json:"ncm"`
	CustoPadrao float64 `json:"custoPadrao"`
	ValorVenda  float64 `json:"valorVenda"`
}

func createProduct(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p createProductParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Nome) == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", ErrInvalidParams)
	}
	prod := models.Product{
		Name:         strings.TrimSpace(p.Nome),
		Brand:        p.Marca,
		NCM:          p.NCM,
		StandardCost: p.CustoPadrao,
		SalePrice:    p.ValorVenda,
	}
	if err := d.db.WithContext(ctx).Create(&prod).Error; err != nil {
		return nil, err
	}
	return &prod, nil
}

type listExpensesParams struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Limit int    `json:"limit"`
}

func listExpenses(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p listExpensesParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	q, err := dateRange(d.db.WithContext(ctx), "expense_date", p.From, p.To)
	if err != nil {
		return nil, err
	}
	var list []models.Expense
	err = q.Order("expense_date DESC").Limit(clampLimit(p.Limit, 50, 200)).Find(&list).Error
	return list, err
}

type expenseParams struct {
	ID          uint     `json:"id"`
	Descricao   *string  `json:"descricao"`
	Valor       *float64 `json:"valor"`
	DataDespesa *string  `json:"dataDespesa"`
	Tipo        *string  `json:"tipo"`
	Categoria   *string  `json:"categoria"`
}

func expenseType(s string) (models.ExpenseType, error) {
	t := models.ExpenseType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: tipo deve ser %q ou %q", ErrInvalidParams, models.ExpenseFixed, models.ExpenseVariable)
	}
	return t, nil
}

func createExpense(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p expenseParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Descricao == nil || p.Valor == nil || p.DataDespesa == nil {
		return nil, fmt.Errorf("%w: descricao, valor e dataDespesa são obrigatórios", ErrInvalidParams)
	}
	date, err := parseDate("dataDespesa", *p.DataDespesa)
	if err != nil {
		return nil, err
	}

	e := models.Expense{
		ExpenseDate: date,
		Description: *p.Descricao,
		Amount:      *p.Valor,
		Type:        models.ExpenseVariable,
	}
	if p.Tipo != nil {
		if e.Type, err = expenseType(*p.Tipo); err != nil {
			return nil, err
		}
	}
	if p.Categoria != nil {
		e.Category = *p.Categoria
	}
	if err := d.db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func updateExpense(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p expenseParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, fmt.Errorf("%w: id é obrigatório", ErrInvalidParams)
	}

	var e models.Expense
	if err := d.db.WithContext(ctx).First(&e, p.ID).Error; err != nil {
		return nil, notFound(err)
	}
	if p.DataDespesa != nil {
		date, err := parseDate("dataDespesa", *p.DataDespesa)
		if err != nil {
			return nil, err
		}
		e.ExpenseDate = date
	}
	if p.Descricao != nil {
		e.Description = *p.Descricao
	}
	if p.Valor != nil {
		e.Amount = *p.Valor
	}
	if p.Tipo != nil {
		t, err := expenseType(*p.Tipo)
		if err != nil {
			return nil, err
		}
		e.Type = t
	}
	if p.Categoria != nil {
		e.Category = *p.Categoria
	}
	if err := d.db.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

type limitParams struct {
	Limit int `json:"limit"`
}

func listPartners(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p limitParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	var list []models.PartnerCompany
	err := d.db.WithContext(ctx).Order("name ASC").Limit(clampLimit(p.Limit, 50, 200)).Find(&list).Error
	return list, err
}

type createPartnerParams struct {
	Nome          string `json:"nome"`
	ResponsavelRh string `json:"responsavelRh"`
	TelefoneRh    string `json:"telefoneRh"`
	EmailRh       string `json:"emailRh"`
}

func createPartner(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p createPartnerParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(p.Nome) == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", ErrInvalidParams)
	}
	pc := models.PartnerCompany{
		Name:      strings.TrimSpace(p.Nome),
		HRContact: p.ResponsavelRh,
		HRPhone:   p.TelefoneRh,
		HREmail:   p.EmailRh,
	}
	if err := d.db.WithContext(ctx).Create(&pc).Error; err != nil {
		return nil, err
	}
	return &pc, nil
}

func listUsers(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p limitParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	var list []models.User
	err := d.db.WithContext(ctx).Order("display_name ASC").Limit(clampLimit(p.Limit, 50, 200)).Find(&list).Error
	return list, err
}

type userParams struct {
	ID           uint     `json:"id"`
	Username     *string  `json:"username"`
	Password     *string  `json:"password"`
	Role         *string  `json:"role"`
	NomeExibicao *string  `json:"nomeExibicao"`
	MetaMensal   *float64 `json:"metaMensal"`
	ComissaoPct  *float64 `json:"comissaoPct"`
}

// apply copia os campos informados para o usuário
func (p userParams) apply(u *models.User) error {
	if p.Username != nil {
		name := models.NormalizeUsername(*p.Username)
		if name == "" {
			return fmt.Errorf("%w: username vazio", ErrInvalidParams)
		}
		u.Username = name
	}
	if p.Password != nil {
		if len(*p.Password) < 4 {
			return fmt.Errorf("%w: senha muito curta", ErrInvalidParams)
		}
		if err := u.SetPassword(*p.Password); err != nil {
			return err
		}
	}
	if p.Role != nil {
		r, err := models.ParseRole(*p.Role)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
		u.Role = r
	}
	if p.NomeExibicao != nil {
		u.DisplayName = strings.TrimSpace(*p.NomeExibicao)
	}
	if p.MetaMensal != nil {
		u.MonthlyTarget = *p.MetaMensal
	}
	if p.ComissaoPct != nil {
		if *p.ComissaoPct < 0 || *p.ComissaoPct > 100 {
			return fmt.Errorf("%w: comissaoPct deve estar entre 0 e 100", ErrInvalidParams)
		}
		u.CommissionPct = *p.ComissaoPct
	}
	return nil
}

func createUser(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p userParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.Username == nil || p.Password == nil || p.Role == nil {
		return nil, fmt.Errorf("%w: username, password e role são obrigatórios", ErrInvalidParams)
	}

	u := models.User{
		CommissionPct: models.DefaultCommissionPct,
		Status:        models.UserStatusActive,
	}
	if err := p.apply(&u); err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func updateUser(d *Dispatcher, ctx context.Context, _ Actor, params map[string]any) (any, error) {
	var p userParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, fmt.Errorf("%w: id é obrigatório", ErrInvalidParams)
	}

	var u models.User
	if err := d.db.WithContext(ctx).First(&u, p.ID).Error; err != nil {
		return nil, notFound(err)
	}
	if err := p.apply(&u); err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Save(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
