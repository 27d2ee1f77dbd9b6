package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bfx/finance"
	"bfx/logger"
	"bfx/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrSaleNotFound   = errors.New("venda não encontrada")
	ErrSellerNotFound = errors.New("vendedor não encontrado")
)

// SaleEntry dados de uma nova venda
type SaleEntry struct {
	SaleDate      time.Time
	SellerID      *uint
	CustomerID    *uint
	ProductName   string
	Quantity      int
	UnitPrice     float64
	UnitCost      float64
	Freight       float64
	ShippingCost  float64
	Installments  int
	Anticipated   bool
	HasInvoice    bool
	InvoiceTaxPct float64
}

// SaleFilter filtros da listagem de vendas
type SaleFilter struct {
	SellerID *uint
	From     *time.Time
	To       *time.Time // inclusivo até o fim do dia
	Limit    int
	Offset   int
}

// SalePatch campos alteráveis de uma venda; nil mantém o valor
type SalePatch struct {
	SaleDate         *time.Time
	SellerID         *uint
	ProductName      *string
	SaleValue        *float64
	FreightValue     *float64
	ShippingCost     *float64
	InstallmentCount *int
}

// SaleService cadastro de vendas com precificação
type SaleService struct {
	db    *gorm.DB
	rules finance.Rules
}

// NewSaleService cria o serviço de vendas
func NewSaleService(db *gorm.DB, rules finance.Rules) *SaleService {
	return &SaleService{db: db, rules: rules}
}

// sellerLabel busca o vendedor e devolve o nome de exibição
func (s *SaleService) sellerLabel(ctx context.Context, id uint) (string, error) {
	var u models.User
	err := s.db.WithContext(ctx).Select("id", "username", "display_name").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSellerNotFound
	}
	if err != nil {
		return "", err
	}
	return u.Label(), nil
}

// Create precifica e grava a venda
func (s *SaleService) Create(ctx context.Context, e SaleEntry) (*models.Sale, error) {
	if strings.TrimSpace(e.ProductName) == "" {
		return nil, fmt.Errorf("produto é obrigatório")
	}
	if e.Installments <= 0 {
		e.Installments = 1
	}

	price, err := finance.PriceSale(finance.SaleInput{
		UnitPrice:     e.UnitPrice,
		UnitCost:      e.UnitCost,
		Quantity:      e.Quantity,
		Freight:       e.Freight,
		ShippingCost:  e.ShippingCost,
		Installments:  e.Installments,
		HasInvoice:    e.HasInvoice,
		InvoiceTaxPct: e.InvoiceTaxPct,
	}, s.rules)
	if err != nil {
		return nil, err
	}

	sale := models.Sale{
		SaleDate:         e.SaleDate.UTC(),
		SellerID:         e.SellerID,
		CustomerID:       e.CustomerID,
		ProductName:      strings.TrimSpace(e.ProductName),
		Quantity:         e.Quantity,
		ProductCost:      price.ProductCost,
		SaleValue:        price.Subtotal,
		FreightValue:     e.Freight,
		ShippingCost:     e.ShippingCost,
		InstallmentCount: e.Installments,
		InstallmentValue: price.InstallmentValue,
		Anticipated:      e.Anticipated,
		HasInvoice:       e.HasInvoice,
		NetProfit:        price.NetProfit,
	}
	if e.HasInvoice {
		sale.InvoiceTaxPct = price.InvoiceTaxPct
	}

	if e.SellerID != nil {
		if sale.Seller, err = s.sellerLabel(ctx, *e.SellerID); err != nil {
			return nil, err
		}
	}
	if e.CustomerID != nil {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", *e.CustomerID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrCustomerNotFound
		}
	}

	if err := s.db.WithContext(ctx).Create(&sale).Error; err != nil {
		return nil, err
	}
	logger.L().Info("venda registrada",
		zap.Uint("venda_id", sale.ID),
		zap.String("uuid", sale.UUID),
		zap.Float64("total", price.Total),
		zap.Int("parcelas", sale.InstallmentCount))
	return &sale, nil
}

// List vendas mais recentes primeiro
func (s *SaleService) List(ctx context.Context, f SaleFilter) ([]models.Sale, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.Sale{})
	if f.SellerID != nil {
		q = q.Where("seller_id = ?", *f.SellerID)
	}
	if f.From != nil {
		q = q.Where("sale_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("sale_date < ?", f.To.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []models.Sale
	q = q.Order("sale_date DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if err := q.Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// Get busca a venda pelo ID
func (s *SaleService) Get(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	err := s.db.WithContext(ctx).First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// Update aplica a alteração e recalcula parcela e lucro
func (s *SaleService) Update(ctx context.Context, id uint, p SalePatch) (*models.Sale, error) {
	sale, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.SaleDate != nil {
		sale.SaleDate = p.SaleDate.UTC()
	}
	if p.SellerID != nil {
		label, err := s.sellerLabel(ctx, *p.SellerID)
		if err != nil {
			return nil, err
		}
		sale.SellerID = p.SellerID
		sale.Seller = label
	}
	if p.ProductName != nil {
		sale.ProductName = strings.TrimSpace(*p.ProductName)
	}
	if p.SaleValue != nil {
		sale.SaleValue = *p.SaleValue
	}
	if p.FreightValue != nil {
		sale.FreightValue = *p.FreightValue
	}
	if p.ShippingCost != nil {
		sale.ShippingCost = *p.ShippingCost
	}
	if p.InstallmentCount != nil {
		sale.InstallmentCount = *p.InstallmentCount
	}
	if err := s.reprice(sale); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(sale).Error; err != nil {
		return nil, err
	}
	return sale, nil
}

// reprice recalcula os valores derivados a partir dos totais gravados
func (s *SaleService) reprice(sale *models.Sale) error {
	if sale.InstallmentCount <= 0 {
		sale.InstallmentCount = 1
	}
	price, err := finance.PriceSale(finance.SaleInput{
		UnitPrice:     sale.SaleValue,
		UnitCost:      sale.ProductCost,
		Quantity:      1,
		Freight:       sale.FreightValue,
		ShippingCost:  sale.ShippingCost,
		Installments:  sale.InstallmentCount,
		HasInvoice:    sale.HasInvoice,
		InvoiceTaxPct: sale.InvoiceTaxPct,
	}, s.rules)
	if err != nil {
		return err
	}
	sale.InstallmentValue = price.InstallmentValue
	sale.NetProfit = price.NetProfit
	return nil
}

// Delete remove a venda (soft delete)
func (s *SaleService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Sale{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSaleNotFound
	}
	return nil
}
