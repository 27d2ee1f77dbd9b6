package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale venda
type Sale struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UUID             string         `json:"uuid" gorm:"size:36;uniqueIndex"` // token público do recibo
	SaleDate         time.Time      `json:"sale_date" gorm:"not null;index"`
	SellerID         *uint          `json:"seller_id" gorm:"index"`
	Seller           string         `json:"seller" gorm:"size:100"` // rótulo do vendedor no momento da venda
	CustomerID       *uint          `json:"customer_id" gorm:"index"`
	ProductName      string         `json:"product_name" gorm:"size:150"`
	Quantity         int            `json:"quantity" gorm:"not null;default:1"`
	ProductCost      float64        `json:"product_cost" gorm:"type:decimal(12,2);default:0"`
	SaleValue        float64        `json:"sale_value" gorm:"type:decimal(12,2);default:0"`
	FreightValue     float64        `json:"freight_value" gorm:"type:decimal(12,2);default:0"` // frete cobrado do cliente
	ShippingCost     float64        `json:"shipping_cost" gorm:"type:decimal(12,2);default:0"` // custo real de envio
	InstallmentCount int            `json:"installment_count" gorm:"not null;default:1"`
	InstallmentValue float64        `json:"installment_value" gorm:"type:decimal(12,2);default:0"`
	Anticipated      bool           `json:"anticipated" gorm:"not null;default:false"` // recebível antecipado: caixa no mês da venda
	HasInvoice       bool           `json:"has_invoice" gorm:"default:false"`
	InvoiceTaxPct    float64        `json:"invoice_tax_pct" gorm:"type:decimal(5,2);default:0"`
	NetProfit        float64        `json:"net_profit" gorm:"type:decimal(12,2);default:0"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName define o nome da tabela
func (Sale) TableName() string {
	return "vendas"
}

// BeforeCreate gera o UUID público quando ausente
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == "" {
		s.UUID = uuid.NewString()
	}
	return nil
}

// GrossValue valor bruto faturado (venda + frete cobrado)
func (s *Sale) GrossValue() float64 {
	return s.SaleValue + s.FreightValue
}
