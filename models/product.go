package models

import (
	"time"

	"gorm.io/gorm"
)

// Product produto do catálogo
type Product struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"size:150;not null;index"`
	Brand        string         `json:"brand" gorm:"size:100"`
	NCM          string         `json:"ncm" gorm:"size:10"`
	StandardCost float64        `json:"standard_cost" gorm:"type:decimal(12,2);default:0"`
	SalePrice    float64        `json:"sale_price" gorm:"type:decimal(12,2);default:0"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Product) TableName() string {
	return "produtos"
}

// PartnerCompany empresa parceira (convênio de desconto em folha)
type PartnerCompany struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:150;not null;index"`
	HRContact string         `json:"hr_contact" gorm:"size:100"`
	HRPhone   string         `json:"hr_phone" gorm:"size:20"`
	HREmail   string         `json:"hr_email" gorm:"size:100"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (PartnerCompany) TableName() string {
	return "empresas_parceiras"
}
