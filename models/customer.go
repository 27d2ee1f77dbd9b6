package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer cliente (pessoa física ou jurídica)
type Customer struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	Name             string         `json:"name" gorm:"size:150;not null;index"`
	Kind             string         `json:"kind" gorm:"size:2;default:PF"` // PF ou PJ
	CPF              string         `json:"cpf" gorm:"size:14"`
	CNPJ             string         `json:"cnpj" gorm:"size:18"`
	Income           *float64       `json:"income" gorm:"type:decimal(12,2)"` // renda mensal declarada
	Company          string         `json:"company" gorm:"size:150"`
	Phone            string         `json:"phone" gorm:"size:20"`
	CEP              string         `json:"cep" gorm:"size:9"`
	Address          string         `json:"address" gorm:"size:255"`
	Registration     string         `json:"registration" gorm:"size:50"` // matrícula na empresa conveniada
	PartnerCompanyID *uint          `json:"partner_company_id" gorm:"index"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName define o nome da tabela
func (Customer) TableName() string {
	return "clientes"
}

// DeclaredIncome renda declarada, zero quando ausente
func (c *Customer) DeclaredIncome() float64 {
	if c == nil || c.Income == nil {
		return 0
	}
	return *c.Income
}
