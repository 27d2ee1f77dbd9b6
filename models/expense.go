package models

import (
	"time"

	"gorm.io/gorm"
)

// ExpenseType classificação da despesa no DRE
type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "Fixa"
	ExpenseVariable ExpenseType = "Variável"
)

// Valid indica se o tipo é conhecido
func (t ExpenseType) Valid() bool {
	return t == ExpenseFixed || t == ExpenseVariable
}

// Expense despesa fixa ou variável
type Expense struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ExpenseDate time.Time      `json:"expense_date" gorm:"not null;index"`
	Description string         `json:"description" gorm:"size:255"`
	Category    string         `json:"category" gorm:"size:50"`
	Type        ExpenseType    `json:"type" gorm:"size:20;not null;index"`
	Amount      float64        `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName define o nome da tabela
func (Expense) TableName() string {
	return "despesas"
}

// ExpenseCategories categorias sugeridas no cadastro
func ExpenseCategories() []string {
	return []string{
		"Aluguel",
		"Salários",
		"Marketing",
		"Impostos",
		"Logística",
		"Sistemas",
		"Outros",
	}
}
