package models

import (
	"time"

	"gorm.io/gorm"
)

// AIProvider provedor de IA compatível com a API chat/completions
type AIProvider struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex"` // openai, gemini...
	BaseURL   string         `json:"base_url" gorm:"size:255;not null"`
	APIKey    string         `json:"-" gorm:"size:255;not null"` // nunca retornado ao cliente
	Model     string         `json:"model" gorm:"size:100;not null"`
	SortOrder int            `json:"sort_order" gorm:"default:0;index"` // ordem de fallback
	Enabled   bool           `json:"enabled" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (AIProvider) TableName() string {
	return "ai_providers"
}
