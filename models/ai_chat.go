package models

import (
	"time"

	"gorm.io/gorm"
)

// AIChatMessage turno de conversa com o assistente (pergunta + resposta), isolado por usuário
type AIChatMessage struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"index;not null"`
	ProviderID *uint          `json:"provider_id" gorm:"index"`
	Mode       string         `json:"mode" gorm:"size:10"` // plan, auto ou execute
	UserText   string         `json:"user_text" gorm:"type:text;not null"`
	AIText     string         `json:"ai_text" gorm:"type:text;not null"`
	Actions    string         `json:"actions" gorm:"type:text"` // JSON das ações planejadas/executadas
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (AIChatMessage) TableName() string {
	return "ai_chat_messages"
}
