package models

import "time"

const (
	AuditOutcomeOK     = "ok"
	AuditOutcomeDenied = "denied"
	AuditOutcomeError  = "error"
)

// AuditLog registro de cada ação executada pelo assistente ou pela rota MCP
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Role      Role      `json:"role" gorm:"size:20"`
	Action    string    `json:"action" gorm:"size:50;index;not null"`
	Params    string    `json:"params" gorm:"type:text"`
	Outcome   string    `json:"outcome" gorm:"size:10;index"`
	Error     string    `json:"error" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
