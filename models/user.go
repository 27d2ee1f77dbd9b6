package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// UserStatusLocked bloqueado: não pode entrar
	UserStatusLocked = "locked"
	// UserStatusActive ativo: pode entrar
	UserStatusActive = "active"

	// DefaultCommissionPct percentual de comissão de um vendedor recém-criado
	DefaultCommissionPct = 2.0
)

// User usuário do sistema (administrador ou vendedor)
type User struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Username      string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password      string         `json:"-" gorm:"size:255;not null"`
	DisplayName   string         `json:"display_name" gorm:"size:100;index"`
	Role          Role           `json:"role" gorm:"size:20;not null;default:vendedor;index"`
	CommissionPct float64        `json:"commission_pct" gorm:"type:decimal(5,2);not null;default:2"` // percentual sobre a receita do vendedor
	MonthlyTarget float64        `json:"monthly_target" gorm:"type:decimal(12,2);not null;default:0"`
	Status        string         `json:"status" gorm:"size:20;default:active;index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName define o nome da tabela
func (User) TableName() string {
	return "usuarios"
}

// NormalizeUsername usernames são únicos sem diferenciar maiúsculas
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Label nome exibido em relatórios
func (u *User) Label() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// SetPassword grava o hash bcrypt da senha
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compara a senha informada com o hash
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// IsActive indica se o usuário pode entrar
func (u *User) IsActive() bool {
	return u.Status == "" || u.Status == UserStatusActive
}
