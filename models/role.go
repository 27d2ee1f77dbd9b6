package models

import (
	"database/sql/driver"
	"fmt"
)

// Role perfil de acesso. Conjunto fechado: admin ou vendedor.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "vendedor"
)

// Capability permissão atômica verificada pelas rotas e pelas ações da IA
type Capability string

const (
	CapViewSales       Capability = "sales:view"
	CapCreateSale      Capability = "sales:create"
	CapEditSale        Capability = "sales:edit"
	CapActForSellers   Capability = "sales:any-seller" // listar/criar em nome de qualquer vendedor
	CapViewCustomers   Capability = "customers:view"
	CapManageCustomers Capability = "customers:manage"
	CapViewProducts    Capability = "products:view"
	CapManageProducts  Capability = "products:manage"
	CapManageExpenses  Capability = "expenses:manage"
	CapManagePartners  Capability = "partners:manage"
	CapManageUsers     Capability = "users:manage"
	CapViewFinance     Capability = "finance:view"
	CapViewCommissions Capability = "commissions:view"
	CapUseAssistant    Capability = "assistant:use"
)

var rolePermissions = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapViewSales:       true,
		CapCreateSale:      true,
		CapEditSale:        true,
		CapActForSellers:   true,
		CapViewCustomers:   true,
		CapManageCustomers: true,
		CapViewProducts:    true,
		CapManageProducts:  true,
		CapManageExpenses:  true,
		CapManagePartners:  true,
		CapManageUsers:     true,
		CapViewFinance:     true,
		CapViewCommissions: true,
		CapUseAssistant:    true,
	},
	RoleSeller: {
		CapViewSales:       true,
		CapCreateSale:      true,
		CapViewCustomers:   true,
		CapManageCustomers: true,
		CapViewProducts:    true,
		CapUseAssistant:    true,
	},
}

// ParseRole converte texto em Role; vazio vira vendedor
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleSeller, "":
		return RoleSeller, nil
	}
	return "", fmt.Errorf("perfil inválido: %q", s)
}

// Valid indica se o perfil pertence ao conjunto conhecido
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can verifica se o perfil possui a permissão
func (r Role) Can(c Capability) bool {
	return rolePermissions[r][c]
}

// Value implementa driver.Valuer
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// Scan implementa sql.Scanner
func (r *Role) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	case nil:
		*r = RoleSeller
	default:
		return fmt.Errorf("tipo não suportado para Role: %T", src)
	}
	return nil
}
