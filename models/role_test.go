package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	r, err = ParseRole("")
	require.NoError(t, err)
	assert.Equal(t, RoleSeller, r)

	_, err = ParseRole("root")
	assert.Error(t, err)
}

func TestRole_Can(t *testing.T) {
	assert.True(t, RoleAdmin.Can(CapManageExpenses))
	assert.True(t, RoleAdmin.Can(CapActForSellers))

	assert.True(t, RoleSeller.Can(CapCreateSale))
	assert.True(t, RoleSeller.Can(CapViewCustomers))
	assert.False(t, RoleSeller.Can(CapManageExpenses))
	assert.False(t, RoleSeller.Can(CapEditSale))
	assert.False(t, RoleSeller.Can(CapViewFinance))

	// perfil desconhecido não tem permissão alguma
	assert.False(t, Role("root").Can(CapViewSales))
	assert.False(t, Role("root").Valid())
}

func TestRole_Scan(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan([]byte("admin")))
	assert.Equal(t, RoleAdmin, r)
	require.NoError(t, r.Scan(nil))
	assert.Equal(t, RoleSeller, r)
	assert.Error(t, r.Scan(42))
}
