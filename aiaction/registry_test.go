package aiaction

import (
	"testing"

	"bfx/models"

	"github.com/stretchr/testify/assert"
)

func TestCatalogHasHandlers(t *testing.T) {
	all := Catalog()
	assert.Len(t, all, 17)
	for _, a := range all {
		_, ok := handlers[a.Name]
		assert.True(t, ok, "sem handler: %s", a.Name)
		assert.NotEmpty(t, a.Capability, a.Name)
		assert.Equal(t, "object", a.Parameters["type"], a.Name)
	}
	assert.Len(t, handlers, len(all))
}

func TestLookup(t *testing.T) {
	a, ok := Lookup("consultar_dre")
	assert.True(t, ok)
	assert.True(t, a.ReadOnly)

	_, ok = Lookup("apagar_tudo")
	assert.False(t, ok)
}

func toolNames(tools []Tool) []string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return names
}

func TestTools_SellerPlan(t *testing.T) {
	seller := Actor{UserID: 2, Role: models.RoleSeller}
	names := toolNames(Tools(seller, ModePlan))

	assert.ElementsMatch(t, []string{"listar_vendas", "listar_clientes", "listar_produtos", "consultar_limite"}, names)
}

func TestTools_SellerExecute(t *testing.T) {
	seller := Actor{UserID: 2, Role: models.RoleSeller}
	names := toolNames(Tools(seller, ModeExecute))

	assert.Contains(t, names, "criar_venda")
	assert.Contains(t, names, "criar_cliente")
	assert.NotContains(t, names, "criar_despesa")
	assert.NotContains(t, names, "atualizar_venda")
	assert.NotContains(t, names, "consultar_dre")
}

func TestTools_Admin(t *testing.T) {
	admin := Actor{UserID: 1, Role: models.RoleAdmin}
	assert.Len(t, Tools(admin, ModeExecute), 17)
	for _, tool := range Tools(admin, ModePlan) {
		a, _ := Lookup(tool.Name)
		assert.True(t, a.ReadOnly, tool.Name)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	assert.NoError(t, err)
	assert.Equal(t, ModePlan, m)

	m, err = ParseMode("auto")
	assert.NoError(t, err)
	assert.Equal(t, ModeAuto, m)

	_, err = ParseMode("yolo")
	assert.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, clampLimit(0, 20, 100))
	assert.Equal(t, 100, clampLimit(500, 20, 100))
	assert.Equal(t, 7, clampLimit(7, 50, 200))
	assert.Equal(t, 50, clampLimit(-3, 50, 200))
}
