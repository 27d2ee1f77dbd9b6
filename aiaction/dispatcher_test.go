package aiaction

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"bfx/finance"
	"bfx/models"
	"bfx/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	admin  = Actor{UserID: 1, Username: "admin", DisplayName: "Administrador", Role: models.RoleAdmin}
	seller = Actor{UserID: 3, Username: "ana", DisplayName: "Ana", Role: models.RoleSeller}
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func newDispatcher(db *gorm.DB) *Dispatcher {
	return NewDispatcher(db, service.NewFinanceService(db, finance.DefaultRules())).
		WithClock(func() time.Time { return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) })
}

func expectAudit(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `audit_logs`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
}

func TestExecute_UnknownAction(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)
	expectAudit(mock)

	_, err := d.Execute(context.Background(), admin, "apagar_tudo", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_SellerForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `audit_logs`").
		WithArgs(seller.UserID, models.RoleSeller, "criar_despesa", sqlmock.AnyArg(), models.AuditOutcomeDenied, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	_, err := d.Execute(context.Background(), seller, "criar_despesa", map[string]any{
		"descricao": "Aluguel", "valor": 1000.0, "dataDespesa": "2026-03-01",
	})
	assert.ErrorIs(t, err, ErrForbidden)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_SellerListsOwnSales(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `vendas`").
		WithArgs(seller.UserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `vendas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "sale_value"}).AddRow(1, 3, 100.0))
	expectAudit(mock)

	// vendedorId de outro vendedor é ignorado
	result, err := d.Execute(context.Background(), seller, "listar_vendas", map[string]any{"vendedorId": 9.0, "limit": 500.0})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	sales, ok := result.([]models.Sale)
	require.True(t, ok)
	assert.Len(t, sales, 1)
}

func TestExecute_SellerCreatesSaleForSelf(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)

	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(3, "ana", "Ana"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vendas`").WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()
	expectAudit(mock)

	result, err := d.Execute(context.Background(), seller, "criar_venda", map[string]any{
		"dataVenda":   "2026-03-10",
		"vendedorId":  1.0,
		"clienteId":   7.0,
		"produtoNome": "Colchão",
		"valorVenda":  1200.0,
		"parcelas":    12.0,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	sale := result.(*models.Sale)
	require.NotNil(t, sale.SellerID)
	assert.Equal(t, seller.UserID, *sale.SellerID)
	assert.Equal(t, "Ana", sale.Seller)
	assert.True(t, sale.Anticipated)
	assert.InDelta(t, 100, sale.InstallmentValue, 0.001)
}

func TestExecute_CreateSaleMissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)
	expectAudit(mock)

	_, err := d.Execute(context.Background(), admin, "criar_venda", map[string]any{"produtoNome": "X"})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestExecute_InvalidParamType(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)
	expectAudit(mock)

	_, err := d.Execute(context.Background(), admin, "listar_clientes", map[string]any{"limit": "muitos"})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestExecute_CreateExpense(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `despesas`").WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()
	expectAudit(mock)

	result, err := d.Execute(context.Background(), admin, "criar_despesa", map[string]any{
		"descricao": "Aluguel", "valor": 1500.0, "dataDespesa": "2026-03-01", "tipo": "Fixa",
	})
	require.NoError(t, err)
	e := result.(*models.Expense)
	assert.Equal(t, models.ExpenseFixed, e.Type)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), e.ExpenseDate)
}

func TestExecute_CreateExpenseInvalidType(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)
	expectAudit(mock)

	_, err := d.Execute(context.Background(), admin, "criar_despesa", map[string]any{
		"descricao": "Aluguel", "valor": 1500.0, "dataDespesa": "2026-03-01", "tipo": "Mensal",
	})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestExecute_UpdateUserNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)

	mock.ExpectQuery("SELECT \\* FROM `usuarios`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	expectAudit(mock)

	_, err := d.Execute(context.Background(), admin, "atualizar_usuario", map[string]any{"id": 42.0, "comissaoPct": 3.0})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExecute_CreateUserRejectsUnknownRole(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)
	expectAudit(mock)

	_, err := d.Execute(context.Background(), admin, "criar_usuario", map[string]any{
		"username": "joao", "password": "segredo", "role": "gerente",
	})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestExecute_CustomerLimit(t *testing.T) {
	db, mock := newMockDB(t)
	d := newDispatcher(db)

	mock.ExpectQuery("SELECT \\* FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "income"}).AddRow(7, "Maria", 1000.0))
	mock.ExpectQuery("SELECT \\* FROM `vendas`").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	expectAudit(mock)

	result, err := d.Execute(context.Background(), seller, "consultar_limite", map[string]any{"clienteId": 7.0})
	require.NoError(t, err)
	l := result.(finance.CreditLimit)
	assert.InDelta(t, 300, l.AvailableMargin, 0.001)
}

func TestRedact(t *testing.T) {
	in := map[string]any{"username": "joao", "password": "segredo"}
	out := redact(in)
	assert.Equal(t, "***", out["password"])
	assert.Equal(t, "segredo", in["password"])
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	assert.Equal(t, "ação", truncate("ação", 4))
	assert.Equal(t, "aç", truncate("ação", 2))
	assert.Equal(t, "", truncate("ç", 0))

	long := strings.Repeat("é", 600)
	got := truncate(long, 500)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 500, utf8.RuneCountInString(got))
}
