package service

import (
	"context"
	"testing"
	"time"

	"bfx/finance"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportSaleColumns = []string{"id", "sale_date", "seller", "customer_id", "product_name",
	"sale_value", "freight_value", "installment_count", "installment_value"}

func TestSaleService_SalesReport_FiltersCompany(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSaleService(db, finance.DefaultRules())
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `vendas` WHERE .*sale_date >= \\? AND sale_date <= \\?").
		WithArgs(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows(reportSaleColumns).
			AddRow(1, day, "Ana", 7, "TV", 1000.0, 50.0, 10, 105.0).
			AddRow(2, day, "Ana", 8, "Sofá", 2000.0, 0.0, 5, 400.0).
			AddRow(3, day, "Bruno", nil, "Fone", 100.0, 0.0, 1, 100.0))
	mock.ExpectQuery("SELECT \\* FROM `clientes` WHERE id IN").
		WithArgs(7, 8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "company"}).
			AddRow(7, "Maria", "Prefeitura").
			AddRow(8, "João", "Hospital"))

	lines, err := svc.SalesReport(context.Background(), SalesReportFilter{Company: "prefeitura"},
		time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, lines, 1)
	assert.Equal(t, "Prefeitura", lines[0].Company)
	assert.Equal(t, "TV", lines[0].Product)
	assert.Equal(t, 10, lines[0].Installments)
}

func TestSaleService_SalesReport_AllCompanies(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSaleService(db, finance.DefaultRules())
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `vendas`").
		WithArgs(from, to.Add(24*time.Hour-time.Second)).
		WillReturnRows(sqlmock.NewRows(reportSaleColumns).
			AddRow(3, from, "Bruno", nil, "Fone", 100.0, 0.0, 1, 100.0))

	lines, err := svc.SalesReport(context.Background(), SalesReportFilter{From: &from, To: &to, Company: "all"}, time.Now())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	// venda sem cliente aparece como N/D
	assert.Equal(t, "N/D", lines[0].Company)
}

func TestSaleService_AnticipationReport_TotalsByCompany(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSaleService(db, finance.DefaultRules())
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `vendas` WHERE id IN").
		WithArgs(1, 2, 3).
		WillReturnRows(sqlmock.NewRows(reportSaleColumns).
			AddRow(1, day, "Ana", 7, "TV", 1000.0, 50.0, 10, 105.0).
			AddRow(2, day, "Ana", 7, "", 300.0, 0.0, 3, 0.0).
			AddRow(3, day, "Ana", 8, "Sofá", 2000.0, 0.0, 5, 400.0))
	mock.ExpectQuery("SELECT \\* FROM `clientes` WHERE id IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cpf", "cnpj", "company"}).
			AddRow(7, "Maria", "", "12.345.678/0001-90", "Prefeitura").
			AddRow(8, "João", "123.456.789-00", "", ""))

	report, err := svc.AnticipationReport(context.Background(), []uint{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, report.Lines, 3)
	assert.Equal(t, "12.345.678/0001-90", report.Lines[0].Document)
	assert.InDelta(t, 1050, report.Lines[0].Total, 0.001)
	assert.Equal(t, "N/A", report.Lines[1].Product)
	// parcela ausente é derivada do total
	assert.InDelta(t, 100, report.Lines[1].InstallmentValue, 0.001)
	assert.Equal(t, NoCompanyLabel, report.Lines[2].Company)

	assert.InDelta(t, 3350, report.Total, 0.001)
	require.Len(t, report.Companies, 2)
	assert.Equal(t, CompanyTotal{Company: NoCompanyLabel, Total: 2000}, report.Companies[0])
	assert.Equal(t, CompanyTotal{Company: "Prefeitura", Total: 1350}, report.Companies[1])
}

func TestSaleService_AnticipationReport_NoIDs(t *testing.T) {
	db, _ := newMockDB(t)
	report, err := NewSaleService(db, finance.DefaultRules()).AnticipationReport(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Lines)
}

func TestSaleService_ImportBatch_CreatesMissingCustomers(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSaleService(db, finance.DefaultRules())

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(3, "ana", "Ana Souza"))
	// Maria ainda não existe
	mock.ExpectQuery("SELECT \\* FROM `clientes` WHERE name = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `clientes`").WillReturnResult(sqlmock.NewResult(50, 1))
	mock.ExpectExec("INSERT INTO `vendas`").WillReturnResult(sqlmock.NewResult(100, 1))
	// segunda linha da Maria reaproveita o cadastro criado
	mock.ExpectExec("INSERT INTO `vendas`").WillReturnResult(sqlmock.NewResult(101, 1))
	mock.ExpectQuery("SELECT \\* FROM `clientes` WHERE name = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(8, "João"))
	mock.ExpectExec("INSERT INTO `vendas`").WillReturnResult(sqlmock.NewResult(102, 1))
	mock.ExpectCommit()

	rows := []ImportRow{
		{Customer: " Maria ", SaleDate: "2026-03-10", Seller: "Ana Souza", Product: "TV", SaleValue: 1000, Freight: 200, ProductCost: 600, ShippingCost: 50, Installments: 3, Anticipated: true},
		{Customer: "Maria", SaleDate: "2026-03-11T10:00:00Z", Product: "Fone", SaleValue: 100},
		{Customer: "", SaleDate: "lixo"},
		{Customer: "João", SaleDate: "2026-03-12", Seller: "Externo", Product: "Sofá", SaleValue: 900, Installments: 0},
	}
	result, err := svc.ImportBatch(context.Background(), rows)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, ImportResult{Imported: 3, Skipped: 1, CustomersCreated: 1}, result)
}

func TestSaleService_ImportBatch_InvalidDateWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSaleService(db, finance.DefaultRules())

	_, err := svc.ImportBatch(context.Background(), []ImportRow{
		{Customer: "Maria", SaleDate: "2026-03-10", SaleValue: 10},
		{Customer: "João", SaleDate: "10/03/2026", SaleValue: 10},
	})
	require.ErrorIs(t, err, ErrInvalidImportRow)
	assert.Contains(t, err.Error(), "linha 2")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleService_ImportBatch_Empty(t *testing.T) {
	db, _ := newMockDB(t)
	_, err := NewSaleService(db, finance.DefaultRules()).ImportBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyImport)
}

func TestSaleService_CustomerProfile(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSaleService(db, finance.DefaultRules())

	mock.ExpectQuery("SELECT \\* FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "kind", "income"}).AddRow(7, "Maria", "PF", nil))
	mock.ExpectQuery("SELECT \\* FROM `vendas` WHERE customer_id = \\? .*ORDER BY sale_date DESC LIMIT").
		WillReturnRows(sqlmock.NewRows(reportSaleColumns).
			AddRow(3, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "Ana", 7, "Fone", 100.0, 20.0, 2, 60.0).
			AddRow(2, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), "Ana", 7, "TV", 1000.0, 0.0, 10, 100.0).
			AddRow(1, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), "Ana", 7, "Fone", 80.0, 0.0, 1, 80.0))

	p, err := svc.CustomerProfile(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.NotNil(t, p.LastSale)
	assert.Equal(t, uint(3), p.LastSale.ID)
	assert.Equal(t, "2026-03-10", p.LastSale.Date)
	assert.Equal(t, []string{"Fone"}, p.LastSale.Products)
	assert.InDelta(t, 120, p.LastSale.Total, 0.001)
	assert.Equal(t, 3, p.Metrics.Purchases)
	assert.InDelta(t, 1200, p.Metrics.TotalSpent, 0.001)
	assert.InDelta(t, 400, p.Metrics.AverageTicket, 0.001)
	// sem renda declarada: 1,2 × ticket médio
	assert.InDelta(t, 480, p.Metrics.BuyingCapacity, 0.001)
	assert.Equal(t, []string{"Fone", "TV"}, p.FrequentProducts)
}

func TestSaleService_CustomerProfile_WithIncomeNoSales(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewSaleService(db, finance.DefaultRules())

	mock.ExpectQuery("SELECT \\* FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "income"}).AddRow(7, "Maria", 2000.0))
	mock.ExpectQuery("SELECT \\* FROM `vendas`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	p, err := svc.CustomerProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, p.LastSale)
	assert.Empty(t, p.FrequentProducts)
	assert.InDelta(t, 600, p.Metrics.BuyingCapacity, 0.001)
}

func TestSaleService_CustomerProfile_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `clientes`").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewSaleService(db, finance.DefaultRules()).CustomerProfile(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
