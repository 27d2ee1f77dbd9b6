package finance

import (
	"testing"
	"time"

	"bfx/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestCalculateDRE_Scenario(t *testing.T) {
	month := date(2026, 4, 1)
	users := []models.User{{ID: 1, Username: "ana", DisplayName: "Ana", Role: models.RoleSeller, CommissionPct: 2}}
	sales := []models.Sale{
		{SaleDate: date(2026, 4, 10), SellerID: uintPtr(1), SaleValue: 9900, FreightValue: 100, ProductCost: 4000, ShippingCost: 100},
		// fora do mês
		{SaleDate: date(2026, 5, 1), SellerID: uintPtr(1), SaleValue: 5000},
	}
	expenses := []models.Expense{
		{ExpenseDate: date(2026, 4, 5), Type: models.ExpenseVariable, Amount: 300},
		{ExpenseDate: date(2026, 4, 30), Type: models.ExpenseFixed, Amount: 2000},
		{ExpenseDate: date(2026, 3, 31), Type: models.ExpenseFixed, Amount: 800},
	}

	d := CalculateDRE(month, sales, expenses, users, DefaultRules())

	assert.Equal(t, "2026-04", d.Month)
	assert.Equal(t, 1, d.SalesCount)
	assert.Equal(t, 2, d.ExpensesCount)
	assert.InDelta(t, 10000, d.GrossRevenue, 1e-9)
	assert.InDelta(t, 4000, d.Detail.COGS, 1e-9)
	assert.InDelta(t, 200, d.Detail.Commissions, 1e-9)
	assert.InDelta(t, 300, d.Detail.VariableExpenses, 1e-9)
	assert.InDelta(t, 100, d.Detail.RealFreight, 1e-9)
	assert.InDelta(t, 4600, d.VariableCostTotal, 1e-9)
	assert.InDelta(t, 5400, d.Margin, 1e-9)
	assert.InDelta(t, 2000, d.FixedExpenses, 1e-9)
	assert.InDelta(t, 3400, d.NetProfit, 1e-9)
	assert.InDelta(t, 0.54, d.MarginRatio, 1e-9)
	assert.InDelta(t, 3703.70, d.BreakEvenRevenue, 0.01)
	assert.Equal(t, 100000.0, d.GlobalTarget)

	assert.Equal(t, d.GrossRevenue-d.VariableCostTotal, d.Margin)
	assert.Equal(t, d.Margin-d.FixedExpenses, d.NetProfit)

	require.Len(t, d.Sellers, 1)
	assert.Equal(t, "Ana", d.Sellers[0].Seller)
	assert.True(t, d.Sellers[0].Registered)
	assert.Empty(t, d.UnmatchedSellers)
}

func TestCalculateDRE_ZeroRevenueGuards(t *testing.T) {
	expenses := []models.Expense{{ExpenseDate: date(2026, 2, 2), Type: models.ExpenseFixed, Amount: 1500}}

	d := CalculateDRE(date(2026, 2, 1), nil, expenses, nil, DefaultRules())

	assert.Equal(t, 0.0, d.GrossRevenue)
	assert.Equal(t, 0.0, d.MarginRatio)
	assert.Equal(t, 0.0, d.BreakEvenRevenue)
	assert.Equal(t, -1500.0, d.NetProfit)
}

func TestCalculateDRE_NegativeMarginHasNoBreakEven(t *testing.T) {
	sales := []models.Sale{{SaleDate: date(2026, 2, 2), SaleValue: 100, ProductCost: 300}}
	expenses := []models.Expense{{ExpenseDate: date(2026, 2, 2), Type: models.ExpenseFixed, Amount: 50}}

	d := CalculateDRE(date(2026, 2, 1), sales, expenses, nil, DefaultRules())

	assert.Less(t, d.MarginRatio, 0.0)
	assert.Equal(t, 0.0, d.BreakEvenRevenue)
}

func TestCalculateDRE_SellerGrouping(t *testing.T) {
	users := []models.User{
		{ID: 1, Username: "ana", DisplayName: "Ana", CommissionPct: 5, MonthlyTarget: 20000},
		{ID: 2, Username: "bruno", CommissionPct: 0, MonthlyTarget: 10000},
	}
	sales := []models.Sale{
		{SaleDate: date(2026, 7, 1), SellerID: uintPtr(1), SaleValue: 1000},
		{SaleDate: date(2026, 7, 2), SellerID: uintPtr(1), SaleValue: 1000},
		{SaleDate: date(2026, 7, 3), SellerID: uintPtr(2), SaleValue: 1000},
		{SaleDate: date(2026, 7, 4), SaleValue: 500},
		{SaleDate: date(2026, 7, 5), SellerID: uintPtr(99), Seller: "Antigo", SaleValue: 1000},
	}

	d := CalculateDRE(date(2026, 7, 1), sales, nil, users, DefaultRules())

	byName := map[string]SellerCommission{}
	for _, s := range d.Sellers {
		byName[s.Seller] = s
	}
	require.Len(t, byName, 4)

	assert.InDelta(t, 100, byName["Ana"].Commission, 1e-9)
	// percentual zero no cadastro usa o padrão de 2%
	assert.InDelta(t, 20, byName["bruno"].Commission, 1e-9)
	assert.Equal(t, 2.0, byName["bruno"].Pct)
	assert.True(t, byName["bruno"].Registered)
	// sem vendedor usa o padrão de 2%
	assert.InDelta(t, 10, byName[NoSellerLabel].Commission, 1e-9)
	assert.Nil(t, byName[NoSellerLabel].SellerID)
	// vendedor inexistente cai no padrão e é sinalizado
	assert.InDelta(t, 20, byName["Antigo"].Commission, 1e-9)
	assert.False(t, byName["Antigo"].Registered)
	assert.Equal(t, []uint{99}, d.UnmatchedSellers)

	assert.InDelta(t, 150, d.Detail.Commissions, 1e-9)
	assert.Equal(t, 30000.0, d.GlobalTarget)
}

func TestCalculateDRE_MonthBoundaries(t *testing.T) {
	sales := []models.Sale{
		{SaleDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), SaleValue: 10},
		{SaleDate: time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC), SaleValue: 20},
		{SaleDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), SaleValue: 40},
	}
	d := CalculateDRE(date(2026, 8, 15), sales, nil, nil, DefaultRules())
	assert.Equal(t, 30.0, d.GrossRevenue)
}
