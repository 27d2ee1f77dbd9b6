package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceSale_WithInvoice(t *testing.T) {
	p, err := PriceSale(SaleInput{
		UnitPrice:    100,
		UnitCost:     40,
		Quantity:     2,
		Freight:      20,
		ShippingCost: 10,
		Installments: 4,
		HasInvoice:   true,
	}, DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, 200.0, p.Subtotal)
	assert.InDelta(t, 11.94, p.InvoiceDiscount, 1e-9)
	assert.Equal(t, 220.0, p.Total)
	assert.Equal(t, 55.0, p.InstallmentValue)
	assert.Equal(t, 80.0, p.ProductCost)
	assert.InDelta(t, 118.06, p.NetProfit, 1e-9)
	assert.Equal(t, 5.97, p.InvoiceTaxPct)
}

func TestPriceSale_NoInvoiceNoInstallments(t *testing.T) {
	p, err := PriceSale(SaleInput{UnitPrice: 50, Quantity: 1}, DefaultRules())
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.InvoiceDiscount)
	assert.Equal(t, 0.0, p.InstallmentValue)
	assert.Equal(t, 50.0, p.NetProfit)
}

func TestPriceSale_Invalid(t *testing.T) {
	_, err := PriceSale(SaleInput{UnitPrice: 10}, DefaultRules())
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = PriceSale(SaleInput{Quantity: 1}, DefaultRules())
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
