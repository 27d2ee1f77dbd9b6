package finance

import "errors"

// SaleInput dados digitados na venda rápida
type SaleInput struct {
	UnitPrice     float64
	UnitCost      float64
	Quantity      int
	Freight       float64 // cobrado do cliente
	ShippingCost  float64 // custo real de envio
	Installments  int
	HasInvoice    bool
	InvoiceTaxPct float64 // zero usa o padrão das regras
}

// SalePrice valores derivados gravados na venda
type SalePrice struct {
	Subtotal         float64 `json:"subtotal"`
	InvoiceDiscount  float64 `json:"descontoNota"`
	Total            float64 `json:"total"`
	InstallmentValue float64 `json:"valorParcela"`
	ProductCost      float64 `json:"custoProduto"`
	NetProfit        float64 `json:"lucroLiquido"`
	InvoiceTaxPct    float64 `json:"taxaNota"`
}

var (
	ErrInvalidQuantity = errors.New("quantidade deve ser pelo menos 1")
	ErrInvalidPrice    = errors.New("valor deve ser maior que zero")
)

// PriceSale calcula total, parcela e lucro líquido da venda
func PriceSale(in SaleInput, rules Rules) (SalePrice, error) {
	if in.Quantity <= 0 {
		return SalePrice{}, ErrInvalidQuantity
	}
	if in.UnitPrice <= 0 {
		return SalePrice{}, ErrInvalidPrice
	}

	taxPct := in.InvoiceTaxPct
	if taxPct <= 0 {
		taxPct = rules.InvoiceTaxPct
	}

	qty := float64(in.Quantity)
	p := SalePrice{
		Subtotal:      in.UnitPrice * qty,
		ProductCost:   in.UnitCost * qty,
		InvoiceTaxPct: taxPct,
	}
	if in.HasInvoice {
		p.InvoiceDiscount = p.Subtotal * taxPct / 100
	}
	p.Total = p.Subtotal + in.Freight
	if in.Installments > 0 {
		p.InstallmentValue = p.Total / float64(in.Installments)
	}
	p.NetProfit = p.Total - (p.ProductCost + in.ShippingCost + p.InvoiceDiscount)
	return p, nil
}
