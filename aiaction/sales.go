package aiaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bfx/finance"
	"bfx/models"
	"bfx/service"
)

type listSalesParams struct {
	From       string `json:"from"`
	To         string `json:"to"`
	VendedorID *uint  `json:"vendedorId"`
	Limit      int    `json:"limit"`
}

// listSales vendedores enxergam somente as próprias vendas
func listSales(d *Dispatcher, ctx context.Context, actor Actor, params map[string]any) (any, error) {
	var p listSalesParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}

	f := service.SaleFilter{Limit: clampLimit(p.Limit, 20, 100)}
	if actor.Role.Can(models.CapActForSellers) {
		f.SellerID = p.VendedorID
	} else {
		id := actor.UserID
		f.SellerID = &id
	}
	if p.From != "" {
		t, err := parseDate("from", p.From)
		if err != nil {
			return nil, err
		}
		f.From = &t
	}
	if p.To != "" {
		t, err := parseDate("to", p.To)
		if err != nil {
			return nil, err
		}
		f.To = &t
	}

	sales, _, err := d.sales().List(ctx, f)
	return sales, err
}

type createSaleParams struct {
	DataVenda    string  `json:"dataVenda"`
	VendedorID   *uint   `json:"vendedorId"`
	ClienteID    uint    `json:"clienteId"`
	ProdutoNome  string  `json:"produtoNome"`
	Quantidade   int     `json:"quantidade"`
	CustoProduto float64 `json:"custoProduto"`
	ValorVenda   float64 `json:"valorVenda"`
	ValorFrete   float64 `json:"valorFrete"`
	CustoEnvio   float64 `json:"custoEnvio"`
	Parcelas     int     `json:"parcelas"`
	Antecipada   *bool   `json:"antecipada"`
	NotaFiscal   bool    `json:"notaFiscal"`
}

func createSale(d *Dispatcher, ctx context.Context, actor Actor, params map[string]any) (any, error) {
	var p createSaleParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.DataVenda == "" || p.ClienteID == 0 || p.ProdutoNome == "" {
		return nil, fmt.Errorf("%w: dataVenda, clienteId e produtoNome são obrigatórios", ErrInvalidParams)
	}
	date, err := parseDate("dataVenda", p.DataVenda)
	if err != nil {
		return nil, err
	}

	entry := service.SaleEntry{
		SaleDate:     date,
		CustomerID:   &p.ClienteID,
		ProductName:  p.ProdutoNome,
		Quantity:     p.Quantidade,
		UnitPrice:    p.ValorVenda,
		UnitCost:     p.CustoProduto,
		Freight:      p.ValorFrete,
		ShippingCost: p.CustoEnvio,
		Installments: p.Parcelas,
		Anticipated:  true,
		HasInvoice:   p.NotaFiscal,
	}
	if entry.Quantity <= 0 {
		entry.Quantity = 1
	}
	if p.Antecipada != nil {
		entry.Anticipated = *p.Antecipada
	}
	if actor.Role.Can(models.CapActForSellers) {
		entry.SellerID = p.VendedorID
	} else {
		id := actor.UserID
		entry.SellerID = &id
	}

	sale, err := d.sales().Create(ctx, entry)
	return sale, wrapSaleError(err)
}

type updateSaleParams struct {
	ID          uint     `json:"id"`
	DataVenda   *string  `json:"dataVenda"`
	VendedorID  *uint    `json:"vendedorId"`
	ProdutoNome *string  `json:"produtoNome"`
	ValorVenda  *float64 `json:"valorVenda"`
	ValorFrete  *float64 `json:"valorFrete"`
	CustoEnvio  *float64 `json:"custoEnvio"`
	Parcelas    *int     `json:"parcelas"`
}

func updateSale(d *Dispatcher, ctx context.Context, actor Actor, params map[string]any) (any, error) {
	var p updateSaleParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, fmt.Errorf("%w: id é obrigatório", ErrInvalidParams)
	}

	patch := service.SalePatch{
		SellerID:         p.VendedorID,
		ProductName:      p.ProdutoNome,
		SaleValue:        p.ValorVenda,
		FreightValue:     p.ValorFrete,
		ShippingCost:     p.CustoEnvio,
		InstallmentCount: p.Parcelas,
	}
	if p.DataVenda != nil {
		t, err := parseDate("dataVenda", *p.DataVenda)
		if err != nil {
			return nil, err
		}
		patch.SaleDate = &t
	}

	sale, err := d.sales().Update(ctx, p.ID, patch)
	return sale, wrapSaleError(err)
}

func (d *Dispatcher) sales() *service.SaleService {
	return service.NewSaleService(d.db, d.rules)
}

func wrapSaleError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrSaleNotFound),
		errors.Is(err, service.ErrSellerNotFound),
		errors.Is(err, service.ErrCustomerNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, finance.ErrInvalidPrice), errors.Is(err, finance.ErrInvalidQuantity):
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return err
}

// monthBounds primeiro e último dia do mês de t, no formato das ações
func monthBounds(t time.Time) (string, string) {
	start, end := finance.MonthRange(t)
	return start.Format(dateLayout), end.AddDate(0, 0, -1).Format(dateLayout)
}
