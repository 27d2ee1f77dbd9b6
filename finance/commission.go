package finance

import (
	"math"
	"sort"
	"time"

	"bfx/models"
)

// CommissionTotal comissão acumulada de um vendedor (base: lucro líquido)
type CommissionTotal struct {
	SellerID uint    `json:"vendedorId"`
	Seller   string  `json:"vendedor"`
	Amount   float64 `json:"valorComissao"`
}

// CommissionLine comissão de uma venda
type CommissionLine struct {
	SaleID     uint      `json:"vendaId"`
	Date       time.Time `json:"data"`
	SellerID   *uint     `json:"vendedorId"`
	Seller     string    `json:"vendedor"`
	Customer   string    `json:"cliente"`
	Product    string    `json:"produto"`
	SaleValue  float64   `json:"valorVenda"`
	NetProfit  float64   `json:"lucroLiquido"`
	Pct        float64   `json:"percentualComissao"`
	Commission float64   `json:"valorComissao"`
}

// Round2 arredonda para centavos
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func usersByID(users []models.User) map[uint]*models.User {
	m := make(map[uint]*models.User, len(users))
	for i := range users {
		m[users[i].ID] = &users[i]
	}
	return m
}

// Commissions comissão por vendedor; vendas sem vendedor cadastrado não geram comissão
func Commissions(sales []models.Sale, users []models.User) []CommissionTotal {
	byID := usersByID(users)
	totals := make(map[uint]*CommissionTotal)
	for _, s := range sales {
		if s.SellerID == nil {
			continue
		}
		u, ok := byID[*s.SellerID]
		if !ok {
			continue
		}
		t, ok := totals[u.ID]
		if !ok {
			t = &CommissionTotal{SellerID: u.ID, Seller: u.Label()}
			totals[u.ID] = t
		}
		t.Amount += s.NetProfit * u.CommissionPct / 100
	}

	out := make([]CommissionTotal, 0, len(totals))
	for _, t := range totals {
		t.Amount = Round2(t.Amount)
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seller == out[j].Seller {
			return out[i].SellerID < out[j].SellerID
		}
		return out[i].Seller < out[j].Seller
	})
	return out
}

// CommissionDetails uma linha por venda, na ordem recebida
func CommissionDetails(sales []models.Sale, users []models.User, customers map[uint]string) []CommissionLine {
	byID := usersByID(users)
	out := make([]CommissionLine, 0, len(sales))
	for _, s := range sales {
		line := CommissionLine{
			SaleID:    s.ID,
			Date:      s.SaleDate,
			SellerID:  s.SellerID,
			Seller:    s.Seller,
			Customer:  "N/A",
			Product:   s.ProductName,
			SaleValue: s.SaleValue,
			NetProfit: s.NetProfit,
		}
		if s.CustomerID != nil {
			if name, ok := customers[*s.CustomerID]; ok && name != "" {
				line.Customer = name
			}
		}
		if s.SellerID != nil {
			if u, ok := byID[*s.SellerID]; ok {
				line.Seller = u.Label()
				line.Pct = u.CommissionPct
				line.Commission = Round2(s.NetProfit * u.CommissionPct / 100)
			}
		}
		out = append(out, line)
	}
	return out
}
