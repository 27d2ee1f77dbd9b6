package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"bfx/finance"
	"bfx/logger"
	"bfx/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoCompanyLabel empresa de cliente sem convênio
const NoCompanyLabel = "Sem empresa"

var (
	ErrEmptyImport      = errors.New("nenhuma linha para importar")
	ErrInvalidImportRow = errors.New("importação inválida")
)

// SalesReportFilter período e empresa conveniada do relatório de vendas
type SalesReportFilter struct {
	From    *time.Time // padrão: início do mês corrente
	To      *time.Time // inclusivo até o fim do dia; padrão: agora
	Company string     // vazio ou "all" traz todas
}

// SalesReportLine linha do relatório de vendas
type SalesReportLine struct {
	Date         time.Time
	Seller       string
	Company      string
	Product      string
	SaleValue    float64
	FreightValue float64
	Installments int
}

// AnticipationLine recebível enviado para antecipação
type AnticipationLine struct {
	Customer         string
	Document         string
	Company          string
	Product          string
	Total            float64
	Installments     int
	InstallmentValue float64
	Date             time.Time
}

// CompanyTotal total antecipado por empresa conveniada
type CompanyTotal struct {
	Company string
	Total   float64
}

// AnticipationReport recebíveis selecionados e totais por empresa
type AnticipationReport struct {
	Lines     []AnticipationLine
	Total     float64
	Companies []CompanyTotal // maior total primeiro
}

// ImportRow linha da planilha de importação
type ImportRow struct {
	Customer     string  `json:"cliente"`
	SaleDate     string  `json:"dataVenda" example:"2026-03-15"`
	Seller       string  `json:"vendedor"`
	Product      string  `json:"produto"`
	SaleValue    float64 `json:"valor"`
	Freight      float64 `json:"frete"`
	ShippingCost float64 `json:"envio"`
	ProductCost  float64 `json:"custo"`
	Installments int     `json:"parcelas"`
	Anticipated  bool    `json:"antecipada"`
}

// ImportResult resumo do lote importado
type ImportResult struct {
	Imported         int `json:"importadas"`
	Skipped          int `json:"ignoradas"` // linhas sem cliente
	CustomersCreated int `json:"clientesCriados"`
}

// LastSale resumo da compra mais recente do cliente
type LastSale struct {
	ID           uint     `json:"id"`
	Date         string   `json:"data"`
	Products     []string `json:"produtos"`
	Total        float64  `json:"valorTotal"`
	Installments int      `json:"parcelas"`
}

// ProfileMetrics métricas de compra do cliente
type ProfileMetrics struct {
	AverageTicket  float64 `json:"ticketMedio"`
	Purchases      int     `json:"totalCompras"`
	TotalSpent     float64 `json:"valorTotalGasto"`
	BuyingCapacity float64 `json:"capacidadeCompra"`
}

// ProfileCustomer identificação do cliente no perfil
type ProfileCustomer struct {
	ID     uint     `json:"id"`
	Name   string   `json:"nome"`
	Income *float64 `json:"renda"`
	Kind   string   `json:"tipo"`
}

// CustomerProfile perfil de compras do cliente
type CustomerProfile struct {
	Customer         ProfileCustomer `json:"cliente"`
	LastSale         *LastSale       `json:"ultimaVenda"`
	Metrics          ProfileMetrics  `json:"metricas"`
	FrequentProducts []string        `json:"produtosFrequentes"`
}

const (
	profileSaleWindow   = 20
	profileTopProducts  = 5
	noIncomeTicketRatio = 1.2
)

// customersByID carrega os clientes das vendas em uma única consulta
func (s *SaleService) customersByID(ctx context.Context, sales []models.Sale) (map[uint]models.Customer, error) {
	seen := make(map[uint]bool)
	var ids []uint
	for _, sale := range sales {
		if sale.CustomerID != nil && !seen[*sale.CustomerID] {
			seen[*sale.CustomerID] = true
			ids = append(ids, *sale.CustomerID)
		}
	}
	out := make(map[uint]models.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&customers).Error; err != nil {
		return nil, err
	}
	for _, c := range customers {
		out[c.ID] = c
	}
	return out, nil
}

// SalesReport vendas do período, filtradas pela empresa do cliente
func (s *SaleService) SalesReport(ctx context.Context, f SalesReportFilter, now time.Time) ([]SalesReportLine, error) {
	start := finance.MonthStart(now)
	if f.From != nil {
		start = *f.From
	}
	end := now
	if f.To != nil {
		end = f.To.Add(24*time.Hour - time.Second)
	}

	var sales []models.Sale
	err := s.db.WithContext(ctx).
		Where("sale_date >= ? AND sale_date <= ?", start, end).
		Order("sale_date DESC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	customers, err := s.customersByID(ctx, sales)
	if err != nil {
		return nil, err
	}

	company := strings.TrimSpace(f.Company)
	if strings.EqualFold(company, "all") {
		company = ""
	}
	lines := make([]SalesReportLine, 0, len(sales))
	for _, sale := range sales {
		var c models.Customer
		if sale.CustomerID != nil {
			c = customers[*sale.CustomerID]
		}
		if company != "" && !strings.EqualFold(c.Company, company) {
			continue
		}
		label := c.Company
		if label == "" {
			label = "N/D"
		}
		lines = append(lines, SalesReportLine{
			Date:         sale.SaleDate,
			Seller:       sale.Seller,
			Company:      label,
			Product:      sale.ProductName,
			SaleValue:    sale.SaleValue,
			FreightValue: sale.FreightValue,
			Installments: sale.InstallmentCount,
		})
	}
	return lines, nil
}

// AnticipationReport recebíveis das vendas escolhidas com totais por empresa
func (s *SaleService) AnticipationReport(ctx context.Context, ids []uint) (AnticipationReport, error) {
	var report AnticipationReport
	if len(ids) == 0 {
		return report, nil
	}
	var sales []models.Sale
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("sale_date DESC").Find(&sales).Error; err != nil {
		return report, err
	}
	customers, err := s.customersByID(ctx, sales)
	if err != nil {
		return report, err
	}

	byCompany := make(map[string]float64)
	for _, sale := range sales {
		var c models.Customer
		if sale.CustomerID != nil {
			c = customers[*sale.CustomerID]
		}
		line := AnticipationLine{
			Customer:         orDefault(c.Name, "N/D"),
			Document:         orDefault(orDefault(c.CPF, c.CNPJ), "N/D"),
			Company:          orDefault(c.Company, NoCompanyLabel),
			Product:          orDefault(sale.ProductName, "N/A"),
			Total:            sale.GrossValue(),
			Installments:     sale.InstallmentCount,
			InstallmentValue: sale.InstallmentValue,
			Date:             sale.SaleDate,
		}
		if line.Installments <= 0 {
			line.Installments = 1
		}
		if line.InstallmentValue == 0 {
			line.InstallmentValue = finance.Round2(line.Total / float64(line.Installments))
		}
		report.Lines = append(report.Lines, line)
		report.Total += line.Total
		byCompany[line.Company] += line.Total
	}

	for company, total := range byCompany {
		report.Companies = append(report.Companies, CompanyTotal{Company: company, Total: total})
	}
	sort.Slice(report.Companies, func(i, j int) bool {
		if report.Companies[i].Total != report.Companies[j].Total {
			return report.Companies[i].Total > report.Companies[j].Total
		}
		return report.Companies[i].Company < report.Companies[j].Company
	})
	return report, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// parseImportDate aceita AAAA-MM-DD ou data e hora RFC 3339
func parseImportDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// ImportBatch grava as vendas da planilha, criando os clientes que faltam.
// O lote é atômico: uma linha inválida não deixa vendas parciais.
func (s *SaleService) ImportBatch(ctx context.Context, rows []ImportRow) (ImportResult, error) {
	var result ImportResult
	if len(rows) == 0 {
		return result, ErrEmptyImport
	}

	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(row.Customer) == "" {
			continue
		}
		d, err := parseImportDate(row.SaleDate)
		if err != nil {
			return result, fmt.Errorf("%w: linha %d, data da venda %q", ErrInvalidImportRow, i+1, row.SaleDate)
		}
		if row.SaleValue < 0 || row.Freight < 0 || row.ShippingCost < 0 || row.ProductCost < 0 {
			return result, fmt.Errorf("%w: linha %d, valores negativos", ErrInvalidImportRow, i+1)
		}
		dates[i] = d
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var users []models.User
		if err := tx.Select("id", "username", "display_name").Find(&users).Error; err != nil {
			return err
		}
		sellers := make(map[string]uint, len(users)*2)
		for _, u := range users {
			sellers[strings.ToLower(u.Label())] = u.ID
			sellers[strings.ToLower(u.Username)] = u.ID
		}

		known := make(map[string]uint)
		for i, row := range rows {
			name := strings.TrimSpace(row.Customer)
			if name == "" {
				result.Skipped++
				continue
			}

			customerID, ok := known[name]
			if !ok {
				var c models.Customer
				err := tx.Where("name = ?", name).First(&c).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c = models.Customer{Name: name, Kind: "PF"}
					if err := tx.Create(&c).Error; err != nil {
						return err
					}
					result.CustomersCreated++
				} else if err != nil {
					return err
				}
				customerID = c.ID
				known[name] = customerID
			}

			installments := row.Installments
			if installments <= 0 {
				installments = 1
			}
			total := row.SaleValue + row.Freight
			sale := models.Sale{
				SaleDate:         dates[i].UTC(),
				Seller:           strings.TrimSpace(row.Seller),
				CustomerID:       &customerID,
				ProductName:      strings.TrimSpace(row.Product),
				Quantity:         1,
				ProductCost:      row.ProductCost,
				SaleValue:        row.SaleValue,
				FreightValue:     row.Freight,
				ShippingCost:     row.ShippingCost,
				InstallmentCount: installments,
				InstallmentValue: finance.Round2(total / float64(installments)),
				Anticipated:      row.Anticipated,
				NetProfit:        finance.Round2(total - (row.ProductCost + row.ShippingCost)),
			}
			if id, ok := sellers[strings.ToLower(sale.Seller)]; ok && sale.Seller != "" {
				sellerID := id
				sale.SellerID = &sellerID
			}
			if err := tx.Create(&sale).Error; err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	logger.L().Info("importação de vendas concluída",
		zap.Int("importadas", result.Imported),
		zap.Int("ignoradas", result.Skipped),
		zap.Int("clientes_criados", result.CustomersCreated))
	return result, nil
}

// CustomerProfile métricas das últimas compras do cliente
func (s *SaleService) CustomerProfile(ctx context.Context, customerID uint) (*CustomerProfile, error) {
	var c models.Customer
	err := s.db.WithContext(ctx).First(&c, customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}

	var sales []models.Sale
	err = s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("sale_date DESC").
		Limit(profileSaleWindow).
		Find(&sales).Error
	if err != nil {
		return nil, err
	}

	p := &CustomerProfile{
		Customer:         ProfileCustomer{ID: c.ID, Name: c.Name, Income: c.Income, Kind: c.Kind},
		FrequentProducts: []string{},
	}

	counts := make(map[string]int)
	var order []string
	var spent float64
	for _, sale := range sales {
		spent += sale.GrossValue()
		if sale.ProductName == "" {
			continue
		}
		if counts[sale.ProductName] == 0 {
			order = append(order, sale.ProductName)
		}
		counts[sale.ProductName]++
	}

	if len(sales) > 0 {
		last := sales[0]
		products := []string{}
		if last.ProductName != "" {
			products = append(products, last.ProductName)
		}
		installments := last.InstallmentCount
		if installments <= 0 {
			installments = 1
		}
		p.LastSale = &LastSale{
			ID:           last.ID,
			Date:         last.SaleDate.Format("2006-01-02"),
			Products:     products,
			Total:        finance.Round2(last.GrossValue()),
			Installments: installments,
		}
	}

	// empate mantém a ordem da compra mais recente
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > profileTopProducts {
		order = order[:profileTopProducts]
	}
	p.FrequentProducts = append(p.FrequentProducts, order...)

	var ticket float64
	if len(sales) > 0 {
		ticket = spent / float64(len(sales))
	}
	capacity := ticket * noIncomeTicketRatio
	if income := c.DeclaredIncome(); income > 0 {
		capacity = income * s.rules.CreditIncomeRatio
	}
	p.Metrics = ProfileMetrics{
		AverageTicket:  finance.Round2(ticket),
		Purchases:      len(sales),
		TotalSpent:     finance.Round2(spent),
		BuyingCapacity: finance.Round2(capacity),
	}
	return p, nil
}
