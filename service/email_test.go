package service

import (
	"testing"

	"bfx/config"
	"bfx/finance"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{ReportTo: "financeiro@bfx.com.br"})
}

func TestGenerateDREEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateDREEmailBody(finance.DRE{
		Month:        "2026-03",
		GrossRevenue: 10000,
		NetProfit:    -50,
		SalesCount:   3,
		Sellers:      []finance.SellerCommission{{Seller: "Ana <b>", Revenue: 10000, Pct: 2, Commission: 200}},
	})

	assert.Contains(t, body, "DRE 2026-03")
	assert.Contains(t, body, "R$")
	assert.Contains(t, body, "Ana &lt;b&gt;")
	assert.Contains(t, body, `class="num neg"`)
	assert.Contains(t, body, "3 vendas")
}

func TestRecipient(t *testing.T) {
	s := newTestEmailService()
	assert.Equal(t, "dono@bfx.com.br", s.Recipient(" dono@bfx.com.br "))
	assert.Equal(t, "financeiro@bfx.com.br", s.Recipient(""))
}

func TestSendDRESummary_Disabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendDRESummary("", finance.DRE{Month: "2026-03"}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "desabilitado")
}

func TestSendDRESummary_NoRecipient(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	err := s.SendDRESummary("", finance.DRE{Month: "2026-03"}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "destinatário")
}

func TestSendTestEmail_Disabled(t *testing.T) {
	s := newTestEmailService()
	assert.Error(t, s.SendTestEmail("a@b.com"))
}
