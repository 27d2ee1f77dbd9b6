package service

import (
	"fmt"
	"html"
	"io"
	"strings"

	"bfx/config"
	"bfx/finance"

	"gopkg.in/gomail.v2"
)

// EmailService serviço de e-mail
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService cria o serviço de e-mail
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// attachment anexo gerado em memória
type attachment struct {
	name  string
	write func(w io.Writer) error
}

// Recipient destinatário informado ou o report_to configurado
func (s *EmailService) Recipient(to string) string {
	if to = strings.TrimSpace(to); to != "" {
		return to
	}
	return s.cfg.ReportTo
}

// SendDRESummary envia o resumo do DRE com a planilha em anexo
func (s *EmailService) SendDRESummary(to string, d finance.DRE, flow []finance.CashFlowRow) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("serviço de e-mail desabilitado, configure BFX_EMAIL_ENABLED=true")
	}
	to = s.Recipient(to)
	if to == "" {
		return fmt.Errorf("destinatário do relatório não informado")
	}

	wb, err := BuildFinanceWorkbook(d, flow)
	if err != nil {
		return fmt.Errorf("falha ao gerar planilha: %w", err)
	}
	defer wb.Close()

	subject := fmt.Sprintf("[BFX] DRE %s", d.Month)
	body := s.generateDREEmailBody(d)

	return s.sendEmail(to, subject, body, attachment{
		name: fmt.Sprintf("financeiro_%s.xlsx", d.Month),
		write: func(w io.Writer) error {
			return wb.Write(w)
		},
	})
}

// generateDREEmailBody corpo HTML do resumo mensal
func (s *EmailService) generateDREEmailBody(d finance.DRE) string {
	var sellers strings.Builder
	for _, v := range d.Sellers {
		fmt.Fprintf(&sellers, "<tr><td>%s</td><td class=\"num\">%s</td><td class=\"num\">%.2f%%</td><td class=\"num\">%s</td></tr>\n",
			html.EscapeString(v.Seller),
			finance.FormatBRL(v.Revenue),
			v.Pct,
			finance.FormatBRL(v.Commission),
		)
	}

	profitClass := "pos"
	if d.NetProfit < 0 {
		profitClass = "neg"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 640px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 24px; text-align: center; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { padding: 30px; }
        table { width: 100%%; border-collapse: collapse; margin-bottom: 24px; }
        td, th { padding: 8px; border-bottom: 1px solid #eee; text-align: left; }
        .num { text-align: right; }
        .pos { color: #059669; font-weight: bold; }
        .neg { color: #dc2626; font-weight: bold; }
        .footer { background: #f8f9fa; padding: 16px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>BFX Manager · DRE %s</h1>
        </div>
        <div class="content">
            <table>
                <tr><td>Receita bruta</td><td class="num">%s</td></tr>
                <tr><td>Custos variáveis</td><td class="num">%s</td></tr>
                <tr><td>Margem de contribuição</td><td class="num">%s (%.1f%%)</td></tr>
                <tr><td>Despesas fixas</td><td class="num">%s</td></tr>
                <tr><td>Lucro líquido</td><td class="num %s">%s</td></tr>
                <tr><td>Ponto de equilíbrio</td><td class="num">%s</td></tr>
                <tr><td>Meta global</td><td class="num">%s</td></tr>
            </table>
            <table>
                <tr><th>Vendedor</th><th class="num">Receita</th><th class="num">%%</th><th class="num">Comissão</th></tr>
%s            </table>
            <p>%d vendas e %d despesas no período. Planilha completa em anexo.</p>
        </div>
        <div class="footer">
            <p>Mensagem automática, não responda</p>
        </div>
    </div>
</body>
</html>
`,
		d.Month,
		finance.FormatBRL(d.GrossRevenue),
		finance.FormatBRL(d.VariableCostTotal),
		finance.FormatBRL(d.Margin), d.MarginRatio*100,
		finance.FormatBRL(d.FixedExpenses),
		profitClass, finance.FormatBRL(d.NetProfit),
		finance.FormatBRL(d.BreakEvenRevenue),
		finance.FormatBRL(d.GlobalTarget),
		sellers.String(),
		d.SalesCount, d.ExpensesCount,
	)
}

// sendEmail envia a mensagem pelo SMTP configurado
func (s *EmailService) sendEmail(to, subject, body string, files ...attachment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	for _, a := range files {
		write := a.write
		m.Attach(a.name, gomail.SetCopyFunc(func(w io.Writer) error {
			return write(w)
		}))
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("falha ao enviar e-mail: %w", err)
	}

	return nil
}

// SendTestEmail envia um e-mail de teste da configuração SMTP
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("serviço de e-mail desabilitado")
	}

	subject := "[BFX] Teste de configuração de e-mail"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>Configuração de e-mail funcionando</h2>
    <p>Se você recebeu esta mensagem, o SMTP está configurado corretamente.</p>
    <p style="color: #666;">BFX Manager</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
