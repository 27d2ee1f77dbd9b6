// Package aiaction expõe as operações do sistema como ações nomeadas para o
// assistente de IA e para a rota MCP: catálogo com esquema de parâmetros,
// autorização por perfil, escopo do vendedor e trilha de auditoria.
package aiaction

import (
	"sort"

	"bfx/models"
)

// Action ação disponível ao assistente
type Action struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON Schema
	ReadOnly    bool
	Capability  models.Capability
}

// Tool formato MCP de uma ação
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func prop(typ, desc string) map[string]any {
	p := map[string]any{"type": typ}
	if desc != "" {
		p["description"] = desc
	}
	return p
}

func schema(required []string, props map[string]any) map[string]any {
	s := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

var limitProp = prop("number", "Limite de registros")

var catalog = []Action{
	{
		Name:        "listar_vendas",
		Description: "Lista vendas filtrando por período e vendedor.",
		ReadOnly:    true,
		Capability:  models.CapViewSales,
		Parameters: schema(nil, map[string]any{
			"from":       prop("string", "Data inicial YYYY-MM-DD"),
			"to":         prop("string", "Data final YYYY-MM-DD"),
			"vendedorId": prop("number", "ID do vendedor"),
			"limit":      limitProp,
		}),
	},
	{
		Name:        "criar_venda",
		Description: "Cria uma venda.",
		Capability:  models.CapCreateSale,
		Parameters: schema([]string{"dataVenda", "clienteId", "produtoNome", "valorVenda"}, map[string]any{
			"dataVenda":    prop("string", "YYYY-MM-DD"),
			"vendedorId":   prop("number", "ID do vendedor (somente administrador)"),
			"clienteId":    prop("number", ""),
			"produtoNome":  prop("string", ""),
			"quantidade":   prop("number", ""),
			"custoProduto": prop("number", "Custo unitário"),
			"valorVenda":   prop("number", "Preço unitário"),
			"valorFrete":   prop("number", "Frete cobrado do cliente"),
			"custoEnvio":   prop("number", "Custo real de envio"),
			"parcelas":     prop("number", ""),
			"antecipada":   prop("boolean", "Recebível antecipado (padrão: sim)"),
			"notaFiscal":   prop("boolean", ""),
		}),
	},
	{
		Name:        "atualizar_venda",
		Description: "Atualiza venda (admin).",
		Capability:  models.CapEditSale,
		Parameters: schema([]string{"id"}, map[string]any{
			"id":          prop("number", ""),
			"dataVenda":   prop("string", "YYYY-MM-DD"),
			"vendedorId":  prop("number", ""),
			"produtoNome": prop("string", ""),
			"valorVenda":  prop("number", ""),
			"valorFrete":  prop("number", ""),
			"custoEnvio":  prop("number", ""),
			"parcelas":    prop("number", ""),
		}),
	},
	{
		Name:        "listar_clientes",
		Description: "Lista clientes.",
		ReadOnly:    true,
		Capability:  models.CapViewCustomers,
		Parameters: schema(nil, map[string]any{
			"search": prop("string", ""),
			"limit":  limitProp,
		}),
	},
	{
		Name:        "criar_cliente",
		Description: "Cria um cliente.",
		Capability:  models.CapManageCustomers,
		Parameters: schema([]string{"nome"}, map[string]any{
			"nome":      prop("string", ""),
			"tipo":      prop("string", "PF ou PJ"),
			"cpf":       prop("string", ""),
			"cnpj":      prop("string", ""),
			"renda":     prop("number", "Renda mensal declarada"),
			"empresa":   prop("string", ""),
			"telefone":  prop("string", ""),
			"cep":       prop("string", ""),
			"endereco":  prop("string", ""),
			"matricula": prop("string", ""),
		}),
	},
	{
		Name:        "consultar_limite",
		Description: "Consulta a margem consignável disponível de um cliente.",
		ReadOnly:    true,
		Capability:  models.CapViewCustomers,
		Parameters: schema([]string{"clienteId"}, map[string]any{
			"clienteId": prop("number", ""),
		}),
	},
	{
		Name:        "listar_produtos",
		Description: "Lista produtos.",
		ReadOnly:    true,
		Capability:  models.CapViewProducts,
		Parameters: schema(nil, map[string]any{
			"search": prop("string", ""),
			"limit":  limitProp,
		}),
	},
	{
		Name:        "criar_produto",
		Description: "Cria um produto (admin).",
		Capability:  models.CapManageProducts,
		Parameters: schema([]string{"nome"}, map[string]any{
			"nome":        prop("string", ""),
			"marca":       prop("string", ""),
			"ncm":         prop("string", ""),
			"custoPadrao": prop("number", ""),
			"valorVenda":  prop("number", ""),
		}),
	},
	{
		Name:        "listar_despesas",
		Description: "Lista despesas (admin).",
		ReadOnly:    true,
		Capability:  models.CapManageExpenses,
		Parameters: schema(nil, map[string]any{
			"from":  prop("string", "Data inicial YYYY-MM-DD"),
			"to":    prop("string", "Data final YYYY-MM-DD"),
			"limit": limitProp,
		}),
	},
	{
		Name:        "criar_despesa",
		Description: "Cria despesa (admin).",
		Capability:  models.CapManageExpenses,
		Parameters: schema([]string{"descricao", "valor", "dataDespesa"}, map[string]any{
			"descricao":   prop("string", ""),
			"valor":       prop("number", ""),
			"dataDespesa": prop("string", "YYYY-MM-DD"),
			"tipo":        prop("string", "Fixa ou Variável"),
			"categoria":   prop("string", ""),
		}),
	},
	{
		Name:        "atualizar_despesa",
		Description: "Atualiza despesa (admin).",
		Capability:  models.CapManageExpenses,
		Parameters: schema([]string{"id"}, map[string]any{
			"id":          prop("number", ""),
			"dataDespesa": prop("string", "YYYY-MM-DD"),
			"descricao":   prop("string", ""),
			"valor":       prop("number", ""),
			"tipo":        prop("string", "Fixa ou Variável"),
		}),
	},
	{
		Name:        "consultar_dre",
		Description: "Consulta o DRE (demonstração de resultado) de um mês (admin).",
		ReadOnly:    true,
		Capability:  models.CapViewFinance,
		Parameters: schema(nil, map[string]any{
			"mes": prop("string", "YYYY-MM, padrão mês corrente"),
		}),
	},
	{
		Name:        "listar_empresas",
		Description: "Lista empresas parceiras (admin).",
		ReadOnly:    true,
		Capability:  models.CapManagePartners,
		Parameters:  schema(nil, map[string]any{"limit": limitProp}),
	},
	{
		Name:        "criar_empresa",
		Description: "Cria empresa parceira (admin).",
		Capability:  models.CapManagePartners,
		Parameters: schema([]string{"nome"}, map[string]any{
			"nome":          prop("string", ""),
			"responsavelRh": prop("string", ""),
			"telefoneRh":    prop("string", ""),
			"emailRh":       prop("string", ""),
		}),
	},
	{
		Name:        "listar_usuarios",
		Description: "Lista usuários (admin).",
		ReadOnly:    true,
		Capability:  models.CapManageUsers,
		Parameters:  schema(nil, map[string]any{"limit": limitProp}),
	},
	{
		Name:        "criar_usuario",
		Description: "Cria usuário (admin).",
		Capability:  models.CapManageUsers,
		Parameters: schema([]string{"username", "password", "role"}, map[string]any{
			"username":     prop("string", ""),
			"password":     prop("string", ""),
			"role":         prop("string", "admin ou vendedor"),
			"nomeExibicao": prop("string", ""),
		}),
	},
	{
		Name:        "atualizar_usuario",
		Description: "Atualiza usuário (admin).",
		Capability:  models.CapManageUsers,
		Parameters: schema([]string{"id"}, map[string]any{
			"id":           prop("number", ""),
			"username":     prop("string", ""),
			"password":     prop("string", ""),
			"role":         prop("string", "admin ou vendedor"),
			"nomeExibicao": prop("string", ""),
			"metaMensal":   prop("number", ""),
			"comissaoPct":  prop("number", ""),
		}),
	},
}

var byName = func() map[string]*Action {
	m := make(map[string]*Action, len(catalog))
	for i := range catalog {
		m[catalog[i].Name] = &catalog[i]
	}
	return m
}()

// Catalog todas as ações registradas, ordenadas por nome
func Catalog() []Action {
	out := make([]Action, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup busca a ação pelo nome
func Lookup(name string) (Action, bool) {
	a, ok := byName[name]
	if !ok {
		return Action{}, false
	}
	return *a, true
}

// Tools ações que o ator pode ver. No modo plan somente as de leitura.
func Tools(actor Actor, mode Mode) []Tool {
	var out []Tool
	for _, a := range Catalog() {
		if mode == ModePlan && !a.ReadOnly {
			continue
		}
		if !actor.Role.Can(a.Capability) {
			continue
		}
		out = append(out, Tool{Name: a.Name, Description: a.Description, InputSchema: a.Parameters})
	}
	return out
}
