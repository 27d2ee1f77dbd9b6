// Package docs registra a documentação Swagger da API.
// Regenere com: swag init -g main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {
                "description": "Autentica por usuário e senha; devolve o token e grava o cookie de sessão",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Autenticação"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Credenciais",
                        "schema": {
                            "$ref": "#/definitions/api.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login realizado",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.LoginResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Parâmetros inválidos",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "401": {
                        "description": "Usuário ou senha inválidos",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "403": {
                        "description": "Conta bloqueada",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Autenticação"
                ],
                "summary": "Logout",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/auth/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Autenticação"
                ],
                "summary": "Perfil do usuário",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/auth/senha": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Autenticação"
                ],
                "summary": "Trocar senha",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Senhas",
                        "schema": {
                            "$ref": "#/definitions/api.ChangePasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/clientes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Clientes"
                ],
                "summary": "Listar clientes",
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "required": false,
                        "description": "Busca por nome",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página",
                        "type": "integer",
                        "default": 1
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Itens por página",
                        "type": "integer",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "allOf": [
                                                {
                                                    "$ref": "#/definitions/api.PageResponse"
                                                },
                                                {
                                                    "type": "object",
                                                    "properties": {
                                                        "list": {
                                                            "type": "array",
                                                            "items": {
                                                                "$ref": "#/definitions/models.Customer"
                                                            }
                                                        }
                                                    }
                                                }
                                            ]
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Clientes"
                ],
                "summary": "Cadastrar cliente",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Cliente",
                        "schema": {
                            "$ref": "#/definitions/api.CustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Customer"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/clientes/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Clientes"
                ],
                "summary": "Detalhe do cliente",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do cliente",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Customer"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Clientes"
                ],
                "summary": "Alterar cliente",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do cliente",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Cliente",
                        "schema": {
                            "$ref": "#/definitions/api.CustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Customer"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/clientes/{id}/credito": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Estourar o limite não é erro: ok=false indica alerta",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Clientes"
                ],
                "summary": "Checar crédito",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do cliente",
                        "type": "integer"
                    },
                    {
                        "name": "parcela",
                        "in": "query",
                        "required": true,
                        "description": "Valor da nova parcela",
                        "type": "number"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/finance.CreditCheck"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/clientes/{id}/limite": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Resposta sem o envelope padrão: {nome, renda, margemTotal, comprometimentoAtual, margemDisponivel, tetoParcelaMax}",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Clientes"
                ],
                "summary": "Limite do cliente",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do cliente",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/finance.CreditLimit"
                        }
                    },
                    "404": {
                        "description": "Cliente não encontrado",
                        "schema": {
                            "$ref": "#/definitions/api.limitError"
                        }
                    },
                    "500": {
                        "description": "Erro ao consultar limite",
                        "schema": {
                            "$ref": "#/definitions/api.limitError"
                        }
                    }
                }
            }
        },
        "/api/clientes/{id}/perfil-vendas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Última compra, ticket médio, total gasto e capacidade de compra (30% da renda ou 1,2 × ticket médio)",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Clientes"
                ],
                "summary": "Perfil de vendas do cliente",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do cliente",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.CustomerProfile"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/comissoes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Comissão = lucro líquido × percentual do vendedor / 100",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Comissões"
                ],
                "summary": "Comissões por vendedor",
                "parameters": [
                    {
                        "name": "seller_id",
                        "in": "query",
                        "required": false,
                        "description": "Vendedor",
                        "type": "integer"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Data inicial (AAAA-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Data final (AAAA-MM-DD), inclusiva",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/finance.CommissionTotal"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/comissoes/detalhe": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Comissões"
                ],
                "summary": "Comissões detalhadas",
                "parameters": [
                    {
                        "name": "seller_id",
                        "in": "query",
                        "required": false,
                        "description": "Vendedor",
                        "type": "integer"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Data inicial (AAAA-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Data final (AAAA-MM-DD), inclusiva",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/finance.CommissionLine"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/comissoes/relatorio": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "Exportação"
                ],
                "summary": "Exportar comissões",
                "parameters": [
                    {
                        "name": "seller_id",
                        "in": "query",
                        "required": false,
                        "description": "Vendedor",
                        "type": "integer"
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Data inicial (AAAA-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Data final (AAAA-MM-DD), inclusiva",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Arquivo CSV",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/despesas": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Despesas"
                ],
                "summary": "Cadastrar despesa",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Despesa",
                        "schema": {
                            "$ref": "#/definitions/api.CreateExpenseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Expense"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Despesas"
                ],
                "summary": "Listar despesas",
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página",
                        "type": "integer",
                        "default": 1
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Itens por página",
                        "type": "integer",
                        "default": 20
                    },
                    {
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "description": "Fixa ou Variável",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Categoria",
                        "type": "string"
                    },
                    {
                        "name": "mes",
                        "in": "query",
                        "required": false,
                        "description": "Mês (AAAA-MM)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "allOf": [
                                                {
                                                    "$ref": "#/definitions/api.PageResponse"
                                                },
                                                {
                                                    "type": "object",
                                                    "properties": {
                                                        "list": {
                                                            "type": "array",
                                                            "items": {
                                                                "$ref": "#/definitions/models.Expense"
                                                            }
                                                        }
                                                    }
                                                }
                                            ]
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/despesas/categorias": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Despesas"
                ],
                "summary": "Categorias de despesa",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "type": "string"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/despesas/estatisticas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Despesas"
                ],
                "summary": "Despesas por categoria",
                "parameters": [
                    {
                        "name": "mes",
                        "in": "query",
                        "required": false,
                        "description": "Mês (AAAA-MM), padrão mês atual",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/despesas/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Despesas"
                ],
                "summary": "Alterar despesa",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID da despesa",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Campos",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateExpenseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Expense"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Despesas"
                ],
                "summary": "Excluir despesa",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID da despesa",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/empresas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Cadastros"
                ],
                "summary": "Listar empresas conveniadas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.PartnerCompany"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Cadastros"
                ],
                "summary": "Cadastrar empresa conveniada",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Empresa",
                        "schema": {
                            "$ref": "#/definitions/api.PartnerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.PartnerCompany"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/financeiro/dre": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Financeiro"
                ],
                "summary": "DRE do mês",
                "parameters": [
                    {
                        "name": "mes",
                        "in": "query",
                        "required": false,
                        "description": "Mês (AAAA-MM), padrão mês atual",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/finance.DRE"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/financeiro/dre/enviar": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Financeiro"
                ],
                "summary": "Enviar DRE por e-mail",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Mês e destinatário",
                        "schema": {
                            "$ref": "#/definitions/api.SendDRERequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/financeiro/email/teste": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Financeiro"
                ],
                "summary": "Testar envio de e-mail",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Destinatário",
                        "schema": {
                            "$ref": "#/definitions/api.TestEmailRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/financeiro/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Exportação"
                ],
                "summary": "Exportar relatório financeiro",
                "parameters": [
                    {
                        "name": "mes",
                        "in": "query",
                        "required": false,
                        "description": "Mês (AAAA-MM), padrão mês atual",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Planilha XLSX",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/financeiro/fluxo": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Financeiro"
                ],
                "summary": "Fluxo de caixa",
                "parameters": [
                    {
                        "name": "mes",
                        "in": "query",
                        "required": false,
                        "description": "Mês inicial (AAAA-MM), padrão mês atual",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/finance.CashFlowRow"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/ia/provedores": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Provedores de IA"
                ],
                "summary": "Listar provedores de IA",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.AIProvider"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Provedores de IA"
                ],
                "summary": "Cadastrar provedor de IA",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Provedor",
                        "schema": {
                            "$ref": "#/definitions/api.CreateAIProviderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AIProvider"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/ia/provedores/ordem": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Provedores de IA"
                ],
                "summary": "Ordenar provedores de IA",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "IDs na nova ordem",
                        "schema": {
                            "$ref": "#/definitions/api.ReorderAIProvidersRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/ia/provedores/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Provedores de IA"
                ],
                "summary": "Alterar provedor de IA",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do provedor",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Campos",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateAIProviderRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AIProvider"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Provedores de IA"
                ],
                "summary": "Excluir provedor de IA",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do provedor",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/ia/provedores/{id}/teste": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Provedores de IA"
                ],
                "summary": "Testar provedor de IA",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do provedor",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "502": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/importacao/batch": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Cria os clientes ausentes pelo nome; parcela = (valor + frete) / parcelas. Linhas sem cliente são ignoradas.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vendas"
                ],
                "summary": "Importar vendas",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Linhas da planilha",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.ImportRow"
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/service.ImportResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/inteligencia/chat": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "plan devolve ações pendentes; auto executa somente leituras; execute roda a ação confirmada",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inteligência"
                ],
                "summary": "Conversar com o assistente",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Mensagem",
                        "schema": {
                            "$ref": "#/definitions/api.ChatRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/aiaction.Reply"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "403": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/inteligencia/historico": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inteligência"
                ],
                "summary": "Histórico do assistente",
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página",
                        "type": "integer",
                        "default": 1
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Itens por página",
                        "type": "integer",
                        "default": 20
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "allOf": [
                                                {
                                                    "$ref": "#/definitions/api.PageResponse"
                                                },
                                                {
                                                    "type": "object",
                                                    "properties": {
                                                        "list": {
                                                            "type": "array",
                                                            "items": {
                                                                "$ref": "#/definitions/models.AIChatMessage"
                                                            }
                                                        }
                                                    }
                                                }
                                            ]
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/inteligencia/historico/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inteligência"
                ],
                "summary": "Apagar mensagem do histórico",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID da mensagem",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/mcp": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MCP"
                ],
                "summary": "Listar ferramentas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "object",
                                            "additionalProperties": {
                                                "type": "array",
                                                "items": {
                                                    "$ref": "#/definitions/aiaction.Tool"
                                                }
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MCP"
                ],
                "summary": "Chamar ferramenta",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Ferramenta e parâmetros",
                        "schema": {
                            "$ref": "#/definitions/api.MCPCallRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "403": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/produtos": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Cadastros"
                ],
                "summary": "Listar produtos",
                "parameters": [
                    {
                        "name": "q",
                        "in": "query",
                        "required": false,
                        "description": "Busca por nome",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Product"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Cadastros"
                ],
                "summary": "Cadastrar produto",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Produto",
                        "schema": {
                            "$ref": "#/definitions/api.ProductRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Product"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/api/produtos/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Cadastros"
                ],
                "summary": "Alterar produto",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do produto",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Produto",
                        "schema": {
                            "$ref": "#/definitions/api.ProductRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Product"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/recibo": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vendas"
                ],
                "summary": "Recibo da venda",
                "parameters": [
                    {
                        "name": "id",
                        "in": "query",
                        "required": true,
                        "description": "UUID da venda",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.ReceiptResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/relatorios/antecipacao": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Vendas escolhidas com total geral e resumo por empresa conveniada",
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "Exportação"
                ],
                "summary": "Exportar relatório de antecipação",
                "parameters": [
                    {
                        "name": "ids",
                        "in": "query",
                        "required": true,
                        "description": "IDs das vendas separados por vírgula",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Arquivo CSV",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/relatorios/vendas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "Exportação"
                ],
                "summary": "Exportar relatório de vendas",
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Data inicial (AAAA-MM-DD), padrão início do mês",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Data final (AAAA-MM-DD), inclusiva",
                        "type": "string"
                    },
                    {
                        "name": "empresa",
                        "in": "query",
                        "required": false,
                        "description": "Empresa conveniada do cliente (all para todas)",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Arquivo CSV",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/resumo": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Quantidade de vendas, faturamento, comissão e progresso da meta do usuário logado",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Painel"
                ],
                "summary": "Resumo do vendedor",
                "parameters": [
                    {
                        "name": "mes",
                        "in": "query",
                        "required": false,
                        "description": "Mês (AAAA-MM), padrão mês atual",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.SellerSummaryResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/usuarios": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Usuários"
                ],
                "summary": "Listar usuários",
                "parameters": [
                    {
                        "name": "role",
                        "in": "query",
                        "required": false,
                        "description": "admin ou vendedor",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.User"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Usuários"
                ],
                "summary": "Cadastrar usuário",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Usuário",
                        "schema": {
                            "$ref": "#/definitions/api.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/usuarios/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Usuários"
                ],
                "summary": "Alterar usuário",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do usuário",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Campos",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Usuários"
                ],
                "summary": "Excluir usuário",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do usuário",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/usuarios/{id}/senha": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Usuários"
                ],
                "summary": "Redefinir senha",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do usuário",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Nova senha",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateUserPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/usuarios/{id}/status": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Usuários"
                ],
                "summary": "Bloquear/desbloquear usuário",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID do usuário",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Status",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateUserStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/vendas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vendas"
                ],
                "summary": "Listar vendas",
                "parameters": [
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Página",
                        "type": "integer",
                        "default": 1
                    },
                    {
                        "name": "page_size",
                        "in": "query",
                        "required": false,
                        "description": "Itens por página",
                        "type": "integer",
                        "default": 20
                    },
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Data inicial (AAAA-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Data final (AAAA-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "seller_id",
                        "in": "query",
                        "required": false,
                        "description": "Vendedor (somente admin)",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "allOf": [
                                                {
                                                    "$ref": "#/definitions/api.PageResponse"
                                                },
                                                {
                                                    "type": "object",
                                                    "properties": {
                                                        "list": {
                                                            "type": "array",
                                                            "items": {
                                                                "$ref": "#/definitions/models.Sale"
                                                            }
                                                        }
                                                    }
                                                }
                                            ]
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Calcula parcela e lucro; quando há cliente devolve também a análise de crédito (consultiva)",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vendas"
                ],
                "summary": "Registrar venda",
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Venda",
                        "schema": {
                            "$ref": "#/definitions/api.CreateSaleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/api.CreateSaleResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        },
        "/api/vendas/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vendas"
                ],
                "summary": "Detalhe da venda",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID da venda",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Sale"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vendas"
                ],
                "summary": "Alterar venda",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID da venda",
                        "type": "integer"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Campos",
                        "schema": {
                            "$ref": "#/definitions/api.UpdateSaleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/api.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Sale"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Vendas"
                ],
                "summary": "Excluir venda",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID da venda",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    },
                    "404": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/api.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "aiaction.Executed": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "params": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                },
                "result": {
                    "type": "object"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "aiaction.Link": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "aiaction.PlannedAction": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "params": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                }
            }
        },
        "aiaction.Reply": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "actions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/aiaction.PlannedAction"
                    }
                },
                "executed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/aiaction.Executed"
                    }
                },
                "links": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/aiaction.Link"
                    }
                },
                "messageId": {
                    "type": "integer"
                }
            }
        },
        "aiaction.Tool": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "inputSchema": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                }
            }
        },
        "api.ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "old_password": {
                    "type": "string"
                },
                "new_password": {
                    "type": "string"
                }
            },
            "required": [
                "new_password",
                "old_password"
            ]
        },
        "api.ChatRequest": {
            "type": "object",
            "properties": {
                "prompt": {
                    "type": "string"
                },
                "mode": {
                    "type": "string",
                    "example": "plan"
                },
                "providerId": {
                    "type": "integer"
                },
                "action": {
                    "$ref": "#/definitions/aiaction.PlannedAction"
                }
            }
        },
        "api.CreateAIProviderRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "openai"
                },
                "base_url": {
                    "type": "string",
                    "example": "https://api.openai.com/v1"
                },
                "api_key": {
                    "type": "string",
                    "example": "sk-..."
                },
                "model": {
                    "type": "string",
                    "example": "gpt-4o-mini"
                },
                "sort_order": {
                    "type": "integer"
                },
                "enabled": {
                    "type": "boolean"
                }
            },
            "required": [
                "api_key",
                "base_url",
                "model",
                "name"
            ]
        },
        "api.CreateExpenseRequest": {
            "type": "object",
            "properties": {
                "expense_date": {
                    "type": "string",
                    "example": "2026-03-10"
                },
                "description": {
                    "type": "string",
                    "example": "Aluguel da loja"
                },
                "category": {
                    "type": "string",
                    "example": "Aluguel"
                },
                "type": {
                    "type": "string",
                    "example": "Fixa"
                },
                "amount": {
                    "type": "number",
                    "example": 3500.0
                }
            },
            "required": [
                "amount",
                "expense_date"
            ]
        },
        "api.CreateSaleRequest": {
            "type": "object",
            "properties": {
                "sale_date": {
                    "type": "string",
                    "example": "2026-03-15"
                },
                "seller_id": {
                    "type": "integer"
                },
                "customer_id": {
                    "type": "integer"
                },
                "product_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "unit_price": {
                    "type": "number"
                },
                "unit_cost": {
                    "type": "number"
                },
                "freight": {
                    "type": "number"
                },
                "shipping_cost": {
                    "type": "number"
                },
                "installments": {
                    "type": "integer"
                },
                "anticipated": {
                    "type": "boolean"
                },
                "has_invoice": {
                    "type": "boolean"
                },
                "invoice_tax_pct": {
                    "type": "number"
                }
            },
            "required": [
                "product_name",
                "unit_price"
            ]
        },
        "api.CreateSaleResponse": {
            "type": "object",
            "properties": {
                "sale": {
                    "$ref": "#/definitions/models.Sale"
                },
                "credit": {
                    "$ref": "#/definitions/finance.CreditCheck"
                }
            }
        },
        "api.CreateUserRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "example": "maria"
                },
                "password": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string",
                    "example": "Maria Souza"
                },
                "role": {
                    "type": "string",
                    "example": "vendedor"
                },
                "commission_pct": {
                    "type": "number"
                },
                "monthly_target": {
                    "type": "number"
                }
            },
            "required": [
                "password",
                "username"
            ]
        },
        "api.CustomerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "cpf": {
                    "type": "string"
                },
                "cnpj": {
                    "type": "string"
                },
                "income": {
                    "type": "number"
                },
                "company": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "cep": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "registration": {
                    "type": "string"
                },
                "partner_company_id": {
                    "type": "integer"
                }
            },
            "required": [
                "name"
            ]
        },
        "api.LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "example": "admin"
                },
                "password": {
                    "type": "string",
                    "example": "admin"
                }
            },
            "required": [
                "password",
                "username"
            ]
        },
        "api.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user_info": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "api.MCPCallRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "params": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object"
                    }
                }
            }
        },
        "api.PageResponse": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "list": {
                    "type": "object"
                }
            }
        },
        "api.PartnerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "hr_contact": {
                    "type": "string"
                },
                "hr_phone": {
                    "type": "string"
                },
                "hr_email": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "api.ProductRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Smartphone X"
                },
                "brand": {
                    "type": "string"
                },
                "ncm": {
                    "type": "string"
                },
                "standard_cost": {
                    "type": "number"
                },
                "sale_price": {
                    "type": "number"
                }
            },
            "required": [
                "name"
            ]
        },
        "api.ReceiptResponse": {
            "type": "object",
            "properties": {
                "sale": {
                    "$ref": "#/definitions/models.Sale"
                },
                "customer": {
                    "type": "string"
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "api.ReorderAIProvidersRequest": {
            "type": "object",
            "properties": {
                "provider_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            },
            "required": [
                "provider_ids"
            ]
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                }
            }
        },
        "api.SellerSummaryResponse": {
            "type": "object",
            "properties": {
                "mes": {
                    "type": "string"
                },
                "quantidadeVendas": {
                    "type": "integer"
                },
                "faturamento": {
                    "type": "number"
                },
                "lucroLiquido": {
                    "type": "number"
                },
                "comissao": {
                    "type": "number"
                },
                "meta": {
                    "type": "number"
                },
                "percentualMeta": {
                    "type": "number"
                }
            }
        },
        "api.SendDRERequest": {
            "type": "object",
            "properties": {
                "mes": {
                    "type": "string",
                    "example": "2026-03"
                },
                "to": {
                    "type": "string"
                }
            }
        },
        "api.TestEmailRequest": {
            "type": "object",
            "properties": {
                "to": {
                    "type": "string"
                }
            }
        },
        "api.UpdateAIProviderRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "base_url": {
                    "type": "string"
                },
                "api_key": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "enabled": {
                    "type": "boolean"
                }
            }
        },
        "api.UpdateExpenseRequest": {
            "type": "object",
            "properties": {
                "expense_date": {
                    "type": "string",
                    "example": "2026-03-10"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                }
            }
        },
        "api.UpdateSaleRequest": {
            "type": "object",
            "properties": {
                "sale_date": {
                    "type": "string"
                },
                "seller_id": {
                    "type": "integer"
                },
                "product_name": {
                    "type": "string"
                },
                "sale_value": {
                    "type": "number"
                },
                "freight_value": {
                    "type": "number"
                },
                "shipping_cost": {
                    "type": "number"
                },
                "installment_count": {
                    "type": "integer"
                }
            }
        },
        "api.UpdateUserPasswordRequest": {
            "type": "object",
            "properties": {
                "new_password": {
                    "type": "string"
                }
            },
            "required": [
                "new_password"
            ]
        },
        "api.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "display_name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "commission_pct": {
                    "type": "number"
                },
                "monthly_target": {
                    "type": "number"
                }
            }
        },
        "api.UpdateUserStatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "api.limitError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "finance.CashFlowRow": {
            "type": "object",
            "properties": {
                "mes": {
                    "type": "string"
                },
                "chave": {
                    "type": "string"
                },
                "entradas": {
                    "type": "number"
                },
                "saidas": {
                    "type": "number"
                },
                "saldo": {
                    "type": "number"
                }
            }
        },
        "finance.CommissionLine": {
            "type": "object",
            "properties": {
                "vendaId": {
                    "type": "integer"
                },
                "data": {
                    "type": "string"
                },
                "vendedorId": {
                    "type": "integer"
                },
                "vendedor": {
                    "type": "string"
                },
                "cliente": {
                    "type": "string"
                },
                "produto": {
                    "type": "string"
                },
                "valorVenda": {
                    "type": "number"
                },
                "lucroLiquido": {
                    "type": "number"
                },
                "percentualComissao": {
                    "type": "number"
                },
                "valorComissao": {
                    "type": "number"
                }
            }
        },
        "finance.CommissionTotal": {
            "type": "object",
            "properties": {
                "vendedorId": {
                    "type": "integer"
                },
                "vendedor": {
                    "type": "string"
                },
                "valorComissao": {
                    "type": "number"
                }
            }
        },
        "finance.CreditCheck": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                },
                "disp": {
                    "type": "number"
                },
                "tomado": {
                    "type": "number"
                },
                "teto": {
                    "type": "number"
                }
            }
        },
        "finance.CreditLimit": {
            "type": "object",
            "properties": {
                "nome": {
                    "type": "string"
                },
                "renda": {
                    "type": "number"
                },
                "margemTotal": {
                    "type": "number"
                },
                "comprometimentoAtual": {
                    "type": "number"
                },
                "margemDisponivel": {
                    "type": "number"
                },
                "tetoParcelaMax": {
                    "type": "number"
                }
            }
        },
        "finance.DRE": {
            "type": "object",
            "properties": {
                "mes": {
                    "type": "string"
                },
                "receita": {
                    "type": "number"
                },
                "custosVar": {
                    "type": "number"
                },
                "margem": {
                    "type": "number"
                },
                "fixas": {
                    "type": "number"
                },
                "lucro": {
                    "type": "number"
                },
                "margemPct": {
                    "type": "number"
                },
                "pontoEq": {
                    "type": "number"
                },
                "metaGlobal": {
                    "type": "number"
                },
                "detalhe": {
                    "$ref": "#/definitions/finance.DREDetail"
                },
                "vendedores": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/finance.SellerCommission"
                    }
                },
                "vendedoresNaoEncontrados": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "qtdVendas": {
                    "type": "integer"
                },
                "qtdDespesas": {
                    "type": "integer"
                }
            }
        },
        "finance.DREDetail": {
            "type": "object",
            "properties": {
                "cmv": {
                    "type": "number"
                },
                "comissoes": {
                    "type": "number"
                },
                "variaveis": {
                    "type": "number"
                },
                "freteReal": {
                    "type": "number"
                }
            }
        },
        "finance.SellerCommission": {
            "type": "object",
            "properties": {
                "vendedorId": {
                    "type": "integer"
                },
                "vendedor": {
                    "type": "string"
                },
                "receita": {
                    "type": "number"
                },
                "pct": {
                    "type": "number"
                },
                "comissao": {
                    "type": "number"
                },
                "cadastrado": {
                    "type": "boolean"
                }
            }
        },
        "models.AIChatMessage": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                },
                "provider_id": {
                    "type": "integer"
                },
                "mode": {
                    "type": "string"
                },
                "user_text": {
                    "type": "string"
                },
                "ai_text": {
                    "type": "string"
                },
                "actions": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "models.AIProvider": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "base_url": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "sort_order": {
                    "type": "integer"
                },
                "enabled": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Customer": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "cpf": {
                    "type": "string"
                },
                "cnpj": {
                    "type": "string"
                },
                "income": {
                    "type": "number"
                },
                "company": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "cep": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "registration": {
                    "type": "string"
                },
                "partner_company_id": {
                    "type": "integer"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Expense": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "expense_date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "amount": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.PartnerCompany": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "hr_contact": {
                    "type": "string"
                },
                "hr_phone": {
                    "type": "string"
                },
                "hr_email": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "brand": {
                    "type": "string"
                },
                "ncm": {
                    "type": "string"
                },
                "standard_cost": {
                    "type": "number"
                },
                "sale_price": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.Sale": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "uuid": {
                    "type": "string"
                },
                "sale_date": {
                    "type": "string"
                },
                "seller_id": {
                    "type": "integer"
                },
                "seller": {
                    "type": "string"
                },
                "customer_id": {
                    "type": "integer"
                },
                "product_name": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "product_cost": {
                    "type": "number"
                },
                "sale_value": {
                    "type": "number"
                },
                "freight_value": {
                    "type": "number"
                },
                "shipping_cost": {
                    "type": "number"
                },
                "installment_count": {
                    "type": "integer"
                },
                "installment_value": {
                    "type": "number"
                },
                "anticipated": {
                    "type": "boolean"
                },
                "has_invoice": {
                    "type": "boolean"
                },
                "invoice_tax_pct": {
                    "type": "number"
                },
                "net_profit": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "username": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "commission_pct": {
                    "type": "number"
                },
                "monthly_target": {
                    "type": "number"
                },
                "status": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "service.CustomerProfile": {
            "type": "object",
            "properties": {
                "cliente": {
                    "$ref": "#/definitions/service.ProfileCustomer"
                },
                "ultimaVenda": {
                    "$ref": "#/definitions/service.LastSale"
                },
                "metricas": {
                    "$ref": "#/definitions/service.ProfileMetrics"
                },
                "produtosFrequentes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "service.ImportResult": {
            "type": "object",
            "properties": {
                "importadas": {
                    "type": "integer"
                },
                "ignoradas": {
                    "type": "integer"
                },
                "clientesCriados": {
                    "type": "integer"
                }
            }
        },
        "service.ImportRow": {
            "type": "object",
            "properties": {
                "cliente": {
                    "type": "string"
                },
                "dataVenda": {
                    "type": "string",
                    "example": "2026-03-15"
                },
                "vendedor": {
                    "type": "string"
                },
                "produto": {
                    "type": "string"
                },
                "valor": {
                    "type": "number"
                },
                "frete": {
                    "type": "number"
                },
                "envio": {
                    "type": "number"
                },
                "custo": {
                    "type": "number"
                },
                "parcelas": {
                    "type": "integer"
                },
                "antecipada": {
                    "type": "boolean"
                }
            }
        },
        "service.LastSale": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "data": {
                    "type": "string"
                },
                "produtos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "valorTotal": {
                    "type": "number"
                },
                "parcelas": {
                    "type": "integer"
                }
            }
        },
        "service.ProfileCustomer": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "nome": {
                    "type": "string"
                },
                "renda": {
                    "type": "number"
                },
                "tipo": {
                    "type": "string"
                }
            }
        },
        "service.ProfileMetrics": {
            "type": "object",
            "properties": {
                "ticketMedio": {
                    "type": "number"
                },
                "totalCompras": {
                    "type": "integer"
                },
                "valorTotalGasto": {
                    "type": "number"
                },
                "capacidadeCompra": {
                    "type": "number"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BFX Manager API",
	Description:      "Vendas, clientes, crédito, DRE, fluxo de caixa, comissões e assistente de IA",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
