package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bfx/config"
	"bfx/finance"
	"bfx/middleware"
	"bfx/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, BaseURL: "http://bfx.test"},
		JWT:    config.JWTConfig{Secret: "router-secret", ExpireTime: time.Hour},
		AI:     config.AIConfig{TimeoutSeconds: 5},
	}
	middleware.InitJWT(cfg)
	return SetupRouter(cfg, finance.DefaultRules())
}

func bearer(t *testing.T, id uint, role models.Role) string {
	token, err := middleware.GenerateToken(&models.User{ID: id, Username: "u", Role: role}, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	router := testRouter(t)
	for _, path := range []string{"/api/clientes/1/limite", "/api/vendas", "/api/financeiro/dre", "/api/resumo"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestAdminRoutes_ForbiddenForSeller(t *testing.T) {
	router := testRouter(t)
	auth := bearer(t, 2, models.RoleSeller)

	for _, path := range []string{
		"/api/despesas",
		"/api/financeiro/dre",
		"/api/financeiro/export",
		"/api/comissoes",
		"/api/usuarios",
		"/api/ia/provedores",
		"/api/empresas",
		"/api/relatorios/vendas",
		"/api/relatorios/antecipacao?ids=1",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", auth)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}

	for _, path := range []string{"/api/vendas/1", "/api/importacao/batch"} {
		method := http.MethodDelete
		if path == "/api/importacao/batch" {
			method = http.MethodPost
		}
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", auth)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}
}

func TestSwaggerDoc_ListsRoutes(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Contains(t, doc.Paths["/api/clientes/{id}/limite"], "get")
	assert.Contains(t, doc.Paths["/api/vendas"], "post")
	assert.Contains(t, doc.Paths["/api/importacao/batch"], "post")
	assert.Contains(t, doc.Definitions, "finance.CreditLimit")
	assert.Contains(t, doc.Definitions, "api.Response")
}
