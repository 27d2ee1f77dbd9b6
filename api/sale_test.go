package api

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"bfx/finance"
	"bfx/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleRouter(id middleware.Identity) *gin.Engine {
	h := NewSaleHandler(finance.DefaultRules())
	router := gin.New()
	router.Use(withIdentity(id))
	router.GET("/vendas", h.List)
	router.POST("/vendas", h.Create)
	router.GET("/vendas/:id", h.Get)
	router.PUT("/vendas/:id", h.Update)
	router.DELETE("/vendas/:id", h.Delete)
	router.GET("/recibo", h.Receipt)
	router.POST("/importacao/batch", h.ImportBatch)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSaleHandler_Create_SellerIsForcedToSelf(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// o seller_id do corpo é ignorado: o rótulo vem do usuário da sessão
	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(2, "ana", "Ana"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vendas`").
		WillReturnResult(sqlmock.NewResult(30, 1))
	mock.ExpectCommit()

	body := `{"sale_date":"2026-03-10","seller_id":9,"product_name":"Fone","unit_price":300,"unit_cost":120,"installments":3}`
	w := postJSON(saleRouter(sellerIdentity), "/vendas", body)

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	sale := data["sale"].(map[string]interface{})
	assert.Equal(t, float64(2), sale["seller_id"])
	assert.Equal(t, "Ana", sale["seller"])
	assert.InDelta(t, 100, sale["installment_value"], 0.001)
	assert.InDelta(t, 180, sale["net_profit"], 0.001)
	assert.NotEmpty(t, sale["uuid"])
	assert.NotContains(t, data, "credit")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Create_WithCustomerReturnsCredit(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(2, "ana", "Ana"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clientes`").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vendas`").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "income"}).AddRow(7, "Maria", 1000.0))
	mock.ExpectQuery("SELECT .* FROM `vendas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id"}))

	body := `{"customer_id":7,"product_name":"TV","unit_price":1200,"installments":3}`
	w := postJSON(saleRouter(sellerIdentity), "/vendas", body)

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	credit := data["credit"].(map[string]interface{})
	// parcela de 400 acima do teto de 300: alerta, não erro
	assert.Equal(t, false, credit["ok"])
	assert.InDelta(t, 300, credit["teto"], 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Create_BackdatedSaleNotCountedTwice(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// venda do dia 5 do mês passado: a parcela já está ativa no mês corrente
	now := time.Now()
	saleDate := time.Date(now.Year(), now.Month()-1, 5, 0, 0, 0, 0, time.Local)

	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(2, "ana", "Ana"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clientes`").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vendas`").
		WillReturnResult(sqlmock.NewResult(32, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "income"}).AddRow(7, "Maria", 1000.0))
	mock.ExpectQuery("SELECT .* FROM `vendas` WHERE customer_id = \\? AND id <> \\?").
		WithArgs(7, 32).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id"}))

	body := `{"sale_date":"` + saleDate.Format("2006-01-02") + `","customer_id":7,"product_name":"TV","unit_price":600,"installments":3}`
	w := postJSON(saleRouter(sellerIdentity), "/vendas", body)

	assert.Equal(t, 200, w.Code)
	credit := decodeResponse(t, w)["data"].(map[string]interface{})["credit"].(map[string]interface{})
	assert.Equal(t, true, credit["ok"])
	assert.InDelta(t, 0, credit["tomado"], 0.001)
	assert.InDelta(t, 300, credit["disp"], 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Create_CreditFailureStillRegistersSale(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(2, "ana", "Ana"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `vendas`").
		WillReturnResult(sqlmock.NewResult(33, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `clientes`").WillReturnError(errors.New("conexão perdida"))

	w := postJSON(saleRouter(sellerIdentity), "/vendas", `{"customer_id":7,"product_name":"TV","unit_price":600}`)

	assert.Equal(t, 200, w.Code)
	assert.NotContains(t, decodeResponse(t, w)["data"], "credit")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Create_UnknownCustomer(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(2, "ana", "Ana"))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := postJSON(saleRouter(sellerIdentity), "/vendas", `{"customer_id":77,"product_name":"TV","unit_price":1200}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Cliente não encontrado", decodeResponse(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Create_InvalidDate(t *testing.T) {
	w := postJSON(saleRouter(sellerIdentity), "/vendas", `{"sale_date":"10/03/2026","product_name":"TV","unit_price":10}`)
	assert.Equal(t, 400, w.Code)
}

func TestSaleHandler_List_SellerScoped(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `vendas` WHERE seller_id = \\?").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM `vendas` WHERE seller_id = \\? .*ORDER BY sale_date DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sale_date", "seller_id"}).AddRow(1, time.Now(), 2))

	// seller_id de outro vendedor é ignorado
	w := httptest.NewRecorder()
	saleRouter(sellerIdentity).ServeHTTP(w, httptest.NewRequest("GET", "/vendas?seller_id=5", nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(20), data["page_size"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_List_AdminFiltersBySeller(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `vendas` WHERE seller_id = \\?").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM `vendas`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	saleRouter(adminIdentity).ServeHTTP(w, httptest.NewRequest("GET", "/vendas?seller_id=5&page_size=500", nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["page_size"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Get_OtherSellerIsHidden(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `vendas`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "sale_date", "seller_id"}).AddRow(4, time.Now(), 9))

	w := httptest.NewRecorder()
	saleRouter(sellerIdentity).ServeHTTP(w, httptest.NewRequest("GET", "/vendas/4", nil))

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `vendas` SET `deleted_at`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/vendas/404", nil)
	w := httptest.NewRecorder()
	saleRouter(adminIdentity).ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "Venda não encontrada", decodeResponse(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Receipt(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	token := "0b8f3f0e-8a1d-4c53-9f57-3c1f0d1d2a10"
	mock.ExpectQuery("SELECT .* FROM `vendas` WHERE uuid = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "sale_date", "customer_id", "product_name", "sale_value", "freight_value"}).
			AddRow(12, token, time.Now(), 7, "TV", 1200.0, 50.0))
	mock.ExpectQuery("SELECT `id`,`name` FROM `clientes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Maria"))

	w := httptest.NewRecorder()
	saleRouter(adminIdentity).ServeHTTP(w, httptest.NewRequest("GET", "/recibo?id="+token, nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Maria", data["customer"])
	assert.InDelta(t, 1250, data["total"], 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_Receipt_Missing(t *testing.T) {
	w := httptest.NewRecorder()
	saleRouter(adminIdentity).ServeHTTP(w, httptest.NewRequest("GET", "/recibo", nil))
	assert.Equal(t, 400, w.Code)
}

func TestSaleHandler_ImportBatch(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id`,`username`,`display_name` FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).AddRow(2, "ana", "Ana"))
	mock.ExpectQuery("SELECT \\* FROM `clientes` WHERE name = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO `clientes`").WillReturnResult(sqlmock.NewResult(60, 1))
	mock.ExpectExec("INSERT INTO `vendas`").WillReturnResult(sqlmock.NewResult(200, 1))
	mock.ExpectCommit()

	body := `[{"cliente":"Carla","dataVenda":"2026-03-10","vendedor":"ana","produto":"TV","valor":900,"frete":100,"parcelas":4,"antecipada":true}]`
	w := postJSON(saleRouter(adminIdentity), "/importacao/batch", body)

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["importadas"])
	assert.Equal(t, float64(1), data["clientesCriados"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleHandler_ImportBatch_Invalid(t *testing.T) {
	router := saleRouter(adminIdentity)

	w := postJSON(router, "/importacao/batch", `{"cliente":"Carla"}`)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Dados inválidos", decodeResponse(t, w)["message"])

	w = postJSON(router, "/importacao/batch", `[]`)
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/importacao/batch", `[{"cliente":"Carla","dataVenda":"ontem","valor":10}]`)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, decodeResponse(t, w)["message"], "linha 1")
}
