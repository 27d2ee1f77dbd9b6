package api

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseRouter() *gin.Engine {
	h := NewExpenseHandler()
	router := gin.New()
	router.Use(withIdentity(adminIdentity))
	router.POST("/despesas", h.Create)
	router.GET("/despesas", h.List)
	router.PUT("/despesas/:id", h.Update)
	router.DELETE("/despesas/:id", h.Delete)
	router.GET("/despesas/categorias", h.GetCategories)
	router.GET("/despesas/estatisticas", h.GetStatistics)
	return router
}

func sendJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestExpenseHandler_Create_DefaultsToVariable(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `despesas`").WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	w := postJSON(expenseRouter(), "/despesas", `{"expense_date":"2026-03-10","description":" Luz ","category":"Energia","amount":320.5}`)

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Variável", data["type"])
	assert.Equal(t, "Luz", data["description"])
	assert.Equal(t, 320.5, data["amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_Validation(t *testing.T) {
	router := expenseRouter()

	w := postJSON(router, "/despesas", `{"expense_date":"2026-03-10","type":"Mensal","amount":10}`)
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Tipo deve ser Fixa ou Variável", decodeResponse(t, w)["message"])

	w = postJSON(router, "/despesas", `{"expense_date":"10/03/2026","amount":10}`)
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/despesas", `{"expense_date":"2026-03-10","amount":0}`)
	assert.Equal(t, 400, w.Code)
}

func TestExpenseHandler_List_ByMonth(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `despesas` WHERE type = \\? AND expense_date >= \\? AND expense_date < \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT \\* FROM `despesas` WHERE .*ORDER BY expense_date DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "type", "amount"}).AddRow(1, "Aluguel", "Fixa", 3500))

	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, httptest.NewRequest("GET", "/despesas?type=Fixa&mes=2026-03", nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_InvalidMonth(t *testing.T) {
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, httptest.NewRequest("GET", "/despesas?mes=2026-13", nil))
	assert.Equal(t, 400, w.Code)
}

func TestExpenseHandler_Update_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `despesas`").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := sendJSON(expenseRouter(), "PUT", "/despesas/9", `{"amount":50}`)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `despesas` SET `deleted_at`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, httptest.NewRequest("DELETE", "/despesas/9", nil))

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_GetStatistics(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT category, SUM\\(amount\\) as total, COUNT\\(\\*\\) as count FROM `despesas`").
		WillReturnRows(sqlmock.NewRows([]string{"category", "total", "count"}).
			AddRow("Aluguel", 3500.0, 1).
			AddRow("Energia", 320.5, 2))

	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, httptest.NewRequest("GET", "/despesas/estatisticas?mes=2026-03", nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "2026-03", data["mes"])
	assert.Equal(t, 3820.5, data["total_amount"])
	assert.Len(t, data["category_stats"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_GetCategories(t *testing.T) {
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, httptest.NewRequest("GET", "/despesas/categorias", nil))

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, decodeResponse(t, w)["data"], "Aluguel")
}
