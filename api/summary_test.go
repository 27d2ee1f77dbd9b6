package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"bfx/finance"
	"bfx/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryRouter() *gin.Engine {
	h := NewSummaryHandler(finance.DefaultRules())
	router := gin.New()
	router.Use(withIdentity(sellerIdentity))
	router.GET("/resumo", h.GetSellerSummary)
	return router
}

func TestSummaryHandler_GetSellerSummary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(2, "ana", "hash", "Ana", "vendedor", 2.0, 10000.0, models.UserStatusActive, time.Now(), time.Now(), nil))
	mock.ExpectQuery("SELECT \\* FROM `vendas` WHERE seller_id = \\? AND sale_date >= \\? AND sale_date < \\?").
		WithArgs(sellerIdentity.UserID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sale_value", "freight_value", "net_profit"}).
			AddRow(1, 1000.0, 50.0, 200.0).
			AddRow(2, 500.0, 0.0, 100.0))

	w := httptest.NewRecorder()
	summaryRouter().ServeHTTP(w, httptest.NewRequest("GET", "/resumo?mes=2026-03", nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "2026-03", data["mes"])
	assert.Equal(t, float64(2), data["quantidadeVendas"])
	assert.Equal(t, 1550.0, data["faturamento"])
	assert.Equal(t, 300.0, data["lucroLiquido"])
	assert.Equal(t, 6.0, data["comissao"])
	assert.Equal(t, 15.5, data["percentualMeta"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryHandler_InvalidMonth(t *testing.T) {
	w := httptest.NewRecorder()
	summaryRouter().ServeHTTP(w, httptest.NewRequest("GET", "/resumo?mes=03-2026", nil))
	assert.Equal(t, 400, w.Code)
}
