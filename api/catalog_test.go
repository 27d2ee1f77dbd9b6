package api

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogRouter() *gin.Engine {
	h := NewCatalogHandler()
	router := gin.New()
	router.Use(withIdentity(adminIdentity))
	router.GET("/produtos", h.ListProducts)
	router.POST("/produtos", h.CreateProduct)
	router.PUT("/produtos/:id", h.UpdateProduct)
	router.GET("/empresas", h.ListPartners)
	router.POST("/empresas", h.CreatePartner)
	return router
}

func TestCatalogHandler_ListProducts_Search(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `produtos` WHERE LOWER\\(name\\) LIKE .* ORDER BY name ASC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sale_price"}).AddRow(1, "Smartphone X", 1999.9))

	w := httptest.NewRecorder()
	catalogRouter().ServeHTTP(w, httptest.NewRequest("GET", "/produtos?q=Smart", nil))

	assert.Equal(t, 200, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `produtos`").WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	w := postJSON(catalogRouter(), "/produtos", `{"name":" Fone BT ","brand":"Acme","standard_cost":40,"sale_price":99}`)

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "Fone BT", data["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogHandler_CreateProduct_NegativePrice(t *testing.T) {
	w := postJSON(catalogRouter(), "/produtos", `{"name":"Fone","sale_price":-1}`)
	assert.Equal(t, 400, w.Code)
}

func TestCatalogHandler_UpdateProduct_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `produtos`").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	w := sendJSON(catalogRouter(), "PUT", "/produtos/8", `{"name":"Fone"}`)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogHandler_CreatePartner_InvalidEmail(t *testing.T) {
	w := postJSON(catalogRouter(), "/empresas", `{"name":"Acme","hr_email":"rh-acme"}`)
	assert.Equal(t, 400, w.Code)
}

func TestCatalogHandler_ListPartners(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `empresas_parceiras` .*ORDER BY name ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Acme").AddRow(2, "Beta"))

	w := httptest.NewRecorder()
	catalogRouter().ServeHTTP(w, httptest.NewRequest("GET", "/empresas", nil))

	assert.Equal(t, 200, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}
