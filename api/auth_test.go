package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bfx/config"
	"bfx/database"
	"bfx/middleware"
	"bfx/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

// withIdentity simula a sessão que o JWTAuth gravaria no contexto
func withIdentity(id middleware.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetIdentity(c, id)
		c.Next()
	}
}

var (
	adminIdentity  = middleware.Identity{UserID: 1, Username: "admin", DisplayName: "Administrador", Role: models.RoleAdmin}
	sellerIdentity = middleware.Identity{UserID: 2, Username: "ana", DisplayName: "Ana", Role: models.RoleSeller}
)

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug", BaseURL: "http://bfx.test"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
}

var userColumns = []string{"id", "username", "password", "display_name", "role", "commission_pct", "monthly_target", "status", "created_at", "updated_at", "deleted_at"}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	cfg := testConfig()
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	defer func() { config.GlobalConfig = nil }()

	// o usuário é buscado já normalizado
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(2, "ana", string(hashed), "Ana", "vendedor", 2.0, 0.0, models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	body := `{"username":"  ANA ","password":"segredo"}`
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, float64(200), resp["code"])
	data := resp["data"].(map[string]interface{})
	token := data["token"].(string)
	assert.NotEmpty(t, token)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.SessionCookie+"="+token)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")

	claims, err := middleware.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Equal(t, models.RoleSeller, claims.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	cfg := testConfig()
	middleware.InitJWT(cfg)

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(2, "ana", string(hashed), "Ana", "vendedor", 2.0, 0.0, models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"ana","password":"errada"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_Locked(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("segredo"), bcrypt.MinCost)
	cfg := testConfig()

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "bruno", string(hashed), "Bruno", "vendedor", 2.0, 0.0, models.UserStatusLocked, time.Now(), time.Now(), nil))

	router := gin.New()
	router.POST("/login", NewAuthHandler(cfg).Login)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"bruno","password":"segredo"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 403, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns))

	router := gin.New()
	router.POST("/login", NewAuthHandler(testConfig()).Login)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"ninguem","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 401, w.Code)
	assert.Equal(t, "Usuário ou senha inválidos", decodeResponse(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	router := gin.New()
	router.POST("/login", NewAuthHandler(testConfig()).Login)

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"username":"ana"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	router := gin.New()
	router.POST("/logout", NewAuthHandler(testConfig()).Logout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/logout", nil))

	assert.Equal(t, 200, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, middleware.SessionCookie+"=;")
	assert.Contains(t, cookie, "Max-Age=0")
}

func TestAuthHandler_GetProfile(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(2, "ana", "hash", "Ana", "vendedor", 3.5, 20000.0, models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(withIdentity(sellerIdentity))
	router.GET("/profile", NewAuthHandler(testConfig()).GetProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/profile", nil))

	assert.Equal(t, 200, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "ana", data["username"])
	assert.Equal(t, 3.5, data["commission_pct"])
	assert.NotContains(t, data, "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_GetProfile_NoSession(t *testing.T) {
	router := gin.New()
	router.GET("/profile", NewAuthHandler(testConfig()).GetProfile)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/profile", nil))
	assert.Equal(t, 401, w.Code)
}

func TestAuthHandler_ChangePassword_WrongCurrent(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("atual"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(2, "ana", string(hashed), "Ana", "vendedor", 2.0, 0.0, models.UserStatusActive, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(withIdentity(sellerIdentity))
	router.PUT("/senha", NewAuthHandler(testConfig()).ChangePassword)

	req := httptest.NewRequest("PUT", "/senha", bytes.NewBufferString(`{"old_password":"outra","new_password":"nova123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Senha atual incorreta", decodeResponse(t, w)["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLikeValue(t *testing.T) {
	assert.Equal(t, `\%`, escapeLikeValue("%"))
	assert.Equal(t, `\_`, escapeLikeValue("_"))
	assert.Equal(t, `\\`, escapeLikeValue(`\`))
	assert.Equal(t, `\%maria\%`, escapeLikeValue("%maria%"))
	assert.Equal(t, "", escapeLikeValue(""))
	assert.Equal(t, "joana", escapeLikeValue("joana"))

	assert.Equal(t, `%jo\_ana%`, likeSearch("  JO_ana "))
}

func TestGetCookieOptions(t *testing.T) {
	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	defer func() { config.GlobalConfig = nil }()
	secure, _ := getCookieOptions()
	assert.False(t, secure)

	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "release"}}
	secure, sameSite := getCookieOptions()
	assert.True(t, secure)
	assert.Equal(t, http.SameSiteLaxMode, sameSite)
}
