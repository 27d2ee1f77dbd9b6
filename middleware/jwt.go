package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"bfx/config"
	"bfx/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie nome do cookie de sessão
const SessionCookie = "session"

const (
	ctxUserID      = "userID"
	ctxUsername    = "username"
	ctxDisplayName = "displayName"
	ctxRole        = "role"
)

var jwtSecret []byte

// Claims conteúdo do token de sessão
type Claims struct {
	UserID      uint        `json:"user_id"`
	Username    string      `json:"username"`
	DisplayName string      `json:"display_name"`
	Role        models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity usuário autenticado da requisição
type Identity struct {
	UserID      uint
	Username    string
	DisplayName string
	Role        models.Role
}

// Label nome exibido; cai no username quando não há nome
func (i Identity) Label() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Username
}

// InitJWT define o segredo de assinatura
func InitJWT(cfg *config.Config) {
	jwtSecret = []byte(cfg.JWT.Secret)
}

// GenerateToken emite um token HS256 para o usuário
func GenerateToken(user *models.User, expire time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.Label(),
		Role:        user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			Issuer:    "bfx",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ParseToken valida o token e devolve as claims
func ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("algoritmo de assinatura inesperado")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("token inválido")
	}
	if !claims.Role.Valid() {
		return nil, errors.New("perfil inválido no token")
	}
	return claims, nil
}

// tokenFromRequest aceita Authorization: Bearer ou o cookie de sessão
func tokenFromRequest(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
	c.Abort()
}

// JWTAuth exige sessão válida
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := tokenFromRequest(c)
		if !ok {
			abortUnauthorized(c, "Faça login para continuar")
			return
		}

		claims, err := ParseToken(token)
		if err != nil {
			abortUnauthorized(c, "Sessão inválida ou expirada")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)
		c.Set(ctxDisplayName, claims.DisplayName)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// GetCurrentUserID ID do usuário logado, zero quando ausente
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentIdentity identidade completa do usuário logado
func CurrentIdentity(c *gin.Context) Identity {
	id := Identity{
		UserID:      GetCurrentUserID(c),
		Username:    c.GetString(ctxUsername),
		DisplayName: c.GetString(ctxDisplayName),
	}
	if v, ok := c.Get(ctxRole); ok {
		if r, ok := v.(models.Role); ok {
			id.Role = r
		}
	}
	return id
}

// SetIdentity grava a identidade no contexto (usado por testes e integrações)
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(ctxUserID, id.UserID)
	c.Set(ctxUsername, id.Username)
	c.Set(ctxDisplayName, id.DisplayName)
	c.Set(ctxRole, id.Role)
}
