package api

import (
	"net/http"
	"strings"

	"bfx/config"
	"bfx/middleware"

	"github.com/gin-gonic/gin"
)

// escapeLikeValue escapa % e _ usados em buscas LIKE
func escapeLikeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// likeSearch padrão de busca sem diferenciar maiúsculas
func likeSearch(s string) string {
	return "%" + escapeLikeValue(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// getCookieOptions em release o cookie é Secure; SameSite=Lax sempre
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GetConfig()
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	sameSite = http.SameSiteLaxMode
	return
}

// setSessionCookie grava o token de sessão em cookie HttpOnly
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", secure, true)
}

// clearSessionCookie remove o cookie de sessão
func clearSessionCookie(c *gin.Context) {
	setSessionCookie(c, "", -1)
}
