package api

import (
	"bfx/config"
	"bfx/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SafeErrorMessage em produção não expõe detalhes internos ao cliente
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// serverError registra o erro e responde 500 sem vazar detalhes em produção
func serverError(c *gin.Context, err error, fallback string) {
	logger.L().Error(fallback,
		zap.String("path", c.FullPath()),
		zap.Error(err))
	InternalError(c, SafeErrorMessage(err, fallback))
}
