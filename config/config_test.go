package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "Operação falhou"
	testErr := errors.New("internal database error")

	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release não expõe o erro
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// sem configuração é tratado como desenvolvimento
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 20, cfg.Finance.BillingCutoffDay)
	assert.Equal(t, 2.0, cfg.Finance.DefaultCommissionPct)
	assert.Equal(t, 0.30, cfg.Finance.CreditIncomeRatio)
	assert.Equal(t, 475.0, cfg.Finance.CreditInstallmentCap)
	assert.Equal(t, 1.0, cfg.Finance.CreditTolerance)
	assert.Equal(t, 6, cfg.Finance.ProjectionMonths)
	assert.Equal(t, 168*time.Hour, cfg.JWT.ExpireTime)
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfig_ExternalFileOverrides(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: \":9090\"\ndatabase:\n  driver: postgres\nfinance:\n  credit_installment_cap: 600\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 600.0, cfg.Finance.CreditInstallmentCap)
	// valores não sobrescritos continuam vindo do padrão embutido
	assert.Equal(t, "bfx", cfg.Database.DBName)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	defer func() { GlobalConfig = nil }()
	t.Setenv("BFX_SERVER_MODE", "release")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}
