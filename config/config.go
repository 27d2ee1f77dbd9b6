package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultConfigYAML configuração padrão embutida no binário
//
//go:embed config.yaml
var DefaultConfigYAML []byte

// Config configuração da aplicação
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Email    EmailConfig    `mapstructure:"email"`
	Finance  FinanceConfig  `mapstructure:"finance"`
	AI       AIConfig       `mapstructure:"ai"`
}

// ServerConfig configuração do servidor HTTP
type ServerConfig struct {
	Port        string   `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"`
	BaseURL     string   `mapstructure:"base_url"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DatabaseConfig configuração do banco de dados
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
	SSLMode  string `mapstructure:"sslmode"`
}

// JWTConfig configuração do token de sessão
type JWTConfig struct {
	Secret      string        `mapstructure:"secret"`
	ExpireHours int           `mapstructure:"expire_hours"`
	ExpireTime  time.Duration `mapstructure:"-"`
}

// EmailConfig configuração de e-mail (SMTP)
type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	ReportTo string `mapstructure:"report_to"`
}

// FinanceConfig parâmetros das regras financeiras
type FinanceConfig struct {
	BillingCutoffDay     int     `mapstructure:"billing_cutoff_day"`
	DefaultCommissionPct float64 `mapstructure:"default_commission_pct"`
	CreditIncomeRatio    float64 `mapstructure:"credit_income_ratio"`
	CreditInstallmentCap float64 `mapstructure:"credit_installment_cap"`
	CreditTolerance      float64 `mapstructure:"credit_tolerance"`
	DefaultGlobalTarget  float64 `mapstructure:"default_global_target"`
	ProjectionMonths     int     `mapstructure:"projection_months"`
	InvoiceTaxPct        float64 `mapstructure:"invoice_tax_pct"`
}

// AIConfig configuração do assistente
type AIConfig struct {
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	DefaultProvider string `mapstructure:"default_provider"`
}

var (
	// GlobalConfig instância global da configuração
	GlobalConfig *Config
)

// LoadConfig carrega a configuração
// Prioridade: variáveis de ambiente > arquivo externo > padrão embutido
// configPath: caminho opcional de um arquivo externo
func LoadConfig(configPath string) (*Config, error) {
	// .env é opcional
	if err := godotenv.Load(); err == nil {
		log.Println("Arquivo .env carregado")
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("falha ao ler configuração embutida: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("Aviso: não foi possível ler o arquivo %s: %v", configPath, err)
		} else {
			log.Printf("Configuração externa mesclada: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/bfx")
		externalViper.AddConfigPath("$HOME/.bfx")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("Aviso: falha ao mesclar configuração externa: %v", err)
			} else {
				log.Printf("Configuração externa mesclada: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	v.SetEnvPrefix("BFX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao interpretar configuração: %w", err)
	}

	applyDefaults(&cfg)

	GlobalConfig = &cfg

	return &cfg, nil
}

// applyDefaults preenche valores ausentes com os padrões do negócio
func applyDefaults(cfg *Config) {
	if cfg.JWT.ExpireHours <= 0 {
		cfg.JWT.ExpireHours = 24 * 7
	}
	cfg.JWT.ExpireTime = time.Duration(cfg.JWT.ExpireHours) * time.Hour

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "mysql"
	}

	f := &cfg.Finance
	if f.BillingCutoffDay <= 0 {
		f.BillingCutoffDay = 20
	}
	if f.DefaultCommissionPct <= 0 {
		f.DefaultCommissionPct = 2
	}
	if f.CreditIncomeRatio <= 0 {
		f.CreditIncomeRatio = 0.30
	}
	if f.CreditInstallmentCap <= 0 {
		f.CreditInstallmentCap = 475
	}
	if f.CreditTolerance < 0 {
		f.CreditTolerance = 0
	}
	if f.DefaultGlobalTarget <= 0 {
		f.DefaultGlobalTarget = 100000
	}
	if f.ProjectionMonths <= 0 {
		f.ProjectionMonths = 6
	}
	if f.InvoiceTaxPct <= 0 {
		f.InvoiceTaxPct = 5.97
	}

	if cfg.AI.TimeoutSeconds <= 0 {
		cfg.AI.TimeoutSeconds = 120
	}
}

// MustLoadConfig carrega a configuração ou entra em pânico
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("falha ao carregar configuração: %v", err))
	}
	return cfg
}

// GetConfig retorna a configuração global
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuração não inicializada, chame LoadConfig antes")
	}
	return GlobalConfig
}

// PrintConfig imprime a configuração atual (sem segredos)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("Configuração atual:")
	log.Printf("  Servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  Banco: %s://%s@%s:%s/%s",
		GlobalConfig.Database.Driver,
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
	log.Printf("  E-mail: %v", GlobalConfig.Email.Enabled)
	log.Printf("  Corte de faturamento: dia %d", GlobalConfig.Finance.BillingCutoffDay)
}
