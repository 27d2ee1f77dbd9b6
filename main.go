package main

import (
	"flag"
	"log"
	"strings"

	"bfx/config"
	"bfx/database"
	"bfx/logger"
	"bfx/middleware"
	"bfx/router"
	"bfx/service"

	"go.uber.org/zap"
)

// @title BFX Manager API
// @version 1.0
// @description Vendas, clientes, crédito, DRE, fluxo de caixa, comissões e assistente de IA
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "arquivo de configuração externo (opcional)")
	flag.StringVar(&configFile, "c", "", "arquivo de configuração externo (atalho)")
	flag.StringVar(&port, "port", "", "porta, ex.: 8080 ou :8080")
	flag.StringVar(&port, "p", "", "porta (atalho)")
	flag.BoolVar(&showVersion, "version", false, "mostra a versão")
	flag.BoolVar(&showVersion, "v", false, "mostra a versão (atalho)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Printf("BFX Manager v%s", version)
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("falha ao carregar configuração: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	if _, err := logger.Init(cfg.Server.Mode); err != nil {
		log.Fatalf("falha ao iniciar logger: %v", err)
	}
	defer logger.Sync()

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		logger.L().Fatal("falha ao iniciar banco de dados", zap.Error(err))
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg, service.DefaultRules())

	logger.L().Info("BFX Manager iniciado",
		zap.String("porta", cfg.Server.Port),
		zap.String("swagger", "http://localhost"+cfg.Server.Port+"/swagger/index.html"))

	if err := r.Run(cfg.Server.Port); err != nil {
		logger.L().Fatal("falha ao iniciar servidor", zap.Error(err))
	}
}
