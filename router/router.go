package router

import (
	"net/http"
	"time"

	"bfx/api"
	"bfx/config"
	_ "bfx/docs"
	"bfx/finance"
	"bfx/logger"
	"bfx/middleware"
	"bfx/models"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	loginMaxAttempts = 10
	loginWindow      = 15 * time.Minute
)

// SetupRouter monta as rotas da API
func SetupRouter(cfg *config.Config, rules finance.Rules) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(logger.GinMiddleware(), gin.Recovery())
	r.Use(middleware.SecureHeaders(cfg.Server.Mode), middleware.CORS(cfg.Server.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authHandler := api.NewAuthHandler(cfg)
	saleHandler := api.NewSaleHandler(rules)
	customerHandler := api.NewCustomerHandler(rules)
	catalogHandler := api.NewCatalogHandler()
	expenseHandler := api.NewExpenseHandler()
	financeHandler := api.NewFinanceHandler(cfg, rules)
	exportHandler := api.NewExportHandler(rules)
	commissionHandler := api.NewCommissionHandler(rules)
	summaryHandler := api.NewSummaryHandler(rules)
	mcpHandler := api.NewMCPHandler(rules)
	assistantHandler := api.NewAssistantHandler(cfg, rules)
	userHandler := api.NewUserHandler()
	providerHandler := api.NewAIProviderHandler()

	root := r.Group("/api")

	// sem login
	root.POST("/auth/login", middleware.LoginRateLimit(loginMaxAttempts, loginWindow), authHandler.Login)
	root.POST("/auth/logout", authHandler.Logout)
	root.GET("/recibo", saleHandler.Receipt)

	authorized := root.Group("")
	authorized.Use(middleware.JWTAuth())
	{
		authorized.GET("/auth/profile", authHandler.GetProfile)
		authorized.PUT("/auth/senha", authHandler.ChangePassword)
		authorized.GET("/resumo", summaryHandler.GetSellerSummary)

		sales := authorized.Group("/vendas")
		{
			sales.GET("", need(models.CapViewSales), saleHandler.List)
			sales.POST("", need(models.CapCreateSale), saleHandler.Create)
			sales.GET("/:id", need(models.CapViewSales), saleHandler.Get)
			sales.PUT("/:id", need(models.CapEditSale), saleHandler.Update)
			sales.DELETE("/:id", need(models.CapEditSale), saleHandler.Delete)
		}

		customers := authorized.Group("/clientes")
		{
			customers.GET("", need(models.CapViewCustomers), customerHandler.List)
			customers.POST("", need(models.CapManageCustomers), customerHandler.Create)
			customers.GET("/:id", need(models.CapViewCustomers), customerHandler.Get)
			customers.PUT("/:id", need(models.CapManageCustomers), customerHandler.Update)
			customers.GET("/:id/limite", need(models.CapViewCustomers), customerHandler.Limit)
			customers.GET("/:id/credito", need(models.CapViewCustomers), customerHandler.Credit)
			customers.GET("/:id/perfil-vendas", need(models.CapViewCustomers), customerHandler.SalesProfile)
		}

		authorized.POST("/importacao/batch", need(models.CapActForSellers), saleHandler.ImportBatch)

		reports := authorized.Group("/relatorios", need(models.CapViewFinance))
		{
			reports.GET("/vendas", exportHandler.SalesCSV)
			reports.GET("/antecipacao", exportHandler.AnticipationCSV)
		}

		products := authorized.Group("/produtos")
		{
			products.GET("", need(models.CapViewProducts), catalogHandler.ListProducts)
			products.POST("", need(models.CapManageProducts), catalogHandler.CreateProduct)
			products.PUT("/:id", need(models.CapManageProducts), catalogHandler.UpdateProduct)
		}

		partners := authorized.Group("/empresas", need(models.CapManagePartners))
		{
			partners.GET("", catalogHandler.ListPartners)
			partners.POST("", catalogHandler.CreatePartner)
		}

		expenses := authorized.Group("/despesas", need(models.CapManageExpenses))
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.GET("/categorias", expenseHandler.GetCategories)
			expenses.GET("/estatisticas", expenseHandler.GetStatistics)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		fin := authorized.Group("/financeiro", need(models.CapViewFinance))
		{
			fin.GET("/dre", financeHandler.DRE)
			fin.POST("/dre/enviar", financeHandler.SendDRE)
			fin.POST("/email/teste", financeHandler.TestEmail)
			fin.GET("/fluxo", financeHandler.CashFlow)
			fin.GET("/export", exportHandler.FinanceXLSX)
		}

		commissions := authorized.Group("/comissoes", need(models.CapViewCommissions))
		{
			commissions.GET("", commissionHandler.List)
			commissions.GET("/detalhe", commissionHandler.Detail)
			commissions.GET("/relatorio", exportHandler.CommissionCSV)
		}

		// as permissões de cada ferramenta são verificadas pelo despachante
		authorized.GET("/mcp", mcpHandler.Tools)
		authorized.POST("/mcp", mcpHandler.Call)

		assistant := authorized.Group("/inteligencia", need(models.CapUseAssistant))
		{
			assistant.POST("/chat", assistantHandler.Chat)
			assistant.GET("/historico", assistantHandler.History)
			assistant.DELETE("/historico/:id", assistantHandler.DeleteHistory)
		}

		users := authorized.Group("/usuarios", need(models.CapManageUsers))
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.PUT("/:id", userHandler.Update)
			users.PUT("/:id/status", userHandler.UpdateStatus)
			users.PUT("/:id/senha", userHandler.UpdatePassword)
			users.DELETE("/:id", userHandler.Delete)
		}

		providers := authorized.Group("/ia/provedores", need(models.CapManageUsers))
		{
			providers.GET("", providerHandler.List)
			providers.POST("", providerHandler.Create)
			providers.PUT("/ordem", providerHandler.Reorder)
			providers.PUT("/:id", providerHandler.Update)
			providers.POST("/:id/teste", providerHandler.Test)
			providers.DELETE("/:id", providerHandler.Delete)
		}
	}

	return r
}

func need(capability models.Capability) gin.HandlerFunc {
	return middleware.RequireCapability(capability)
}
