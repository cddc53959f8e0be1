package router

import (
	"github.com/gin-gonic/gin"

	"finloom/internal/config"
	"finloom/internal/handler"
	"finloom/internal/middleware"
	"finloom/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	ledgerH *handler.LedgerHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Ledger uploads, one endpoint per category
	ledgers := v1.Group("/ledgers")
	ledgers.POST("/stock-valuation", ledgerH.Upload(service.LedgerStockValuation))
	ledgers.POST("/qty-analysis", ledgerH.Upload(service.LedgerQtyAnalysis))
	ledgers.POST("/purchases", ledgerH.Upload(service.LedgerPurchases))
	ledgers.POST("/inventory", ledgerH.Upload(service.LedgerInventory))
	ledgers.POST("/direct-expenses", ledgerH.Upload(service.LedgerDirectExpenses))
	ledgers.POST("/indirect-expenses", ledgerH.Upload(service.LedgerIndirectExpenses))

	// Report generation
	reports := v1.Group("/reports")
	reports.POST("/cogs", reportH.Cogs)
	reports.POST("/pal1", reportH.Pal1)
	reports.POST("/trading-pl", reportH.TradingPl)
	reports.POST("/pal2", reportH.Pal2)
	reports.POST("/fin-analysis", reportH.FinAnalysis)
	reports.POST("/sales-summary", reportH.SalesSummary)
	reports.POST("/consolidate", reportH.Consolidate)
	reports.POST("/separate", reportH.Separate)
	reports.GET("/:kind", reportH.Fetch)

	return r
}
