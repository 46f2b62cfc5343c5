package router

import (
	"time"

	"orderdesk/internal/config"
	"orderdesk/internal/handler"
	"orderdesk/internal/middleware"
	"orderdesk/internal/repository"
	"orderdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	itemRepo := repository.NewOrderInfoRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	totalSvc := service.NewOrderTotalService(itemRepo, orderRepo)
	pricer := service.NewUnitPricePricer(productRepo)
	lineItemSvc := service.NewLineItemService(itemRepo, orderRepo, productRepo, pricer, totalSvc)
	pageSvc := service.NewOrderPageService(orderRepo, customerRepo, itemRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	lineItemsH := handler.NewLineItemsHandler(lineItemSvc)
	ordersH := handler.NewOrdersHandler(pageSvc, totalSvc)
	searchH := handler.NewProductSearchHandler(productRepo, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.GET("/orders/:id/line-items", lineItemsH.List)
		v1.POST("/orders/:id/line-items", lineItemsH.Create)
		v1.GET("/orders/:id/edit-page", ordersH.EditPage)
		v1.POST("/orders/:id/recompute", ordersH.Recompute)

		v1.GET("/line-items/:id", lineItemsH.Get)
		v1.PATCH("/line-items/:id", lineItemsH.Update)
		v1.DELETE("/line-items/:id", lineItemsH.Delete)

		v1.GET("/products/search", searchH.Search)
	}

	return r
}
