package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/auth"
	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/server/handlers"
)

// Handlers groups the route adapters the router wires up.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Customer *handlers.CustomerHandler
	Delivery *handlers.DeliveryHandler
	Billing  *handlers.BillingHandler
	Report   *handlers.ReportHandler
	Settings *handlers.SettingsHandler
}

// New wires the Gin engine with required routes and middlewares. Admin
// accounts reach every surface; staff only the delivery log.
func New(h Handlers, authMW *auth.Middleware, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/api/auth/login", h.Auth.Login)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api", authMW.Authenticate())

	deliveries := api.Group("/deliveries", authMW.RequireRole(models.RoleAdmin, models.RoleStaff))
	deliveries.GET("", h.Delivery.List)
	deliveries.POST("", h.Delivery.Save)

	admin := api.Group("", authMW.RequireRole(models.RoleAdmin))
	admin.GET("/dashboard", h.Report.Dashboard)

	admin.GET("/customers", h.Customer.List)
	admin.POST("/customers", h.Customer.Add)
	admin.DELETE("/customers/:id", h.Customer.Delete)
	admin.POST("/customers/:id/pause", h.Customer.Pause)
	admin.POST("/customers/:id/resume", h.Customer.Resume)
	admin.POST("/customers/:id/products", h.Customer.AddProduct)

	admin.GET("/billing", h.Billing.List)
	admin.GET("/billing/:id/whatsapp", h.Billing.WhatsAppLink)
	admin.GET("/billing/:id/pdf", h.Billing.PDF)
	admin.POST("/billing/export", h.Billing.Export)

	admin.GET("/reports/revenue", h.Report.Revenue)

	admin.GET("/settings", h.Settings.Get)
	admin.PUT("/settings", h.Settings.Save)
	admin.POST("/settings/rates", h.Settings.AddRate)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
