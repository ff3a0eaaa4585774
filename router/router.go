package router

import (
	"context"
	"net/http"
	"time"

	"templo/api"
	"templo/config"
	_ "templo/docs"
	"templo/logger"
	"templo/middleware"
	"templo/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services the domain services the routes are served by
type Services struct {
	Inventory  *service.InventoryService
	Membership *service.MembershipService
	Ledger     *service.LedgerService
	Reports    *service.ReportService
	Reminders  *service.ReminderService
}

// NewServices wires every service over one database handle. mailer may be nil
// when e-mail is disabled.
func NewServices(db *gorm.DB, cfg *config.Config, mailer service.Mailer, log *logger.Logger, now func() time.Time) *Services {
	inventory := service.NewInventoryService(db, log, now)
	membership := service.NewMembershipService(db, log, now)
	ledger := service.NewLedgerService(db, log, now)
	return &Services{
		Inventory:  inventory,
		Membership: membership,
		Ledger:     ledger,
		Reports:    service.NewReportService(inventory, ledger, membership),
		Reminders:  service.NewReminderService(membership, mailer, cfg.Email.Enabled && mailer != nil, log),
	}
}

// SetupRouter builds the HTTP engine. Background work started for the
// engine stops when ctx is done.
func SetupRouter(ctx context.Context, cfg *config.Config, svc *Services, db *gorm.DB, log *logger.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	api.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "database unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})

	g := r.Group("/api")
	if cfg.RateLimit.Enabled {
		g.Use(middleware.WriteRateLimit(ctx, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))
	}

	api.RegisterRoutes(g, api.Handlers{
		Materials:    api.NewMaterialHandler(svc.Inventory, log),
		Members:      api.NewMemberHandler(svc.Membership, svc.Reminders, log),
		Payments:     api.NewPaymentHandler(svc.Membership, log),
		Transactions: api.NewTransactionHandler(svc.Ledger, log),
		Reports:      api.NewReportHandler(svc.Reports, log),
		Taxonomy:     api.NewTaxonomyHandler(),
	})

	return r
}
