package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/zone3577/Test-Web/internal/config"
	"github.com/zone3577/Test-Web/internal/http/handlers"
	adminhandlers "github.com/zone3577/Test-Web/internal/http/handlers/admin"
	"github.com/zone3577/Test-Web/internal/http/middleware"
	"github.com/zone3577/Test-Web/internal/mailer"
	"github.com/zone3577/Test-Web/internal/modules/adminauth"
	"github.com/zone3577/Test-Web/internal/modules/cart"
	"github.com/zone3577/Test-Web/internal/modules/notifications"
	"github.com/zone3577/Test-Web/internal/modules/orders"
	"github.com/zone3577/Test-Web/internal/modules/products"
	"github.com/zone3577/Test-Web/internal/modules/users"
	"github.com/zone3577/Test-Web/internal/storage"
)

// Deps carries the shared infrastructure the router wires into handlers.
type Deps struct {
	Logger *slog.Logger
	DB     *gorm.DB
	Redis  *redis.Client
	Config config.Config
	Store  storage.Storage
	Mailer mailer.Service
}

// NewRouter assembles services, middleware and routes.
func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config

	sessCfg := middleware.SessionCfg{
		DB:         d.DB,
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.Secure,
		TTL:        cfg.Session.TTL,
	}

	// Services.
	pub := notifications.NewPublisher(d.Redis)
	notifSvc := notifications.NewService(notifications.NewRepo(d.DB), pub, d.Logger)

	usersSvc := users.NewService(d.DB, notifSvc)
	usersRepo := users.NewRepo(d.DB)

	productsRepo := products.NewRepo(d.DB)
	productsSvc := products.NewService(d.DB, d.Store, notifSvc, cfg.LowStockThreshold)

	cartRepo := cart.NewRepo(d.DB)
	cartSvc := cart.NewService(cartRepo, productsRepo)

	ordersRepo := orders.NewRepo(d.DB)
	ordersSvc := orders.NewService(d.DB, cartRepo, notifSvc, d.Mailer, cfg.SMTP.From, cfg.SMTP.FromName, d.Logger)
	ordersAdminSvc := orders.NewAdminService(d.DB)

	adminAuth := adminauth.NewService(d.DB, cfg.Admin.JWTSecret, cfg.Admin.SessionTTL)

	// Handlers.
	authH := handlers.NewAuthHandlers(usersSvc, sessCfg)
	productH := handlers.NewProductHandlers(productsSvc)
	cartH := handlers.NewCartHandlers(cartSvc)
	orderH := handlers.NewOrderHandlers(ordersRepo, ordersSvc)

	adminLoginH := adminhandlers.NewLoginHandler(adminAuth)
	adminDashH := adminhandlers.NewDashboardHandler(productsRepo, usersRepo, ordersRepo, notifSvc)
	adminProductH := adminhandlers.NewProductHandlers(productsSvc)
	adminOrderH := adminhandlers.NewOrderHandlers(ordersRepo, ordersAdminSvc)
	adminUserH := adminhandlers.NewUserHandlers(usersSvc)
	adminNotifH := adminhandlers.NewNotificationHandlers(notifSvc, pub)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.ErrorHandler(d.Logger),
		middleware.SessionMiddleware(sessCfg),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	if cfg.Store.Driver == "local" || cfg.Store.Driver == "" {
		r.Static(cfg.Store.LocalURLBase, cfg.Store.LocalDir)
	}

	api := r.Group("/api")
	{
		api.POST("/auth/signup", authH.Signup)
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/logout", authH.Logout)
		api.GET("/auth/me", authH.Me)

		api.GET("/products", productH.List)
		api.GET("/products/:id", productH.Get)

		authed := api.Group("", middleware.RequireAuth())
		{
			authed.GET("/cart", cartH.Get)
			authed.POST("/cart", cartH.Add)
			authed.PUT("/cart/items/:productID", cartH.SetQuantity)
			authed.DELETE("/cart/items/:productID", cartH.Remove)
			authed.DELETE("/cart", cartH.Clear)

			authed.GET("/orders", orderH.List)
			authed.POST("/orders", orderH.Create)
			authed.GET("/orders/:id", orderH.Get)
		}

		api.POST("/admin/login", adminLoginH.Login)

		admin := api.Group("/admin", middleware.RequireAdmin(adminAuth))
		{
			admin.GET("/dashboard", adminDashH.Get)

			admin.GET("/products", adminProductH.List)
			admin.POST("/products", adminProductH.Create)
			admin.GET("/products/:id", adminProductH.Get)
			admin.PUT("/products/:id", adminProductH.Update)
			admin.DELETE("/products/:id", adminProductH.Delete)
			admin.POST("/products/:id/image", adminProductH.UploadImage)

			admin.GET("/orders", adminOrderH.List)
			admin.GET("/orders/:id", adminOrderH.Get)
			admin.PUT("/orders/:id/status", adminOrderH.SetStatus)
			admin.PUT("/orders/:id/payment", adminOrderH.SetPayment)

			admin.GET("/users", adminUserH.List)
			admin.POST("/users/:id/suspend", adminUserH.Suspend)

			super := admin.Group("", middleware.RequireSuperAdmin())
			{
				super.POST("/users/:id/ban", adminUserH.Ban)
				super.POST("/users/:id/unban", adminUserH.Unban)
			}

			admin.GET("/notifications", adminNotifH.List)
			admin.PUT("/notifications/read-all", adminNotifH.MarkAllRead)
			admin.PUT("/notifications/:id/read", adminNotifH.MarkRead)
			admin.GET("/notifications/stream", adminNotifH.Stream)
		}
	}

	return r
}
