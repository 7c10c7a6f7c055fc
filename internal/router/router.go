package router

import (
	"portal/config"
	"portal/internal/handler"
	"portal/internal/middleware"
	"portal/internal/repository"
	"portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup wires repositories, services and handlers onto a gin engine.
// reg receives the HTTP metrics; main passes a registry that is also
// exposed on /metrics.
func Setup(cfg *config.Config, db *gorm.DB, log *zap.Logger, reg *prometheus.Registry) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics := middleware.NewMetrics(reg)

	r := gin.New()
	r.Use(
		middleware.RequestID(log),
		middleware.AccessLog(),
		metrics.Middleware(),
		middleware.Recovery(),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Repositories
	companyRepo := repository.NewCompanyRepository(db)
	productRepo := repository.NewProductRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	configRepo := repository.NewConfigRepository(db)
	userRepo := repository.NewAdminUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	authSvc := service.NewAuthService(&cfg.JWT, userRepo)
	activitySvc := service.NewActivityService(activityRepo)
	companySvc := service.NewCompanyService(companyRepo)
	productSvc := service.NewProductService(productRepo)
	newsSvc := service.NewNewsService(newsRepo)
	messageSvc := service.NewMessageService(messageRepo)
	configSvc := service.NewConfigService(configRepo)
	userSvc := service.NewAdminUserService(userRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, activitySvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	companyHandler := handler.NewCompanyHandler(companySvc, activitySvc)
	productHandler := handler.NewProductHandler(productSvc, activitySvc)
	newsHandler := handler.NewNewsHandler(newsSvc, activitySvc)
	messageHandler := handler.NewMessageHandler(messageSvc, activitySvc)
	configHandler := handler.NewConfigHandler(configSvc, activitySvc)
	userHandler := handler.NewAdminUserHandler(userSvc, authSvc, activitySvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	healthHandler := handler.NewHealthHandler(db)

	authMw := middleware.AuthRequired(authSvc)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", authMw, authHandler.Me)
		}

		company := api.Group("/company")
		{
			company.GET("", companyHandler.List)
			company.GET("/main", companyHandler.Main)
			company.GET("/:id", companyHandler.Get)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.ListActive)
			products.GET("/categories", productHandler.Categories)
			products.GET("/category/:category", productHandler.ByCategory)
			products.GET("/:id", productHandler.GetActive)
		}

		news := api.Group("/news")
		{
			news.GET("", newsHandler.Published)
			news.GET("/latest", newsHandler.Latest)
			news.GET("/categories", newsHandler.Categories)
			news.GET("/category/:category", newsHandler.ByCategory)
			news.GET("/:id", newsHandler.Read)
		}

		api.POST("/messages", messageHandler.Submit)

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.Authorize())
		{
			users := admin.Group("/users")
			{
				users.GET("", userHandler.List)
				users.GET("/:id", userHandler.Get)
				users.POST("", userHandler.Create)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
				users.POST("/:id/change-password", userHandler.ChangePassword)
			}

			configs := admin.Group("/configs")
			{
				configs.GET("", configHandler.List)
				configs.GET("/key/:key", configHandler.GetByKey)
				configs.PUT("/key/:key", configHandler.Upsert)
				configs.DELETE("/key/:key", configHandler.DeleteByKey)
				configs.GET("/:id", configHandler.Get)
				configs.POST("", configHandler.Create)
				configs.PUT("/:id", configHandler.Update)
				configs.DELETE("/:id", configHandler.Delete)
			}

			adminCompany := admin.Group("/company")
			{
				adminCompany.POST("", companyHandler.Create)
				adminCompany.PUT("/:id", companyHandler.Update)
				adminCompany.DELETE("/:id", companyHandler.Delete)
			}

			adminProducts := admin.Group("/products")
			{
				adminProducts.GET("", productHandler.Page)
				adminProducts.GET("/:id", productHandler.Get)
				adminProducts.POST("", productHandler.Create)
				adminProducts.PUT("/:id", productHandler.Update)
				adminProducts.DELETE("/:id", productHandler.Delete)
			}

			adminNews := admin.Group("/news")
			{
				adminNews.GET("", newsHandler.Page)
				adminNews.GET("/:id", newsHandler.Get)
				adminNews.POST("", newsHandler.Create)
				adminNews.PUT("/:id", newsHandler.Update)
				adminNews.DELETE("/:id", newsHandler.Delete)
			}

			messages := admin.Group("/messages")
			{
				messages.GET("", messageHandler.List)
				messages.GET("/stats", messageHandler.Stats)
				messages.GET("/:id", messageHandler.Get)
				messages.POST("/:id/mark-read", messageHandler.MarkRead)
				messages.POST("/:id/reply", messageHandler.Reply)
				messages.DELETE("/:id", messageHandler.Delete)
			}

			dashboard := admin.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.Stats)
				dashboard.GET("/activities", dashboardHandler.Activities)
			}
		}
	}

	return r
}
