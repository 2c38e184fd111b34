package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/statuspad-dev/statuspad/internal/auth"
	"github.com/statuspad-dev/statuspad/internal/config"
	"github.com/statuspad-dev/statuspad/internal/handlers"
	"github.com/statuspad-dev/statuspad/internal/middleware"
	"github.com/statuspad-dev/statuspad/internal/store"
)

// New wires stores, handlers, and middleware onto a gin engine. Reads are
// public; every mutating route sits behind the admin gate.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	serviceStore := store.NewServiceStore(db)
	incidentStore := store.NewIncidentStore(db)
	maintenanceStore := store.NewMaintenanceStore(db)
	settingStore := store.NewSettingStore(db)
	userStore := store.NewUserStore(db)
	notificationStore := store.NewNotificationStore(db)
	adminStore := store.NewAdminStore(db)

	authHandler := handlers.NewAuthHandler(cfg, tokens, userStore)
	serviceHandler := handlers.NewServiceHandler(serviceStore)
	componentHandler := handlers.NewComponentHandler(serviceStore)
	incidentHandler := handlers.NewIncidentHandler(incidentStore)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceStore)
	settingHandler := handlers.NewSettingHandler(settingStore)
	notificationHandler := handlers.NewNotificationHandler(notificationStore)
	databaseHandler := handlers.NewDatabaseHandler(adminStore)
	statusHandler := handlers.NewStatusHandler(serviceStore)

	authed := middleware.Authenticate(tokens, userStore)
	admin := middleware.AdminOnly()

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/status", statusHandler.Overview)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", authed, authHandler.Me)
		}

		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.POST("", authed, admin, serviceHandler.Create)
			services.GET("/:id", serviceHandler.Get)
			services.PUT("/:id", authed, admin, serviceHandler.Update)
			services.DELETE("/:id", authed, admin, serviceHandler.Delete)

			services.GET("/:id/components", componentHandler.List)
			services.POST("/:id/components", authed, admin, componentHandler.Create)
			services.GET("/:id/components/:component_id", componentHandler.Get)
			services.PUT("/:id/components/:component_id", authed, admin, componentHandler.Update)
			services.DELETE("/:id/components/:component_id", authed, admin, componentHandler.Delete)
		}

		incidents := api.Group("/incidents")
		{
			incidents.GET("", incidentHandler.List)
			incidents.POST("", authed, admin, incidentHandler.Create)
			incidents.GET("/:id", incidentHandler.Get)
			incidents.PUT("/:id", authed, admin, incidentHandler.Update)
			incidents.GET("/:id/updates", incidentHandler.ListUpdates)
			incidents.POST("/:id/updates", authed, admin, incidentHandler.AppendUpdate)
		}

		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("", maintenanceHandler.List)
			maintenance.POST("", authed, admin, maintenanceHandler.Create)
			maintenance.GET("/:id", maintenanceHandler.Get)
			maintenance.PUT("/:id", authed, admin, maintenanceHandler.Update)
			maintenance.DELETE("/:id", authed, admin, maintenanceHandler.Delete)
			maintenance.GET("/:id/updates", maintenanceHandler.ListUpdates)
			maintenance.POST("/:id/updates", authed, admin, maintenanceHandler.AppendUpdate)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", settingHandler.List)
			settings.POST("", authed, admin, settingHandler.Upsert)
			settings.PUT("", authed, admin, settingHandler.UpsertBatch)
		}

		notifications := api.Group("/notifications", authed, admin)
		{
			notifications.GET("", notificationHandler.List)
			notifications.POST("", notificationHandler.Create)
			notifications.PUT("/:id", notificationHandler.Update)
			notifications.DELETE("/:id", notificationHandler.Delete)
		}

		database := api.Group("/database", authed, admin)
		{
			database.GET("", databaseHandler.Status)
			database.POST("", databaseHandler.Action)
		}
	}

	return r
}
