package routes

import (
	"message-portal-backend/internal/api/handlers"
	"message-portal-backend/internal/api/middleware"
	"message-portal-backend/internal/config"
	"message-portal-backend/internal/repository"
	"message-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	messageService := service.NewMessageService(messageRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	messageHandler := handlers.NewMessageHandler(messageService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/by-name/:name", organizationHandler.GetOrganizationByName)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)

			// Message routes, scoped to an organization
			messages := organizations.Group("/:id/messages")
			{
				messages.GET("", messageHandler.ListMessages)
				messages.POST("", messageHandler.CreateMessage)
				messages.GET("/:messageId", messageHandler.GetMessage)
				messages.PUT("/:messageId", messageHandler.UpdateMessage)
				messages.DELETE("/:messageId", messageHandler.DeleteMessage)
			}
		}
	}

	return router
}
