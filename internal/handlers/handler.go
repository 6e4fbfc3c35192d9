package handlers

import (
	"net/http"

	"linkhub/internal/logger"
	"linkhub/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	api := router.Group("/api")
	h.registerAuthRoutes(api)
	h.registerPublicRoutes(api)
	h.registerAdminRoutes(api)

	router.GET("/ws/links", h.wsLinks)

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.PATCH("/password", h.authenticate, h.changePassword)
	}
}

func (h *Handler) registerPublicRoutes(api *gin.RouterGroup) {
	links := api.Group("/links")
	{
		links.GET("", h.listPublicCategories)
		links.GET("/grouped", h.listPublicLinksByTag)
	}
}

// registerAdminRoutes guards every admin route with authenticate then requireAdmin.
func (h *Handler) registerAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", h.authenticate, h.requireAdmin)

	links := admin.Group("/links")
	{
		links.GET("", h.listLinks)
		links.GET("/:id", h.getLink)
		links.POST("", h.createLink)
		links.PUT("/:id", h.updateLink)
		links.DELETE("/:id", h.deleteLink)
	}

	categories := admin.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.GET("/:id/links", h.listCategoryLinks)
		categories.POST("", h.createCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
