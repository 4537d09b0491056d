package handlers

import (
	"net/http"

	"wishlisthub/internal/logger"
	"wishlisthub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
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
	router.Use(gin.Recovery())

	// The SPA is served from a different origin. The default allow-list
	// lacks Authorization, which would fail every authenticated preflight.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsCfg))
	router.Use(h.requestIDMiddleware, h.metricsMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Operational endpoints
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Live public-wishlist feed, served on the same port via HTTP upgrade.
	router.GET("/ws/public", h.wsPublicFeed)

	api := router.Group("/api")
	{
		h.registerUserRoutes(api)
		h.registerWishlistRoutes(api)
		h.registerItemRoutes(api)
	}

	return router
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.register)
		users.POST("/login", h.login)
		users.GET("/me", h.authMiddleware, h.me)
		users.GET("/:id", h.authMiddleware, h.getUser)
		users.PUT("/:id", h.authMiddleware, h.updateUser)
		users.DELETE("/:id", h.authMiddleware, h.deleteUser)
	}
}

func (h *Handler) registerWishlistRoutes(api *gin.RouterGroup) {
	wishlists := api.Group("/wishlists")
	{
		wishlists.GET("/public", h.listPublicWishlists)
		wishlists.GET("/user/:id", h.listUserWishlists)
		wishlists.POST("/:id", h.authMiddleware, h.createWishlist)
		wishlists.PUT("/:id", h.authMiddleware, h.updateWishlist)
		wishlists.DELETE("/:id", h.authMiddleware, h.deleteWishlist)
	}
}

func (h *Handler) registerItemRoutes(api *gin.RouterGroup) {
	items := api.Group("/wishlist-items")
	{
		items.GET("/wishlist/:wishlist_id", h.listItemsByWishlist)
		items.GET("/user/:user_id", h.authMiddleware, h.listItemsByUser)
		items.POST("/:wishlist_id", h.authMiddleware, h.createItem)
		items.PUT("/:id", h.authMiddleware, h.updateItem)
		items.DELETE("/:id", h.authMiddleware, h.deleteItem)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
