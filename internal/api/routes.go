package api

import (
	"github.com/gin-gonic/gin"

	"inmolista/server/internal/auth"
)

// SetupRoutes wires the public listing routes and the auth-gated admin
// routes onto the router. Uploaded images are served statically under the
// upload base path.
func SetupRoutes(router *gin.Engine, handler *Handler, authService *auth.Service) {
	router.Static("/uploads", handler.uploads.Dir())

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetAllProperties)
		api.GET("/properties/featured", handler.GetFeaturedProperties)
		api.GET("/properties/:id", handler.GetProperty)
		api.GET("/stats", handler.GetPropertyStats)
	}

	admin := router.Group("/api")
	admin.Use(authService.Middleware())
	{
		admin.POST("/properties", handler.CreateProperty)
		admin.PUT("/properties/:id", handler.UpdateProperty)
		admin.DELETE("/properties/:id", handler.DeleteProperty)
		admin.POST("/uploads", handler.UploadImage)
		admin.GET("/auth/me", handler.GetCurrentUser)
	}
}
