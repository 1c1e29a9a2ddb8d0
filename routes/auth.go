package routes

import (
	userControllers "github.com/Amezzyx/backend-riders-forge/controllers/user"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(db))
		authGroup.POST("/login", userControllers.Login(db))
	}
}
