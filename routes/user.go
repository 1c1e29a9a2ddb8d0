package routes

import (
	orderControllers "github.com/Amezzyx/backend-riders-forge/controllers/order"
	userControllers "github.com/Amezzyx/backend-riders-forge/controllers/user"
	"github.com/Amezzyx/backend-riders-forge/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))

		// ──────────────── Own Orders ────────────────
		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(db))
	}
}
