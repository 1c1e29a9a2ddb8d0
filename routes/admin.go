package routes

import (
	adminController "github.com/Amezzyx/backend-riders-forge/controllers/admin"
	productControllers "github.com/Amezzyx/backend-riders-forge/controllers/product"
	requestControllers "github.com/Amezzyx/backend-riders-forge/controllers/request"
	userControllers "github.com/Amezzyx/backend-riders-forge/controllers/user"
	"github.com/Amezzyx/backend-riders-forge/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid
// token carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Dashboard Read Models ───────────
		adminGroup.GET("/stats", adminController.GetStatsHandler(db))
		adminGroup.GET("/orders", adminController.GetRecentOrdersHandler(db))
		adminGroup.GET("/orders/all", adminController.GetAllOrdersHandler(db))
		adminGroup.GET("/customers", adminController.GetCustomersHandler(db))

		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.PUT("/users/:userID/role", userControllers.SetUserRole(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))

			// Bulk restock (eventually consistent, not part of checkout)
			productAdmin.POST("/stock/set", productControllers.SetAllStockHandler(db))
			productAdmin.POST("/stock/add", productControllers.AddStockHandler(db))
		}

		// ─────────── Request Intake ───────────
		requestAdmin := adminGroup.Group("/requests")
		{
			requestAdmin.GET("/contact", requestControllers.GetAllContactRequests(db))
			requestAdmin.GET("/graphics", requestControllers.GetAllGraphicsRequests(db))
			requestAdmin.PUT("/:type/:id/status", requestControllers.UpdateRequestStatus(db))
		}
	}
}
