package routes

import (
	productControllers "github.com/Amezzyx/backend-riders-forge/controllers/product"
	requestControllers "github.com/Amezzyx/backend-riders-forge/controllers/request"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public storefront endpoints: catalog
// browsing and request intake.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/:id", productControllers.GetProductByID(db))
	}

	requests := r.Group("/requests")
	{
		requests.POST("/contact", requestControllers.CreateContactRequest(db))
		requests.POST("/graphics", requestControllers.CreateGraphicsRequest(db))
	}
}
