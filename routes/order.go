package routes

import (
	orderControllers "github.com/Amezzyx/backend-riders-forge/controllers/order"
	"github.com/Amezzyx/backend-riders-forge/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Create a new order from a submitted cart
		orders.POST("/place", orderControllers.PlaceOrderHandler(db))

		// Fetch a single order (optionally scoped to an owner via ?user_id=)
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// websocket endpoint for real-time order updates (admin dashboard)
		orders.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
	}

	adminOrders := r.Group("/orders")
	adminOrders.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// Fetch all orders (admin)
		adminOrders.GET("", orderControllers.GetAllOrdersHandler(db))

		// Fetch orders for a specific user
		adminOrders.GET("/user/:userID", orderControllers.GetUserOrdersHandler(db))

		// Update order status (e.g., shipped, cancelled)
		adminOrders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
	}
}
