package adminController

import (
	"net/http"
	"strconv"

	orderControllers "github.com/Amezzyx/backend-riders-forge/controllers/order"
	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The admin dashboard consumes reshaped order data; any renaming or
// formatting belongs here, never in the order core.

type OrderSummary struct {
	ID          uint            `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Customer    string          `json:"customer"`
	Email       string          `json:"email"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
	Items       int             `json:"items"`
}

type OrderDetail struct {
	OrderSummary
	FirstName     string             `json:"firstName"`
	LastName      string             `json:"lastName"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	City          string             `json:"city"`
	PostalCode    string             `json:"postalCode"`
	Country       string             `json:"country"`
	PaymentMethod string             `json:"paymentMethod"`
	ItemRows      []models.OrderItem `json:"itemRows"`
}

type CustomerSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Country        string          `json:"country"`
	City           string          `json:"city"`
	Role           models.UserRole `json:"role"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	OrderCount     int             `json:"orderCount"`
	RegisteredDate string          `json:"registeredDate"`
}

func customerName(order *models.Order) string {
	if order.FirstName != "" && order.LastName != "" {
		return order.FirstName + " " + order.LastName
	}
	return "Unknown"
}

func summarize(order *models.Order) OrderSummary {
	return OrderSummary{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Customer:    customerName(order),
		Email:       order.Email,
		Amount:      order.Total,
		Status:      string(order.Status),
		Date:        order.CreatedAt.Format("2006-01-02"),
		Items:       len(order.Items),
	}
}

// GetStatsHandler exposes the order aggregate for the dashboard header.
func GetStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return orderControllers.GetStatsHandler(db)
}

// GetRecentOrdersHandler returns the newest orders as summary rows.
// Query param: limit (default 10).
func GetRecentOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 10
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = n
		}

		orders, err := orderControllers.ListAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if len(orders) > limit {
			orders = orders[:limit]
		}

		summaries := make([]OrderSummary, 0, len(orders))
		for i := range orders {
			summaries = append(summaries, summarize(&orders[i]))
		}
		c.JSON(http.StatusOK, summaries)
	}
}

// GetAllOrdersHandler returns every order fully formatted for the orders
// table, newest first.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := orderControllers.ListAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		details := make([]OrderDetail, 0, len(orders))
		for i := range orders {
			order := &orders[i]
			details = append(details, OrderDetail{
				OrderSummary:  summarize(order),
				FirstName:     order.FirstName,
				LastName:      order.LastName,
				Phone:         order.Phone,
				Address:       order.Address,
				City:          order.City,
				PostalCode:    order.PostalCode,
				Country:       order.Country,
				PaymentMethod: order.PaymentMethod,
				ItemRows:      order.Items,
			})
		}
		c.JSON(http.StatusOK, details)
	}
}

// GetCustomersHandler lists every registered user with their order count and
// lifetime spend, including users who never ordered.
func GetCustomersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		orders, err := orderControllers.ListAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		spent := make(map[string]decimal.Decimal, len(users))
		counts := make(map[string]int, len(users))
		for _, order := range orders {
			spent[order.UserID] = spent[order.UserID].Add(order.Total)
			counts[order.UserID]++
		}

		customers := make([]CustomerSummary, 0, len(users))
		for _, user := range users {
			customers = append(customers, CustomerSummary{
				ID:             user.ID,
				Name:           user.Name,
				Email:          user.Email,
				Phone:          user.Phone,
				Country:        user.Country,
				City:           user.City,
				Role:           user.Role,
				TotalSpent:     spent[user.ID],
				OrderCount:     counts[user.ID],
				RegisteredDate: user.CreatedAt.Format("2006-01-02"),
			})
		}
		c.JSON(http.StatusOK, customers)
	}
}
