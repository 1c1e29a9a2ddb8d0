package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Amezzyx/backend-riders-forge/logger"
	"github.com/Amezzyx/backend-riders-forge/mail"
	"github.com/Amezzyx/backend-riders-forge/metrics"
	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/Amezzyx/backend-riders-forge/stock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// -------- Request Structs --------

// CartLine is one product/size/quantity request within a checkout submission.
type CartLine struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	Items         []CartLine `json:"items" binding:"required"`
	UserID        string     `json:"user_id"`
	Email         string     `json:"email" binding:"required"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	PostalCode    string     `json:"postal_code"`
	Country       string     `json:"country"`
	PaymentMethod string     `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Errors --------

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrDuplicateOrderNumber surfaces the storage-level uniqueness
	// constraint on order numbers. Collisions are probabilistic and
	// extremely rare; the caller can simply retry.
	ErrDuplicateOrderNumber = errors.New("duplicate order number")
)

// ValidationError rejects a malformed cart line before it reaches the order
// builder.
type ValidationError struct {
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Line >= 0 {
		return fmt.Sprintf("invalid cart line %d: %s", e.Line, e.Reason)
	}
	return "invalid cart: " + e.Reason
}

// -------- Helpers --------

// ParseOrderStatus maps a string to a known OrderStatus, case-insensitively.
func ParseOrderStatus(status string) (models.OrderStatus, error) {
	for _, s := range []models.OrderStatus{
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		if strings.EqualFold(status, string(s)) {
			return s, nil
		}
	}
	return "", errors.New("invalid order status")
}

// generateOrderNumber builds a human-facing reference like
// ORD-1712345678901-4F9A21BC3. Uniqueness is probabilistic, not guaranteed;
// the unique index on order_number is the backstop.
func generateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}

func validateCart(items []CartLine) error {
	if len(items) == 0 {
		return &ValidationError{Line: -1, Reason: "cart is empty"}
	}
	for i, line := range items {
		if line.ProductID == 0 {
			return &ValidationError{Line: i, Reason: "product_id is required"}
		}
		if line.Quantity < 1 {
			return &ValidationError{Line: i, Reason: "quantity must be at least 1"}
		}
	}
	return nil
}

// -------- Core Logic --------

// CreateOrder converts a submitted cart into a persisted order.
//
// The availability pre-check, the order and item inserts, and every stock
// decrement run inside ONE transaction: either the whole order commits and
// every decrement applies, or nothing does. The pre-check touches every line
// before any write; Reserve re-checks each row at decrement time, which is
// what stops two concurrent checkouts from jointly overselling a row they
// both saw with the same pre-decrement count.
func CreateOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	if err := validateCart(req.Items); err != nil {
		metrics.OrderFailuresTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(req.Items))

		// All-or-nothing pre-check: every line is validated before any
		// mutation, and the product snapshot for each item is taken here.
		for _, line := range req.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("id %d: %w", line.ProductID, stock.ErrProductNotFound)
				}
				return err
			}

			available := stock.AvailableFor(&product, line.Size)
			if line.Quantity > available {
				return &stock.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Size:        line.Size,
					Available:   available,
					Requested:   line.Quantity,
				}
			}

			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			items = append(items, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    line.Quantity,
				Size:        line.Size,
				Image:       product.Image,
			})
		}

		order := models.Order{
			OrderNumber:   generateOrderNumber(),
			UserID:        req.UserID,
			Email:         req.Email,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Phone:         req.Phone,
			Address:       req.Address,
			City:          req.City,
			PostalCode:    req.PostalCode,
			Country:       req.Country,
			Total:         total,
			Status:        models.OrderStatusPending,
			PaymentMethod: req.PaymentMethod,
		}
		if err := tx.Create(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateOrderNumber
			}
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		for _, line := range req.Items {
			if err := stock.Reserve(tx, line.ProductID, line.Size, line.Quantity); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		metrics.OrderFailuresTotal.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	created, err := GetOrderByID(db, orderID, "")
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreatedTotal.Inc()
	broadcastNewOrder(*created)
	mail.SendAsync(created.Email,
		"Riders Forge – order "+created.OrderNumber,
		fmt.Sprintf("Thank you for your order!\n\nOrder number: %s\nTotal: %s\n\nWe will let you know as soon as it ships.",
			created.OrderNumber, created.Total.StringFixed(2)))

	return created, nil
}

func failureReason(err error) string {
	var insufficient *stock.InsufficientStockError
	var invalid *ValidationError
	switch {
	case errors.As(err, &invalid):
		return "validation"
	case errors.As(err, &insufficient):
		return "insufficient_stock"
	case errors.Is(err, stock.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, ErrDuplicateOrderNumber):
		return "duplicate_order_number"
	default:
		return "internal"
	}
}

// GetOrderByID loads an order with its items. When ownerUserID is non-empty
// the order must also belong to that user; a mismatch reads as not found so
// one account can never see another's orders.
func GetOrderByID(db *gorm.DB, id uint, ownerUserID string) (*models.Order, error) {
	query := db.Preload("Items")
	if ownerUserID != "" {
		query = query.Where("user_id = ?", ownerUserID)
	}

	var order models.Order
	if err := query.Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id %d: %w", id, ErrOrderNotFound)
		}
		return nil, err
	}
	return &order, nil
}

// ListOrdersByUser returns the user's orders, newest first.
func ListOrdersByUser(db *gorm.DB, userID string) ([]models.Order, error) {
	if userID == "" {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := db.
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllOrders returns every order, newest first, items eagerly loaded.
func ListAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus overwrites the order's status. The transition graph is
// open: any known status may follow any other.
func UpdateOrderStatus(db *gorm.DB, id uint, status string) (*models.Order, error) {
	newStatus, err := ParseOrderStatus(status)
	if err != nil {
		return nil, &ValidationError{Line: -1, Reason: err.Error()}
	}

	res := db.Model(&models.Order{}).Where("id = ?", id).Update("status", newStatus)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("id %d: %w", id, ErrOrderNotFound)
	}

	order, err := GetOrderByID(db, id, "")
	if err != nil {
		return nil, err
	}

	mail.SendAsync(order.Email,
		"Riders Forge – order "+order.OrderNumber+" is "+string(order.Status),
		fmt.Sprintf("Your order %s is now %s.", order.OrderNumber, order.Status))

	return order, nil
}

// -------- Handlers --------

func respondOrderError(c *gin.Context, err error) {
	var insufficient *stock.InsufficientStockError
	var invalid *ValidationError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, gin.H{
			"error":      err.Error(),
			"product_id": insufficient.ProductID,
			"size":       insufficient.Size,
			"available":  insufficient.Available,
			"requested":  insufficient.Requested,
		})
	case errors.Is(err, stock.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicateOrderNumber):
		c.JSON(http.StatusConflict, gin.H{"error": "order number collision, please retry"})
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
	default:
		logger.GetLogger().Error("order operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// PlaceOrderHandler creates a new order from a submitted cart
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := CreateOrder(db, req)
		if err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := ListAllOrders(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userID")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userID is required"})
			return
		}
		orders, err := ListOrdersByUser(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetMyOrdersHandler lists the authenticated user's own orders. The user id
// comes from the token claims, never from the request.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orders, err := ListOrdersByUser(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler returns a single order. The optional user_id query
// param scopes the lookup to that owner.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		order, err := GetOrderByID(db, uint(id), c.Query("user_id"))
		if err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := UpdateOrderStatus(db, uint(id), req.Status)
		if err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
