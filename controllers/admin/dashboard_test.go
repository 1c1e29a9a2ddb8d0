package adminController_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	adminController "github.com/Amezzyx/backend-riders-forge/controllers/admin"
	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func perform(handler gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	handler(c)
	return w
}

func seedOrder(t *testing.T, db *gorm.DB, userID, total string, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		OrderNumber: "ORD-" + total + "-" + userID + string(status),
		UserID:      userID,
		Email:       userID + "@example.com",
		FirstName:   "Alex",
		LastName:    "Mercer",
		Total:       decimal.RequireFromString(total),
		Status:      status,
		Items: []models.OrderItem{
			{ProductName: "Team Jersey", Price: decimal.RequireFromString(total), Quantity: 1, Size: "M"},
		},
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestGetRecentOrdersHandler(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 3; i++ {
		seedOrder(t, db, "user-1", decimal.NewFromInt(int64(10+i)).String(), models.OrderStatusPending)
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("limit applies", func(t *testing.T) {
		w := perform(adminController.GetRecentOrdersHandler(db), "/admin/orders?limit=2")
		require.Equal(t, http.StatusOK, w.Code)

		var rows []adminController.OrderSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		require.Len(t, rows, 2)
		// Newest first.
		assert.True(t, rows[0].ID > rows[1].ID)
		assert.Equal(t, "Alex Mercer", rows[0].Customer)
		assert.Equal(t, 1, rows[0].Items)
	})

	t.Run("invalid limit rejected", func(t *testing.T) {
		w := perform(adminController.GetRecentOrdersHandler(db), "/admin/orders?limit=zero")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAllOrdersHandler(t *testing.T) {
	db := newTestDB(t)
	order := seedOrder(t, db, "user-1", "49.00", models.OrderStatusShipped)

	w := perform(adminController.GetAllOrdersHandler(db), "/admin/orders/all")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []adminController.OrderDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, order.OrderNumber, rows[0].OrderNumber)
	assert.Equal(t, "Shipped", rows[0].Status)
	require.Len(t, rows[0].ItemRows, 1)
	assert.Equal(t, "Team Jersey", rows[0].ItemRows[0].ProductName)
}

func TestGetCustomersHandler(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.User{
		ID: "user-1", Email: "user-1@example.com", Password: "x", Name: "Alex Mercer",
	}).Error)
	require.NoError(t, db.Create(&models.User{
		ID: "user-2", Email: "user-2@example.com", Password: "x", Name: "Sam Reyes",
	}).Error)
	seedOrder(t, db, "user-1", "49.00", models.OrderStatusDelivered)
	seedOrder(t, db, "user-1", "12.50", models.OrderStatusPending)

	w := perform(adminController.GetCustomersHandler(db), "/admin/customers")
	require.Equal(t, http.StatusOK, w.Code)

	var customers []adminController.CustomerSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
	require.Len(t, customers, 2)

	byID := map[string]adminController.CustomerSummary{}
	for _, c := range customers {
		byID[c.ID] = c
	}

	buyer := byID["user-1"]
	assert.Equal(t, 2, buyer.OrderCount)
	assert.True(t, buyer.TotalSpent.Equal(decimal.RequireFromString("61.50")),
		"spent = %s", buyer.TotalSpent)

	lurker := byID["user-2"]
	assert.Zero(t, lurker.OrderCount)
	assert.True(t, lurker.TotalSpent.IsZero())
}
