package productcontroller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	productcontroller "github.com/Amezzyx/backend-riders-forge/controllers/product"
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

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.POST("/products", productcontroller.CreateProduct(db))
	r.PUT("/products/:id", productcontroller.UpdateProduct(db))
	r.DELETE("/products/:id", productcontroller.DeleteProduct(db))
	r.POST("/products/stock/set", productcontroller.SetAllStockHandler(db))
	r.POST("/products/stock/add", productcontroller.AddStockHandler(db))
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) models.Product {
	t.Helper()
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	t.Run("sizes without quantities start at zero", func(t *testing.T) {
		w := do(r, http.MethodPost, "/products",
			`{"name":"Team Jersey","category":"jerseys","price":"49.00","sizes":["S","M","L"]}`)
		require.Equal(t, http.StatusCreated, w.Code)

		p := decodeProduct(t, w)
		assert.Equal(t, map[string]int{"S": 0, "M": 0, "L": 0}, p.SizeQuantities)
		assert.Zero(t, p.Quantity)
		assert.True(t, p.IsActive)
	})

	t.Run("aggregate derived from size map", func(t *testing.T) {
		w := do(r, http.MethodPost, "/products",
			`{"name":"Hoodie","category":"hoodies","price":"79.00","sizes":["M","L"],"size_quantities":{"M":3,"L":5},"quantity":999}`)
		require.Equal(t, http.StatusCreated, w.Code)

		p := decodeProduct(t, w)
		assert.Equal(t, 8, p.Quantity, "declared quantity is overridden by the size map")
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		w := do(r, http.MethodPost, "/products", `{"name":"No Category"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetProducts(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	require.NoError(t, db.Create(&models.Product{
		Name: "Visible", Category: "jerseys", Price: decimal.NewFromInt(49), IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Hidden", Category: "jerseys", Price: decimal.NewFromInt(49), IsActive: false,
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		Name: "Other", Category: "stickers", Price: decimal.NewFromInt(9), IsActive: true,
	}).Error)

	t.Run("only active products", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products", "")
		require.Equal(t, http.StatusOK, w.Code)

		var products []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		require.Len(t, products, 2)
		assert.Equal(t, "Visible", products[0].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products?category=stickers", "")
		require.Equal(t, http.StatusOK, w.Code)

		var products []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Other", products[0].Name)
	})

	t.Run("missing product is 404", func(t *testing.T) {
		w := do(r, http.MethodGet, "/products/9999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUpdateProduct(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	p := models.Product{
		Name:           "Team Jersey",
		Category:       "jerseys",
		Price:          decimal.NewFromInt(49),
		Sizes:          []string{"M", "L"},
		SizeQuantities: map[string]int{"M": 3, "L": 5},
		Quantity:       8,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&p).Error)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		w := do(r, http.MethodPut, "/products/1", `{"price":"59.00"}`)
		require.Equal(t, http.StatusOK, w.Code)

		got := decodeProduct(t, w)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("59.00")))
		assert.Equal(t, "Team Jersey", got.Name)
		assert.Equal(t, map[string]int{"M": 3, "L": 5}, got.SizeQuantities)
	})

	t.Run("size map edit re-syncs aggregate", func(t *testing.T) {
		w := do(r, http.MethodPut, "/products/1", `{"size_quantities":{"M":1,"L":1}}`)
		require.Equal(t, http.StatusOK, w.Code)

		got := decodeProduct(t, w)
		assert.Equal(t, 2, got.Quantity)
	})

	t.Run("missing product is 404", func(t *testing.T) {
		w := do(r, http.MethodPut, "/products/9999", `{"price":"1.00"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteProductKeepsOrderSnapshots(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	p := models.Product{Name: "Team Jersey", Category: "jerseys", Price: decimal.NewFromInt(49), IsActive: true}
	require.NoError(t, db.Create(&p).Error)

	order := models.Order{
		OrderNumber: "ORD-1-AAAAAAAAA",
		Email:       "rider@example.com",
		Items: []models.OrderItem{
			{ProductID: p.ID, ProductName: p.Name, Price: p.Price, Quantity: 1},
		},
	}
	require.NoError(t, db.Create(&order).Error)

	w := do(r, http.MethodDelete, "/products/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.OrderItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, "Team Jersey", items[0].ProductName)
}

func TestBulkStockHandlers(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	require.NoError(t, db.Create(&models.Product{
		Name:           "Team Jersey",
		Category:       "jerseys",
		Price:          decimal.NewFromInt(49),
		Sizes:          []string{"M", "L"},
		SizeQuantities: map[string]int{"M": 9, "L": 0},
		Quantity:       9,
		IsActive:       true,
	}).Error)

	t.Run("set defaults to four per size", func(t *testing.T) {
		w := do(r, http.MethodPost, "/products/stock/set", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"updated":1}`, w.Body.String())

		var p models.Product
		require.NoError(t, db.First(&p).Error)
		assert.Equal(t, map[string]int{"M": 4, "L": 4}, p.SizeQuantities)
		assert.Equal(t, 8, p.Quantity)
	})

	t.Run("add with explicit amount", func(t *testing.T) {
		w := do(r, http.MethodPost, "/products/stock/add", `{"amount":2}`)
		require.Equal(t, http.StatusOK, w.Code)

		var p models.Product
		require.NoError(t, db.First(&p).Error)
		assert.Equal(t, map[string]int{"M": 6, "L": 6}, p.SizeQuantities)
		assert.Equal(t, 12, p.Quantity)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		w := do(r, http.MethodPost, "/products/stock/set", `{"amount":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
