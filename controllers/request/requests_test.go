package requestControllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	requestControllers "github.com/Amezzyx/backend-riders-forge/controllers/request"
	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
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

	require.NoError(t, db.AutoMigrate(&models.ContactRequest{}, &models.GraphicsRequest{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/requests/contact", requestControllers.CreateContactRequest(db))
	r.POST("/requests/graphics", requestControllers.CreateGraphicsRequest(db))
	r.GET("/admin/requests/contact", requestControllers.GetAllContactRequests(db))
	r.PUT("/admin/requests/:type/:id/status", requestControllers.UpdateRequestStatus(db))
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContactRequests(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	t.Run("create", func(t *testing.T) {
		w := do(r, http.MethodPost, "/requests/contact",
			`{"name":"Alex","email":"alex@example.com","subject":"Sizing","message":"Does the jersey run small?"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.ContactRequest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, "Pending", created.Status)
		assert.NotZero(t, created.ID)
	})

	t.Run("missing message rejected", func(t *testing.T) {
		w := do(r, http.MethodPost, "/requests/contact",
			`{"name":"Alex","email":"alex@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := do(r, http.MethodGet, "/admin/requests/contact", "")
		require.Equal(t, http.StatusOK, w.Code)

		var requests []models.ContactRequest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &requests))
		assert.Len(t, requests, 1)
	})
}

func TestGraphicsRequests(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	w := do(r, http.MethodPost, "/requests/graphics",
		`{"name":"Alex","email":"alex@example.com","bike_model":"YZ250F","bike_year":"2023","design_description":"Full factory kit"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.GraphicsRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Pending", created.Status)

	t.Run("bike model required", func(t *testing.T) {
		w := do(r, http.MethodPost, "/requests/graphics",
			`{"name":"Alex","email":"alex@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateRequestStatus(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)
	require.NoError(t, db.Create(&models.ContactRequest{
		Name: "Alex", Email: "alex@example.com", Message: "hi", Status: "Pending",
	}).Error)

	t.Run("contact", func(t *testing.T) {
		w := do(r, http.MethodPut, "/admin/requests/contact/1/status", `{"status":"Resolved"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.ContactRequest
		require.NoError(t, db.First(&got, 1).Error)
		assert.Equal(t, "Resolved", got.Status)
	})

	t.Run("unknown type", func(t *testing.T) {
		w := do(r, http.MethodPut, "/admin/requests/warranty/1/status", `{"status":"Resolved"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		w := do(r, http.MethodPut, "/admin/requests/contact/999/status", `{"status":"Resolved"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
