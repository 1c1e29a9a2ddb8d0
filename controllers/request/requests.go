package requestControllers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/Amezzyx/backend-riders-forge/mail"
	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactRequestInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type GraphicsRequestInput struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone"`
	BikeModel         string `json:"bike_model" binding:"required"`
	BikeYear          string `json:"bike_year"`
	DesignType        string `json:"design_type"`
	DesignDescription string `json:"design_description"`
	Budget            string `json:"budget"`
	Timeline          string `json:"timeline"`
}

type UpdateRequestStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func notifyBackOffice(subject, body string) {
	if to := os.Getenv("BACKOFFICE_EMAIL"); to != "" {
		mail.SendAsync(to, subject, body)
	}
}

// POST /requests/contact
func CreateContactRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		request := models.ContactRequest{
			Name:    input.Name,
			Email:   input.Email,
			Subject: input.Subject,
			Message: input.Message,
			Status:  "Pending",
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save request"})
			return
		}

		notifyBackOffice("New contact request from "+request.Name,
			"Subject: "+request.Subject+"\n\n"+request.Message)
		c.JSON(http.StatusCreated, request)
	}
}

// POST /requests/graphics
func CreateGraphicsRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GraphicsRequestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		request := models.GraphicsRequest{
			Name:              input.Name,
			Email:             input.Email,
			Phone:             input.Phone,
			BikeModel:         input.BikeModel,
			BikeYear:          input.BikeYear,
			DesignType:        input.DesignType,
			DesignDescription: input.DesignDescription,
			Budget:            input.Budget,
			Timeline:          input.Timeline,
			Status:            "Pending",
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save request"})
			return
		}

		notifyBackOffice("New graphics request from "+request.Name,
			"Bike: "+request.BikeModel+" "+request.BikeYear+"\n\n"+request.DesignDescription)
		c.JSON(http.StatusCreated, request)
	}
}

// GET /admin/requests/contact
func GetAllContactRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.ContactRequest
		if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// GET /admin/requests/graphics
func GetAllGraphicsRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requests []models.GraphicsRequest
		if err := db.Order("created_at DESC").Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// PUT /admin/requests/:type/:id/status
func UpdateRequestStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
			return
		}
		var input UpdateRequestStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var res *gorm.DB
		switch c.Param("type") {
		case "contact":
			res = db.Model(&models.ContactRequest{}).Where("id = ?", id).Update("status", input.Status)
		case "graphics":
			res = db.Model(&models.GraphicsRequest{}).Where("id = ?", id).Update("status", input.Status)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown request type"})
			return
		}
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Request status updated"})
	}
}
