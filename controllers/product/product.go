package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	Category       string          `json:"category" binding:"required"`
	Subcategory    string          `json:"subcategory"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	RegularPrice   decimal.Decimal `json:"regular_price"`
	Image          string          `json:"image"`
	Sizes          []string        `json:"sizes"`
	SizeQuantities map[string]int  `json:"size_quantities"`
	Quantity       *int            `json:"quantity"`
	IsNew          bool            `json:"is_new"`
	IsActive       *bool           `json:"is_active"`
}

type UpdateProductInput struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	Category       *string          `json:"category"`
	Subcategory    *string          `json:"subcategory"`
	Price          *decimal.Decimal `json:"price"`
	RegularPrice   *decimal.Decimal `json:"regular_price"`
	Image          *string          `json:"image"`
	Sizes          []string         `json:"sizes"`
	SizeQuantities map[string]int   `json:"size_quantities"`
	IsNew          *bool            `json:"is_new"`
	IsActive       *bool            `json:"is_active"`
}

// GetProducts lists active products for the storefront, id ascending.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("is_active = ?", true).Order("id ASC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// CreateProduct creates a new catalog product. When sizes are declared
// without per-size quantities, every size starts at zero; whenever a size
// map is present, the aggregate quantity is derived from it.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product := models.Product{
			Name:           input.Name,
			Description:    input.Description,
			Category:       input.Category,
			Subcategory:    input.Subcategory,
			Price:          input.Price,
			RegularPrice:   input.RegularPrice,
			Image:          input.Image,
			Sizes:          input.Sizes,
			SizeQuantities: input.SizeQuantities,
			IsNew:          input.IsNew,
			IsActive:       true,
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}
		if input.Quantity != nil {
			product.Quantity = *input.Quantity
		}

		if len(product.Sizes) > 0 && product.SizeQuantities == nil {
			sq := make(map[string]int, len(product.Sizes))
			for _, size := range product.Sizes {
				sq[size] = 0
			}
			product.SizeQuantities = sq
		}
		if product.HasSizes() {
			product.Quantity = product.SizeTotal()
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProduct updates an existing product by ID. Only the fields present
// in the body change; size-map edits keep the aggregate quantity in sync.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Subcategory != nil {
			product.Subcategory = *input.Subcategory
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.RegularPrice != nil {
			product.RegularPrice = *input.RegularPrice
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.IsNew != nil {
			product.IsNew = *input.IsNew
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}
		if input.Sizes != nil {
			product.Sizes = input.Sizes
			if input.SizeQuantities == nil && product.SizeQuantities == nil {
				sq := make(map[string]int, len(input.Sizes))
				for _, size := range input.Sizes {
					sq[size] = 0
				}
				product.SizeQuantities = sq
			}
		}
		if input.SizeQuantities != nil {
			product.SizeQuantities = input.SizeQuantities
		}
		if product.HasSizes() {
			product.Quantity = product.SizeTotal()
		}
		product.Version++

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		// Order items keep their snapshot; only the catalog row goes away.
		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
