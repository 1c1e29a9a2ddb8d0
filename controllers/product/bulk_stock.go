package productcontroller

import (
	"net/http"

	"github.com/Amezzyx/backend-riders-forge/stock"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// defaultBulkAmount matches the warehouse's standard restock batch.
const defaultBulkAmount = 4

type BulkStockRequest struct {
	Amount *int `json:"amount"`
}

func (r *BulkStockRequest) amount() int {
	if r.Amount == nil {
		return defaultBulkAmount
	}
	return *r.Amount
}

// SetAllStockHandler overwrites every size's stock on every product with the
// given amount. A failure partway through is surfaced along with the number
// of products already updated; those updates stay applied.
func SetAllStockHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkStockRequest
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Amount != nil && *req.Amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
			return
		}

		updated, err := stock.SetAllPerSize(db, req.amount())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "updated": updated})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": updated})
	}
}

// AddStockHandler adds the given amount to every size on every product.
func AddStockHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BulkStockRequest
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Amount != nil && *req.Amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
			return
		}

		updated, err := stock.AddToEverySize(db, req.amount())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "updated": updated})
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": updated})
	}
}
