package orderControllers

import (
	"net/http"

	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stats is the admin dashboard aggregate over the full order set.
type Stats struct {
	TotalOrders     int             `json:"totalOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	PendingOrders   int             `json:"pendingOrders"`
	CompletedOrders int             `json:"completedOrders"`
}

// ComputeStats is a pure function of the order set; callers re-run it per
// request, nothing is cached. Totals come back from the database as decimals
// regardless of how the column was stored, so string-typed totals coerce
// cleanly.
func ComputeStats(orders []models.Order) Stats {
	stats := Stats{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
	}
	for _, order := range orders {
		stats.TotalRevenue = stats.TotalRevenue.Add(order.Total)
		switch order.Status {
		case models.OrderStatusPending:
			stats.PendingOrders++
		case models.OrderStatusDelivered:
			stats.CompletedOrders++
		}
	}
	return stats
}

// GetStats recomputes the dashboard aggregate from the current order set.
func GetStats(db *gorm.DB) (Stats, error) {
	orders, err := ListAllOrders(db)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(orders), nil
}

func GetStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := GetStats(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
