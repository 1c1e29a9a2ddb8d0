package productcontroller

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Amezzyx/backend-riders-forge/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the full catalog, including per-size stock,
// as an xlsx download for the back office.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Category", "Subcategory", "Price", "RegularPrice",
			"Sizes", "SizeQuantities", "Quantity", "IsActive", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()

			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Subcategory)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(p.RegularPrice.StringFixed(2))
			row.AddCell().SetValue(strings.Join(p.Sizes, ","))
			row.AddCell().SetValue(formatSizeQuantities(p.SizeQuantities))
			row.AddCell().SetValue(p.Quantity)
			row.AddCell().SetValue(p.IsActive)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func formatSizeQuantities(sq map[string]int) string {
	if len(sq) == 0 {
		return ""
	}
	sizes := make([]string, 0, len(sq))
	for size := range sq {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)

	parts := make([]string, 0, len(sizes))
	for _, size := range sizes {
		parts = append(parts, fmt.Sprintf("%s:%d", size, sq[size]))
	}
	return strings.Join(parts, ",")
}
