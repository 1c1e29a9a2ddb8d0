package stock

import (
	"errors"
	"fmt"

	"github.com/Amezzyx/backend-riders-forge/logger"
	"github.com/Amezzyx/backend-riders-forge/metrics"
	"github.com/Amezzyx/backend-riders-forge/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a ledger operation names a product id
// that does not exist.
var ErrProductNotFound = errors.New("product not found")

// InsufficientStockError rejects a reservation that exceeds current
// availability. It names the product, size, available and requested counts so
// the storefront can show an actionable message.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Size        string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	if e.Size != "" {
		return fmt.Sprintf("not enough stock for %q (size %s): available %d, requested %d",
			e.ProductName, e.Size, e.Available, e.Requested)
	}
	return fmt.Sprintf("not enough stock for %q: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

// reserveRetries bounds the optimistic update loop. Exhausting it under
// contention fails the reservation as out of stock rather than spinning.
const reserveRetries = 5

// AvailableFor applies the ledger's availability rule to a loaded product:
// size-specific stock when a size is given and the product tracks per-size
// quantities, aggregate quantity otherwise.
func AvailableFor(p *models.Product, size string) int {
	if size != "" && p.HasSizes() {
		return p.SizeQuantities[size]
	}
	return p.Quantity
}

// Availability returns the purchasable quantity for a product.
func Availability(db *gorm.DB, productID uint, size string) (int, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("id %d: %w", productID, ErrProductNotFound)
		}
		return 0, err
	}
	return AvailableFor(&product, size), nil
}

// Reserve decrements the product's stock by amount, size-specific when the
// product tracks sizes. The write is a compare-and-swap on the product's
// version column: if another writer touched the row since it was read, the
// update misses and the loop re-reads and re-checks. Callers are expected to
// have validated availability already; the re-check here is what closes the
// race between two checkouts that both saw the same pre-decrement count.
// Must run inside the caller's transaction.
func Reserve(tx *gorm.DB, productID uint, size string, amount int) error {
	for attempt := 0; attempt < reserveRetries; attempt++ {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("id %d: %w", productID, ErrProductNotFound)
			}
			return err
		}

		available := AvailableFor(&product, size)
		if amount > available {
			return &InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Size:        sizeFor(&product, size),
				Available:   available,
				Requested:   amount,
			}
		}

		var res *gorm.DB
		if size != "" && product.HasSizes() {
			sq := copySizes(product.SizeQuantities)
			sq[size] = clampZero(sq[size] - amount)
			res = tx.Model(&models.Product{}).
				Where("id = ? AND version = ?", product.ID, product.Version).
				Select("size_quantities", "quantity", "version").
				Updates(models.Product{
					SizeQuantities: sq,
					Quantity:       sumSizes(sq),
					Version:        product.Version + 1,
				})
		} else {
			res = tx.Model(&models.Product{}).
				Where("id = ? AND version = ?", product.ID, product.Version).
				Select("quantity", "version").
				Updates(models.Product{
					Quantity: clampZero(product.Quantity - amount),
					Version:  product.Version + 1,
				})
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			return nil
		}

		// Version moved under us; another checkout won the row.
		metrics.StockConflictRetries.Inc()
	}

	available, err := Availability(tx, productID, size)
	if err != nil {
		return err
	}
	return &InsufficientStockError{
		ProductID: productID,
		Size:      size,
		Available: available,
		Requested: amount,
	}
}

// SetAllPerSize overwrites every defined size's stock on every product with
// amount, recomputing the aggregate quantity. Products without sizes get a
// single "One Size" bucket. Each product update is atomic on its own; the
// sweep as a whole is not, and a failure partway leaves earlier updates in
// place. Returns the number of products updated.
func SetAllPerSize(db *gorm.DB, amount int) (int, error) {
	var products []models.Product
	if err := db.Order("id ASC").Find(&products).Error; err != nil {
		return 0, err
	}

	updated := 0
	for i := range products {
		p := &products[i]
		sizes := sizeLabels(p)
		sq := make(map[string]int, len(sizes))
		for _, s := range sizes {
			sq[s] = amount
		}
		if err := writeSizes(db, p, sq); err != nil {
			logger.GetLogger().Error("bulk stock set failed",
				zap.Uint("product_id", p.ID), zap.Error(err))
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// AddToEverySize increases every defined size's stock on every product by
// amount, starting absent sizes at zero, and recomputes the aggregate
// quantity. Same per-product atomicity as SetAllPerSize.
func AddToEverySize(db *gorm.DB, amount int) (int, error) {
	var products []models.Product
	if err := db.Order("id ASC").Find(&products).Error; err != nil {
		return 0, err
	}

	updated := 0
	for i := range products {
		p := &products[i]
		sq := copySizes(p.SizeQuantities)
		for _, s := range sizeLabels(p) {
			sq[s] += amount
		}
		if err := writeSizes(db, p, sq); err != nil {
			logger.GetLogger().Error("bulk stock add failed",
				zap.Uint("product_id", p.ID), zap.Error(err))
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// writeSizes persists a new size map and its aggregate in one UPDATE,
// bumping the version so in-flight reservations re-read.
func writeSizes(db *gorm.DB, p *models.Product, sq map[string]int) error {
	return db.Model(&models.Product{}).
		Where("id = ?", p.ID).
		Select("size_quantities", "quantity", "version").
		Updates(models.Product{
			SizeQuantities: sq,
			Quantity:       sumSizes(sq),
			Version:        p.Version + 1,
		}).Error
}

func sizeLabels(p *models.Product) []string {
	if len(p.Sizes) > 0 {
		return p.Sizes
	}
	return []string{"One Size"}
}

func sizeFor(p *models.Product, size string) string {
	if size != "" && p.HasSizes() {
		return size
	}
	return ""
}

func copySizes(sq map[string]int) map[string]int {
	out := make(map[string]int, len(sq))
	for k, v := range sq {
		out[k] = v
	}
	return out
}

func sumSizes(sq map[string]int) int {
	total := 0
	for _, qty := range sq {
		total += qty
	}
	return total
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
