package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	Description    string          `json:"description"`
	Category       string          `gorm:"not null" json:"category"`
	Subcategory    string          `json:"subcategory"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	RegularPrice   decimal.Decimal `gorm:"type:decimal(10,2)" json:"regular_price"`
	Image          string          `json:"image"`
	Sizes          []string        `gorm:"serializer:json" json:"sizes"`
	SizeQuantities map[string]int  `gorm:"serializer:json" json:"size_quantities"`
	Quantity       int             `gorm:"default:0" json:"quantity"`
	IsNew          bool            `gorm:"default:false" json:"is_new"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
	Version        uint            `gorm:"default:0" json:"-"` // bumped on every stock write
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// HasSizes reports whether the product tracks per-size stock.
func (p *Product) HasSizes() bool {
	return len(p.SizeQuantities) > 0
}

// SizeTotal is the aggregate quantity implied by the per-size map.
// Invariant: Quantity == SizeTotal() whenever SizeQuantities is present.
func (p *Product) SizeTotal() int {
	total := 0
	for _, qty := range p.SizeQuantities {
		total += qty
	}
	return total
}
