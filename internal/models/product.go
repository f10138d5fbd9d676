package models

import "time"

// Product rows are removed physically, but the listing endpoint still filters
// on deleted_at to skip rows soft-deleted by earlier generations of the data.
type Product struct {
	BaseModel
	MarketID    string     `gorm:"not null;index" json:"market_id"`
	CategoryID  string     `gorm:"not null;index" json:"category_id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Stock       int        `gorm:"default:0" json:"stock"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}
