package models

// Category uses soft delete: rows keep their deletion timestamp and are
// excluded from reads by GORM automatically.
type Category struct {
	BaseModelWithDeleted
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
