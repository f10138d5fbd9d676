package models

type Market struct {
	BaseModel
	UserID      string `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Products []Product `gorm:"foreignKey:MarketID" json:"-"`
}
