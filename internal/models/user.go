package models

import "time"

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
	UserRoleSeller   UserRole = "seller"
)

// ValidRole reports whether the role belongs to the fixed enumeration.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleAdmin, UserRoleCustomer, UserRoleSeller:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FullName     string     `json:"full_name"`
	Gender       string     `json:"gender,omitempty"`
	Birthday     string     `json:"birthday,omitempty"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	IsEnabled    bool       `gorm:"default:true" json:"is_enabled"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`

	// Relations
	Sessions []Session `gorm:"foreignKey:UserID" json:"-"`
	Markets  []Market  `gorm:"foreignKey:UserID" json:"-"`
}

// Session is a live refresh-token grant. At most one row exists per distinct
// refresh token value; a user logged in from several clients holds several rows.
type Session struct {
	BaseModel
	UserID       string    `gorm:"not null;index" json:"user_id"`
	RefreshToken string    `gorm:"not null;uniqueIndex" json:"refresh_token"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
}
