package dto

import "marketplace_backend/internal/models"

// UpdateUserRequest is a partial update. Empty string fields keep the stored
// value; only IsEnabled distinguishes "absent" from "false" via the pointer.
type UpdateUserRequest struct {
	Email     string          `json:"email" binding:"omitempty,email"`
	FullName  string          `json:"full_name"`
	Gender    string          `json:"gender"`
	Birthday  string          `json:"birthday"`
	Role      models.UserRole `json:"role"`
	IsEnabled *bool           `json:"is_enabled"`
	Password  string          `json:"password"`
}
