package models

import "time"

// User represents an API user account.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password  string    `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role      string    `json:"role" gorm:"type:varchar(16);default:user" validate:"omitempty,oneof=admin user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
