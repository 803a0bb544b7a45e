package models

import "gorm.io/gorm"

// User represents a registered account. Accounts are created on
// signup and never mutated or deleted afterwards.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)"` // bcrypt hash
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
