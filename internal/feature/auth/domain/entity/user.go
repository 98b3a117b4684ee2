// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// AppUser represents a registered user in the system.
type AppUser struct {
	// ID is the surrogate key of the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name. It must be unique across all users and is matched exactly.
	Username string `gorm:"uniqueIndex;size:100;not null"`

	// Email is the user's email address. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Roles are the roles granted to the user through tbl_user_roles.
	Roles []Role `gorm:"many2many:tbl_user_roles;joinForeignKey:UserID;joinReferences:RoleID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (AppUser) TableName() string {
	return "tbl_users"
}
