package model

import (
	"time"

	"gorm.io/gorm"
)

// User is an admin panel operator. Public visitors have no accounts.
type User struct {
	ID           string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex:idx_user_email;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(128);not null" json:"-"`
	Name         string         `gorm:"type:varchar(128)" json:"name"`
	IsAdmin      bool           `gorm:"default:false" json:"is_admin"`
	Status       int            `gorm:"default:1" json:"status"`
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// UserBrief is the reduced shape returned to the admin UI.
type UserBrief struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func (u *User) Brief() UserBrief {
	return UserBrief{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}
