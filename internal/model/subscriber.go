package model

import (
	"time"

	"gorm.io/gorm"
)

// Subscriber is one newsletter signup.
type Subscriber struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email     string         `gorm:"type:varchar(255);uniqueIndex:idx_subscriber_email;not null" json:"email"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Subscriber) TableName() string { return "subscribers" }
