package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/block"
)

type TeamMembers []block.TeamMember

func (t TeamMembers) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	b, err := json.Marshal(t)
	return string(b), err
}

func (t *TeamMembers) Scan(value interface{}) error {
	if value == nil {
		*t = TeamMembers{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, t)
}

// Project is a portfolio piece: page metadata plus the ordered content
// blocks and team credits, both stored as JSON columns. Slug and Type
// are immutable after creation.
type Project struct {
	ID          string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string         `gorm:"type:varchar(255);uniqueIndex:idx_project_slug;not null" json:"slug"`
	Type        string         `gorm:"type:varchar(64)" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"type:varchar(128);index:idx_project_category" json:"category"`
	Thumbnail   string         `gorm:"type:varchar(512)" json:"thumbnail,omitempty"`
	Blocks      block.List     `gorm:"type:json" json:"blocks"`
	Team        TeamMembers    `gorm:"type:json" json:"team"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }
