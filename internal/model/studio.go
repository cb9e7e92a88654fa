package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type PortfolioItem struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
	Image string `json:"image"`
	Type  string `json:"type"`
	Year  int    `json:"year"`
}

type FontItem struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Type  string  `json:"type"`
	Price float64 `json:"price"`
}

type ArtworkItem struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Image  string `json:"image"`
	Type   string `json:"type"`
}

// StudioData bundles the studio page's list-shaped fields into one JSON
// column; the shapes mirror what the admin form edits.
type StudioData struct {
	OpenDays   []string        `json:"open_days,omitempty"`
	Navigation []NavItem       `json:"navigation,omitempty"`
	Portfolio  []PortfolioItem `json:"portfolio,omitempty"`
	Fonts      []FontItem      `json:"fonts,omitempty"`
	Artworks   []ArtworkItem   `json:"artworks,omitempty"`
}

func (d StudioData) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	return string(b), err
}

func (d *StudioData) Scan(value interface{}) error {
	if value == nil {
		*d = StudioData{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, d)
}

// Studio is one creative studio presented on the public site.
type Studio struct {
	ID               string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name             string         `gorm:"type:varchar(128);not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description"`
	Thumbnail        string         `gorm:"type:varchar(512)" json:"thumbnail,omitempty"`
	Logo             string         `gorm:"type:varchar(512)" json:"logo,omitempty"`
	Author           string         `gorm:"type:varchar(128)" json:"author,omitempty"`
	ImageTitle       string         `gorm:"type:varchar(255)" json:"image_title,omitempty"`
	ImageDescription string         `gorm:"type:text" json:"image_description,omitempty"`
	OpenHours        string         `gorm:"type:varchar(128)" json:"open_hours,omitempty"`
	Slogan           string         `gorm:"type:varchar(255)" json:"slogan,omitempty"`
	Data             StudioData     `gorm:"type:json" json:"data"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Studio) TableName() string { return "studios" }
