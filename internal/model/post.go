package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// ContentSection is an extra titled paragraph appended below the main
// article body.
type ContentSection struct {
	Title     string `json:"title"`
	Paragraph string `json:"paragraph"`
}

type ContentSections []ContentSection

func (s ContentSections) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *ContentSections) Scan(value interface{}) error {
	if value == nil {
		*s = ContentSections{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, s)
}

type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case string:
		bytes = []byte(v)
	case []byte:
		bytes = v
	}
	return json.Unmarshal(bytes, s)
}

// Post is a blog article. Content is authored as markdown; ContentHTML
// is rendered server-side on write.
type Post struct {
	ID             string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title          string          `gorm:"type:varchar(255);not null" json:"title"`
	Slug           string          `gorm:"type:varchar(255);uniqueIndex:idx_post_slug;not null" json:"slug"`
	Summary        string          `gorm:"type:text" json:"summary"`
	Content        string          `gorm:"type:mediumtext" json:"content"`
	ContentHTML    string          `gorm:"type:mediumtext" json:"content_html"`
	FeaturedImage  string          `gorm:"type:varchar(512)" json:"featured_image,omitempty"`
	Published      bool            `gorm:"default:false;index:idx_post_published" json:"published"`
	PublishedAt    *time.Time      `json:"published_at,omitempty"`
	Type           string          `gorm:"type:varchar(64)" json:"type,omitempty"`
	AuthorName     string          `gorm:"type:varchar(128)" json:"author_name,omitempty"`
	AuthorJobTitle string          `gorm:"type:varchar(128)" json:"author_job_title,omitempty"`
	ReadingTime    string          `gorm:"type:varchar(32)" json:"reading_time,omitempty"`
	Quote          string          `gorm:"type:text" json:"quote,omitempty"`
	QuoteAuthor    string          `gorm:"type:varchar(128)" json:"quote_author,omitempty"`
	ReferencePic   string          `gorm:"type:varchar(512)" json:"reference_pic_url,omitempty"`
	ReferenceName  string          `gorm:"type:varchar(255)" json:"reference_pic_name,omitempty"`
	ContentSources StringList      `gorm:"type:json" json:"content_sources"`
	Sections       ContentSections `gorm:"type:json" json:"additional_content"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Post) TableName() string { return "posts" }
