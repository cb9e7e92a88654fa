package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/model"
)

type PostService struct {
	db       *gorm.DB
	markdown goldmark.Markdown
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		db: db,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

type PostInput struct {
	Title          string                `json:"title" binding:"required,max=255"`
	Slug           string                `json:"slug" binding:"max=255"`
	Summary        string                `json:"summary"`
	Content        string                `json:"content"`
	FeaturedImage  string                `json:"featured_image"`
	Published      bool                  `json:"published"`
	Type           string                `json:"type"`
	AuthorName     string                `json:"author_name"`
	AuthorJobTitle string                `json:"author_job_title"`
	ReadingTime    string                `json:"reading_time"`
	Quote          string                `json:"quote"`
	QuoteAuthor    string                `json:"quote_author"`
	ReferencePic   string                `json:"reference_pic_url"`
	ReferenceName  string                `json:"reference_pic_name"`
	ContentSources []string              `json:"content_sources"`
	Sections       []model.ContentSection `json:"additional_content"`
}

func (s *PostService) renderContent(md string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

func (s *PostService) apply(post *model.Post, in PostInput) error {
	html, err := s.renderContent(in.Content)
	if err != nil {
		return fmt.Errorf("40002:%s", err.Error())
	}
	post.Title = in.Title
	post.Summary = in.Summary
	post.Content = in.Content
	post.ContentHTML = html
	post.FeaturedImage = in.FeaturedImage
	post.Type = in.Type
	post.AuthorName = in.AuthorName
	post.AuthorJobTitle = in.AuthorJobTitle
	post.ReadingTime = in.ReadingTime
	post.Quote = in.Quote
	post.QuoteAuthor = in.QuoteAuthor
	post.ReferencePic = in.ReferencePic
	post.ReferenceName = in.ReferenceName
	post.ContentSources = model.StringList(in.ContentSources)
	post.Sections = model.ContentSections(in.Sections)

	if in.Published && !post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.Published = in.Published
	return nil
}

func (s *PostService) Create(ctx context.Context, in PostInput) (*model.Post, error) {
	if in.Slug == "" {
		return nil, fmt.Errorf("40001:slug is required")
	}
	var count int64
	s.db.WithContext(ctx).Model(&model.Post{}).Where("slug = ?", in.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:slug already exists")
	}

	post := &model.Post{ID: uuid.NewString(), Slug: in.Slug}
	if err := s.apply(post, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// List returns posts, optionally restricted to published ones for the
// public site.
func (s *PostService) List(ctx context.Context, publishedOnly bool) ([]model.Post, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	var posts []model.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	var post model.Post
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Update(ctx context.Context, id string, in PostInput) (*model.Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(post, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
