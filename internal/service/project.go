package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/block"
	"github.com/newstalgia/backend/internal/model"
)

type ProjectService struct {
	db    *gorm.DB
	cache *ListCache
}

func NewProjectService(db *gorm.DB, cache *ListCache) *ProjectService {
	return &ProjectService{db: db, cache: cache}
}

// ProjectInput carries the writable fields of a project. Slug and Type
// are honored on create only.
type ProjectInput struct {
	Title       string             `json:"title" binding:"required,max=255"`
	Slug        string             `json:"slug" binding:"max=255"`
	Type        string             `json:"type" binding:"max=64"`
	Description string             `json:"description"`
	Category    string             `json:"category" binding:"max=128"`
	Thumbnail   string             `json:"thumbnail"`
	Blocks      block.List         `json:"blocks"`
	Team        []block.TeamMember `json:"team"`
}

// prepareBlocks normalizes legacy tags, validates against the schema and
// assigns ids to new blocks. Every write path goes through this.
func prepareBlocks(in block.List) (block.List, error) {
	normalized := in.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, fmt.Errorf("40002:%s", err.Error())
	}
	return normalized.WithIDs(uuid.NewString), nil
}

func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*model.Project, error) {
	if in.Slug == "" {
		return nil, fmt.Errorf("40001:slug is required")
	}
	var count int64
	s.db.WithContext(ctx).Model(&model.Project{}).Where("slug = ?", in.Slug).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:slug already exists")
	}

	blocks, err := prepareBlocks(in.Blocks)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Slug:        in.Slug,
		Type:        in.Type,
		Description: in.Description,
		Category:    in.Category,
		Thumbnail:   in.Thumbnail,
		Blocks:      blocks,
		Team:        model.TeamMembers(in.Team),
	}
	if project.Team == nil {
		project.Team = model.TeamMembers{}
	}
	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}
	var projects []model.Project
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	s.cache.Set(ctx, projects)
	return projects, nil
}

// ListByCategory backs the related-projects strip; never cached since
// the filter varies.
func (s *ProjectService) ListByCategory(ctx context.Context, category string, excludeID string, limit int) ([]model.Project, error) {
	query := s.db.WithContext(ctx).Where("category = ?", category)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	if limit <= 0 {
		limit = 4
	}
	var projects []model.Project
	if err := query.Order("created_at DESC").Limit(limit).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	project.Blocks = project.Blocks.Normalize()
	return &project, nil
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, err
	}
	project.Blocks = project.Blocks.Normalize()
	return &project, nil
}

// Update rewrites the mutable fields. Slug and type in the input are
// ignored: they are immutable after creation.
func (s *ProjectService) Update(ctx context.Context, id string, in ProjectInput) (*model.Project, error) {
	var project model.Project
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}

	blocks, err := prepareBlocks(in.Blocks)
	if err != nil {
		return nil, err
	}

	project.Title = in.Title
	project.Description = in.Description
	project.Category = in.Category
	project.Thumbnail = in.Thumbnail
	project.Blocks = blocks
	project.Team = model.TeamMembers(in.Team)
	if project.Team == nil {
		project.Team = model.TeamMembers{}
	}
	if err := s.db.WithContext(ctx).Save(&project).Error; err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return &project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	s.cache.Invalidate(ctx)
	return nil
}
