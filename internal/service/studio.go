package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/model"
)

type StudioService struct {
	db *gorm.DB
}

func NewStudioService(db *gorm.DB) *StudioService {
	return &StudioService{db: db}
}

type StudioInput struct {
	Name             string           `json:"name" binding:"required,max=128"`
	Description      string           `json:"description"`
	Thumbnail        string           `json:"thumbnail"`
	Logo             string           `json:"logo"`
	Author           string           `json:"author"`
	ImageTitle       string           `json:"image_title"`
	ImageDescription string           `json:"image_description"`
	OpenHours        string           `json:"open_hours"`
	Slogan           string           `json:"slogan"`
	Data             model.StudioData `json:"data"`
}

func (s *StudioService) Create(ctx context.Context, in StudioInput) (*model.Studio, error) {
	var count int64
	s.db.WithContext(ctx).Model(&model.Studio{}).Where("name = ?", in.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:studio name already exists")
	}
	studio := &model.Studio{ID: uuid.NewString()}
	applyStudio(studio, in)
	if err := s.db.WithContext(ctx).Create(studio).Error; err != nil {
		return nil, err
	}
	return studio, nil
}

func applyStudio(studio *model.Studio, in StudioInput) {
	studio.Name = in.Name
	studio.Description = in.Description
	studio.Thumbnail = in.Thumbnail
	studio.Logo = in.Logo
	studio.Author = in.Author
	studio.ImageTitle = in.ImageTitle
	studio.ImageDescription = in.ImageDescription
	studio.OpenHours = in.OpenHours
	studio.Slogan = in.Slogan
	studio.Data = in.Data
}

func (s *StudioService) List(ctx context.Context) ([]model.Studio, error) {
	var studios []model.Studio
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&studios).Error; err != nil {
		return nil, err
	}
	return studios, nil
}

func (s *StudioService) GetByID(ctx context.Context, id string) (*model.Studio, error) {
	var studio model.Studio
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&studio).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

func (s *StudioService) Update(ctx context.Context, id string, in StudioInput) (*model.Studio, error) {
	studio, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyStudio(studio, in)
	if err := s.db.WithContext(ctx).Save(studio).Error; err != nil {
		return nil, err
	}
	return studio, nil
}

func (s *StudioService) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Studio{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
