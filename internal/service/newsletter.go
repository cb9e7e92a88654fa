package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/model"
)

type NewsletterService struct {
	db *gorm.DB
}

func NewNewsletterService(db *gorm.DB) *NewsletterService {
	return &NewsletterService{db: db}
}

// Subscribe registers an email. Re-subscribing an existing address is
// not an error; the desired end state already holds.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("40001:invalid email address")
	}

	var existing model.Subscriber
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	sub := &model.Subscriber{ID: uuid.NewString(), Email: email}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *NewsletterService) ListSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	var subs []model.Subscriber
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscriber{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
