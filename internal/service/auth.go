package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/model"
	jwtpkg "github.com/newstalgia/backend/pkg/jwt"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	jwtExpire int
}

func NewAuthService(db *gorm.DB, jwtSecret string, jwtExpireHours int) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret, jwtExpire: jwtExpireHours}
}

// Login verifies the credentials and issues a token. The same error is
// returned for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, time.Time, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", time.Time{}, fmt.Errorf("40103:invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if user.Status == 0 {
		return nil, "", time.Time{}, fmt.Errorf("40104:account disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, fmt.Errorf("40103:invalid email or password")
	}

	now := time.Now()
	s.db.WithContext(ctx).Model(&user).Update("last_login_at", &now)

	token, expireAt, err := jwtpkg.GenerateToken(s.jwtSecret, user.ID, user.IsAdmin, s.jwtExpire)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("generate token: %w", err)
	}
	return &user, token, expireAt, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return "", time.Time{}, err
	}
	return jwtpkg.GenerateToken(s.jwtSecret, user.ID, user.IsAdmin, s.jwtExpire)
}

// EnsureAdmin creates the bootstrap admin account when no user exists
// yet, so a fresh deployment can be logged into.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	var count int64
	s.db.WithContext(ctx).Model(&model.User{}).Count(&count)
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin",
		IsAdmin:      true,
		Status:       1,
	}
	return s.db.WithContext(ctx).Create(user).Error
}
