package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/model"
)

type ShopService struct {
	db *gorm.DB
}

func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{db: db}
}

type ProductInput struct {
	ProductID   string  `json:"product_id" binding:"required,max=64"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	Image       string  `json:"image"`
}

func (s *ShopService) CreateProduct(ctx context.Context, in ProductInput) (*model.ShopProduct, error) {
	var count int64
	s.db.WithContext(ctx).Model(&model.ShopProduct{}).Where("product_id = ?", in.ProductID).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("40005:product id already exists")
	}
	product := &model.ShopProduct{
		ID:          uuid.NewString(),
		ProductID:   in.ProductID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ShopService) ListProducts(ctx context.Context) ([]model.ShopProduct, error) {
	var products []model.ShopProduct
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ShopService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*model.ShopProduct, error) {
	var product model.ShopProduct
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	product.ProductID = in.ProductID
	product.Title = in.Title
	product.Description = in.Description
	product.Price = in.Price
	product.Image = in.Image
	if err := s.db.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ShopService) DeleteProduct(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopProduct{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ShopService) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *ShopService) DeleteOrder(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Order{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
