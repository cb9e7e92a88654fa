package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/service"
)

type ShopHandler struct {
	shopService *service.ShopService
}

func NewShopHandler(shopService *service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// GET /shop/products
func (h *ShopHandler) ListProducts(c *gin.Context) {
	products, err := h.shopService.ListProducts(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, products)
}

// POST /admin/shop/products
func (h *ShopHandler) CreateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	product, err := h.shopService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, product)
}

// PUT /admin/shop/products/:id
func (h *ShopHandler) UpdateProduct(c *gin.Context) {
	var req service.ProductInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	product, err := h.shopService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "product not found")
			return
		}
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, product)
}

// DELETE /admin/shop/products/:id
func (h *ShopHandler) DeleteProduct(c *gin.Context) {
	if err := h.shopService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "product not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}

// GET /admin/shop/orders
func (h *ShopHandler) ListOrders(c *gin.Context) {
	orders, err := h.shopService.ListOrders(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, orders)
}

// DELETE /admin/shop/orders/:id
func (h *ShopHandler) DeleteOrder(c *gin.Context) {
	if err := h.shopService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "order not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}
