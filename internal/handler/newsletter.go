package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/service"
)

type NewsletterHandler struct {
	newsletterService *service.NewsletterService
}

func NewNewsletterHandler(newsletterService *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// POST /newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "email is required")
		return
	}

	sub, err := h.newsletterService.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, gin.H{"email": sub.Email})
}

// GET /admin/newsletter/subscribers
func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	subs, err := h.newsletterService.ListSubscribers(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, subs)
}

// DELETE /admin/newsletter/subscribers/:id
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	if err := h.newsletterService.Unsubscribe(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "subscriber not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}
