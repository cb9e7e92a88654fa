package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/service"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// GET /posts — public, published only.
func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context(), true)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, posts)
}

// GET /admin/posts — all posts, drafts included.
func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context(), false)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, posts)
}

// GET /posts/slug/:slug
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "post not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, post)
}

// GET /admin/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.postService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "post not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, post)
}

// POST /admin/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req service.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	post, err := h.postService.Create(c.Request.Context(), req)
	if err != nil {
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, post)
}

// PUT /admin/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	var req service.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	post, err := h.postService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "post not found")
			return
		}
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, post)
}

// DELETE /admin/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.postService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "post not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}
