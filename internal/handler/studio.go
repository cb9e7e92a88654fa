package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/service"
)

type StudioHandler struct {
	studioService *service.StudioService
}

func NewStudioHandler(studioService *service.StudioService) *StudioHandler {
	return &StudioHandler{studioService: studioService}
}

// GET /studios
func (h *StudioHandler) List(c *gin.Context) {
	studios, err := h.studioService.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, studios)
}

// GET /studios/:id
func (h *StudioHandler) Get(c *gin.Context) {
	studio, err := h.studioService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "studio not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, studio)
}

// POST /admin/studios
func (h *StudioHandler) Create(c *gin.Context) {
	var req service.StudioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	studio, err := h.studioService.Create(c.Request.Context(), req)
	if err != nil {
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, studio)
}

// PUT /admin/studios/:id
func (h *StudioHandler) Update(c *gin.Context) {
	var req service.StudioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	studio, err := h.studioService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "studio not found")
			return
		}
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, studio)
}

// DELETE /admin/studios/:id
func (h *StudioHandler) Delete(c *gin.Context) {
	if err := h.studioService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "studio not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}
