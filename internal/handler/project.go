package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/newstalgia/backend/internal/block"
	"github.com/newstalgia/backend/internal/model"
	"github.com/newstalgia/backend/internal/render"
	"github.com/newstalgia/backend/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, projects)
}

// GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, project)
}

// GET /projects/slug/:slug
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, project)
}

// GET /projects/:id/related?limit=4
func (h *ProjectHandler) Related(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	related, err := h.projectService.ListByCategory(c.Request.Context(), project.Category, project.ID, 4)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	Success(c, related)
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, project)
}

// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "project not found")
			return
		}
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, project)
}

// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, gin.H{"id": c.Param("id")})
}

// GET /projects/slug/:slug/page — the public server-rendered page body.
func (h *ProjectHandler) Page(c *gin.Context) {
	project, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	h.renderPage(c, project)
}

// GET /projects/:id/preview — admin preview, same renderer as the
// public page so what the editor shows is what ships.
func (h *ProjectHandler) Preview(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, 40401, "project not found")
			return
		}
		InternalError(c, err.Error())
		return
	}
	h.renderPage(c, project)
}

func (h *ProjectHandler) renderPage(c *gin.Context, project *model.Project) {
	html, err := render.HTML(render.Page{
		Title:       project.Title,
		Description: project.Description,
		Document:    render.Compose(project.Blocks, []block.TeamMember(project.Team)),
	})
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
