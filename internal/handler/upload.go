package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/newstalgia/backend/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
}

func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// POST /admin/upload — multipart form with a "file" field, responds
// with the public URL of the stored asset.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, 40001, "file field is required")
		return
	}

	url, err := h.uploadService.Store(file)
	if err != nil {
		code, msg := parseErrorCode(err)
		BadRequest(c, code, msg)
		return
	}
	Success(c, gin.H{"url": url})
}
