package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/pkg/filestorage"
	"github.com/videobelajar/backend/internal/pkg/logger"
)

// maxUploadSize caps a single uploaded file at 5 MB.
const maxUploadSize = 5 << 20

// UploadController handles file uploads
type UploadController struct {
	storage filestorage.FileStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage) *UploadController {
	return &UploadController{storage: storage}
}

// UploadFile handles POST /upload with a multipart "file" field.
func (c *UploadController) UploadFile(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No file uploaded"))
		return
	}

	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("File terlalu besar, maksimal 5MB"))
		return
	}

	path, err := c.storage.SaveFile(fileHeader)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to store uploaded file")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Terjadi kesalahan saat mengupload file"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("File uploaded successfully", gin.H{
		"filename": filepath.Base(path),
		"path":     path,
	}))
}
