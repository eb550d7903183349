package handlers

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"print-order-backend/internal/models"
	"print-order-backend/internal/supabase"
)

// maxUploadSize caps documents at 10MB.
const maxUploadSize = 10 << 20

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type UploadHandler struct {
	storageClient *supabase.StorageClient
}

func NewUploadHandler(storageClient *supabase.StorageClient) *UploadHandler {
	return &UploadHandler{
		storageClient: storageClient,
	}
}

// Upload godoc
// @Summary     Upload a document
// @Description Validates and stores a print document or payment proof.
// @Description Only PDF, DOC, and DOCX up to 10MB are accepted.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Document to print"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no file provided"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid file type. Only PDF, DOC, and DOCX are allowed.",
		})
		return
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "file too large. Maximum size is 10MB.",
		})
		return
	}

	if h.storageClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}

	objectName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFilename(fileHeader.Filename))

	storagePath, publicURL, err := h.storageClient.UploadFile(objectName, data, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upload file",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		FileName: fileHeader.Filename,
		FilePath: storagePath,
		FileURL:  publicURL,
	})
}

// SanitizeFilename keeps object names storage-safe; anything outside
// [a-zA-Z0-9.-] becomes an underscore.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
