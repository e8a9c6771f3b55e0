package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/le-brouillon/portal-api/internal/config"
	"github.com/le-brouillon/portal-api/internal/storage"
	"github.com/rs/zerolog"
)

// UploadHandler stores answer assets (covers, author photos, PDFs) and
// returns their public URL for inclusion in the answer map.
type UploadHandler struct {
	objects storage.ObjectStorage
	cfg     *config.Config
	log     zerolog.Logger
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(objects storage.ObjectStorage, cfg *config.Config, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{
		objects: objects,
		cfg:     cfg,
		log:     log.With().Str("handler", "upload").Logger(),
	}
}

// CreateUpload handles POST /v1/uploads (multipart: file, instagram,
// question). The content type is checked before any store interaction;
// only PNG, JPEG and PDF are accepted.
func (h *UploadHandler) CreateUpload(c *gin.Context) {
	if h.objects == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File uploads are not configured"})
		return
	}

	instagram := strings.TrimPrefix(strings.TrimSpace(c.PostForm("instagram")), "@")
	question := strings.TrimSpace(c.PostForm("question"))
	if instagram == "" || question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "instagram and question parameters are required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > h.cfg.Storage.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file is too large"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.Allowed(contentType) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Accepted formats: PNG, JPG, JPEG, PDF"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to open uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}
	defer file.Close()

	key := fmt.Sprintf("uploads/%s/%s-%d", instagram, question, time.Now().UnixMilli())
	url, err := h.objects.Upload(c.Request.Context(), key, file, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Accepted formats: PNG, JPG, JPEG, PDF"})
			return
		}
		h.log.Error().Err(err).Str("key", key).Msg("Upload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not store the file, please retry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
