package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/service"
	"github.com/rs/zerolog"
)

// SubmissionHandler handles the public submission form endpoints
type SubmissionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(services *service.Services, log zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		services: services,
		log:      log.With().Str("handler", "submission").Logger(),
	}
}

// GetFormats handles GET /v1/formats: the active format table with its
// question sets, seed defaults merged with any operator override.
func (h *SubmissionHandler) GetFormats(c *gin.Context) {
	table, err := h.services.Format.Table(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load format table")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load formats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"formats": table.List()})
}

// CreateSubmission handles POST /v1/submissions.
// Returns 422 with per-field errors when any intake predicate fails;
// the draft is not persisted unless every predicate passes.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var draft models.SubmissionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "instagram, format and date are required"})
		return
	}

	sub, errs, err := h.services.Intake.Submit(c.Request.Context(), &draft)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to process submission")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not save the submission, please retry"})
		return
	}
	if len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	c.JSON(http.StatusCreated, sub)
}
