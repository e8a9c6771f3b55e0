package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/service"
	"github.com/rs/zerolog"
)

// AdminHandler handles the operator dashboard endpoints
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// ListSubmissions handles GET /v1/admin/submissions, newest first.
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.services.Schedule.Submissions(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list submissions")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load submissions"})
		return
	}
	if subs == nil {
		subs = []*models.Submission{}
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs})
}

// DeleteSubmission handles DELETE /v1/admin/submissions/:id. Deleting a
// submission releases its publication date.
func (h *AdminHandler) DeleteSubmission(c *gin.Context) {
	if err := h.services.Schedule.DeleteSubmission(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Error().Err(err).Str("id", c.Param("id")).Msg("Failed to delete submission")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not delete the submission"})
		return
	}
	c.Status(http.StatusNoContent)
}

// occupiedEntry is the admin view of one occupied day. Releasable tells
// the console whether the entry can be removed directly from the calendar
// (admin blocks) or only via the submissions list (submission days).
type occupiedEntry struct {
	Date       string              `json:"date"`
	Origin     availability.Origin `json:"origin"`
	Label      string              `json:"label"`
	SourceID   string              `json:"source_id"`
	Releasable bool                `json:"releasable"`
}

// ListOccupied handles GET /v1/admin/occupied: the merged occupied set,
// sorted by date string.
func (h *AdminHandler) ListOccupied(c *gin.Context) {
	occupied, err := h.services.Schedule.Occupied(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list occupied dates")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load occupied dates"})
		return
	}

	entries := make([]occupiedEntry, 0, len(occupied))
	for _, o := range occupied {
		entries = append(entries, occupiedEntry{
			Date:       o.Date.String(),
			Origin:     o.Origin,
			Label:      o.Label,
			SourceID:   o.SourceID,
			Releasable: o.Releasable(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"occupied": entries})
}

type blockDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// BlockDate handles POST /v1/admin/blocked-dates. Responds 409 when the
// date is already occupied by a block or a submission.
func (h *AdminHandler) BlockDate(c *gin.Context) {
	var req blockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	block, err := h.services.Schedule.BlockDate(c.Request.Context(), req.Date)
	if err != nil {
		if errors.Is(err, availability.ErrDuplicateBlock) {
			c.JSON(http.StatusConflict, gin.H{"error": "This date is already blocked or booked"})
			return
		}
		h.log.Error().Err(err).Str("date", req.Date).Msg("Failed to block date")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not block this date"})
		return
	}

	c.JSON(http.StatusCreated, block)
}

// UnblockDate handles DELETE /v1/admin/blocked-dates/:id.
func (h *AdminHandler) UnblockDate(c *gin.Context) {
	if err := h.services.Schedule.UnblockDate(c.Request.Context(), c.Param("id")); err != nil {
		h.log.Error().Err(err).Str("id", c.Param("id")).Msg("Failed to unblock date")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not unblock this date"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStats handles GET /v1/admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.services.Schedule.Stats(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute stats")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetFormatSettings handles GET /v1/admin/format-settings: the active
// format table in the editable document shape.
func (h *AdminHandler) GetFormatSettings(c *gin.Context) {
	table, err := h.services.Format.Table(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load format settings")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load format settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"formats": table.Export()})
}

// PutFormatSettings handles PUT /v1/admin/format-settings. The body is
// the full format table; it replaces any previous override.
func (h *AdminHandler) PutFormatSettings(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read request body"})
		return
	}

	if err := h.services.Format.SaveOverride(c.Request.Context(), json.RawMessage(body)); err != nil {
		h.log.Warn().Err(err).Msg("Rejected format settings document")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
