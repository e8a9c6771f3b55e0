package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/le-brouillon/portal-api/internal/service"
	"github.com/rs/zerolog"
)

// CalendarHandler serves the public availability calendar
type CalendarHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler(services *service.Services, log zerolog.Logger) *CalendarHandler {
	return &CalendarHandler{
		services: services,
		log:      log.With().Str("handler", "calendar").Logger(),
	}
}

// GetMonthView handles GET /v1/calendar?format=&year=&month=.
// Year and month default to the current month. Any month may be viewed,
// including past ones; past days simply classify as past.
func (h *CalendarHandler) GetMonthView(c *gin.Context) {
	formatKey := c.Query("format")
	if formatKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format parameter is required"})
		return
	}

	now := time.Now()
	year, err := intQuery(c, "year", now.Year())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
		return
	}
	monthNum, err := intQuery(c, "month", int(now.Month()))
	if err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}

	cells, err := h.services.Schedule.MonthView(c.Request.Context(), formatKey, year, time.Month(monthNum))
	if err != nil {
		if errors.Is(err, service.ErrUnknownFormat) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown format"})
			return
		}
		h.log.Error().Err(err).Msg("Failed to compute month view")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load the calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": monthNum,
		"days":  cells,
	})
}

// GetAvailability handles GET /v1/availability: the occupied days as bare
// date strings. Who occupies a day is admin-only information.
func (h *CalendarHandler) GetAvailability(c *gin.Context) {
	occupied, err := h.services.Schedule.Occupied(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list occupied dates")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not load availability"})
		return
	}

	seen := make(map[string]bool, len(occupied))
	days := make([]string, 0, len(occupied))
	for _, o := range occupied {
		s := o.Date.String()
		if !seen[s] {
			seen[s] = true
			days = append(days, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{"occupied": days})
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
