package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/eld-planner/internal/model"
	"github.com/nurpe/eld-planner/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type TripService interface {
	PlanTrip(ctx context.Context, input service.PlanTripInput) (*model.TripPlan, error)
	GetTrip(ctx context.Context, id uuid.UUID) (*model.TripPlan, error)
	ListTrips(ctx context.Context, limit, offset int) ([]model.TripSummary, error)
	ExportLogsExcel(ctx context.Context, id uuid.UUID) (*service.ExportResult, error)
	ExportLogsPDF(ctx context.Context, id uuid.UUID) (*service.ExportResult, error)
}

type Handler struct {
	trips TripService
	log   zerolog.Logger
}

func NewHandler(trips TripService, log zerolog.Logger) *Handler {
	return &Handler{trips: trips, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/plan-trip", h.planTrip)
	api.GET("/trips", h.listTrips)
	api.GET("/trip/:id", h.getTrip)
	api.GET("/trip/:id/logs.xlsx", h.exportExcel)
	api.GET("/trip/:id/logs.pdf", h.exportPDF)
}

func (h *Handler) planTrip(c *gin.Context) {
	var req planTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindError(err)})
		return
	}

	var start time.Time
	if strings.TrimSpace(req.StartDate) != "" {
		parsed, err := parseDate(req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		start = parsed
	}

	plan, err := h.trips.PlanTrip(c.Request.Context(), service.PlanTripInput{
		CurrentLocation:   req.CurrentLocation,
		PickupLocation:    req.PickupLocation,
		DropoffLocation:   req.DropoffLocation,
		CurrentCycleHours: float64(*req.CurrentCycleHours),
		StartDate:         start,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := gin.H{
		"trip_id":            plan.Trip.ID.String(),
		"eld_logs":           toLogDTOs(plan.Logs),
		"compliance_summary": toComplianceDTO(plan.Compliance),
	}
	if plan.Route != nil {
		resp["route"] = toRouteDTO(*plan.Route)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getTrip(c *gin.Context) {
	id, ok := h.tripID(c)
	if !ok {
		return
	}

	plan, err := h.trips.GetTrip(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trip":               toTripDTO(plan.Trip),
		"logs":               toLogDTOs(plan.Logs),
		"compliance_summary": toComplianceDTO(plan.Compliance),
	})
}

func (h *Handler) listTrips(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}

	trips, err := h.trips.ListTrips(c.Request.Context(), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": toTripSummaryDTOs(trips)})
}

func (h *Handler) exportExcel(c *gin.Context) {
	id, ok := h.tripID(c)
	if !ok {
		return
	}

	result, err := h.trips.ExportLogsExcel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) exportPDF(c *gin.Context) {
	id, ok := h.tripID(c)
	if !ok {
		return
	}

	result, err := h.trips.ExportLogsPDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, pdfContentType, result.Content)
}

func (h *Handler) tripID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid trip id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidLocation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func bindError(err error) string {
	msg := err.Error()
	if strings.Contains(msg, "CurrentCycleHours") && strings.Contains(msg, "required") {
		return "current_cycle_hours is required"
	}
	return msg
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
