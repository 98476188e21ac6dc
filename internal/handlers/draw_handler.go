package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linyuchen/phone-lottery-backend/internal/models"
	"github.com/linyuchen/phone-lottery-backend/internal/services"
)

// DrawHandler handles draw-related HTTP requests
type DrawHandler struct {
	drawService services.DrawService
}

// NewDrawHandler creates a new DrawHandler
func NewDrawHandler(drawService services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: drawService}
}

// CheckDrawRequest is the body of POST /api/check-draw-on-deadline and
// POST /api/draw
type CheckDrawRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// RecordDrawRequest is the body of POST /api/record-draw
type RecordDrawRequest struct {
	Phone string `json:"phone" binding:"required"`
	Prize string `json:"prize" binding:"required"`
}

// QueryHistoryRequest is the body of POST /api/query-history
type QueryHistoryRequest struct {
	Phone string `json:"phone"`
}

// CheckDrawOnDeadline handles POST /api/check-draw-on-deadline
func (h *DrawHandler) CheckDrawOnDeadline(c *gin.Context) {
	var request CheckDrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}

	status, err := h.drawService.CheckDrawOnDeadline(c.Request.Context(), request.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check draw status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// RecordDraw handles POST /api/record-draw. The response shape follows the
// original client contract: plain "OK" on a new record, an alreadyDrawn
// object when the phone drew before, plain "FAIL" with a 5xx otherwise.
func (h *DrawHandler) RecordDraw(c *gin.Context) {
	var request RecordDrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone and prize are required"})
		return
	}

	status, err := h.drawService.RecordDraw(c.Request.Context(), request.Phone, request.Prize)
	if err != nil {
		c.String(http.StatusInternalServerError, "FAIL")
		return
	}
	if status.Exists {
		c.JSON(http.StatusOK, gin.H{"status": "alreadyDrawn", "time": status.Time, "prize": status.Prize})
		return
	}
	c.String(http.StatusOK, "OK")
}

// Draw handles POST /api/draw: duplicate check, weighted prize selection and
// exactly-once recording in one call.
func (h *DrawHandler) Draw(c *gin.Context) {
	var request CheckDrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone is required"})
		return
	}

	result, status, err := h.drawService.Draw(c.Request.Context(), request.Phone)
	if err != nil {
		if errors.Is(err, services.ErrNoPrizes) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no prizes configured"})
			return
		}
		c.String(http.StatusInternalServerError, "FAIL")
		return
	}
	if status.Exists {
		c.JSON(http.StatusOK, gin.H{"status": "alreadyDrawn", "time": status.Time, "prize": status.Prize})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "prize": result.Prize, "time": result.Time, "expire": result.Expire})
}

// QueryHistory handles POST /api/query-history. A missing phone yields an
// empty array, never an error.
func (h *DrawHandler) QueryHistory(c *gin.Context) {
	var request QueryHistoryRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.Phone == "" {
		c.JSON(http.StatusOK, []models.HistoryEntry{})
		return
	}

	entries, err := h.drawService.QueryHistory(c.Request.Context(), request.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query history"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
