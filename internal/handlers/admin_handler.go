package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linyuchen/phone-lottery-backend/internal/repositories"
	"github.com/linyuchen/phone-lottery-backend/internal/services"
)

// AdminHandler handles operator maintenance of settings, prizes and records
type AdminHandler struct {
	campaignService services.CampaignService
	drawService     services.DrawService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(campaignService services.CampaignService, drawService services.DrawService) *AdminHandler {
	return &AdminHandler{
		campaignService: campaignService,
		drawService:     drawService,
	}
}

// UpsertSettingRequest is the body of PUT /api/admin/settings
type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// CreatePrizeRequest is the body of POST /api/admin/prizes
type CreatePrizeRequest struct {
	Name string   `json:"name" binding:"required"`
	Rate *float64 `json:"rate" binding:"required"`
}

// GetSettings handles GET /api/admin/settings
func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.campaignService.Settings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpsertSetting handles PUT /api/admin/settings
func (h *AdminHandler) UpsertSetting(c *gin.Context) {
	var request UpsertSettingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.campaignService.UpsertSetting(c.Request.Context(), request.Key, request.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Setting updated"})
}

// CreatePrize handles POST /api/admin/prizes
func (h *AdminHandler) CreatePrize(c *gin.Context) {
	var request CreatePrizeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.campaignService.CreatePrize(c.Request.Context(), request.Name, *request.Rate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create prize: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Prize created"})
}

// DeletePrize handles DELETE /api/admin/prizes/:name
func (h *AdminHandler) DeletePrize(c *gin.Context) {
	name := c.Param("name")
	if err := h.campaignService.DeletePrize(c.Request.Context(), name); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prize not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete prize"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prize deleted"})
}

// GetRecords handles GET /api/admin/records
func (h *AdminHandler) GetRecords(c *gin.Context) {
	records, err := h.drawService.Records(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve records"})
		return
	}
	c.JSON(http.StatusOK, records)
}
