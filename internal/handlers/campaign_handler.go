package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linyuchen/phone-lottery-backend/internal/services"
)

// CampaignHandler serves public campaign metadata
type CampaignHandler struct {
	campaignService services.CampaignService
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(campaignService services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// GetTitle handles GET /api/title (plain text)
func (h *CampaignHandler) GetTitle(c *gin.Context) {
	title, err := h.campaignService.Title(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "FAIL")
		return
	}
	c.String(http.StatusOK, title)
}

// GetDeadline handles GET /api/deadline (plain text, raw stored string)
func (h *CampaignHandler) GetDeadline(c *gin.Context) {
	deadline, err := h.campaignService.Deadline(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "FAIL")
		return
	}
	c.String(http.StatusOK, deadline)
}

// GetDescription handles GET /api/activity-description (plain text)
func (h *CampaignHandler) GetDescription(c *gin.Context) {
	description, err := h.campaignService.Description(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "FAIL")
		return
	}
	c.String(http.StatusOK, description)
}

// GetPrizes handles GET /api/prizes
func (h *CampaignHandler) GetPrizes(c *gin.Context) {
	prizes, err := h.campaignService.Prizes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve prizes"})
		return
	}
	c.JSON(http.StatusOK, prizes)
}
