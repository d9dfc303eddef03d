package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/service"
	"github.com/jengzang/rdtr-backend-go/pkg/response"
)

// ZoningHandler handles HTTP requests for permitted-use data
type ZoningHandler struct {
	zoningService *service.ZoningService
}

// NewZoningHandler creates a new zoning handler
func NewZoningHandler(zoningService *service.ZoningService) *ZoningHandler {
	return &ZoningHandler{zoningService: zoningService}
}

// GetActivities handles GET /api/v1/zoning
func (h *ZoningHandler) GetActivities(c *gin.Context) {
	var filter models.ActivityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if filter.DataSource == "" {
		filter.DataSource = models.SourceTrikora
	}

	activities, total, err := h.zoningService.GetActivities(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.List(c, activities, total)
}

// GetZones handles GET /api/v1/zoning/zones
func (h *ZoningHandler) GetZones(c *gin.Context) {
	source := c.DefaultQuery("dataSource", models.SourceTrikora)

	zones, err := h.zoningService.GetZones(source)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.List(c, zones, len(zones))
}

// GetRegulations handles GET /api/v1/zoning/regulations
func (h *ZoningHandler) GetRegulations(c *gin.Context) {
	response.Success(c, h.zoningService.GetRegulations())
}

// GetMergedZones handles GET /api/v1/zoning/merged
func (h *ZoningHandler) GetMergedZones(c *gin.Context) {
	source := c.DefaultQuery("dataSource", models.SourceTrikora)

	merged, err := h.zoningService.GetMergedZones(source)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.List(c, merged, len(merged))
}
