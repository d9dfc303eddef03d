package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/service"
	"github.com/jengzang/rdtr-backend-go/pkg/response"
)

// IntensityHandler handles HTTP requests for building-intensity data
type IntensityHandler struct {
	intensityService *service.IntensityService
}

// NewIntensityHandler creates a new intensity handler
func NewIntensityHandler(intensityService *service.IntensityService) *IntensityHandler {
	return &IntensityHandler{intensityService: intensityService}
}

// GetRecords handles GET /api/v1/intensity
func (h *IntensityHandler) GetRecords(c *gin.Context) {
	var filter models.IntensityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	records, err := h.intensityService.GetRecords(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.List(c, records, len(records))
}

// GetFilters handles GET /api/v1/intensity/filters
func (h *IntensityHandler) GetFilters(c *gin.Context) {
	lists, err := h.intensityService.GetFilterLists()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, lists)
}

// GetText handles GET /api/v1/intensity/text. The zone name goes through
// the matching cascade; an unknown name answers with a dash, not an error.
func (h *IntensityHandler) GetText(c *gin.Context) {
	zona := c.Query("zona")
	subZona := c.Query("subZona")
	if zona == "" && subZona == "" {
		response.BadRequest(c, "zona or subZona parameter is required")
		return
	}

	text, err := h.intensityService.GetFormattedText(zona, subZona)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"text": text})
}

// GetSummary handles GET /api/v1/intensity/summary
func (h *IntensityHandler) GetSummary(c *gin.Context) {
	summary, err := h.intensityService.GetSummary()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, summary)
}
