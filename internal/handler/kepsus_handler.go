package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/service"
	"github.com/jengzang/rdtr-backend-go/pkg/response"
)

// KepsusHandler handles HTTP requests for special-provision data
type KepsusHandler struct {
	kepsusService *service.KepsusService
}

// NewKepsusHandler creates a new kepsus handler
func NewKepsusHandler(kepsusService *service.KepsusService) *KepsusHandler {
	return &KepsusHandler{kepsusService: kepsusService}
}

// GetRecords handles GET /api/v1/kepsus
func (h *KepsusHandler) GetRecords(c *gin.Context) {
	var filter models.KepsusFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	records, err := h.kepsusService.GetRecords(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.List(c, records, len(records))
}
