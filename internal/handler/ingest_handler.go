package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/rdtr-backend-go/internal/repository"
	"github.com/jengzang/rdtr-backend-go/pkg/response"
)

// IngestHandler handles HTTP requests for ingestion audit data
type IngestHandler struct {
	runRepo *repository.IngestRunRepository
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(runRepo *repository.IngestRunRepository) *IngestHandler {
	return &IngestHandler{runRepo: runRepo}
}

// GetRuns handles GET /api/v1/ingest/runs
func (h *IngestHandler) GetRuns(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	runs, err := h.runRepo.List(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.List(c, runs, len(runs))
}
