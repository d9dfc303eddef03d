package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/rdtr-backend-go/internal/scrape"
	"github.com/jengzang/rdtr-backend-go/pkg/response"
)

// ImportHandler handles HTTP requests for pasted portal markup
type ImportHandler struct{}

// NewImportHandler creates a new import handler
func NewImportHandler() *ImportHandler {
	return &ImportHandler{}
}

// ParsePortal handles POST /api/v1/import/portal. The body is raw HTML
// copied from the government portal; the parsed rows are returned to the
// caller and never persisted.
func (h *ImportHandler) ParsePortal(c *gin.Context) {
	rows, err := scrape.ParsePortalTable(c.Request.Body)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	response.List(c, rows, len(rows))
}
