package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/rdtr-backend-go/internal/models"
	"github.com/jengzang/rdtr-backend-go/internal/service"
	"github.com/jengzang/rdtr-backend-go/pkg/response"
)

// ExportHandler handles HTTP requests for downloadable exports
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) bindFilter(c *gin.Context) (models.ActivityFilter, bool) {
	var filter models.ActivityFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return filter, false
	}
	if filter.DataSource == "" {
		filter.DataSource = models.SourceTrikora
	}
	return filter, true
}

func exportName(ext string) string {
	return fmt.Sprintf("daftar-kegiatan-%s.%s", time.Now().Format("2006-01-02"), ext)
}

// ExportCSV handles GET /api/v1/export/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	data, err := h.exportService.ExportCSV(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportName("csv")+`"`)
	c.Data(200, "text/csv; charset=utf-8", data)
}

// ExportXLS handles GET /api/v1/export/xls. The payload is tab-delimited
// text under an Excel MIME type, same trick the browser export used.
func (h *ExportHandler) ExportXLS(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	data, err := h.exportService.ExportXLS(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportName("xls")+`"`)
	c.Data(200, "application/vnd.ms-excel", data)
}

// ExportText handles GET /api/v1/export/text
func (h *ExportHandler) ExportText(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}
	data, err := h.exportService.ExportText(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	c.Data(200, "text/plain; charset=utf-8", data)
}
