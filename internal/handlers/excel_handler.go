package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/repurposer-ui/internal/middleware"
	"github.com/onegreenvn/repurposer-ui/internal/services"
	"github.com/onegreenvn/repurposer-ui/internal/services/excel"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExcelHandler handles HTTP requests related to Excel operations
type ExcelHandler struct {
	sessions     *services.SessionStore
	excelService *excel.Service
}

// NewExcelHandler creates a new ExcelHandler instance
func NewExcelHandler(sessions *services.SessionStore) *ExcelHandler {
	return &ExcelHandler{
		sessions:     sessions,
		excelService: excel.NewExcelService(),
	}
}

// ExportClips handles GET /api/v1/clips/export
// @Summary Export clips to Excel
// @Description Export the clips of the last response of this session to an Excel file
// @Tags clips
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {file} binary "Excel file"
// @Failure 404 {object} map[string]interface{} "error: error message"
// @Failure 500 {object} map[string]interface{} "error: error message"
// @Router /api/v1/clips/export [get]
func (h *ExcelHandler) ExportClips(c *gin.Context) {
	state := h.sessions.Get(middleware.SessionID(c)).State()
	if state.Response == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No response to export"})
		return
	}

	result, err := h.excelService.ExportClips(state.Clips())
	if err != nil {
		logrus.Errorf("Failed to export clips: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Header("Cache-Control", "must-revalidate")
	c.Data(http.StatusOK, xlsxContentType, result.Data.Bytes())
}
