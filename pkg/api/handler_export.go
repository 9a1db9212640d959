package api

import (
	"bytes"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/behavelab/parley/pkg/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportCSVHandler handles GET /api/v1/sessions/:code/export/csv?entity=messages.
// The export is buffered before any byte hits the wire so lookup failures
// still produce a clean JSON error instead of a truncated download.
func (s *Server) exportCSVHandler(c *gin.Context) {
	code := c.Param("code")
	entity := c.Query("entity")
	if entity == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "entity is required: one of " + strings.Join(export.Entities, ", ")})
		return
	}
	if !slices.Contains(export.Entities, entity) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown entity " + entity + ": must be one of " + strings.Join(export.Entities, ", ")})
		return
	}

	var buf bytes.Buffer
	if err := s.exporter.WriteCSV(c.Request.Context(), &buf, code, entity); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_%s.csv", code, entity))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// exportWorkbookHandler handles GET /api/v1/sessions/:code/export/xlsx: the
// whole session as one workbook, one sheet per entity plus summary
// statistics.
func (s *Server) exportWorkbookHandler(c *gin.Context) {
	code := c.Param("code")

	var buf bytes.Buffer
	if err := s.exporter.WriteWorkbook(c.Request.Context(), &buf, code); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", code))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
