package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/pagination"
	"github.com/guillaumevincent/monpatrimoine/internal/report"
	"github.com/guillaumevincent/monpatrimoine/internal/services"
)

// SnapshotHandler serves aggregated wealth.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
	reportOptions   report.Options
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer, reportOptions report.Options) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService, reportOptions: reportOptions}
}

// ReportQuery selects the report format.
type ReportQuery struct {
	Format string `form:"format" binding:"omitempty,oneof=markdown html"`
}

// GetSnapshots handles listing snapshots
// @Summary     List snapshots
// @Description The current snapshot followed by one snapshot per bilan date, most recent first
// @Tags        snapshots
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[bilan.Snapshot] "Paginated snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /snapshots [get]
func (h *SnapshotHandler) GetSnapshots(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.snapshotService.GetSnapshotPage(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReport handles rendering the wealth report
// @Summary     Wealth report
// @Description Render snapshots as a markdown or HTML document
// @Tags        snapshots
// @Produce     text/markdown
// @Produce     text/html
// @Security    BearerAuth
// @Param       format query string false "markdown (default) or html"
// @Success     200 {string} string "Report"
// @Failure     400 {object} ErrorResponse "Invalid format"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /snapshots/report [get]
func (h *SnapshotHandler) GetReport(c *gin.Context) {
	var query ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	snapshots, err := h.snapshotService.GetSnapshots()
	if err != nil {
		respondWithError(c, err)
		return
	}

	render, contentType := report.Markdown, "text/markdown; charset=utf-8"
	if query.Format == "html" {
		render, contentType = report.HTML, "text/html; charset=utf-8"
	}

	doc, err := render(snapshots, h.reportOptions)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Data(http.StatusOK, contentType, []byte(doc))
}
