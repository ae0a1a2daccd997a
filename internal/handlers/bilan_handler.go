package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/services"
)

// BilanHandler handles entering and removing bilans.
type BilanHandler struct {
	bilanService services.BilanServicer
	auditService services.AuditServicer
}

// NewBilanHandler creates a new BilanHandler.
func NewBilanHandler(bilanService services.BilanServicer, auditService services.AuditServicer) *BilanHandler {
	return &BilanHandler{bilanService: bilanService, auditService: auditService}
}

// BilanDateURI is the date of a new bilan as given in the path.
type BilanDateURI struct {
	Date string `uri:"date" binding:"required,bilan_date"`
}

// SubmitBilanRequest holds the amount of each position in minor currency
// units, keyed by position ID.
type SubmitBilanRequest struct {
	Amounts map[string]int64 `json:"amounts" binding:"required"`
}

// BilanDatesResponse lists the stored bilan dates.
type BilanDatesResponse struct {
	Dates []string `json:"dates"`
}

// BilanResponse wraps a bilan form.
type BilanResponse struct {
	Bilan services.BilanForm `json:"bilan"`
}

// ListBilanDates handles listing the bilan dates
// @Summary     List bilans
// @Description List the dates of recorded bilans, most recent first
// @Tags        bilans
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} BilanDatesResponse "Bilan dates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bilans [get]
func (h *BilanHandler) ListBilanDates(c *gin.Context) {
	dates, err := h.bilanService.ListBilanDates()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if dates == nil {
		dates = []string{}
	}

	c.JSON(http.StatusOK, BilanDatesResponse{Dates: dates})
}

// GetBilan handles fetching the entry form of a bilan
// @Summary     Get bilan
// @Description Get the positions and recorded amounts of a bilan date, to prefill the entry form
// @Tags        bilans
// @Produce     json
// @Security    BearerAuth
// @Param       date path string true "Bilan date (YYYY-MM-DD or RFC 3339)"
// @Success     200 {object} BilanResponse "Bilan form"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /bilans/{date} [get]
func (h *BilanHandler) GetBilan(c *gin.Context) {
	form, err := h.bilanService.GetBilanForm(c.Param("date"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BilanResponse{Bilan: *form})
}

// SubmitBilan handles recording a bilan
// @Summary     Submit bilan
// @Description Replace every amount recorded on a date with the submitted ones
// @Tags        bilans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       date    path string             true "Bilan date (YYYY-MM-DD or RFC 3339)"
// @Param       request body SubmitBilanRequest true "Amounts in cents by position ID"
// @Success     200 {object} BilanResponse "Bilan recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bilans/{date} [put]
func (h *BilanHandler) SubmitBilan(c *gin.Context) {
	subject, err := getSubject(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var uri BilanDateURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithError(c, apperrors.ErrInvalidDate)
		return
	}

	var req SubmitBilanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	form, err := h.bilanService.SubmitBilan(uri.Date, req.Amounts)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(subject, "SUBMIT_BILAN", "bilan", form.Date, c.ClientIP(),
		map[string]interface{}{"amounts": form.Amounts})

	c.JSON(http.StatusOK, BilanResponse{Bilan: *form})
}

// DeleteBilan handles deleting a bilan
// @Summary     Delete bilan
// @Description Delete every amount recorded on a date
// @Tags        bilans
// @Produce     json
// @Security    BearerAuth
// @Param       date path string true "Bilan date (YYYY-MM-DD or RFC 3339)"
// @Success     200 {object} MessageResponse "Bilan deleted"
// @Failure     400 {object} ErrorResponse "Invalid date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Bilan not found"
// @Router      /bilans/{date} [delete]
func (h *BilanHandler) DeleteBilan(c *gin.Context) {
	subject, err := getSubject(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	date, err := h.bilanService.DeleteBilan(c.Param("date"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(subject, "DELETE_BILAN", "bilan", date, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Bilan deleted successfully"})
}
