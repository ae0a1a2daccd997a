package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/models"
	"github.com/guillaumevincent/monpatrimoine/internal/services"
)

// PositionHandler handles position-related requests.
type PositionHandler struct {
	positionService services.PositionServicer
	auditService    services.AuditServicer
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(positionService services.PositionServicer, auditService services.AuditServicer) *PositionHandler {
	return &PositionHandler{positionService: positionService, auditService: auditService}
}

// PositionRequest represents the payload for creating or updating a position.
type PositionRequest struct {
	Label    string `json:"label" binding:"required,min=1,max=100"`
	Category string `json:"category" binding:"required,category" example:"cash"`
}

// PositionResponse wraps a single position.
type PositionResponse struct {
	Position services.PositionDetail `json:"position"`
}

// PositionListResponse wraps a list of positions.
type PositionListResponse struct {
	Positions []services.PositionDetail `json:"positions"`
}

// CreatePosition handles the creation of a new position
// @Summary     Create a position
// @Description Create a new active position in one of the six categories
// @Tags        positions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PositionRequest true "Position data"
// @Success     201 {object} PositionResponse "Position created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	subject, err := getSubject(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCategory)
		return
	}

	position, err := h.positionService.CreatePosition(req.Label, category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(subject, "CREATE_POSITION", "position", position.ID, c.ClientIP(),
		map[string]interface{}{"label": position.Label, "category": position.Category.String()})

	c.JSON(http.StatusCreated, PositionResponse{Position: *position})
}

// ListPositions handles listing positions
// @Summary     List positions
// @Description List positions in creation order with their latest value
// @Tags        positions
// @Produce     json
// @Security    BearerAuth
// @Param       active query bool false "Only positions offered for a new bilan"
// @Success     200 {object} PositionListResponse "Positions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	activeOnly := false
	if v := c.Query("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid active filter"))
			return
		}
		activeOnly = parsed
	}

	positions, err := h.positionService.ListPositions(activeOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PositionListResponse{Positions: positions})
}

// GetPosition handles the retrieval of a position
// @Summary     Get position
// @Description Get a position by ID with its latest value
// @Tags        positions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Position ID"
// @Success     200 {object} PositionResponse "Position details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Position not found"
// @Router      /positions/{id} [get]
func (h *PositionHandler) GetPosition(c *gin.Context) {
	position, err := h.positionService.GetPosition(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PositionResponse{Position: *position})
}

// UpdatePosition handles updating a position
// @Summary     Update position
// @Description Change the label and category of a position
// @Tags        positions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Position ID"
// @Param       request body PositionRequest true "Position data"
// @Success     200 {object} PositionResponse "Position updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Position not found"
// @Router      /positions/{id} [put]
func (h *PositionHandler) UpdatePosition(c *gin.Context) {
	subject, err := getSubject(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCategory)
		return
	}

	position, err := h.positionService.UpdatePosition(c.Param("id"), req.Label, category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(subject, "UPDATE_POSITION", "position", position.ID, c.ClientIP(),
		map[string]interface{}{"label": position.Label, "category": position.Category.String()})

	c.JSON(http.StatusOK, PositionResponse{Position: *position})
}

// TogglePositionActive handles toggling whether a position is active
// @Summary     Toggle position
// @Description Flip whether a position is offered when entering a new bilan
// @Tags        positions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Position ID"
// @Success     200 {object} PositionResponse "Position updated"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Position not found"
// @Router      /positions/{id}/active [patch]
func (h *PositionHandler) TogglePositionActive(c *gin.Context) {
	subject, err := getSubject(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	position, err := h.positionService.TogglePositionActive(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(subject, "TOGGLE_POSITION", "position", position.ID, c.ClientIP(),
		map[string]interface{}{"active": position.Active})

	c.JSON(http.StatusOK, PositionResponse{Position: *position})
}

// DeletePosition handles deleting a position
// @Summary     Delete position
// @Description Delete a position and every value recorded for it
// @Tags        positions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Position ID"
// @Success     200 {object} MessageResponse "Position deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Position not found"
// @Router      /positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	subject, err := getSubject(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.positionService.DeletePosition(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(subject, "DELETE_POSITION", "position", id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Position deleted successfully"})
}
