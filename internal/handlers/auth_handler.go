package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/middleware"
	"github.com/guillaumevincent/monpatrimoine/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService  services.AuthServicer
	auditService services.AuditServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService services.AuthServicer, auditService services.AuditServicer) *AuthHandler {
	return &AuthHandler{authService: authService, auditService: auditService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Password string `json:"password" binding:"required,max=128"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login handles owner login
// @Summary     Login
// @Description Exchange the owner password for an access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Owner password"
// @Success     200 {object} AuthResponse "Token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     503 {object} ErrorResponse "Authentication not configured"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	token, expiresAt, err := h.authService.Login(req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(middleware.OwnerSubject, "LOGIN", "session", "", c.ClientIP(), nil)

	c.JSON(http.StatusOK, AuthResponse{Token: token, ExpiresAt: expiresAt})
}
