package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/guillaumevincent/monpatrimoine/internal/errors"
	"github.com/guillaumevincent/monpatrimoine/internal/middleware"
)

// ErrorDetail represents the error details in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// getSubject extracts the authenticated subject from the Gin context.
// Returns ErrUnauthorized if not present.
func getSubject(c *gin.Context) (string, error) {
	subject := c.GetString(middleware.SubjectKey)
	if subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return subject, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondError(c, err)
}
