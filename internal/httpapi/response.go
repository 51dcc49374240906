package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/token"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// respondError maps a core error onto the wire contract. Store internals stay
// in the log; clients only ever see the generic message for their status.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid input"})
	case errors.Is(err, domain.ErrMissingToken):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing auth token"})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "User already exists"})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrChallengeNotFound),
		errors.Is(err, domain.ErrChallengeMismatch),
		errors.Is(err, domain.ErrTokenRevoked),
		errors.Is(err, token.ErrTokenMalformed),
		errors.Is(err, token.ErrSignatureInvalid),
		errors.Is(err, token.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "Authentication failed"})
	default:
		h.log.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Unexpected error"})
	}
}
