// Package httpapi renders the authentication protocol over HTTP: JSON
// request/response shapes, status codes, and the session cookie.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hexvault/authd/internal/auth"
	"github.com/hexvault/authd/internal/token"
)

// Handler holds the orchestrator and logger shared by all routes.
type Handler struct {
	svc *auth.Service
	log *zap.Logger
}

// NewHandler returns a Handler over svc.
func NewHandler(svc *auth.Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type signupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Requires2FA bool   `json:"requires2FA"`
}

// Signup handles POST /signup.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return
	}

	if err := h.svc.Signup(c.Request.Context(), req.Email, req.Password, req.Requires2FA); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{Message: "User created successfully"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type twoFAResponse struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}

// Login handles POST /login. A 2FA-enabled account gets the pending-challenge
// body and no cookie; otherwise the session cookie is set immediately.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if result.TwoFARequired {
		c.JSON(http.StatusOK, twoFAResponse{
			Message:        "2FA required",
			LoginAttemptID: result.AttemptID.String(),
		})
		return
	}

	http.SetCookie(c.Writer, token.NewAuthCookie(result.Token))
	c.JSON(http.StatusOK, messageResponse{Message: "Login successful"})
}

type verify2FARequest struct {
	Email          string `json:"email"`
	LoginAttemptID string `json:"loginAttemptId"`
	TwoFACode      string `json:"2FACode"`
}

// Verify2FA handles POST /verify-2fa.
func (h *Handler) Verify2FA(c *gin.Context) {
	var req verify2FARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return
	}

	tok, err := h.svc.Verify2FA(c.Request.Context(), req.Email, req.LoginAttemptID, req.TwoFACode)
	if err != nil {
		h.respondError(c, err)
		return
	}

	http.SetCookie(c.Writer, token.NewAuthCookie(tok))
	c.JSON(http.StatusOK, messageResponse{Message: "2FA verified"})
}

// Logout handles POST /logout. The session cookie is required; on success the
// token is banned and the cookie cleared.
func (h *Handler) Logout(c *gin.Context) {
	cookie, err := c.Cookie(token.CookieName)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing auth token"})
		return
	}

	if err := h.svc.Logout(c.Request.Context(), cookie); err != nil {
		h.respondError(c, err)
		return
	}

	http.SetCookie(c.Writer, token.ClearAuthCookie())
	c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyToken handles POST /verify-token.
func (h *Handler) VerifyToken(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request payload"})
		return
	}

	if _, err := h.svc.VerifyToken(c.Request.Context(), req.Token); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Token is valid"})
}
