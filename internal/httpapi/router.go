package httpapi

import "github.com/gin-gonic/gin"

// NewRouter builds the gin engine with the five protocol routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/verify-2fa", h.Verify2FA)
	r.POST("/logout", h.Logout)
	r.POST("/verify-token", h.VerifyToken)

	return r
}
