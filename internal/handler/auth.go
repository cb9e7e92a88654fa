package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/newstalgia/backend/internal/middleware"
	"github.com/newstalgia/backend/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieDomain string
	cookieSecure bool
}

func NewAuthHandler(authService *service.AuthService, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieDomain: cookieDomain, cookieSecure: cookieSecure}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login — sets the httpOnly session cookie and also returns
// the token for bearer clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "email and password are required")
		return
	}

	user, token, expireAt, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		code, msg := parseErrorCode(err)
		Unauthorized(c, code, msg)
		return
	}

	h.setTokenCookie(c, token, expireAt)
	Success(c, gin.H{
		"token":     token,
		"expire_at": expireAt,
		"user":      user.Brief(),
	})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", h.cookieDomain, h.cookieSecure, true)
	Success(c, nil)
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, 40101, "not logged in")
		return
	}
	Success(c, user.Brief())
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, expireAt, err := h.authService.RefreshToken(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		Unauthorized(c, 40103, "could not refresh token")
		return
	}
	h.setTokenCookie(c, token, expireAt)
	Success(c, gin.H{"token": token, "expire_at": expireAt})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, expireAt time.Time) {
	maxAge := int(time.Until(expireAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, maxAge, "/", h.cookieDomain, h.cookieSecure, true)
}
