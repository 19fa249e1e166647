package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/newshelton/storefront-api/internal/domain"
	"github.com/newshelton/storefront-api/internal/dto"
	"github.com/newshelton/storefront-api/internal/middleware"
	"github.com/newshelton/storefront-api/internal/service"
	"github.com/newshelton/storefront-api/internal/session"
	"github.com/newshelton/storefront-api/pkg/response"
)

// AuthHandler handles account HTTP requests
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
	cookieName  string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, sessions *session.Manager, cookieName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookieName:  cookieName,
	}
}

// Register handles account registration
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Please fill all required fields.")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.Fail(c, msg)
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			response.Fail(c, "An account with this email already exists.")
			return
		}
		response.Fail(c, "Server error. Please try again.")
		return
	}

	// Registration does not log the user in; the storefront sends
	// them to the login page next.
	response.Message(c, "Account created! Welcome to New Shelton Hosiery.")
}

// Login handles account login
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "Please enter your email and password.")
		return
	}

	if valid, msg := req.Validate(); !valid {
		response.Fail(c, msg)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			response.Fail(c, "Invalid email or password.")
			return
		}
		response.Fail(c, "Server error. Please try again.")
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), session.Data{
		UserID: user.ID,
		Name:   user.FirstName,
		Email:  user.Email,
	})
	if err != nil {
		response.Fail(c, "Server error. Please try again.")
		return
	}

	h.setSessionCookie(c, token, int(h.sessions.TTL().Seconds()))
	response.OK(c, gin.H{
		"message": "Login successful!",
		"user": gin.H{
			"name":  user.FirstName,
			"email": user.Email,
		},
	})
}

// Logout ends the current session
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil {
		// Destroy is idempotent; a stale or tampered cookie still
		// results in a successful logout.
		_ = h.sessions.Destroy(c.Request.Context(), token)
	}
	h.setSessionCookie(c, "", -1)
	response.Message(c, "Logged out.")
}

// Me reports the current session state. Unlike the rest of the API it
// answers with a bare {loggedIn, user?} object, which is what the
// storefront header polls for.
// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	token, err := c.Cookie(h.cookieName)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	data, err := h.sessions.Resolve(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"loggedIn": true,
		"user": dto.SessionUser{
			ID:    data.UserID,
			Name:  data.Name,
			Email: data.Email,
		},
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", false, true)
}

// sessionData is a convenience wrapper for handlers running behind
// RequireSession.
func sessionData(c *gin.Context) (session.Data, bool) {
	return middleware.SessionFromContext(c)
}
