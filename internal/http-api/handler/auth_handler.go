package handler

import (
	"errors"
	"net/http"

	"journalhub/internal/http-api/dto"
	"journalhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the user and token routes. Profile update sits
// behind the auth middleware; registration and login are public.
func (h *AuthHandler) RegisterRoutes(r *gin.Engine, authRequired gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("/", h.Register)
		users.PUT("/:email", authRequired, h.UpdateProfile)
	}
	r.POST("/token", h.Login)
}

// Register creates a new user account
// POST /users/
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Register(req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) || errors.Is(err, service.ErrDuplicateUsername) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
		return
	}

	c.JSON(http.StatusCreated, dto.NewCredentialResponse(user, token))
}

// Login authenticates a user and returns a bearer token
// POST /token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewCredentialResponse(user, token))
}

// UpdateProfile applies a partial update to the user addressed by email and
// returns the user with a fresh token
// PUT /users/:email
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	email := c.Param("email")

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.UpdateProfile(email, service.ProfileUpdate{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicateEmail), errors.Is(err, service.ErrDuplicateUsername):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewCredentialResponse(user, token))
}
