package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vitatrack/backend/internal/apperror"
	"github.com/vitatrack/backend/internal/middleware"
	"github.com/vitatrack/backend/internal/service"
	"github.com/vitatrack/backend/internal/types"
)

// AuthHandler serves registration, login, token validation and the
// authenticated profile.
type AuthHandler struct {
	auth   *service.AuthService
	images *service.ImageService
}

// NewAuthHandler creates the handler. images may be nil when no S3
// configuration is available; the avatar endpoint then reports an
// upstream error.
func NewAuthHandler(auth *service.AuthService, images *service.ImageService) *AuthHandler {
	return &AuthHandler{auth: auth, images: images}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.GET("/validate", h.Validate)
	router.GET("/profile", middleware.AuthMiddleware(h.auth), h.GetProfile)
	router.POST("/profile/avatar", middleware.AuthMiddleware(h.auth), h.UploadAvatar)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("email and a password of at least 8 characters are required"))
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  types.NewPublicUser(user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperror.Validation("email and password are required"))
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  types.NewPublicUser(user),
		"token": token,
	})
}

// Validate checks the bearer token in the Authorization header without
// requiring the auth middleware, so it can answer {valid: false}.
func (h *AuthHandler) Validate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "no token provided"})
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if _, err := h.auth.ValidateToken(token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": "invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": types.NewPublicUser(user)})
}

func (h *AuthHandler) UploadAvatar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if h.images == nil {
		respondError(c, apperror.New(apperror.KindUpstream, "avatar storage is not configured"))
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		respondError(c, apperror.Validation("avatar file is required"))
		return
	}
	defer file.Close()

	url, err := h.images.UploadAvatar(c.Request.Context(), userID, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.auth.SetAvatarURL(c.Request.Context(), userID, url); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
