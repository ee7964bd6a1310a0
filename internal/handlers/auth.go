package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"clean-backend/internal/auth"
	"clean-backend/internal/content"
	"clean-backend/internal/middleware"
	"clean-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// unknownUserHash is compared against when the username does not exist, so
// that answer costs one bcrypt check like a wrong password does.
var unknownUserHash = sync.OnceValue(func() string {
	hash, err := auth.HashPassword("unknown-user")
	if err != nil {
		log.Error().Err(err).Msg("failed to hash placeholder password")
	}
	return hash
})

type AuthHandler struct {
	users         store.Users
	jwtSecret     string
	tokenTTL      time.Duration
	checkPassword func(password, hash string) bool
}

func NewAuthHandler(users store.Users, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, checkPassword: auth.CheckPassword}
}

type AuthResponse struct {
	User         content.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Login answers the same 401 for an unknown user and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var p content.LoginPayload
	if !bindJSON(c, "User", &p) {
		return
	}
	if err := content.ValidateCreate(&p); err != nil {
		respondError(c, "User", err)
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), *p.Username)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		respondError(c, "User", err)
		return
	}
	hash := user.PasswordHash
	if err != nil {
		hash = unknownUserHash()
	}
	if !h.checkPassword(*p.Password, hash) || err != nil {
		log.Info().Str("username", *p.Username).Msg("failed login")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	h.respondWithTokens(c, user)
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	claims, err := auth.ValidateToken(req.RefreshToken, h.jwtSecret)
	if err != nil || claims.TokenType != auth.RefreshToken {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	// reload so a revoked admin flag takes effect
	user, err := h.users.Get(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	h.respondWithTokens(c, user)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.GetInt(middleware.KeyUserID))
	if err != nil {
		respondError(c, "User", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, user content.User) {
	accessToken, err := auth.GenerateAccessToken(user.ID, user.Username, user.IsAdmin, h.jwtSecret, h.tokenTTL)
	if err != nil {
		respondError(c, "User", err)
		return
	}
	refreshToken, err := auth.GenerateRefreshToken(user.ID, user.Username, user.IsAdmin, h.jwtSecret)
	if err != nil {
		respondError(c, "User", err)
		return
	}
	c.JSON(http.StatusOK, AuthResponse{User: user, Token: accessToken, RefreshToken: refreshToken})
}
