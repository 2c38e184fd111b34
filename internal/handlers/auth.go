package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/statuspad-dev/statuspad/internal/auth"
	"github.com/statuspad-dev/statuspad/internal/config"
	"github.com/statuspad-dev/statuspad/internal/middleware"
	"github.com/statuspad-dev/statuspad/internal/models"
	"github.com/statuspad-dev/statuspad/internal/store"
)

type AuthHandler struct {
	cfg    *config.Config
	tokens *auth.TokenManager
	users  *store.UserStore
}

func NewAuthHandler(cfg *config.Config, tokens *auth.TokenManager, users *store.UserStore) *AuthHandler {
	return &AuthHandler{cfg: cfg, tokens: tokens, users: users}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	// RegistrationCode is the shared secret that gates account creation.
	RegistrationCode string `json:"registrationCode" binding:"required,min=8,max=16"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register creates an admin account. The submitted code's sha256 must
// match the environment-configured reference hash; every account created
// this way gets the admin role.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.cfg.RegisterSecretHash == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization failed"})
		return
	}

	sum := sha256.Sum256([]byte(req.RegistrationCode))
	if hex.EncodeToString(sum[:]) != h.cfg.RegisterSecretHash {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization failed"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := h.users.FindByEmail(ctx.Request.Context(), email); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error().Err(err).Msg("register: user lookup failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("register: password hashing failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, err := h.users.Create(ctx.Request.Context(), store.CreateUserParams{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
	})
	if err != nil {
		log.Error().Err(err).Msg("register: user creation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"user": userResponse(user)})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		log.Error().Err(err).Msg("login: user lookup failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("login: token generation failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.setSessionCookie(ctx, token, 60*60*24*7)

	ctx.JSON(http.StatusOK, gin.H{
		"user":  userResponse(user),
		"token": token,
	})
}

func (h *AuthHandler) Me(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(ctx *gin.Context) {
	h.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   h.cfg.CookieDomain,
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
