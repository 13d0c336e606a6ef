package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/helpers"
	"github.com/YatruSathi/-yatrusathi-backend/internal/middleware"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
	"github.com/YatruSathi/-yatrusathi-backend/internal/repositories"
)

type AuthHandler struct {
	users    repositories.UserRepository
	tokens   repositories.TokenRepository
	profiles repositories.ProfileRepository
}

func NewAuthHandler(users repositories.UserRepository, tokens repositories.TokenRepository, profiles repositories.ProfileRepository) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, profiles: profiles}
}

type SignupRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	taken, err := h.users.UsernameExists(req.Username)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if taken {
		apperrors.Respond(c, apperrors.ErrUsernameTaken)
		return
	}

	taken, err = h.users.EmailExists(req.Email)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	if taken {
		apperrors.Respond(c, apperrors.ErrEmailTaken)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.users.Create(&user); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	if _, err := h.profiles.GetOrCreateByUser(user.ID); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create profile.")
		return
	}

	token, err := h.issueToken(&user)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userPayload(&user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil {
		apperrors.Respond(c, apperrors.ErrInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		apperrors.Respond(c, apperrors.ErrInvalidCredentials)
		return
	}

	if _, err := h.profiles.GetOrCreateByUser(user.ID); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to load profile.")
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userPayload(user),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.CurrentToken(c)
	if !ok {
		apperrors.Respond(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.tokens.Delete(token); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out."})
}

func (h *AuthHandler) issueToken(user *models.User) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", jwt.ErrInvalidKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	if err := h.tokens.Create(&models.AuthToken{Key: tokenString, UserID: user.ID}); err != nil {
		return "", err
	}
	return tokenString, nil
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	}
}
