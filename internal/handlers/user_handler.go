package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YatruSathi/-yatrusathi-backend/internal/helpers"
	"github.com/YatruSathi/-yatrusathi-backend/internal/repositories"
)

type UserHandler struct {
	users repositories.UserRepository
}

func NewUserHandler(users repositories.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// List is a reference list for participant selection.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving users.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
