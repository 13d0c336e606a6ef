package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/helpers"
	"github.com/YatruSathi/-yatrusathi-backend/internal/middleware"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
	"github.com/YatruSathi/-yatrusathi-backend/internal/repositories"
)

type FavoriteHandler struct {
	favorites repositories.FavoriteRepository
	events    repositories.EventRepository
}

func NewFavoriteHandler(favorites repositories.FavoriteRepository, events repositories.EventRepository) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites, events: events}
}

type CreateFavoriteRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
}

// Create is idempotent: favoriting an event twice returns the existing
// favorite with a success status. Removal is not symmetric; see Delete.
func (h *FavoriteHandler) Create(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if _, err := h.events.GetByID(req.EventID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	favorite, err := h.favorites.Create(&models.Favorite{
		UserID:  userID,
		EventID: req.EventID,
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create favorite.")
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	favorites, err := h.favorites.ListByUser(userID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving favorites.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *FavoriteHandler) Delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	if err := h.favorites.DeleteByUserAndEvent(userID, eventID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully."})
}
