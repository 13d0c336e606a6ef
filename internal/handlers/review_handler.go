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

type ReviewHandler struct {
	reviews repositories.ReviewRepository
	events  repositories.EventRepository
	users   repositories.UserRepository
}

func NewReviewHandler(reviews repositories.ReviewRepository, events repositories.EventRepository, users repositories.UserRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, events: events, users: users}
}

type CreateReviewRequest struct {
	EventID uuid.UUID `json:"event_id"`
	// Pointer so an explicit 0 is rejected instead of reading as omitted.
	Rating  *int   `json:"rating"`
	Comment string `json:"comment" binding:"required"`
}

// Create accepts the event either from the route (/events/:id/reviews) or the
// request body (/reviews).
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	eventID := req.EventID
	if param := c.Param("id"); param != "" {
		parsed, err := uuid.Parse(param)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
			return
		}
		eventID = parsed
	}
	if eventID == uuid.Nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	if _, err := h.events.GetByID(eventID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	rating := 5
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Rating must be between 1 and 5.")
			return
		}
		rating = *req.Rating
	}

	review := models.Review{
		UserID:  userID,
		EventID: eventID,
		Rating:  rating,
		Comment: req.Comment,
	}
	if err := h.reviews.Create(&review); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create review.")
		return
	}

	if user, err := h.users.GetByID(userID); err == nil {
		review.User = *user
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviews.ListAll()
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving reviews.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ReviewHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	if _, err := h.events.GetByID(eventID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	reviews, err := h.reviews.ListByEvent(eventID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving reviews.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
