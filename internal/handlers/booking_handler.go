package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/helpers"
	"github.com/YatruSathi/-yatrusathi-backend/internal/middleware"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
	"github.com/YatruSathi/-yatrusathi-backend/internal/repositories"
)

type BookingHandler struct {
	bookings      repositories.BookingRepository
	events        repositories.EventRepository
	users         repositories.UserRepository
	notifications repositories.NotificationRepository
}

func NewBookingHandler(
	bookings repositories.BookingRepository,
	events repositories.EventRepository,
	users repositories.UserRepository,
	notifications repositories.NotificationRepository,
) *BookingHandler {
	return &BookingHandler{
		bookings:      bookings,
		events:        events,
		users:         users,
		notifications: notifications,
	}
}

type CreateBookingRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
	// Pointer so an explicit 0 is rejected instead of reading as omitted.
	TicketCount *int `json:"ticket_count"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	ticketCount := 1
	if req.TicketCount != nil {
		if *req.TicketCount < 1 {
			helpers.RespondWithError(c, http.StatusBadRequest, "Ticket count must be at least 1.")
			return
		}
		ticketCount = *req.TicketCount
	}

	event, err := h.events.GetByID(req.EventID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	booking := models.Booking{
		UserID:      userID,
		EventID:     event.ID,
		Status:      models.BookingStatusConfirmed,
		TicketCount: ticketCount,
	}
	if err := h.bookings.Create(&booking); err != nil {
		apperrors.Respond(c, err)
		return
	}
	booking.Event = *event

	if user, err := h.users.GetByID(userID); err == nil {
		booking.User = *user
	}

	notification := models.Notification{
		UserID:  userID,
		Message: fmt.Sprintf("Your booking for '%s' is confirmed.", event.Title),
	}
	if err := h.notifications.Create(&notification); err != nil {
		fmt.Printf("Error creating booking notification: %v\n", err)
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	bookings, err := h.bookings.ListByUser(userID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving bookings.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID.")
		return
	}

	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid booking status.")
		return
	}

	booking, err := h.bookings.GetByID(bookingID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if !models.OwnedBy(booking, userID) {
		apperrors.Respond(c, apperrors.ErrForbidden)
		return
	}

	booking.Status = req.Status
	if err := h.bookings.Update(booking); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking.")
		return
	}

	c.JSON(http.StatusOK, booking)
}
