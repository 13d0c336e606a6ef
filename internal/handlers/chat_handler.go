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

type ChatHandler struct {
	chat   repositories.ChatMessageRepository
	events repositories.EventRepository
	users  repositories.UserRepository
}

func NewChatHandler(chat repositories.ChatMessageRepository, events repositories.EventRepository, users repositories.UserRepository) *ChatHandler {
	return &ChatHandler{chat: chat, events: events, users: users}
}

type CreateChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) ListByEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	if _, err := h.events.GetByID(eventID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	messages, err := h.chat.ListByEvent(eventID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving chat messages.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *ChatHandler) Create(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	var req CreateChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if _, err := h.events.GetByID(eventID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	message := models.ChatMessage{
		EventID:  eventID,
		SenderID: userID,
		Message:  req.Message,
	}
	if err := h.chat.Create(&message); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to send message.")
		return
	}

	if sender, err := h.users.GetByID(userID); err == nil {
		message.Sender = *sender
	}

	c.JSON(http.StatusCreated, message)
}
