package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/YatruSathi/-yatrusathi-backend/internal/apperrors"
	"github.com/YatruSathi/-yatrusathi-backend/internal/helpers"
	"github.com/YatruSathi/-yatrusathi-backend/internal/middleware"
	"github.com/YatruSathi/-yatrusathi-backend/internal/models"
	"github.com/YatruSathi/-yatrusathi-backend/internal/repositories"
)

type EventHandler struct {
	events repositories.EventRepository
}

func NewEventHandler(events repositories.EventRepository) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	event := models.Event{
		MinParticipants:  1,
		GenderPreference: models.GenderAny,
		IsFreeEvent:      true,
	}
	if err := applyEventForm(c, &event); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	event.CreatedByID = userID

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "event_images")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		event.ImagePath = imagePath
	}

	if err := h.events.Create(&event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	// Gallery attachment is best effort. The event stays created even when an
	// image fails; the failure is only logged.
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fileHeader := range form.File["gallery_images"] {
			galleryPath, err := helpers.UploadFile(c, fileHeader, "event_gallery")
			if err != nil {
				fmt.Printf("Error uploading gallery image: %v\n", err)
				continue
			}
			image := models.EventImage{EventID: event.ID, ImagePath: galleryPath}
			if err := h.events.AttachImage(&image); err != nil {
				fmt.Printf("Error attaching gallery image: %v\n", err)
			}
		}
	}

	created, err := h.events.GetByID(event.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created successfully.",
		"event":   created,
	})
}

func (h *EventHandler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	event, err := h.events.GetByID(eventID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	pageNum, err := helpers.StringToInt(page)
	if err != nil || pageNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil || limitNum < 1 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	offset := (pageNum - 1) * limitNum
	events, totalCount, err := h.events.List(offset, limitNum)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + int64(limitNum) - 1) / int64(limitNum),
	})
}

func (h *EventHandler) Update(c *gin.Context) {
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

	event, err := h.events.GetByID(eventID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if !models.OwnedBy(event, userID) {
		apperrors.Respond(c, apperrors.ErrForbidden)
		return
	}

	if err := applyEventForm(c, event); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "event_images")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if event.ImagePath != "" {
			if err := helpers.DeleteFile(event.ImagePath); err != nil {
				fmt.Printf("Error deleting old event image: %v\n", err)
			}
		}
		event.ImagePath = imagePath
	}

	if err := h.events.Update(event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

// Patch updates only the fields present in the form; required fields keep
// their stored values when absent.
func (h *EventHandler) Patch(c *gin.Context) {
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

	event, err := h.events.GetByID(eventID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if !models.OwnedBy(event, userID) {
		apperrors.Respond(c, apperrors.ErrForbidden)
		return
	}

	if err := applyEventFormPartial(c, event); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	imageFile, err := c.FormFile("image")
	if err == nil {
		imagePath, err := helpers.UploadFile(c, imageFile, "event_images")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if event.ImagePath != "" {
			if err := helpers.DeleteFile(event.ImagePath); err != nil {
				fmt.Printf("Error deleting old event image: %v\n", err)
			}
		}
		event.ImagePath = imagePath
	}

	if err := h.events.Update(event); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

func (h *EventHandler) Delete(c *gin.Context) {
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

	event, err := h.events.GetByID(eventID)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	if !models.OwnedBy(event, userID) {
		apperrors.Respond(c, apperrors.ErrForbidden)
		return
	}

	if err := h.events.Delete(eventID); err != nil {
		apperrors.Respond(c, err)
		return
	}

	if event.ImagePath != "" {
		if err := helpers.DeleteFile(event.ImagePath); err != nil {
			fmt.Printf("Error deleting event image: %v\n", err)
		}
	}
	for _, image := range event.Images {
		if err := helpers.DeleteFile(image.ImagePath); err != nil {
			fmt.Printf("Error deleting gallery image: %v\n", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}

// applyEventForm enforces the fields an event cannot exist without, then
// copies everything else. Partial updates go through applyEventFormPartial.
func applyEventForm(c *gin.Context, event *models.Event) error {
	if c.PostForm("title") == "" || c.PostForm("description") == "" ||
		c.PostForm("date") == "" || c.PostForm("location") == "" {
		return fmt.Errorf("Missing required fields.")
	}
	return applyEventFormPartial(c, event)
}

func applyEventFormPartial(c *gin.Context, event *models.Event) error {
	if s := c.PostForm("title"); s != "" {
		event.Title = s
	}
	if s := c.PostForm("description"); s != "" {
		event.Description = s
	}
	if s := c.PostForm("date"); s != "" {
		date, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("Invalid date format.")
		}
		event.Date = date
	}
	if s := c.PostForm("location"); s != "" {
		event.Location = s
	}

	if s, ok := c.GetPostForm("category"); ok {
		event.Category = s
	}
	if s, ok := c.GetPostForm("tags"); ok {
		event.Tags = s
	}
	if s, ok := c.GetPostForm("location_name"); ok {
		event.LocationName = s
	}
	if s, ok := c.GetPostForm("map_link"); ok {
		event.MapLink = s
	}
	if s, ok := c.GetPostForm("equipment_list"); ok {
		event.EquipmentList = s
	}
	if s, ok := c.GetPostForm("organizer_name"); ok {
		event.OrganizerName = s
	}
	if s, ok := c.GetPostForm("contact_email"); ok {
		event.ContactEmail = s
	}
	if s, ok := c.GetPostForm("phone_number"); ok {
		event.PhoneNumber = s
	}
	if s, ok := c.GetPostForm("social_media_link"); ok {
		event.SocialMediaLink = s
	}

	if s := c.PostForm("start_date_time"); s != "" {
		startDateTime, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("Invalid start date time format.")
		}
		event.StartDateTime = &startDateTime
	}
	if s := c.PostForm("end_date_time"); s != "" {
		endDateTime, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("Invalid end date time format.")
		}
		event.EndDateTime = &endDateTime
	}

	if s := c.PostForm("min_participants"); s != "" {
		minParticipants, err := helpers.StringToInt(s)
		if err != nil || minParticipants < 1 {
			return fmt.Errorf("Invalid minimum participants.")
		}
		event.MinParticipants = minParticipants
	}
	if s := c.PostForm("max_participants"); s != "" {
		maxParticipants, err := helpers.StringToInt(s)
		if err != nil || maxParticipants < 1 {
			return fmt.Errorf("Invalid maximum participants.")
		}
		event.MaxParticipants = &maxParticipants
	}
	if s := c.PostForm("age_limit"); s != "" {
		ageLimit, err := helpers.StringToInt(s)
		if err != nil || ageLimit < 0 {
			return fmt.Errorf("Invalid age limit.")
		}
		event.AgeLimit = &ageLimit
	}

	if s := c.PostForm("gender_preference"); s != "" {
		if s != models.GenderAny && s != models.GenderMale && s != models.GenderFemale {
			return fmt.Errorf("Invalid gender preference.")
		}
		event.GenderPreference = s
	}

	if s := c.PostForm("prior_experience_required"); s != "" {
		priorExperience, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("Invalid prior experience flag.")
		}
		event.PriorExperienceRequired = priorExperience
	}
	if s := c.PostForm("is_free_event"); s != "" {
		isFree, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("Invalid free event flag.")
		}
		event.IsFreeEvent = isFree
	}
	if s := c.PostForm("pay_on_site"); s != "" {
		payOnSite, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("Invalid pay on site flag.")
		}
		event.PayOnSite = payOnSite
	}
	if s := c.PostForm("ticket_price"); s != "" {
		ticketPrice, err := strconv.ParseFloat(s, 64)
		if err != nil || ticketPrice < 0 {
			return fmt.Errorf("Invalid ticket price.")
		}
		event.TicketPrice = ticketPrice
	}

	return nil
}
