package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/YatruSathi/-yatrusathi-backend/internal/helpers"
	"github.com/YatruSathi/-yatrusathi-backend/internal/middleware"
	"github.com/YatruSathi/-yatrusathi-backend/internal/repositories"
)

type ProfileHandler struct {
	profiles repositories.ProfileRepository
}

func NewProfileHandler(profiles repositories.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	profile, err := h.profiles.GetOrCreateByUser(userID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update copies only the writable profile fields from the form. The KYC
// verification fields (is_kyc_verified, kyc_submitted_at) are never read from
// client input; submitting a document stamps kyc_submitted_at server-side.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, exists := middleware.CurrentUserID(c)
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	profile, err := h.profiles.GetOrCreateByUser(userID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving profile.")
		return
	}

	if bio, ok := c.GetPostForm("bio"); ok {
		profile.Bio = bio
	}
	if hobbies, ok := c.GetPostForm("hobbies"); ok {
		profile.Hobbies = hobbies
	}
	if phone, ok := c.GetPostForm("phone"); ok {
		profile.Phone = phone
	}
	if location, ok := c.GetPostForm("location"); ok {
		profile.Location = location
	}
	if fullName, ok := c.GetPostForm("full_name"); ok {
		profile.FullName = fullName
	}
	if citizenshipNumber, ok := c.GetPostForm("citizenship_number"); ok {
		profile.CitizenshipNumber = citizenshipNumber
	}

	avatarFile, err := c.FormFile("avatar")
	if err == nil {
		avatarPath, err := helpers.UploadFile(c, avatarFile, "avatars")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if profile.Avatar != "" {
			if err := helpers.DeleteFile(profile.Avatar); err != nil {
				fmt.Printf("Error deleting old avatar: %v\n", err)
			}
		}
		profile.Avatar = avatarPath
	}

	documentFile, err := c.FormFile("document_image")
	if err == nil {
		documentPath, err := helpers.UploadFile(c, documentFile, "kyc_docs")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		if profile.DocumentImage != "" {
			if err := helpers.DeleteFile(profile.DocumentImage); err != nil {
				fmt.Printf("Error deleting old KYC document: %v\n", err)
			}
		}
		profile.DocumentImage = documentPath
		submittedAt := time.Now()
		profile.KYCSubmittedAt = &submittedAt
	}

	if err := h.profiles.Update(profile); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		return
	}

	c.JSON(http.StatusOK, profile)
}
