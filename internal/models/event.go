package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	GenderAny    = "any"
	GenderMale   = "male"
	GenderFemale = "female"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Location    string    `gorm:"not null" json:"location"`
	Category    string    `json:"category,omitempty"`
	ImagePath   string    `json:"image,omitempty"`

	Tags                    string     `json:"tags,omitempty"`
	StartDateTime           *time.Time `json:"start_date_time,omitempty"`
	EndDateTime             *time.Time `json:"end_date_time,omitempty"`
	LocationName            string     `json:"location_name,omitempty"`
	MapLink                 string     `json:"map_link,omitempty"`
	MinParticipants         int        `gorm:"not null;default:1" json:"min_participants"`
	MaxParticipants         *int       `json:"max_participants,omitempty"`
	GenderPreference        string     `gorm:"not null;default:'any'" json:"gender_preference"`
	AgeLimit                *int       `json:"age_limit,omitempty"`
	PriorExperienceRequired bool       `gorm:"not null;default:false" json:"prior_experience_required"`
	IsFreeEvent             bool       `gorm:"not null;default:true" json:"is_free_event"`
	TicketPrice             float64    `gorm:"type:numeric(10,2);not null;default:0" json:"ticket_price"`
	PayOnSite               bool       `gorm:"not null;default:false" json:"pay_on_site"`
	EquipmentList           string     `json:"equipment_list,omitempty"`
	OrganizerName           string     `json:"organizer_name,omitempty"`
	ContactEmail            string     `json:"contact_email,omitempty"`
	PhoneNumber             string     `json:"phone_number,omitempty"`
	SocialMediaLink         string     `json:"social_media_link,omitempty"`

	CreatedByID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"-"`
	CreatedBy    User         `gorm:"foreignKey:CreatedByID" json:"created_by"`
	Participants []User       `gorm:"many2many:event_participants;" json:"participants"`
	Images       []EventImage `gorm:"foreignKey:EventID" json:"images"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

func (event *Event) OwnerID() uuid.UUID {
	return event.CreatedByID
}

type EventImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index" json:"event_id"`
	ImagePath string    `gorm:"not null" json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

func (image *EventImage) BeforeCreate(tx *gorm.DB) (err error) {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	return
}
