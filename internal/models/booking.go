package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is unique per (user, event); the composite index is what guards
// concurrent double-booking, not any pre-check in the handlers.
type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_user_event" json:"-"`
	User        User      `gorm:"foreignKey:UserID" json:"user"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_user_event" json:"-"`
	Event       Event     `gorm:"foreignKey:EventID" json:"event"`
	Status      string    `gorm:"not null;default:'confirmed'" json:"status"`
	TicketCount int       `gorm:"not null;default:1" json:"ticket_count"`
	BookedAt    time.Time `gorm:"autoCreateTime" json:"booked_at"`
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return
}

func (booking *Booking) OwnerID() uuid.UUID {
	return booking.UserID
}

func ValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
