// file: models/booking.go
package models

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusRequested BookingStatus = "requested"
	BookingStatusQuoted    BookingStatus = "quoted"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Forward transitions only, same discipline as the trip lifecycle.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusRequested: {BookingStatusQuoted, BookingStatusCancelled},
	BookingStatusQuoted:    {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID           uint32         `gorm:"primarykey" json:"id"`
	TripID       uint32         `gorm:"not null;index" json:"trip_id"`
	Trip         Trip           `gorm:"foreignKey:TripID" json:"-"`
	VendorID     uint32         `gorm:"not null;index" json:"vendor_id"`
	Vendor       Vendor         `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Category     VendorCategory `gorm:"size:30;not null" json:"category"`
	Details      string         `gorm:"type:text" json:"details,omitempty"`
	QuotedAmount float64        `gorm:"not null;default:0" json:"quoted_amount"`
	FinalAmount  float64        `gorm:"not null;default:0" json:"final_amount"`
	Status       BookingStatus  `gorm:"size:30;not null;default:'requested'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Booking) TableName() string {
	return "edusafaris_booking"
}
