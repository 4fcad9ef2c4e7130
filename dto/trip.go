// file: dto/trip.go
package dto

import (
	"strings"
	"time"
)

// ========== Request DTOs ==========

type CreateTripReq struct {
	Title                string    `json:"title" binding:"required"`
	Description          string    `json:"description"`
	Destination          string    `json:"destination" binding:"required"`
	StartDate            time.Time `json:"start_date" binding:"required"`
	EndDate              time.Time `json:"end_date" binding:"required"`
	RegistrationDeadline time.Time `json:"registration_deadline" binding:"required"`
	PricePerStudent      float64   `json:"price_per_student"`
	MinParticipants      uint      `json:"min_participants"`
	MaxParticipants      uint      `json:"max_participants" binding:"required"`
	Itinerary            string    `json:"itinerary"`
	IsFeatured           bool      `json:"is_featured"`
	MedicalInfoRequired  bool      `json:"medical_info_required"`
	ConsentRequired      *bool     `json:"consent_required"`
}

// Normalize trims free text and applies defaults.
func (r *CreateTripReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Destination = strings.TrimSpace(r.Destination)
	r.Description = strings.TrimSpace(r.Description)
	if r.MinParticipants == 0 {
		r.MinParticipants = 1
	}
}

type UpdateTripReq struct {
	Title                *string    `json:"title"`
	Description          *string    `json:"description"`
	Destination          *string    `json:"destination"`
	StartDate            *time.Time `json:"start_date"`
	EndDate              *time.Time `json:"end_date"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	PricePerStudent      *float64   `json:"price_per_student"`
	MinParticipants      *uint      `json:"min_participants"`
	MaxParticipants      *uint      `json:"max_participants"`
	Itinerary            *string    `json:"itinerary"`
	IsFeatured           *bool      `json:"is_featured"`
	MedicalInfoRequired  *bool      `json:"medical_info_required"`
	ConsentRequired      *bool      `json:"consent_required"`
}

type CancelTripReq struct {
	Reason string `json:"reason"`
}

// ========== Response DTOs ==========

type TripItemResp struct {
	ID                   uint32  `json:"id"`
	Title                string  `json:"title"`
	Destination          string  `json:"destination"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	RegistrationDeadline string  `json:"registration_deadline"`
	PricePerStudent      float64 `json:"price_per_student"`
	Status               string  `json:"status"`
	MaxParticipants      uint    `json:"max_participants"`
	CurrentParticipants  int64   `json:"current_participants"`
	IsFeatured           bool    `json:"is_featured"`
}

type TripDetailResp struct {
	ID                   uint32  `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Destination          string  `json:"destination"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	RegistrationDeadline string  `json:"registration_deadline"`
	PricePerStudent      float64 `json:"price_per_student"`
	MinParticipants      uint    `json:"min_participants"`
	MaxParticipants      uint    `json:"max_participants"`
	CurrentParticipants  int64   `json:"current_participants"`
	Status               string  `json:"status"`
	OrganizerID          uint32  `json:"organizer_id"`
	OrganizerName        string  `json:"organizer_name,omitempty"`
	Itinerary            string  `json:"itinerary,omitempty"`
	CancelReason         string  `json:"cancel_reason,omitempty"`
	IsFeatured           bool    `json:"is_featured"`
	MedicalInfoRequired  bool    `json:"medical_info_required"`
	ConsentRequired      bool    `json:"consent_required"`
}
