// file: models/trip.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type TripStatus string

const (
	TripStatusDraft              TripStatus = "draft"
	TripStatusPublished          TripStatus = "published"
	TripStatusRegistrationOpen   TripStatus = "registration_open"
	TripStatusRegistrationClosed TripStatus = "registration_closed"
	TripStatusInProgress         TripStatus = "in_progress"
	TripStatusCompleted          TripStatus = "completed"
	TripStatusCancelled          TripStatus = "cancelled"
)

// Forward transitions only; cancel is handled separately (any non-terminal state).
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusDraft:              {TripStatusPublished},
	TripStatusPublished:          {TripStatusRegistrationOpen},
	TripStatusRegistrationOpen:   {TripStatusRegistrationClosed, TripStatusInProgress},
	TripStatusRegistrationClosed: {TripStatusInProgress},
	TripStatusInProgress:         {TripStatusCompleted},
}

func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	if next == TripStatusCancelled {
		return !s.IsTerminal()
	}
	for _, allowed := range tripTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Trip struct {
	ID                   uint32         `gorm:"primarykey" json:"id"`
	Title                string         `gorm:"size:100;not null" json:"title"`
	Description          string         `gorm:"type:text" json:"description"`
	Destination          string         `gorm:"size:100;not null" json:"destination"`
	StartDate            time.Time      `gorm:"not null" json:"start_date"`
	EndDate              time.Time      `gorm:"not null" json:"end_date"`
	RegistrationDeadline time.Time      `gorm:"not null" json:"registration_deadline"`
	PricePerStudent      float64        `gorm:"not null;default:0" json:"price_per_student"`
	MinParticipants      uint           `gorm:"not null;default:1" json:"min_participants"`
	MaxParticipants      uint           `gorm:"not null" json:"max_participants"`
	Status               TripStatus     `gorm:"size:30;not null;default:'draft'" json:"status"`
	OrganizerID          uint32         `gorm:"not null;index" json:"organizer_id"`
	Organizer            User           `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
	Itinerary            string         `gorm:"type:text" json:"itinerary,omitempty"`
	CancelReason         string         `gorm:"size:255" json:"cancel_reason,omitempty"`
	IsFeatured           bool           `gorm:"default:0" json:"is_featured"`
	MedicalInfoRequired  bool           `gorm:"default:0" json:"medical_info_required"`
	ConsentRequired      bool           `gorm:"default:1" json:"consent_required"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	Participants []Participant `gorm:"foreignKey:TripID" json:"participants,omitempty"`
}

func (Trip) TableName() string {
	return "edusafaris_trip"
}

// FieldError is one entry of a field-level validation error list.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidateDates checks the ordering invariants; returns nil when all hold.
func (t *Trip) ValidateDates() []FieldError {
	var errs []FieldError
	if t.EndDate.Before(t.StartDate) {
		errs = append(errs, FieldError{Field: "end_date", Error: "End date cannot be before start date"})
	}
	if t.RegistrationDeadline.After(t.StartDate) {
		errs = append(errs, FieldError{Field: "registration_deadline", Error: "Registration deadline must be on or before the start date"})
	}
	if t.MinParticipants > t.MaxParticipants {
		errs = append(errs, FieldError{Field: "min_participants", Error: "Minimum participants cannot exceed maximum participants"})
	}
	if t.PricePerStudent < 0 {
		errs = append(errs, FieldError{Field: "price_per_student", Error: "Price per student cannot be negative"})
	}
	return errs
}

func (t *Trip) DeadlinePassed(now time.Time) bool {
	return now.After(t.RegistrationDeadline)
}
