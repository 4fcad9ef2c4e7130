// file: models/participant.go
package models

import (
	"time"
)

type ParticipantStatus string
type PaymentStatus string

const (
	ParticipantStatusPending   ParticipantStatus = "pending"
	ParticipantStatusConfirmed ParticipantStatus = "confirmed"
	ParticipantStatusCompleted ParticipantStatus = "completed"
	ParticipantStatusCancelled ParticipantStatus = "cancelled"

	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Participant struct {
	ID               uint32            `gorm:"primarykey" json:"id"`
	TripID           uint32            `gorm:"not null;index" json:"trip_id"`
	Trip             Trip              `gorm:"foreignKey:TripID" json:"-"`
	GuardianID       uint32            `gorm:"not null;index" json:"guardian_id"`
	Guardian         User              `gorm:"foreignKey:GuardianID" json:"guardian,omitempty"`
	FirstName        string            `gorm:"size:50;not null" json:"first_name"`
	LastName         string            `gorm:"size:50;not null" json:"last_name"`
	DateOfBirth      *time.Time        `json:"date_of_birth,omitempty"`
	Grade            string            `gorm:"size:20" json:"grade,omitempty"`
	MedicalInfo      string            `gorm:"type:text" json:"medical_info,omitempty"`
	Allergies        string            `gorm:"type:text" json:"allergies,omitempty"`
	DietaryNeeds     string            `gorm:"type:text" json:"dietary_needs,omitempty"`
	EmergencyContact string            `gorm:"size:100" json:"emergency_contact,omitempty"`
	EmergencyPhone   string            `gorm:"size:20" json:"emergency_phone,omitempty"`
	Status           ParticipantStatus `gorm:"size:30;not null;default:'pending'" json:"status"`
	PaymentStatus    PaymentStatus     `gorm:"size:30;not null;default:'unpaid'" json:"payment_status"`
	AmountPaid       float64           `gorm:"not null;default:0" json:"amount_paid"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`

	Consents []Consent `gorm:"foreignKey:ParticipantID" json:"consents,omitempty"`
}

func (Participant) TableName() string {
	return "edusafaris_participant"
}

// HasSignedConsent reports whether a signed consent of the given type exists
// among the preloaded Consents.
func (p *Participant) HasSignedConsent(consentType ConsentType) bool {
	for _, c := range p.Consents {
		if c.ConsentType == consentType && c.IsSigned {
			return true
		}
	}
	return false
}

// IsTripReady is the confirmation gate: consent signed when the trip requires
// it, medical info present when the trip requires that.
func (p *Participant) IsTripReady(trip *Trip) bool {
	if trip.ConsentRequired && !p.HasSignedConsent(ConsentTypeTripParticipation) {
		return false
	}
	if trip.MedicalInfoRequired && p.MedicalInfo == "" {
		return false
	}
	return true
}
