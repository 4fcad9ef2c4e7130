// file: dto/participant.go
package dto

import (
	"strings"
	"time"
)

type RegisterParticipantReq struct {
	FirstName        string     `json:"first_name" binding:"required"`
	LastName         string     `json:"last_name" binding:"required"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Grade            string     `json:"grade"`
	MedicalInfo      string     `json:"medical_info"`
	Allergies        string     `json:"allergies"`
	DietaryNeeds     string     `json:"dietary_needs"`
	EmergencyContact string     `json:"emergency_contact"`
	EmergencyPhone   string     `json:"emergency_phone"`
}

func (r *RegisterParticipantReq) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.MedicalInfo = strings.TrimSpace(r.MedicalInfo)
}

type ParticipantItemResp struct {
	ID            uint32  `json:"id"`
	TripID        uint32  `json:"trip_id"`
	TripTitle     string  `json:"trip_title,omitempty"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Grade         string  `json:"grade,omitempty"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	AmountPaid    float64 `json:"amount_paid"`
	TripReady     bool    `json:"trip_ready"`
}
