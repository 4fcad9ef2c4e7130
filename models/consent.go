// file: models/consent.go
package models

import (
	"time"
)

type ConsentType string

const (
	ConsentTypeTripParticipation ConsentType = "trip_participation"
	ConsentTypeMedicalTreatment  ConsentType = "medical_treatment"
	ConsentTypePhotoRelease      ConsentType = "photo_release"
)

type Consent struct {
	ID                 uint32      `gorm:"primarykey" json:"id"`
	AuditID            string      `gorm:"size:36;unique;not null" json:"audit_id"`
	ParticipantID      uint32      `gorm:"uniqueIndex:unique_participant_consent;not null" json:"participant_id"`
	ConsentType        ConsentType `gorm:"size:30;uniqueIndex:unique_participant_consent;not null" json:"consent_type"`
	SignerName         string      `gorm:"size:100" json:"signer_name,omitempty"`
	SignerRelationship string      `gorm:"size:50" json:"signer_relationship,omitempty"`
	SignerEmail        string      `gorm:"size:100" json:"signer_email,omitempty"`
	TypedSignature     string      `gorm:"size:100" json:"typed_signature,omitempty"`
	SignatureImageRef  string      `gorm:"size:255" json:"signature_image_ref,omitempty"`
	IsSigned           bool        `gorm:"default:0" json:"is_signed"`
	SignedAt           *time.Time  `json:"signed_at,omitempty"`
	IPAddress          string      `gorm:"size:45" json:"-"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func (Consent) TableName() string {
	return "edusafaris_consent"
}
