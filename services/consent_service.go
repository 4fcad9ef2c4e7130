// file: services/consent_service.go
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/utils"
)

// SignConsentInput carries the signer identity and signature payload.
type SignConsentInput struct {
	ParticipantID      uint32
	ConsentType        models.ConsentType
	SignerName         string
	SignerRelationship string
	SignerEmail        string
	TypedSignature     string
	SignatureImageRef  string
	IPAddress          string
}

// SignConsent creates or completes the consent record for a participant.
// Sign-once: a consent that is already signed rejects re-submission. The
// unique (participant_id, consent_type) index plus the in-transaction check
// keep two concurrent submissions from both landing as signed.
func SignConsent(in SignConsentInput) (*models.Consent, error) {
	if in.TypedSignature == "" && in.SignatureImageRef == "" {
		return nil, ErrSignatureRequired
	}

	var consent models.Consent
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := lockForUpdate(tx).
			Where("participant_id = ? AND consent_type = ?", in.ParticipantID, in.ConsentType).
			First(&consent).Error
		switch {
		case err == nil:
			if consent.IsSigned {
				return ErrConsentAlreadySigned
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Created lazily on first submission attempt.
			consent = models.Consent{
				AuditID:       utils.GenerateAuditID(),
				ParticipantID: in.ParticipantID,
				ConsentType:   in.ConsentType,
			}
		default:
			return err
		}

		now := time.Now()
		consent.SignerName = in.SignerName
		consent.SignerRelationship = in.SignerRelationship
		consent.SignerEmail = in.SignerEmail
		consent.TypedSignature = in.TypedSignature
		consent.SignatureImageRef = in.SignatureImageRef
		consent.IsSigned = true
		consent.SignedAt = &now
		consent.IPAddress = in.IPAddress

		return tx.Save(&consent).Error
	})
	if err != nil {
		return nil, err
	}
	return &consent, nil
}
