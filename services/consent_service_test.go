// file: services/consent_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

func TestSignConsentRequiresSignature(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardian := seedUser(t, models.RoleParent, "guardian@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusRegistrationOpen, 10)
	p := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusPending)

	_, err := SignConsent(SignConsentInput{
		ParticipantID: p.ID,
		ConsentType:   models.ConsentTypeTripParticipation,
		SignerName:    "Pat Guardian",
	})
	assert.ErrorIs(t, err, ErrSignatureRequired)

	var count int64
	database.DB.Model(&models.Consent{}).Count(&count)
	assert.Zero(t, count)
}

func TestSignConsentOnce(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardian := seedUser(t, models.RoleParent, "guardian@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusRegistrationOpen, 10)
	p := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusPending)

	in := SignConsentInput{
		ParticipantID:      p.ID,
		ConsentType:        models.ConsentTypeTripParticipation,
		SignerName:         "Pat Guardian",
		SignerRelationship: "parent",
		SignerEmail:        "pat@example.com",
		TypedSignature:     "Pat Guardian",
		IPAddress:          "192.0.2.1",
	}
	consent, err := SignConsent(in)
	require.NoError(t, err)
	assert.True(t, consent.IsSigned)
	require.NotNil(t, consent.SignedAt)
	assert.NotEmpty(t, consent.AuditID)
	assert.Equal(t, "192.0.2.1", consent.IPAddress)

	// Re-submission is rejected and leaves a single row behind.
	_, err = SignConsent(in)
	assert.ErrorIs(t, err, ErrConsentAlreadySigned)

	var count int64
	database.DB.Model(&models.Consent{}).
		Where("participant_id = ? AND consent_type = ?", p.ID, models.ConsentTypeTripParticipation).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSignConsentTypesAreIndependent(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardian := seedUser(t, models.RoleParent, "guardian@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusRegistrationOpen, 10)
	p := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusPending)

	for _, ct := range []models.ConsentType{
		models.ConsentTypeTripParticipation,
		models.ConsentTypeMedicalTreatment,
		models.ConsentTypePhotoRelease,
	} {
		_, err := SignConsent(SignConsentInput{
			ParticipantID:  p.ID,
			ConsentType:    ct,
			SignerName:     "Pat Guardian",
			TypedSignature: "Pat Guardian",
		})
		require.NoError(t, err, "sign %s", ct)
	}

	got := reloadParticipant(t, p.ID)
	assert.Len(t, got.Consents, 3)
	assert.True(t, got.HasSignedConsent(models.ConsentTypePhotoRelease))
}
