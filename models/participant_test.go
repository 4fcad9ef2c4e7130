// file: models/participant_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasSignedConsent(t *testing.T) {
	now := time.Now()
	p := Participant{Consents: []Consent{
		{ConsentType: ConsentTypeTripParticipation, IsSigned: true, SignedAt: &now},
		{ConsentType: ConsentTypeMedicalTreatment, IsSigned: false},
	}}
	assert.True(t, p.HasSignedConsent(ConsentTypeTripParticipation))
	assert.False(t, p.HasSignedConsent(ConsentTypeMedicalTreatment), "an unsigned record does not count")
	assert.False(t, p.HasSignedConsent(ConsentTypePhotoRelease))
}

func TestIsTripReady(t *testing.T) {
	now := time.Now()
	signed := Participant{Consents: []Consent{
		{ConsentType: ConsentTypeTripParticipation, IsSigned: true, SignedAt: &now},
	}}
	unsigned := Participant{}

	relaxed := Trip{}
	assert.True(t, unsigned.IsTripReady(&relaxed), "no requirements, always ready")

	consentTrip := Trip{ConsentRequired: true}
	assert.False(t, unsigned.IsTripReady(&consentTrip))
	assert.True(t, signed.IsTripReady(&consentTrip))

	medicalTrip := Trip{ConsentRequired: true, MedicalInfoRequired: true}
	assert.False(t, signed.IsTripReady(&medicalTrip))

	ready := signed
	ready.MedicalInfo = "asthma inhaler"
	assert.True(t, ready.IsTripReady(&medicalTrip))
}

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingStatusRequested.CanTransitionTo(BookingStatusQuoted))
	assert.True(t, BookingStatusQuoted.CanTransitionTo(BookingStatusConfirmed))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCompleted))
	assert.True(t, BookingStatusRequested.CanTransitionTo(BookingStatusCancelled))

	assert.False(t, BookingStatusRequested.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusRequested))
}
