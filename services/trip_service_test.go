// file: services/trip_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

func TestCreateTripRejectsBadDates(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")

	now := time.Now()
	trip := models.Trip{
		Title:                "Backwards trip",
		Destination:          "Nowhere",
		StartDate:            now.Add(48 * time.Hour),
		EndDate:              now.Add(24 * time.Hour),
		RegistrationDeadline: now.Add(72 * time.Hour),
		MinParticipants:      5,
		MaxParticipants:      2,
		OrganizerID:          organizer.ID,
	}
	fieldErrs, err := CreateTrip(&trip)
	require.NoError(t, err)
	require.Len(t, fieldErrs, 3)

	var count int64
	database.DB.Model(&models.Trip{}).Count(&count)
	assert.Zero(t, count, "invalid trip must not be persisted")
}

func TestCreateTripStartsAsDraft(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")

	now := time.Now()
	trip := models.Trip{
		Title:                "Coast camp",
		Destination:          "Seaside",
		StartDate:            now.Add(30 * 24 * time.Hour),
		EndDate:              now.Add(33 * 24 * time.Hour),
		RegistrationDeadline: now.Add(14 * 24 * time.Hour),
		MinParticipants:      1,
		MaxParticipants:      20,
		OrganizerID:          organizer.ID,
		Status:               models.TripStatusPublished, // caller cannot pick the initial state
	}
	fieldErrs, err := CreateTrip(&trip)
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, models.TripStatusDraft, reloadTrip(t, trip.ID).Status)
}

func TestTransitionTripHappyPath(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardian := seedUser(t, models.RoleParent, "guardian@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusDraft, 10)

	p := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusPending)
	signParticipationConsent(t, p.ID)

	steps := []models.TripStatus{
		models.TripStatusPublished,
		models.TripStatusRegistrationOpen,
		models.TripStatusRegistrationClosed,
		models.TripStatusInProgress,
		models.TripStatusCompleted,
	}
	for _, next := range steps {
		got, err := TransitionTrip(trip.ID, next, "")
		require.NoError(t, err, "transition to %s", next)
		assert.Equal(t, next, got.Status)
		assert.Equal(t, next, reloadTrip(t, trip.ID).Status)
	}

	// Completion rolls confirmed participants forward; this one was still
	// pending and stays put.
	assert.Equal(t, models.ParticipantStatusPending, reloadParticipant(t, p.ID).Status)
}

func TestTransitionTripRejectsSkips(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusDraft, 10)

	for _, next := range []models.TripStatus{
		models.TripStatusRegistrationOpen,
		models.TripStatusInProgress,
		models.TripStatusCompleted,
		models.TripStatusDraft,
	} {
		_, err := TransitionTrip(trip.ID, next, "")
		assert.ErrorIs(t, err, ErrInvalidStateTransition, "draft -> %s", next)
		assert.Equal(t, models.TripStatusDraft, reloadTrip(t, trip.ID).Status,
			"failed transition must leave the row untouched")
	}
}

func TestTransitionTripNotFound(t *testing.T) {
	setupTestDB(t)
	_, err := TransitionTrip(9999, models.TripStatusPublished, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")

	for _, from := range []models.TripStatus{
		models.TripStatusDraft,
		models.TripStatusPublished,
		models.TripStatusRegistrationOpen,
		models.TripStatusRegistrationClosed,
		models.TripStatusInProgress,
	} {
		trip := seedTrip(t, organizer.ID, from, 10)
		got, err := TransitionTrip(trip.ID, models.TripStatusCancelled, "bus broke down")
		require.NoError(t, err, "cancel from %s", from)
		assert.Equal(t, models.TripStatusCancelled, got.Status)
		assert.Equal(t, "bus broke down", reloadTrip(t, trip.ID).CancelReason)
	}
}

func TestCancelFromTerminalStatesFails(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")

	for _, from := range []models.TripStatus{models.TripStatusCompleted, models.TripStatusCancelled} {
		trip := seedTrip(t, organizer.ID, from, 10)
		_, err := TransitionTrip(trip.ID, models.TripStatusCancelled, "")
		assert.ErrorIs(t, err, ErrInvalidStateTransition, "cancel from %s", from)
		assert.Equal(t, from, reloadTrip(t, trip.ID).Status)
	}
}

func TestCancelInvalidatesRegistrationsAndNotifiesGuardians(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardianA := seedUser(t, models.RoleParent, "a@example.com")
	guardianB := seedUser(t, models.RoleParent, "b@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusRegistrationOpen, 10)

	pa := seedParticipant(t, trip.ID, guardianA.ID, models.ParticipantStatusConfirmed)
	pb := seedParticipant(t, trip.ID, guardianB.ID, models.ParticipantStatusPending)
	cancelled := seedParticipant(t, trip.ID, guardianB.ID, models.ParticipantStatusCancelled)

	_, err := TransitionTrip(trip.ID, models.TripStatusCancelled, "weather")
	require.NoError(t, err)

	assert.Equal(t, models.ParticipantStatusCancelled, reloadParticipant(t, pa.ID).Status)
	assert.Equal(t, models.ParticipantStatusCancelled, reloadParticipant(t, pb.ID).Status)

	// One durable notification per guardian with a live participant; the
	// already-cancelled registration adds no extra recipient.
	var notes []models.Notification
	require.NoError(t, database.DB.
		Where("type = ?", models.NotificationTypeTripCancelled).
		Find(&notes).Error)
	require.Len(t, notes, 2)
	recipients := map[uint32]bool{}
	for _, n := range notes {
		recipients[n.RecipientID] = true
		assert.Contains(t, n.Message, "weather")
	}
	assert.True(t, recipients[guardianA.ID])
	assert.True(t, recipients[guardianB.ID])
	assert.Equal(t, models.ParticipantStatusCancelled, reloadParticipant(t, cancelled.ID).Status)
}

func TestPublishPersistsNotificationsBeforeDelivery(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardianA := seedUser(t, models.RoleParent, "a@example.com")
	guardianB := seedUser(t, models.RoleParent, "b@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusDraft, 10)

	seedParticipant(t, trip.ID, guardianA.ID, models.ParticipantStatusPending)
	seedParticipant(t, trip.ID, guardianB.ID, models.ParticipantStatusPending)

	// No redis and no SMTP credentials in the test environment, so every
	// delivery channel fails. The records must be committed regardless.
	_, err := TransitionTrip(trip.ID, models.TripStatusPublished, "")
	require.NoError(t, err)

	var notes []models.Notification
	require.NoError(t, database.DB.
		Where("type = ?", models.NotificationTypeTripPublished).
		Find(&notes).Error)
	require.Len(t, notes, 2)
	recipients := map[uint32]bool{}
	for _, n := range notes {
		recipients[n.RecipientID] = true
		assert.Contains(t, n.Message, trip.Title)
	}
	assert.True(t, recipients[guardianA.ID])
	assert.True(t, recipients[guardianB.ID])
}

func TestStartRequiresMinimumParticipants(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusRegistrationClosed, 10)
	trip.MinParticipants = 2
	require.NoError(t, database.DB.Save(trip).Error)

	guardian := seedUser(t, models.RoleParent, "guardian@example.com")
	p := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusConfirmed)
	signParticipationConsent(t, p.ID)

	_, err := TransitionTrip(trip.ID, models.TripStatusInProgress, "")
	assert.ErrorIs(t, err, ErrMinParticipantsNotMet)
	assert.Equal(t, models.TripStatusRegistrationClosed, reloadTrip(t, trip.ID).Status)
}

func TestStartRequiresConsentAndMedicalInfo(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardian := seedUser(t, models.RoleParent, "guardian@example.com")

	trip := seedTrip(t, organizer.ID, models.TripStatusRegistrationClosed, 10)
	trip.MedicalInfoRequired = true
	require.NoError(t, database.DB.Save(trip).Error)

	p := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusConfirmed)

	// Unsigned consent blocks the start.
	_, err := TransitionTrip(trip.ID, models.TripStatusInProgress, "")
	assert.ErrorIs(t, err, ErrParticipantNotReady)

	// Signed consent but still no medical info.
	signParticipationConsent(t, p.ID)
	_, err = TransitionTrip(trip.ID, models.TripStatusInProgress, "")
	assert.ErrorIs(t, err, ErrParticipantNotReady)

	require.NoError(t, database.DB.Model(&models.Participant{}).
		Where("id = ?", p.ID).
		Update("medical_info", "no known conditions").Error)
	_, err = TransitionTrip(trip.ID, models.TripStatusInProgress, "")
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusInProgress, reloadTrip(t, trip.ID).Status)
}

func TestCompleteRollsConfirmedParticipantsForward(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	guardian := seedUser(t, models.RoleParent, "guardian@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusInProgress, 10)

	confirmed := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusConfirmed)
	pending := seedParticipant(t, trip.ID, guardian.ID, models.ParticipantStatusPending)

	_, err := TransitionTrip(trip.ID, models.TripStatusCompleted, "")
	require.NoError(t, err)

	assert.Equal(t, models.ParticipantStatusCompleted, reloadParticipant(t, confirmed.ID).Status)
	assert.Equal(t, models.ParticipantStatusPending, reloadParticipant(t, pending.ID).Status)
}

func TestSweepRegistrationDeadline(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	trip := seedTrip(t, organizer.ID, models.TripStatusRegistrationOpen, 10)

	// Deadline still ahead: nothing happens.
	SweepRegistrationDeadline(trip, time.Now())
	assert.Equal(t, models.TripStatusRegistrationOpen, trip.Status)

	SweepRegistrationDeadline(trip, trip.RegistrationDeadline.Add(time.Minute))
	assert.Equal(t, models.TripStatusRegistrationClosed, trip.Status)
	assert.Equal(t, models.TripStatusRegistrationClosed, reloadTrip(t, trip.ID).Status)

	// A second sweep is a no-op, not an error.
	SweepRegistrationDeadline(trip, trip.RegistrationDeadline.Add(time.Hour))
	assert.Equal(t, models.TripStatusRegistrationClosed, reloadTrip(t, trip.ID).Status)
}

func TestUpdateDraftTripOnly(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")

	published := seedTrip(t, organizer.ID, models.TripStatusPublished, 10)
	_, err := UpdateDraftTrip(published, map[string]interface{}{"title": "New title"})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	draft := seedTrip(t, organizer.ID, models.TripStatusDraft, 10)
	fieldErrs, err := UpdateDraftTrip(draft, map[string]interface{}{
		"end_date": draft.StartDate.Add(-time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs, "date ordering holds for edits too")
	assert.Equal(t, "end_date", fieldErrs[0].Field)

	fieldErrs, err = UpdateDraftTrip(draft, map[string]interface{}{
		"title":            "Mountain hike",
		"max_participants": uint(25),
	})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	got := reloadTrip(t, draft.ID)
	assert.Equal(t, "Mountain hike", got.Title)
	assert.Equal(t, uint(25), got.MaxParticipants)
}

func TestUpdateDraftTripStaleRead(t *testing.T) {
	setupTestDB(t)
	organizer := seedUser(t, models.RoleTeacher, "organizer@example.com")
	draft := seedTrip(t, organizer.ID, models.TripStatusDraft, 10)

	// The trip gets published between the caller's read and the edit. The
	// write is guarded on the draft status, so the stale edit must bounce.
	require.NoError(t, database.DB.Model(&models.Trip{}).
		Where("id = ?", draft.ID).
		Update("status", models.TripStatusPublished).Error)

	_, err := UpdateDraftTrip(draft, map[string]interface{}{"title": "Too late"})
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	got := reloadTrip(t, draft.ID)
	assert.Equal(t, models.TripStatusPublished, got.Status)
	assert.NotEqual(t, "Too late", got.Title)
}
