// file: services/trip_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

// CreateTrip validates date and capacity invariants and persists a new draft.
// Field errors are returned as a list; nothing is persisted on failure.
func CreateTrip(trip *models.Trip) ([]models.FieldError, error) {
	if fieldErrs := trip.ValidateDates(); fieldErrs != nil {
		return fieldErrs, nil
	}
	trip.Status = models.TripStatusDraft
	if err := database.DB.Create(trip).Error; err != nil {
		return nil, err
	}
	return nil, nil
}

// TransitionTrip moves a trip to the next lifecycle state with compare-and-swap
// semantics: the status write only lands if the row still holds the status the
// guards were evaluated against. Returns the trip as it stands after the
// attempt.
func TransitionTrip(tripID uint32, next models.TripStatus, reason string) (*models.Trip, error) {
	var trip models.Trip
	var pending []models.Notification

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&trip, tripID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		from := trip.Status
		if !from.CanTransitionTo(next) {
			return ErrInvalidStateTransition
		}

		if next == models.TripStatusInProgress {
			if err := checkStartReadiness(tx, &trip); err != nil {
				return err
			}
		}

		updates := map[string]interface{}{"status": next}
		if next == models.TripStatusCancelled && reason != "" {
			updates["cancel_reason"] = reason
		}

		res := tx.Model(&models.Trip{}).
			Where("id = ? AND status = ?", trip.ID, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race against a concurrent transition.
			return ErrInvalidStateTransition
		}
		trip.Status = next
		trip.CancelReason = reason

		// The durable fan-out rows commit with the transition itself; a
		// failed persist rolls the whole transition back. Push and email
		// happen after commit and stay best-effort.
		switch next {
		case models.TripStatusPublished:
			ids, err := tripGuardianIDs(tx, trip.ID)
			if err != nil {
				return err
			}
			pending, err = notifyGuardians(tx, ids, &trip,
				models.NotificationTypeTripPublished, models.NotificationPriorityNormal,
				"Trip published",
				fmt.Sprintf("The trip %q to %s is now published.", trip.Title, trip.Destination))
			if err != nil {
				return err
			}
		case models.TripStatusCancelled:
			// Resolve the audience before invalidating registrations; the
			// guardians being notified are exactly the ones losing a place.
			ids, err := tripGuardianIDs(tx, trip.ID)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("The trip %q to %s has been cancelled.", trip.Title, trip.Destination)
			if reason != "" {
				msg = fmt.Sprintf("%s Reason: %s", msg, reason)
			}
			pending, err = notifyGuardians(tx, ids, &trip,
				models.NotificationTypeTripCancelled, models.NotificationPriorityHigh,
				"Trip cancelled", msg)
			if err != nil {
				return err
			}
			if err := tx.Model(&models.Participant{}).
				Where("trip_id = ? AND status <> ?", trip.ID, models.ParticipantStatusCancelled).
				Update("status", models.ParticipantStatusCancelled).Error; err != nil {
				return err
			}
		case models.TripStatusInProgress:
			ids, err := tripGuardianIDs(tx, trip.ID)
			if err != nil {
				return err
			}
			pending, err = notifyGuardians(tx, ids, &trip,
				models.NotificationTypeTripStarted, models.NotificationPriorityNormal,
				"Trip started", fmt.Sprintf("The trip %q is now in progress.", trip.Title))
			if err != nil {
				return err
			}
		case models.TripStatusCompleted:
			if err := tx.Model(&models.Participant{}).
				Where("trip_id = ? AND status = ?", trip.ID, models.ParticipantStatusConfirmed).
				Update("status", models.ParticipantStatusCompleted).Error; err != nil {
				return err
			}
			ids, err := tripGuardianIDs(tx, trip.ID)
			if err != nil {
				return err
			}
			pending, err = notifyGuardians(tx, ids, &trip,
				models.NotificationTypeTripCompleted, models.NotificationPriorityNormal,
				"Trip completed", fmt.Sprintf("The trip %q has been completed.", trip.Title))
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &trip, err
	}

	deliverNotifications(pending)
	return &trip, nil
}

// checkStartReadiness is the start guard: enough live participants, and every
// one of them past the consent/medical gate.
func checkStartReadiness(tx *gorm.DB, trip *models.Trip) error {
	var participants []models.Participant
	if err := tx.Preload("Consents").
		Where("trip_id = ? AND status <> ?", trip.ID, models.ParticipantStatusCancelled).
		Find(&participants).Error; err != nil {
		return err
	}
	if uint(len(participants)) < trip.MinParticipants {
		return ErrMinParticipantsNotMet
	}
	for i := range participants {
		if !participants[i].IsTripReady(trip) {
			return ErrParticipantNotReady
		}
	}
	return nil
}

// SweepRegistrationDeadline lazily closes registration once the deadline is
// observed to have passed. Safe to call on every read: the CAS write is a
// no-op unless the trip still sits in registration_open.
func SweepRegistrationDeadline(trip *models.Trip, now time.Time) {
	if trip.Status != models.TripStatusRegistrationOpen || !trip.DeadlinePassed(now) {
		return
	}
	res := database.DB.Model(&models.Trip{}).
		Where("id = ? AND status = ?", trip.ID, models.TripStatusRegistrationOpen).
		Update("status", models.TripStatusRegistrationClosed)
	if res.Error == nil && res.RowsAffected > 0 {
		trip.Status = models.TripStatusRegistrationClosed
	}
}

// UpdateDraftTrip applies edits to a trip that has not been published yet.
func UpdateDraftTrip(trip *models.Trip, updates map[string]interface{}) ([]models.FieldError, error) {
	if trip.Status != models.TripStatusDraft {
		return nil, ErrInvalidStateTransition
	}
	candidate := *trip
	if v, ok := updates["start_date"].(time.Time); ok {
		candidate.StartDate = v
	}
	if v, ok := updates["end_date"].(time.Time); ok {
		candidate.EndDate = v
	}
	if v, ok := updates["registration_deadline"].(time.Time); ok {
		candidate.RegistrationDeadline = v
	}
	if v, ok := updates["min_participants"].(uint); ok {
		candidate.MinParticipants = v
	}
	if v, ok := updates["max_participants"].(uint); ok {
		candidate.MaxParticipants = v
	}
	if v, ok := updates["price_per_student"].(float64); ok {
		candidate.PricePerStudent = v
	}
	if fieldErrs := candidate.ValidateDates(); fieldErrs != nil {
		return fieldErrs, nil
	}
	// Guard against a publish racing in between the read and the write.
	res := database.DB.Model(&models.Trip{}).
		Where("id = ? AND status = ?", trip.ID, models.TripStatusDraft).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidStateTransition
	}
	return nil, nil
}
