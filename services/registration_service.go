// file: services/registration_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

// RegisterParticipant performs the atomic capacity check-and-insert. The trip
// row is locked for the duration of the transaction so two registrations
// racing for the last slot cannot both pass the derived-count check. When the
// insert fills the last slot, registration closes in the same transaction.
func RegisterParticipant(participant *models.Participant) error {
	now := time.Now()
	var pending []models.Notification

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var trip models.Trip
		if err := lockForUpdate(tx).First(&trip, participant.TripID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if trip.Status != models.TripStatusRegistrationOpen {
			return ErrRegistrationClosed
		}
		if trip.DeadlinePassed(now) {
			return ErrDeadlinePassed
		}

		count, err := countActiveParticipants(tx, trip.ID)
		if err != nil {
			return err
		}
		if uint(count) >= trip.MaxParticipants {
			return ErrTripFull
		}

		participant.Status = models.ParticipantStatusPending
		participant.PaymentStatus = models.PaymentStatusUnpaid
		if err := tx.Create(participant).Error; err != nil {
			return err
		}

		if uint(count)+1 >= trip.MaxParticipants {
			if err := tx.Model(&models.Trip{}).
				Where("id = ? AND status = ?", trip.ID, models.TripStatusRegistrationOpen).
				Update("status", models.TripStatusRegistrationClosed).Error; err != nil {
				return err
			}
		}

		n, err := persistNotification(tx, trip.OrganizerID,
			models.NotificationTypeRegistration, models.NotificationPriorityNormal,
			"New registration",
			fmt.Sprintf("%s %s has been registered on %q.", participant.FirstName, participant.LastName, trip.Title),
			fmt.Sprintf(`{"trip_id":%d,"participant_id":%d}`, trip.ID, participant.ID))
		if err != nil {
			return err
		}
		pending = append(pending, n)
		return nil
	})
	if err != nil {
		return err
	}

	deliverNotifications(pending)
	return nil
}

// ConfirmParticipant moves a pending participant to confirmed. The consent and
// medical gate is enforced here, not just at display time.
func ConfirmParticipant(participantID uint32) (*models.Participant, error) {
	var participant models.Participant
	var pending []models.Notification

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Consents").First(&participant, participantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if participant.Status != models.ParticipantStatusPending {
			return ErrInvalidStateTransition
		}

		var trip models.Trip
		if err := tx.First(&trip, participant.TripID).Error; err != nil {
			return err
		}
		if !participant.IsTripReady(&trip) {
			return ErrParticipantNotReady
		}

		res := tx.Model(&models.Participant{}).
			Where("id = ? AND status = ?", participant.ID, models.ParticipantStatusPending).
			Update("status", models.ParticipantStatusConfirmed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidStateTransition
		}
		participant.Status = models.ParticipantStatusConfirmed

		n, err := persistNotification(tx, participant.GuardianID,
			models.NotificationTypeParticipantUpdated, models.NotificationPriorityNormal,
			"Participant confirmed",
			fmt.Sprintf("%s %s has been confirmed for the trip.", participant.FirstName, participant.LastName),
			fmt.Sprintf(`{"trip_id":%d,"participant_id":%d}`, participant.TripID, participant.ID))
		if err != nil {
			return err
		}
		pending = append(pending, n)
		return nil
	})
	if err != nil {
		return &participant, err
	}

	deliverNotifications(pending)
	return &participant, nil
}

// CancelParticipant cancels a registration. The derived participant count
// excludes cancelled rows, so the slot is freed as a consequence.
func CancelParticipant(participantID uint32) (*models.Participant, error) {
	var participant models.Participant

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&participant, participantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if participant.Status == models.ParticipantStatusCancelled ||
			participant.Status == models.ParticipantStatusCompleted {
			return ErrInvalidStateTransition
		}

		res := tx.Model(&models.Participant{}).
			Where("id = ? AND status = ?", participant.ID, participant.Status).
			Update("status", models.ParticipantStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidStateTransition
		}
		participant.Status = models.ParticipantStatusCancelled
		return nil
	})
	if err != nil {
		return &participant, err
	}
	return &participant, nil
}
