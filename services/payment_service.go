// file: services/payment_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/utils"
)

// RecordParticipantPayment books a payment against a participant and rolls
// the participant's amount_paid / payment_status forward in the same
// transaction. A fully paid participant that has passed the consent and
// medical gate is confirmed on the spot.
func RecordParticipantPayment(participantID uint32, amount float64, method models.PaymentMethod, recordedByID uint32, note string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	payment := models.Payment{
		Reference:     utils.GeneratePaymentReference(),
		ParticipantID: &participantID,
		Amount:        amount,
		Method:        method,
		RecordedByID:  recordedByID,
		Note:          note,
	}

	var participant models.Participant
	var fullyPaid bool
	var pending []models.Notification

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Preload("Consents").First(&participant, participantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if participant.Status == models.ParticipantStatusCancelled {
			return ErrInvalidStateTransition
		}

		var trip models.Trip
		if err := tx.First(&trip, participant.TripID).Error; err != nil {
			return err
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		participant.AmountPaid += amount
		if participant.AmountPaid >= trip.PricePerStudent {
			participant.PaymentStatus = models.PaymentStatusPaid
			fullyPaid = true
		} else {
			participant.PaymentStatus = models.PaymentStatusPartial
		}

		updates := map[string]interface{}{
			"amount_paid":    participant.AmountPaid,
			"payment_status": participant.PaymentStatus,
		}
		// Payment completion confirms the place, but never ahead of the
		// consent/medical gate.
		if fullyPaid && participant.Status == models.ParticipantStatusPending && participant.IsTripReady(&trip) {
			updates["status"] = models.ParticipantStatusConfirmed
			participant.Status = models.ParticipantStatusConfirmed
		}
		if err := tx.Model(&models.Participant{}).Where("id = ?", participant.ID).Updates(updates).Error; err != nil {
			return err
		}

		n, err := persistNotification(tx, participant.GuardianID,
			models.NotificationTypePaymentReceived, models.NotificationPriorityNormal,
			"Payment received",
			fmt.Sprintf("A payment of %.2f was recorded for %s %s (ref %s).", amount, participant.FirstName, participant.LastName, payment.Reference),
			fmt.Sprintf(`{"trip_id":%d,"participant_id":%d}`, participant.TripID, participant.ID))
		if err != nil {
			return err
		}
		pending = append(pending, n)
		return nil
	})
	if err != nil {
		return nil, err
	}

	deliverNotifications(pending)
	return &payment, nil
}

// RecordBookingPayment books a payment against a vendor booking.
func RecordBookingPayment(bookingID uint32, amount float64, method models.PaymentMethod, recordedByID uint32, note string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	payment := models.Payment{
		Reference:    utils.GeneratePaymentReference(),
		BookingID:    &bookingID,
		Amount:       amount,
		Method:       method,
		RecordedByID: recordedByID,
		Note:         note,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if booking.Status == models.BookingStatusCancelled {
			return ErrInvalidStateTransition
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// TransitionBooking applies the booking lifecycle with the same CAS guard the
// trip state machine uses.
func TransitionBooking(bookingID uint32, next models.BookingStatus, finalAmount *float64) (*models.Booking, error) {
	var booking models.Booking

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		from := booking.Status
		if !from.CanTransitionTo(next) {
			return ErrInvalidStateTransition
		}

		updates := map[string]interface{}{"status": next}
		if finalAmount != nil {
			updates["final_amount"] = *finalAmount
		}
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidStateTransition
		}
		booking.Status = next
		if finalAmount != nil {
			booking.FinalAmount = *finalAmount
		}
		return nil
	})
	if err != nil {
		return &booking, err
	}
	return &booking, nil
}
