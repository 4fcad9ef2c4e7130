// file: controllers/payment_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/dto"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/services"
	"github.com/stansam/EduSafaris-sub001/utils"
)

// RecordParticipantPayment books a payment for a participant. Guardians pay
// for their own children; organizers and admins can record offline payments.
func RecordParticipantPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("participant_id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid participant id")
		return
	}

	var participant models.Participant
	if err := database.DB.First(&participant, id).Error; err != nil {
		utils.Error(c, 4004, "Participant not found")
		return
	}

	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)
	roleAny, _ := c.Get("user_role")
	role := roleAny.(models.UserRole)

	allowed := participant.GuardianID == userID || role == models.RoleAdmin
	if !allowed {
		var trip models.Trip
		if err := database.DB.First(&trip, participant.TripID).Error; err == nil {
			allowed = trip.OrganizerID == userID
		}
	}
	if !allowed {
		utils.Error(c, 4003, "Permission denied")
		return
	}

	var req dto.RecordPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	payment, svcErr := services.RecordParticipantPayment(participant.ID, req.Amount,
		models.PaymentMethod(req.Method), userID, req.Note)
	if svcErr != nil {
		utils.Error(c, stateErrorCode(svcErr), svcErr.Error())
		return
	}

	services.InvalidateRevenueCache(participant.TripID)
	services.LogActivity(userID, "payment_recorded", "participant", participant.ID, payment.Reference, c.ClientIP())
	utils.Success(c, "Payment recorded successfully", gin.H{
		"reference": payment.Reference,
		"amount":    payment.Amount,
	})
}

// RecordBookingPayment books a payment against a vendor booking.
func RecordBookingPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid booking id")
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, id).Error; err != nil {
		utils.Error(c, 4004, "Booking not found")
		return
	}

	var trip models.Trip
	if err := database.DB.First(&trip, booking.TripID).Error; err != nil {
		utils.Error(c, 4004, "Trip not found")
		return
	}
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)
	roleAny, _ := c.Get("user_role")
	if trip.OrganizerID != userID && roleAny.(models.UserRole) != models.RoleAdmin {
		utils.Error(c, 4003, "Permission denied: not the trip organizer")
		return
	}

	var req dto.RecordPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	payment, svcErr := services.RecordBookingPayment(booking.ID, req.Amount,
		models.PaymentMethod(req.Method), userID, req.Note)
	if svcErr != nil {
		utils.Error(c, stateErrorCode(svcErr), svcErr.Error())
		return
	}

	services.InvalidateRevenueCache(booking.TripID)
	utils.Success(c, "Payment recorded successfully", gin.H{
		"reference": payment.Reference,
		"amount":    payment.Amount,
	})
}

// GetTripRevenueReport is the admin/organizer financial view of one trip.
func GetTripRevenueReport(c *gin.Context) {
	trip, ok := requireTripOrganizer(c)
	if !ok {
		return
	}

	report, err := services.BuildTripRevenueReport(trip.ID)
	if err != nil {
		utils.Error(c, stateErrorCode(err), "Failed to build revenue report")
		return
	}
	utils.Success(c, "success", report)
}
