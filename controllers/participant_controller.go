// file: controllers/participant_controller.go
package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/dto"
	"github.com/stansam/EduSafaris-sub001/mappers"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/services"
	"github.com/stansam/EduSafaris-sub001/utils"
)

// RegisterParticipant signs a child up for a trip on behalf of the calling
// guardian.
func RegisterParticipant(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid trip id")
		return
	}

	var req dto.RegisterParticipantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	userIDAny, _ := c.Get("user_id")
	guardianID := userIDAny.(uint32)

	participant := models.Participant{
		TripID:           uint32(tripID),
		GuardianID:       guardianID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		Grade:            req.Grade,
		MedicalInfo:      req.MedicalInfo,
		Allergies:        req.Allergies,
		DietaryNeeds:     req.DietaryNeeds,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	}

	if err := services.RegisterParticipant(&participant); err != nil {
		utils.Error(c, stateErrorCode(err), err.Error())
		return
	}

	services.LogActivity(guardianID, "participant_registered", "participant", participant.ID,
		participant.FirstName+" "+participant.LastName, c.ClientIP())
	utils.Success(c, "Participant registered successfully", gin.H{
		"id":     participant.ID,
		"status": participant.Status,
	})
}

// ListMyParticipants returns the calling guardian's registrations across trips.
func ListMyParticipants(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	guardianID := userIDAny.(uint32)

	var participants []models.Participant
	if err := database.DB.Preload("Consents").Preload("Trip").
		Where("guardian_id = ?", guardianID).
		Order("created_at DESC").Find(&participants).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}

	items := make([]dto.ParticipantItemResp, 0, len(participants))
	for i := range participants {
		items = append(items, mappers.MapParticipantToItemResp(participants[i], &participants[i].Trip))
	}
	utils.Success(c, "success", items)
}

// ListTripRoster returns the organizer's view of a trip's participants.
func ListTripRoster(c *gin.Context) {
	trip, ok := requireTripOrganizer(c)
	if !ok {
		return
	}

	var participants []models.Participant
	if err := database.DB.Preload("Consents").Preload("Guardian").
		Where("trip_id = ?", trip.ID).
		Order("created_at ASC").Find(&participants).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}

	items := make([]dto.ParticipantItemResp, 0, len(participants))
	for i := range participants {
		items = append(items, mappers.MapParticipantToItemResp(participants[i], trip))
	}
	count, _ := services.CurrentParticipantCount(trip.ID)
	utils.Success(c, "success", gin.H{
		"trip_id":              trip.ID,
		"current_participants": count,
		"max_participants":     trip.MaxParticipants,
		"participants":         items,
	})
}

// ConfirmParticipant is the organizer's manual confirmation.
func ConfirmParticipant(c *gin.Context) {
	participantID, err := loadParticipantForOrganizer(c)
	if err != nil {
		return
	}

	participant, svcErr := services.ConfirmParticipant(participantID)
	if svcErr != nil {
		utils.Error(c, stateErrorCode(svcErr), svcErr.Error())
		return
	}
	utils.Success(c, "Participant confirmed successfully", gin.H{
		"id":     participant.ID,
		"status": participant.Status,
	})
}

// CancelParticipant serves both the guardian withdrawing a child and the
// organizer removing one.
func CancelParticipant(c *gin.Context) {
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

	result, svcErr := services.CancelParticipant(participant.ID)
	if svcErr != nil {
		utils.Error(c, stateErrorCode(svcErr), svcErr.Error())
		return
	}

	services.LogActivity(userID, "participant_cancelled", "participant", result.ID, "", c.ClientIP())
	utils.Success(c, "Participant cancelled successfully", gin.H{
		"id":     result.ID,
		"status": result.Status,
	})
}

// SignConsent records the guardian's signed consent for a participant.
func SignConsent(c *gin.Context) {
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
	if participant.GuardianID != userIDAny.(uint32) {
		utils.Error(c, 4003, "Permission denied: not the participant's guardian")
		return
	}

	var req dto.SignConsentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	consent, svcErr := services.SignConsent(services.SignConsentInput{
		ParticipantID:      participant.ID,
		ConsentType:        models.ConsentType(req.ConsentType),
		SignerName:         req.SignerName,
		SignerRelationship: req.SignerRelationship,
		SignerEmail:        req.SignerEmail,
		TypedSignature:     req.TypedSignature,
		SignatureImageRef:  req.SignatureImageRef,
		IPAddress:          c.ClientIP(),
	})
	if svcErr != nil {
		utils.Error(c, stateErrorCode(svcErr), svcErr.Error())
		return
	}

	utils.Success(c, "Consent signed successfully", gin.H{
		"audit_id":  consent.AuditID,
		"signed_at": consent.SignedAt.Format(time.RFC3339),
	})
}

// loadParticipantForOrganizer resolves :participant_id and authorizes the trip
// organizer (or an admin). Writes the error response itself on failure.
func loadParticipantForOrganizer(c *gin.Context) (uint32, error) {
	id, err := strconv.Atoi(c.Param("participant_id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid participant id")
		return 0, err
	}

	var participant models.Participant
	if err := database.DB.First(&participant, id).Error; err != nil {
		utils.Error(c, 4004, "Participant not found")
		return 0, err
	}

	var trip models.Trip
	if err := database.DB.First(&trip, participant.TripID).Error; err != nil {
		utils.Error(c, 4004, "Trip not found")
		return 0, err
	}

	userIDAny, _ := c.Get("user_id")
	roleAny, _ := c.Get("user_role")
	if trip.OrganizerID != userIDAny.(uint32) && roleAny.(models.UserRole) != models.RoleAdmin {
		utils.Error(c, 4003, "Permission denied: not the trip organizer")
		return 0, errors.New("permission denied")
	}
	return participant.ID, nil
}
