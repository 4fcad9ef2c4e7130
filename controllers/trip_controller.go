// file: controllers/trip_controller.go
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

// stateErrorCode maps named workflow errors to envelope codes so the client
// can tell a full trip from a closed one.
func stateErrorCode(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidStateTransition):
		return 3001
	case errors.Is(err, services.ErrTripFull):
		return 3002
	case errors.Is(err, services.ErrRegistrationClosed):
		return 3003
	case errors.Is(err, services.ErrDeadlinePassed):
		return 3004
	case errors.Is(err, services.ErrConsentAlreadySigned):
		return 3005
	case errors.Is(err, services.ErrSignatureRequired):
		return 1003
	case errors.Is(err, services.ErrParticipantNotReady):
		return 3006
	case errors.Is(err, services.ErrMinParticipantsNotMet):
		return 3007
	case errors.Is(err, services.ErrNotFound):
		return 4004
	default:
		return 5000
	}
}

// requireTripOrganizer loads the trip and rejects the request before any
// mutation unless the caller owns it or is an admin.
func requireTripOrganizer(c *gin.Context) (*models.Trip, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid trip id")
		return nil, false
	}

	var trip models.Trip
	if err := database.DB.First(&trip, id).Error; err != nil {
		utils.Error(c, 4004, "Trip not found")
		return nil, false
	}

	userIDAny, _ := c.Get("user_id")
	roleAny, _ := c.Get("user_role")
	if trip.OrganizerID != userIDAny.(uint32) && roleAny.(models.UserRole) != models.RoleAdmin {
		utils.Error(c, 4003, "Permission denied: not the trip organizer")
		return nil, false
	}
	return &trip, true
}

// --- Teacher endpoints ---

func CreateTrip(c *gin.Context) {
	var req dto.CreateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	userIDAny, _ := c.Get("user_id")
	trip := mappers.MapCreateReqToTrip(req, userIDAny.(uint32))

	fieldErrs, err := services.CreateTrip(&trip)
	if err != nil {
		utils.Error(c, 5000, "Failed to create trip: "+err.Error())
		return
	}
	if fieldErrs != nil {
		utils.ValidationError(c, 1002, "Trip validation failed", fieldErrs)
		return
	}

	services.LogActivity(trip.OrganizerID, "trip_created", "trip", trip.ID, trip.Title, c.ClientIP())
	utils.Success(c, "Trip created successfully", gin.H{"id": trip.ID, "status": trip.Status})
}

func UpdateTrip(c *gin.Context) {
	trip, ok := requireTripOrganizer(c)
	if !ok {
		return
	}

	var req dto.UpdateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Destination != nil {
		updates["destination"] = *req.Destination
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}
	if req.RegistrationDeadline != nil {
		updates["registration_deadline"] = *req.RegistrationDeadline
	}
	if req.PricePerStudent != nil {
		updates["price_per_student"] = *req.PricePerStudent
	}
	if req.MinParticipants != nil {
		updates["min_participants"] = *req.MinParticipants
	}
	if req.MaxParticipants != nil {
		updates["max_participants"] = *req.MaxParticipants
	}
	if req.Itinerary != nil {
		updates["itinerary"] = *req.Itinerary
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.MedicalInfoRequired != nil {
		updates["medical_info_required"] = *req.MedicalInfoRequired
	}
	if req.ConsentRequired != nil {
		updates["consent_required"] = *req.ConsentRequired
	}

	fieldErrs, err := services.UpdateDraftTrip(trip, updates)
	if err != nil {
		utils.Error(c, stateErrorCode(err), "Only draft trips can be edited")
		return
	}
	if fieldErrs != nil {
		utils.ValidationError(c, 1002, "Trip validation failed", fieldErrs)
		return
	}
	utils.Success(c, "Trip updated successfully", nil)
}

// transitionHandler builds the endpoint for one lifecycle action.
func transitionHandler(next models.TripStatus, okMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		trip, ok := requireTripOrganizer(c)
		if !ok {
			return
		}

		var reason string
		if next == models.TripStatusCancelled {
			var req dto.CancelTripReq
			// Body is optional on cancel.
			_ = c.ShouldBindJSON(&req)
			reason = req.Reason
		}

		result, err := services.TransitionTrip(trip.ID, next, reason)
		if err != nil {
			utils.Error(c, stateErrorCode(err), err.Error())
			return
		}

		userIDAny, _ := c.Get("user_id")
		services.LogActivity(userIDAny.(uint32), "trip_"+string(next), "trip", trip.ID, reason, c.ClientIP())

		count, _ := services.CurrentParticipantCount(result.ID)
		utils.Success(c, okMsg, mappers.MapTripToDetailResp(*result, count))
	}
}

var (
	PublishTrip       = transitionHandler(models.TripStatusPublished, "Trip published successfully")
	OpenRegistration  = transitionHandler(models.TripStatusRegistrationOpen, "Registration opened successfully")
	CloseRegistration = transitionHandler(models.TripStatusRegistrationClosed, "Registration closed successfully")
	StartTrip         = transitionHandler(models.TripStatusInProgress, "Trip started successfully")
	CompleteTrip      = transitionHandler(models.TripStatusCompleted, "Trip completed successfully")
	CancelTrip        = transitionHandler(models.TripStatusCancelled, "Trip cancelled successfully")
)

// --- Public endpoints ---

func ListTrips(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.DB.Model(&models.Trip{})

	// Anonymous and parent callers only see published trips onwards; a teacher
	// additionally sees their own drafts.
	publicStatuses := []models.TripStatus{
		models.TripStatusPublished, models.TripStatusRegistrationOpen,
		models.TripStatusRegistrationClosed, models.TripStatusInProgress,
		models.TripStatusCompleted,
	}
	userIDAny, authed := c.Get("user_id")
	roleAny, _ := c.Get("user_role")
	switch {
	case authed && roleAny.(models.UserRole) == models.RoleAdmin:
		// admins see everything
	case authed && roleAny.(models.UserRole) == models.RoleTeacher:
		db = db.Where("status IN ? OR organizer_id = ?", publicStatuses, userIDAny.(uint32))
	default:
		db = db.Where("status IN ?", publicStatuses)
	}

	if dest := c.Query("destination"); dest != "" {
		db = db.Where("destination LIKE ?", "%"+dest+"%")
	}
	if c.Query("featured") == "true" {
		db = db.Where("is_featured = ?", true)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", models.TripStatus(status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		utils.Error(c, 5000, "Query failed: "+err.Error())
		return
	}
	var trips []models.Trip
	if err := db.Order("start_date ASC").Offset(offset).Limit(limit).Find(&trips).Error; err != nil {
		utils.Error(c, 5000, "Query failed: "+err.Error())
		return
	}

	items := make([]dto.TripItemResp, 0, len(trips))
	for i := range trips {
		services.SweepRegistrationDeadline(&trips[i], time.Now())
		count, _ := services.CurrentParticipantCount(trips[i].ID)
		items = append(items, mappers.MapTripToItemResp(trips[i], count))
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"page":  page,
		"limit": limit,
		"trips": items,
	})
}

func GetTripDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var trip models.Trip
	if err := database.DB.Preload("Organizer").First(&trip, id).Error; err != nil {
		utils.Error(c, 4004, "Trip not found")
		return
	}

	if trip.Status == models.TripStatusDraft {
		userIDAny, authed := c.Get("user_id")
		roleAny, _ := c.Get("user_role")
		if !authed || (trip.OrganizerID != userIDAny.(uint32) && roleAny.(models.UserRole) != models.RoleAdmin) {
			utils.Error(c, 4004, "Trip not found")
			return
		}
	}

	services.SweepRegistrationDeadline(&trip, time.Now())
	count, _ := services.CurrentParticipantCount(trip.ID)
	utils.Success(c, "success", mappers.MapTripToDetailResp(trip, count))
}
