// file: controllers/booking_controller.go
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

// CreateBooking requests a service from a vendor for a trip. Organizer only.
func CreateBooking(c *gin.Context) {
	trip, ok := requireTripOrganizer(c)
	if !ok {
		return
	}

	var req dto.CreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	if !validVendorCategory(req.Category) {
		utils.Error(c, 1001, "Invalid booking category")
		return
	}

	var vendor models.Vendor
	if err := database.DB.First(&vendor, req.VendorID).Error; err != nil {
		utils.Error(c, 4004, "Vendor not found")
		return
	}
	if vendor.Status != models.VendorStatusActive {
		utils.Error(c, 3008, "Vendor is suspended")
		return
	}

	booking := models.Booking{
		TripID:       trip.ID,
		VendorID:     vendor.ID,
		Category:     models.VendorCategory(req.Category),
		Details:      req.Details,
		QuotedAmount: req.QuotedAmount,
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		utils.Error(c, 5000, "Failed to create booking: "+err.Error())
		return
	}
	utils.Success(c, "Booking created successfully", gin.H{"id": booking.ID, "status": booking.Status})
}

// ListTripBookings returns a trip's bookings for its organizer.
func ListTripBookings(c *gin.Context) {
	trip, ok := requireTripOrganizer(c)
	if !ok {
		return
	}

	var bookings []models.Booking
	if err := database.DB.Preload("Vendor").
		Where("trip_id = ?", trip.ID).
		Order("created_at ASC").Find(&bookings).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}
	utils.Success(c, "success", bookings)
}

// UpdateBookingStatus moves a booking through its lifecycle. The vendor on
// the booking quotes; the organizer (or admin) confirms, completes, cancels.
func UpdateBookingStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req dto.UpdateBookingStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	next := models.BookingStatus(req.Status)
	switch next {
	case models.BookingStatusQuoted, models.BookingStatusConfirmed,
		models.BookingStatusCompleted, models.BookingStatusCancelled:
	default:
		utils.Error(c, 1001, "Invalid booking status")
		return
	}

	var booking models.Booking
	if err := database.DB.Preload("Vendor").First(&booking, id).Error; err != nil {
		utils.Error(c, 4004, "Booking not found")
		return
	}

	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)
	roleAny, _ := c.Get("user_role")
	role := roleAny.(models.UserRole)

	allowed := role == models.RoleAdmin
	if !allowed && next == models.BookingStatusQuoted {
		allowed = booking.Vendor.UserID == userID
	}
	if !allowed {
		var trip models.Trip
		if err := database.DB.First(&trip, booking.TripID).Error; err == nil {
			allowed = trip.OrganizerID == userID
		}
	}
	if !allowed {
		utils.Error(c, 4003, "Permission denied")
		return
	}

	result, svcErr := services.TransitionBooking(booking.ID, next, req.FinalAmount)
	if svcErr != nil {
		utils.Error(c, stateErrorCode(svcErr), svcErr.Error())
		return
	}

	services.InvalidateRevenueCache(booking.TripID)
	utils.Success(c, "Booking status updated successfully", gin.H{
		"id":     result.ID,
		"status": result.Status,
	})
}
