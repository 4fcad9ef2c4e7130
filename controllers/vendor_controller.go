// file: controllers/vendor_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/dto"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/utils"
)

func validVendorCategory(s string) bool {
	switch models.VendorCategory(s) {
	case models.VendorCategoryTransport, models.VendorCategoryAccommodation,
		models.VendorCategoryCatering, models.VendorCategoryActivity:
		return true
	}
	return false
}

// CreateVendorProfile attaches a vendor profile to the calling vendor-role
// user. One profile per user.
func CreateVendorProfile(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	var req dto.CreateVendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	if !validVendorCategory(req.Category) {
		utils.Error(c, 1001, "Invalid vendor category")
		return
	}

	var existing models.Vendor
	if err := database.DB.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		utils.Error(c, 2006, "Vendor profile already exists")
		return
	}

	vendor := models.Vendor{
		UserID:       userID,
		CompanyName:  req.CompanyName,
		Category:     models.VendorCategory(req.Category),
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
	}
	if err := database.DB.Create(&vendor).Error; err != nil {
		utils.Error(c, 5000, "Failed to create vendor profile: "+err.Error())
		return
	}
	utils.Success(c, "Vendor profile created successfully", gin.H{"id": vendor.ID})
}

// ListVendors is the organizer-facing directory of active vendors.
func ListVendors(c *gin.Context) {
	db := database.DB.Model(&models.Vendor{}).Where("status = ?", models.VendorStatusActive)
	if cat := c.Query("category"); cat != "" {
		db = db.Where("category = ?", models.VendorCategory(cat))
	}

	var vendors []models.Vendor
	if err := db.Order("company_name ASC").Find(&vendors).Error; err != nil {
		utils.Error(c, 5000, "Query failed")
		return
	}
	utils.Success(c, "success", vendors)
}

// UpdateVendorStatus lets an admin suspend or reinstate a vendor.
func UpdateVendorStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	status := models.VendorStatus(req.Status)
	if status != models.VendorStatusActive && status != models.VendorStatusSuspended {
		utils.Error(c, 1001, "status must be active or suspended")
		return
	}

	res := database.DB.Model(&models.Vendor{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		utils.Error(c, 5000, "Failed to update vendor status")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, 4004, "Vendor not found")
		return
	}
	utils.Success(c, "Vendor status updated successfully", nil)
}
