// file: controllers/user_controller.go
package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
	"github.com/stansam/EduSafaris-sub001/services"
	"github.com/stansam/EduSafaris-sub001/utils"
)

// --- Public endpoints ---

func Register(c *gin.Context) {
	var req struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=8"`
		Phone     string `json:"phone"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Email is already registered")
		return
	}

	// Self-service signup only hands out non-privileged roles; admin accounts
	// are promoted through the admin endpoint.
	role := models.RoleParent
	switch models.UserRole(req.Role) {
	case models.RoleTeacher:
		role = models.RoleTeacher
	case models.RoleVendor:
		role = models.RoleVendor
	}

	newUser := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Role:      role,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":    newUser.ID,
		"email": newUser.Email,
		"role":  newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	if !services.AllowRequest("login", req.Email, 10, time.Minute) {
		utils.Error(c, 4290, "Too many login attempts, try again later")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, 2002, "User not found or password incorrect")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "User not found or password incorrect")
		return
	}
	if user.Status != models.UserStatusActive {
		utils.Error(c, 2004, "Account is deactivated")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5000, "Failed to issue token")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":         user.ID,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"role":       user.Role,
		},
	})
}

// ForgotPassword mails a short-lived reset code. Rate limited per email so the
// mailbox cannot be flooded.
func ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	if !services.AllowRequest("forgot_password", req.Email, 3, 10*time.Minute) {
		utils.Error(c, 4290, "Too many reset requests, try again later")
		return
	}
	if database.RDB == nil {
		utils.Error(c, 5000, "Reset service unavailable")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Do not reveal whether the address exists.
		utils.Success(c, "If the address is registered, a reset code has been sent", nil)
		return
	}

	code := utils.GenerateVerificationCode(6)
	database.RDB.Set(database.Ctx, fmt.Sprintf("pwreset:%s", req.Email), code, 3*time.Minute)
	if err := utils.SendEmail(user.Email, "Password reset code",
		fmt.Sprintf("Your password reset code is: %s\nIt expires in 3 minutes.", code)); err != nil {
		utils.Error(c, 5002, "Failed to send reset email")
		return
	}

	utils.Success(c, "If the address is registered, a reset code has been sent", nil)
}

func ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	if database.RDB == nil {
		utils.Error(c, 5000, "Reset service unavailable")
		return
	}
	key := fmt.Sprintf("pwreset:%s", req.Email)
	stored, err := database.RDB.Get(database.Ctx, key).Result()
	if err != nil || stored != req.Code {
		utils.Error(c, 2005, "Invalid or expired reset code")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, 2002, "User not found")
		return
	}
	if err := services.ChangeUserPassword(user.ID, req.NewPassword); err != nil {
		utils.Error(c, 5000, "Failed to update password")
		return
	}
	database.RDB.Del(database.Ctx, key)

	utils.Success(c, "Password reset successfully", nil)
}

// --- Authenticated endpoints ---

// SendVerificationEmail mails a short-lived code to the caller's own address.
func SendVerificationEmail(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}
	if user.IsVerified {
		utils.Error(c, 2003, "Email is already verified")
		return
	}
	if !services.AllowRequest("verify_email", user.Email, 3, 10*time.Minute) {
		utils.Error(c, 4290, "Too many verification requests, try again later")
		return
	}
	if database.RDB == nil {
		utils.Error(c, 5000, "Verification service unavailable")
		return
	}

	code := utils.GenerateVerificationCode(6)
	database.RDB.Set(database.Ctx, fmt.Sprintf("verify:%s", user.Email), code, 10*time.Minute)
	if err := utils.SendEmail(user.Email, "Verify your email",
		fmt.Sprintf("Your verification code is: %s\nIt expires in 10 minutes.", code)); err != nil {
		utils.Error(c, 5002, "Failed to send verification email")
		return
	}
	utils.Success(c, "Verification code sent", nil)
}

func VerifyEmail(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}
	if database.RDB == nil {
		utils.Error(c, 5000, "Verification service unavailable")
		return
	}

	key := fmt.Sprintf("verify:%s", user.Email)
	stored, err := database.RDB.Get(database.Ctx, key).Result()
	if err != nil || stored != req.Code {
		utils.Error(c, 2005, "Invalid or expired verification code")
		return
	}
	if err := database.DB.Model(&user).Update("is_verified", true).Error; err != nil {
		utils.Error(c, 5000, "Failed to verify email")
		return
	}
	database.RDB.Del(database.Ctx, key)

	utils.Success(c, "Email verified successfully", nil)
}

func GetUserDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	requesterIDAny, _ := c.Get("user_id")
	requesterID := requesterIDAny.(uint32)
	roleAny, _ := c.Get("user_role")
	role := roleAny.(models.UserRole)

	if uint32(id) != requesterID && role != models.RoleAdmin {
		utils.Error(c, 4003, "Permission denied")
		return
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}
	utils.Success(c, "success", user)
}

func UpdateProfile(c *gin.Context) {
	userIDAny, _ := c.Get("user_id")
	userID := userIDAny.(uint32)

	var req struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, 4004, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.Error(c, 5000, "Failed to update profile")
			return
		}
	}
	utils.Success(c, "Profile updated successfully", nil)
}

// --- Admin endpoints ---

func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		db = db.Where("role = ?", models.UserRole(role))
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", models.UserStatus(status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		utils.Error(c, 5000, "Query failed: "+err.Error())
		return
	}
	var users []models.User
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		utils.Error(c, 5000, "Query failed: "+err.Error())
		return
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"page":  page,
		"limit": limit,
		"users": users,
	})
}

// UpdateUserStatus deactivates or reactivates an account. Users are never
// hard-deleted.
func UpdateUserStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	status := models.UserStatus(req.Status)
	if status != models.UserStatusActive && status != models.UserStatusInactive {
		utils.Error(c, 1001, "status must be active or inactive")
		return
	}

	res := database.DB.Model(&models.User{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		utils.Error(c, 5000, "Failed to update user status")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, 4004, "User not found")
		return
	}
	utils.Success(c, "User status updated successfully", nil)
}

func UpdateUserRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	role := models.UserRole(req.Role)
	switch role {
	case models.RoleAdmin, models.RoleTeacher, models.RoleParent, models.RoleVendor:
	default:
		utils.Error(c, 1001, "Invalid role")
		return
	}

	res := database.DB.Model(&models.User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		utils.Error(c, 5000, "Failed to update user role")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, 4004, "User not found")
		return
	}
	utils.Success(c, "User role updated successfully", nil)
}
