// file: models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRole string
type UserStatus string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleParent  UserRole = "parent"
	RoleVendor  UserRole = "vendor"

	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	ID         uint32     `gorm:"primarykey" json:"id"`
	FirstName  string     `gorm:"size:50;not null" json:"first_name"`
	LastName   string     `gorm:"size:50;not null" json:"last_name"`
	Email      string     `gorm:"size:100;unique;not null" json:"email"`
	Password   string     `gorm:"size:255;not null" json:"-"`
	Phone      string     `gorm:"size:20" json:"phone,omitempty"`
	Role       UserRole   `gorm:"size:30;not null;default:'parent'" json:"role"`
	Status     UserStatus `gorm:"size:30;not null;default:'active'" json:"status"`
	IsVerified bool       `gorm:"default:0" json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "edusafaris_user"
}

// BeforeSave hashes the password on create and whenever it changes.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
