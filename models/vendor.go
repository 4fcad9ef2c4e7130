// file: models/vendor.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type VendorCategory string
type VendorStatus string

const (
	VendorCategoryTransport     VendorCategory = "transport"
	VendorCategoryAccommodation VendorCategory = "accommodation"
	VendorCategoryCatering      VendorCategory = "catering"
	VendorCategoryActivity      VendorCategory = "activity"

	VendorStatusActive    VendorStatus = "active"
	VendorStatusSuspended VendorStatus = "suspended"
)

type Vendor struct {
	ID           uint32         `gorm:"primarykey" json:"id"`
	UserID       uint32         `gorm:"unique;not null" json:"user_id"`
	User         User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CompanyName  string         `gorm:"size:100;not null" json:"company_name"`
	Category     VendorCategory `gorm:"size:30;not null" json:"category"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	ContactEmail string         `gorm:"size:100" json:"contact_email,omitempty"`
	ContactPhone string         `gorm:"size:20" json:"contact_phone,omitempty"`
	Status       VendorStatus   `gorm:"size:30;not null;default:'active'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Vendor) TableName() string {
	return "edusafaris_vendor"
}
