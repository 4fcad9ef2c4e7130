// file: dto/finance.go
package dto

import "strings"

type RecordPaymentReq struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Method string  `json:"method"`
	Note   string  `json:"note"`
}

func (r *RecordPaymentReq) Normalize() {
	r.Method = strings.ToLower(strings.TrimSpace(r.Method))
	if r.Method == "" {
		r.Method = "card"
	}
}

type CreateBookingReq struct {
	VendorID     uint32  `json:"vendor_id" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Details      string  `json:"details"`
	QuotedAmount float64 `json:"quoted_amount"`
}

type UpdateBookingStatusReq struct {
	Status      string   `json:"status" binding:"required"`
	FinalAmount *float64 `json:"final_amount"`
}

type CreateVendorReq struct {
	CompanyName  string `json:"company_name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}
