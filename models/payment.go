// file: models/payment.go
package models

import (
	"time"
)

type PaymentMethod string
type PaymentState string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodCash   PaymentMethod = "cash"

	PaymentStateCompleted PaymentState = "completed"
	PaymentStateRefunded  PaymentState = "refunded"
)

// Payment is a monetary transaction against a participant (guardian paying
// for a trip place) or against a vendor booking (trip paying a vendor).
type Payment struct {
	ID            uint64        `gorm:"primarykey" json:"id"`
	Reference     string        `gorm:"size:36;unique;not null" json:"reference"`
	ParticipantID *uint32       `gorm:"index" json:"participant_id,omitempty"`
	BookingID     *uint32       `gorm:"index" json:"booking_id,omitempty"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Method        PaymentMethod `gorm:"size:30;not null;default:'card'" json:"method"`
	State         PaymentState  `gorm:"size:30;not null;default:'completed'" json:"state"`
	RecordedByID  uint32        `gorm:"not null" json:"recorded_by_id"`
	Note          string        `gorm:"size:255" json:"note,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

func (Payment) TableName() string {
	return "edusafaris_payment"
}
