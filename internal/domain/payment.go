package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment records a payment attempt tied one-to-one to a booking. There is no
// gateway integration; the row is created pending alongside the booking and
// settled by the confirm step.
type Payment struct {
	ID          int
	BookingID   int
	Amount      decimal.Decimal
	Method      PaymentMethod
	Status      PaymentStatus
	PaymentDate *time.Time
	CreatedAt   time.Time
}
