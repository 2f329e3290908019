package model

import (
	"time"

	"github.com/muhammadheryan/hoardspace/constant"
)

// BookingEntity represents the booking table entity
type BookingEntity struct {
	ID          uint64                 `db:"id" json:"id"`
	HoardingID  uint64                 `db:"hoarding_id" json:"hoarding"`
	UserID      uint64                 `db:"user_id" json:"user"`
	StartDate   time.Time              `db:"start_date" json:"startDate"`
	EndDate     time.Time              `db:"end_date" json:"endDate"`
	TotalAmount float64                `db:"total_amount" json:"totalAmount"`
	Status      constant.BookingStatus `db:"status" json:"status"`
	OrderID     string                 `db:"order_id" json:"orderId"`
	PaymentID   string                 `db:"payment_id" json:"paymentId,omitempty"`
	ExpiresAt   time.Time              `db:"expires_at" json:"expiresAt"`
	CreatedAt   time.Time              `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time             `db:"updated_at" json:"updatedAt,omitempty"`
}

type CheckoutRequest struct {
	HoardingID uint64 `json:"hoardingId" validate:"required"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
}

type CheckoutResponse struct {
	OrderID   string `json:"orderId"`
	BookingID uint64 `json:"bookingId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	KeyID     string `json:"keyId,omitempty"`
}

// VerifyPaymentRequest mirrors the fields the gateway's checkout widget hands back.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	BookingID uint64 `json:"bookingId"`
}

// GatewayOrder is an order opened with the payment gateway.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// Quote is the priced result for a date range.
type Quote struct {
	Days   int64
	Amount float64
}
