package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusSent     NotificationStatus = "sent"
	NotificationStatusFailed   NotificationStatus = "failed"
	NotificationStatusRetrying NotificationStatus = "retrying"
)

type NotificationKind string

const (
	NotificationKindBooking     NotificationKind = "booking"
	NotificationKindInfoRequest NotificationKind = "info_request"
)

// Notification tracks one outbound mail job.
type Notification struct {
	ID         uuid.UUID          `json:"id"`
	Kind       NotificationKind   `json:"kind"`
	Recipient  string             `json:"recipient"`
	Status     NotificationStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	LastError  string             `json:"last_error,omitempty"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// BookingRequest is the booking form.
type BookingRequest struct {
	Service int    `json:"service" form:"service" binding:"required,gt=0"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Name    string `json:"name" form:"name" binding:"required"`
	Surname string `json:"surname" form:"surname" binding:"required"`
	Date    string `json:"date" form:"date" binding:"required"`
}

// InfoRequest is the general information form.
type InfoRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
	Text  string `json:"text" form:"text" binding:"required"`
}
