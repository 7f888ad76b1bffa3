package model

import (
	"time"

	"hallbook/shared/model"
)

const (
	TableName  = "booking_communications"
	EntityName = "communication"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldSentAt    = "sent_at"
	FieldSender    = "sender"
	FieldRecipient = "recipient"
	FieldDetail    = "detail"
)

// Communication is one entry of a booking's append-only contact log.
type Communication struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	SentAt    time.Time `db:"sent_at"`
	Sender    string    `db:"sender"`
	Recipient string    `db:"recipient"`
	Detail    string    `db:"detail"`
	model.Metadata
}
