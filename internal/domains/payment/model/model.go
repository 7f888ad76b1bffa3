package model

import (
	"time"

	"hallbook/shared/model"
)

const (
	TableName  = "booking_payments"
	EntityName = "payment"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldPaymentDate = "payment_date"
	FieldMode        = "mode"
	FieldAmount      = "amount"
	FieldPerson      = "person"
	FieldNotes       = "notes"
)

const (
	ModeCash         = "cash"
	ModeCard         = "card"
	ModeUPI          = "upi"
	ModeBankTransfer = "banktransfer"
)

type Payment struct {
	ID          string    `db:"id"`
	BookingID   string    `db:"booking_id"`
	PaymentDate time.Time `db:"payment_date"`
	Mode        string    `db:"mode"`
	Amount      float64   `db:"amount"`
	Person      string    `db:"person"`
	Notes       string    `db:"notes"`
	model.Metadata
}
