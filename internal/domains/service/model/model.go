package model

import "hallbook/shared/model"

const (
	TableName  = "booking_services"
	EntityName = "service"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldName      = "name"
	FieldPrice     = "price"
	FieldDirectPay = "direct_pay"
	FieldNotes     = "notes"
)

// Service is a third-party arrangement attached to a booking. A
// direct-pay service is settled by the customer with the supplier and
// never enters the bill.
type Service struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	DirectPay bool    `db:"direct_pay"`
	Notes     string  `db:"notes"`
	model.Metadata
}
