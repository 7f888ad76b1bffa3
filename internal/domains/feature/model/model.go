package model

import "hallbook/shared/model"

const (
	TableName  = "booking_features"
	EntityName = "feature"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldName      = "name"
	FieldPrice     = "price"
	FieldQuantity  = "quantity"
)

type Feature struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
	model.Metadata
}
