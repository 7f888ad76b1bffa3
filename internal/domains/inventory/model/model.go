package model

import "hallbook/shared/model"

const (
	TableName  = "booking_inventory"
	EntityName = "inventory"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldName      = "name"
	FieldPrice     = "price"
	FieldQuantity  = "quantity"
	FieldNotes     = "notes"
)

type Inventory struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Name      string  `db:"name"`
	Price     float64 `db:"price"`
	Quantity  int     `db:"quantity"`
	Notes     string  `db:"notes"`
	model.Metadata
}
