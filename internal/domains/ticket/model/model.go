package model

import "hallbook/shared/model"

const (
	TableName  = "booking_tickets"
	EntityName = "ticket"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldTitle     = "title"
	FieldDetail    = "detail"
	FieldStatus    = "status"
	FieldAssignee  = "assignee"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Ticket struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	Title     string `db:"title"`
	Detail    string `db:"detail"`
	Status    string `db:"status"`
	Assignee  string `db:"assignee"`
	model.Metadata
}
