package model

import "hallbook/shared/model"

const (
	TableName  = "hall_reviews"
	EntityName = "review"

	FieldID       = "id"
	FieldHallID   = "hall_id"
	FieldAuthor   = "author"
	FieldRating   = "rating"
	FieldText     = "text"
	FieldApproved = "approved"
)

// Review is a storefront review. It stays hidden until an admin
// approves it.
type Review struct {
	ID       string `db:"id"`
	HallID   string `db:"hall_id"`
	Author   string `db:"author"`
	Rating   int    `db:"rating"`
	Text     string `db:"text"`
	Approved bool   `db:"approved"`
	model.Metadata
}
