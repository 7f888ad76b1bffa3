package model

import "hallbook/shared/model"

const (
	TableName  = "microsite_sections"
	EntityName = "microsite section"

	FieldID       = "id"
	FieldHallID   = "hall_id"
	FieldKind     = "kind"
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldPosition = "position"
)

// Section is one block of a hall's microsite page. Positions are
// dense per hall, 0 through n-1.
type Section struct {
	ID       string `db:"id"`
	HallID   string `db:"hall_id"`
	Kind     string `db:"kind"`
	Title    string `db:"title"`
	Body     string `db:"body"`
	Position int    `db:"position"`
	model.Metadata
}
