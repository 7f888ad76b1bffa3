package model

import "hallbook/shared/model"

const (
	TableName  = "organizations"
	EntityName = "organization"

	FieldID            = "id"
	FieldName          = "name"
	FieldContactPerson = "contact_person"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldAddress       = "address"
	FieldActive        = "active"
)

type Organization struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	ContactPerson string `db:"contact_person"`
	Phone         string `db:"phone"`
	Email         string `db:"email"`
	Address       string `db:"address"`
	Active        bool   `db:"active"`
	model.Metadata
}
