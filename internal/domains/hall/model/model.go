package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"hallbook/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "halls"
	EntityName = "hall"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldName           = "name"
	FieldCapacity       = "capacity"
	FieldLocation       = "location"
	FieldAddress        = "address"
	FieldDescription    = "description"
	FieldRateMorning    = "rate_morning"
	FieldRateEvening    = "rate_evening"
	FieldRateFullday    = "rate_fullday"
	FieldFeatures       = "features"
	FieldImages         = "images"
	FieldActive         = "active"
)

// CatalogFeature is one row of the hall's master feature catalog,
// offered to bookings as an optional extra.
type CatalogFeature struct {
	Name   string  `json:"name"`
	Charge float64 `json:"charge"`
}

// FeatureCatalog is stored as a jsonb column.
type FeatureCatalog []CatalogFeature

func (f FeatureCatalog) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *FeatureCatalog) Scan(src any) error {
	if src == nil {
		*f = nil

		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		return errors.New("feature catalog: unsupported scan source")
	}

	return json.Unmarshal(data, f)
}

type Hall struct {
	ID             string         `db:"id"`
	OrganizationID string         `db:"organization_id"`
	Name           string         `db:"name"`
	Capacity       int            `db:"capacity"`
	Location       string         `db:"location"`
	Address        string         `db:"address"`
	Description    string         `db:"description"`
	RateMorning    float64        `db:"rate_morning"`
	RateEvening    float64        `db:"rate_evening"`
	RateFullday    float64        `db:"rate_fullday"`
	Features       FeatureCatalog `db:"features"`
	Images         pq.StringArray `db:"images"`
	Active         bool           `db:"active"`
	model.Metadata
}
