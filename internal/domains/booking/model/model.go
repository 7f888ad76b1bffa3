package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"hallbook/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldHallID           = "hall_id"
	FieldCustomerName     = "customer_name"
	FieldCustomerPhone    = "customer_phone"
	FieldCustomerEmail    = "customer_email"
	FieldCustomerAddress  = "customer_address"
	FieldEventDate        = "event_date"
	FieldEventType        = "event_type"
	FieldTimeSlot         = "time_slot"
	FieldGuestCount       = "guest_count"
	FieldBaseAmount       = "base_amount"
	FieldDiscount         = "discount"
	FieldStatus           = "status"
	FieldBillingDetails   = "billing_details"
	FieldHandover         = "handover"
	FieldLastContactDate  = "last_contact_date"
	FieldCustomerResponse = "customer_response"
	FieldActive           = "active"
	FieldCreatedBy        = "created_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	SlotMorning = "morning"
	SlotEvening = "evening"
	SlotFullday = "fullday"
)

// BillingDetails is the optional invoice head entered per booking,
// stored as jsonb.
type BillingDetails struct {
	Name      string `json:"name,omitempty"`
	Address   string `json:"address,omitempty"`
	GSTNumber string `json:"gst_number,omitempty"`
}

func (b BillingDetails) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BillingDetails) Scan(src any) error {
	if src == nil {
		*b = BillingDetails{}

		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		return errors.New("billing details: unsupported scan source")
	}

	return json.Unmarshal(data, b)
}

// Handover records the hall hand-over at event start, stored as jsonb.
// A zero Date means no hand-over has happened yet.
type Handover struct {
	Person        string  `json:"person,omitempty"`
	MeterReading  float64 `json:"meter_reading,omitempty"`
	AdvanceAmount float64 `json:"advance_amount,omitempty"`
	Date          string  `json:"date,omitempty"`
}

func (h Handover) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *Handover) Scan(src any) error {
	if src == nil {
		*h = Handover{}

		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		return errors.New("handover: unsupported scan source")
	}

	return json.Unmarshal(data, h)
}

type Booking struct {
	ID               string         `db:"id"`
	HallID           string         `db:"hall_id"`
	HallName         string         `db:"hall_name"        table:"halls" column:"name"`
	CustomerName     string         `db:"customer_name"`
	CustomerPhone    string         `db:"customer_phone"`
	CustomerEmail    string         `db:"customer_email"`
	CustomerAddress  string         `db:"customer_address"`
	EventDate        time.Time      `db:"event_date"`
	EventType        string         `db:"event_type"`
	TimeSlot         string         `db:"time_slot"`
	GuestCount       int            `db:"guest_count"`
	BaseAmount       float64        `db:"base_amount"`
	Discount         float64        `db:"discount"`
	Status           string         `db:"status"`
	BillingDetails   BillingDetails `db:"billing_details"`
	Handover         Handover       `db:"handover"`
	LastContactDate  *time.Time     `db:"last_contact_date"`
	CustomerResponse string         `db:"customer_response"`
	Active           bool           `db:"active"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN halls ON halls.id = bookings.hall_id"
}
