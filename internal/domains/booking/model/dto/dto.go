package dto

import (
	"time"

	"hallbook/internal/domains/booking/charge"
	"hallbook/internal/domains/booking/model"
	communicationDto "hallbook/internal/domains/communication/model/dto"
	featureDto "hallbook/internal/domains/feature/model/dto"
	hallDto "hallbook/internal/domains/hall/model/dto"
	inventoryDto "hallbook/internal/domains/inventory/model/dto"
	paymentDto "hallbook/internal/domains/payment/model/dto"
	serviceDto "hallbook/internal/domains/service/model/dto"
	ticketDto "hallbook/internal/domains/ticket/model/dto"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HallID           string   `json:"hall_id"           validate:"required"`
	CustomerName     string   `json:"customer_name"     validate:"required,max=100"`
	CustomerPhone    string   `json:"customer_phone"    validate:"omitempty,max=20"`
	CustomerEmail    string   `json:"customer_email"    validate:"omitempty,email,max=100"`
	CustomerAddress  string   `json:"customer_address"  validate:"omitempty"`
	EventDate        string   `json:"event_date"        validate:"required"`
	EventType        string   `json:"event_type"        validate:"omitempty,max=100"`
	TimeSlot         string   `json:"time_slot"         validate:"required,oneof=morning evening fullday"`
	GuestCount       *int     `json:"guest_count"       validate:"omitempty,gte=0"`
	BaseAmount       *float64 `json:"base_amount"       validate:"omitempty"`
	Discount         *float64 `json:"discount"          validate:"omitempty,gte=0"`
	Status           string   `json:"status"            validate:"omitempty,oneof=pending confirmed active completed cancelled"`
	CustomerResponse string   `json:"customer_response" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	eventDate, err := time.Parse(constant.DateOnlyFormat, c.EventDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:               uuid.NewString(),
		HallID:           c.HallID,
		CustomerName:     c.CustomerName,
		CustomerPhone:    c.CustomerPhone,
		CustomerEmail:    c.CustomerEmail,
		CustomerAddress:  c.CustomerAddress,
		EventDate:        eventDate,
		EventType:        c.EventType,
		TimeSlot:         c.TimeSlot,
		GuestCount:       num.IntOrZero(c.GuestCount),
		BaseAmount:       num.OrZero(c.BaseAmount),
		Discount:         num.OrZero(c.Discount),
		Status:           status,
		CustomerResponse: c.CustomerResponse,
		Active:           true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// PublicCreateBookingRequest is the storefront form. It never carries
// a status or amounts; the booking lands pending and the base amount
// comes from the hall rate card.
type PublicCreateBookingRequest struct {
	HallID          string `json:"hall_id"          validate:"required"`
	CustomerName    string `json:"customer_name"    validate:"required,max=100"`
	CustomerPhone   string `json:"customer_phone"   validate:"omitempty,max=20"`
	CustomerEmail   string `json:"customer_email"   validate:"omitempty,email,max=100"`
	CustomerAddress string `json:"customer_address" validate:"omitempty"`
	EventDate       string `json:"event_date"       validate:"required"`
	EventType       string `json:"event_type"       validate:"omitempty,max=100"`
	TimeSlot        string `json:"time_slot"        validate:"required,oneof=morning evening fullday"`
	GuestCount      *int   `json:"guest_count"      validate:"omitempty,gte=0"`
}

func (c *PublicCreateBookingRequest) ToModel(baseAmount float64) (model.Booking, error) {
	eventDate, err := time.Parse(constant.DateOnlyFormat, c.EventDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:              uuid.NewString(),
		HallID:          c.HallID,
		CustomerName:    c.CustomerName,
		CustomerPhone:   c.CustomerPhone,
		CustomerEmail:   c.CustomerEmail,
		CustomerAddress: c.CustomerAddress,
		EventDate:       eventDate,
		EventType:       c.EventType,
		TimeSlot:        c.TimeSlot,
		GuestCount:      num.IntOrZero(c.GuestCount),
		BaseAmount:      baseAmount,
		Status:          model.StatusPending,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}, nil
}

type UpdateBookingRequest struct {
	CustomerName     string   `db:"customer_name"     json:"customer_name"     validate:"omitempty,max=100"`
	CustomerPhone    string   `db:"customer_phone"    json:"customer_phone"    validate:"omitempty,max=20"`
	CustomerEmail    string   `db:"customer_email"    json:"customer_email"    validate:"omitempty,email,max=100"`
	CustomerAddress  string   `db:"customer_address"  json:"customer_address"  validate:"omitempty"`
	EventDate        string   `db:"event_date"        json:"event_date"        validate:"omitempty"`
	EventType        string   `db:"event_type"        json:"event_type"        validate:"omitempty,max=100"`
	TimeSlot         string   `db:"time_slot"         json:"time_slot"         validate:"omitempty,oneof=morning evening fullday"`
	GuestCount       *int     `db:"guest_count"       json:"guest_count"       validate:"omitempty,gte=0"`
	BaseAmount       *float64 `db:"base_amount"       json:"base_amount"       validate:"omitempty"`
	Discount         *float64 `db:"discount"          json:"discount"          validate:"omitempty,gte=0"`
	CustomerResponse string   `db:"customer_response" json:"customer_response" validate:"omitempty"`
	LastContactDate  string   `db:"last_contact_date" json:"last_contact_date" validate:"omitempty"`
}

type UpdateBillingDetailsRequest struct {
	Name      string `json:"name"       validate:"omitempty,max=200"`
	Address   string `json:"address"    validate:"omitempty"`
	GSTNumber string `json:"gst_number" validate:"omitempty,max=30"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed active completed cancelled"`
	Reason string `json:"reason" validate:"omitempty"`
}

type HandoverRequest struct {
	Person        string   `json:"person"         validate:"required,max=100"`
	MeterReading  *float64 `json:"meter_reading"  validate:"omitempty,gte=0"`
	AdvanceAmount *float64 `json:"advance_amount" validate:"omitempty,gte=0"`
	Date          string   `json:"date"           validate:"required"`
}

func (h *HandoverRequest) ToModel() model.Handover {
	return model.Handover{
		Person:        h.Person,
		MeterReading:  num.OrZero(h.MeterReading),
		AdvanceAmount: num.OrZero(h.AdvanceAmount),
		Date:          h.Date,
	}
}

type BookingResponse struct {
	ID               string               `json:"id"`
	HallID           string               `json:"hall_id"`
	HallName         string               `json:"hall_name"`
	CustomerName     string               `json:"customer_name"`
	CustomerPhone    string               `json:"customer_phone"`
	CustomerEmail    string               `json:"customer_email"`
	CustomerAddress  string               `json:"customer_address"`
	EventDate        string               `json:"event_date"`
	EventType        string               `json:"event_type"`
	TimeSlot         string               `json:"time_slot"`
	GuestCount       int                  `json:"guest_count"`
	BaseAmount       float64              `json:"base_amount"`
	Discount         float64              `json:"discount"`
	Status           string               `json:"status"`
	BillingDetails   model.BillingDetails `json:"billing_details"`
	Handover         model.Handover       `json:"handover"`
	LastContactDate  string               `json:"last_contact_date,omitempty"`
	CustomerResponse string               `json:"customer_response"`
	Active           bool                 `json:"active"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.HallID = model.HallID
	r.HallName = model.HallName
	r.CustomerName = model.CustomerName
	r.CustomerPhone = model.CustomerPhone
	r.CustomerEmail = model.CustomerEmail
	r.CustomerAddress = model.CustomerAddress
	r.EventDate = model.EventDate.Format(constant.DateOnlyFormat)
	r.EventType = model.EventType
	r.TimeSlot = model.TimeSlot
	r.GuestCount = model.GuestCount
	r.BaseAmount = model.BaseAmount
	r.Discount = model.Discount
	r.Status = model.Status
	r.BillingDetails = model.BillingDetails
	r.Handover = model.Handover
	r.CustomerResponse = model.CustomerResponse
	r.Active = model.Active

	if model.LastContactDate != nil {
		r.LastContactDate = model.LastContactDate.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type ChargesResponse struct {
	BookingID      string  `json:"booking_id"`
	BaseAmount     float64 `json:"base_amount"`
	TotalFeatures  float64 `json:"total_features"`
	TotalServices  float64 `json:"total_services"`
	TotalInventory float64 `json:"total_inventory"`
	Discount       float64 `json:"discount"`
	TotalCharges   float64 `json:"total_charges"`
	TaxPercentage  float64 `json:"tax_percentage"`
	TaxAmount      float64 `json:"tax_amount"`
	BillAmount     float64 `json:"bill_amount"`
	TotalPaid      float64 `json:"total_paid"`
	Balance        float64 `json:"balance"`
}

func (r *ChargesResponse) FromBill(bookingID string, bill charge.Bill, totalPaid, balance float64) {
	r.BookingID = bookingID
	r.BaseAmount = bill.BaseAmount
	r.TotalFeatures = bill.TotalFeatures
	r.TotalServices = bill.TotalServices
	r.TotalInventory = bill.TotalInventory
	r.Discount = bill.Discount
	r.TotalCharges = bill.TotalCharges
	r.TaxPercentage = bill.TaxPercentage
	r.TaxAmount = bill.TaxAmount
	r.BillAmount = bill.BillAmount
	r.TotalPaid = totalPaid
	r.Balance = balance
}

// ManageBookingResponse bundles everything the booking manage screen
// needs into one payload. Sections that failed to load come back as
// empty lists.
type ManageBookingResponse struct {
	Booking        BookingResponse                          `json:"booking"`
	Hall           hallDto.HallResponse                     `json:"hall"`
	Features       []featureDto.FeatureResponse             `json:"features"`
	Services       []serviceDto.ServiceResponse             `json:"services"`
	Inventory      []inventoryDto.InventoryResponse         `json:"inventory"`
	Payments       []paymentDto.PaymentResponse             `json:"payments"`
	Communications []communicationDto.CommunicationResponse `json:"communications"`
	Tickets        []ticketDto.TicketResponse               `json:"tickets"`
	Charges        ChargesResponse                          `json:"charges"`
}

// StatusEvent is the kafka payload published on every status change.
type StatusEvent struct {
	BookingID string `json:"booking_id"`
	HallID    string `json:"hall_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Reason    string `json:"reason,omitempty"`
	ChangedBy string `json:"changed_by"`
	ChangedAt string `json:"changed_at"`
}
